package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionState_String(t *testing.T) {
	tests := []struct {
		state    SessionState
		expected string
	}{
		{StateIdle, "Idle"},
		{StateCapabilityUnknown, "CapabilityUnknown"},
		{StateSupported, "Supported"},
		{StateUnsupported, "Unsupported"},
		{StatePresenting, "Presenting"},
		{SessionState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestSessionStateConstants(t *testing.T) {
	// Idle must be the zero value
	assert.Equal(t, SessionState(0), StateIdle)
	assert.Equal(t, SessionState(1), StateCapabilityUnknown)
	assert.Equal(t, SessionState(2), StateSupported)
	assert.Equal(t, SessionState(3), StateUnsupported)
	assert.Equal(t, SessionState(4), StatePresenting)
}

func TestSessionState_CanEnterVR(t *testing.T) {
	for _, s := range []SessionState{StateIdle, StateCapabilityUnknown, StateUnsupported, StatePresenting} {
		assert.False(t, s.CanEnterVR(), s.String())
	}
	assert.True(t, StateSupported.CanEnterVR())
}
