package state

// SessionState is the VR session lifecycle of a mounted scene
type SessionState int

const (
	StateIdle SessionState = iota
	StateCapabilityUnknown
	StateSupported
	StateUnsupported
	StatePresenting
)

// String returns the string representation of the session state
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateCapabilityUnknown:
		return "CapabilityUnknown"
	case StateSupported:
		return "Supported"
	case StateUnsupported:
		return "Unsupported"
	case StatePresenting:
		return "Presenting"
	default:
		return "Unknown"
	}
}

// CanEnterVR reports whether a session request may start from this state
func (s SessionState) CanEnterVR() bool {
	return s == StateSupported
}
