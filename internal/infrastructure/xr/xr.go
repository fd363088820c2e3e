// Package xr models the host's immersive-session API: a capability query,
// a session request, and the session handle bound to the renderer.
package xr

import (
	"context"
	"errors"

	"github.com/younwookim/xrscene/internal/domain/entity"
)

// SessionMode names the kind of session requested
type SessionMode string

const (
	ModeImmersiveVR SessionMode = "immersive-vr"
	ModeInline      SessionMode = "inline"
)

// ReferenceSpaceType names the coordinate frame poses are reported in
type ReferenceSpaceType string

const (
	ReferenceSpaceViewer     ReferenceSpaceType = "viewer"
	ReferenceSpaceLocal      ReferenceSpaceType = "local"
	ReferenceSpaceLocalFloor ReferenceSpaceType = "local-floor"
)

var (
	ErrNotSupported          = errors.New("session mode not supported")
	ErrSessionRejected       = errors.New("session request rejected")
	ErrSessionActive         = errors.New("a session is already active")
	ErrSessionEnded          = errors.New("session has ended")
	ErrReferenceSpaceInvalid = errors.New("reference space not supported")
)

// System is the host's XR entry point.
type System interface {
	IsSessionSupported(ctx context.Context, mode SessionMode) (bool, error)
	RequestSession(ctx context.Context, mode SessionMode) (Session, error)
}

// Session is an active immersive presentation.
type Session interface {
	Mode() SessionMode
	RequestReferenceSpace(ctx context.Context, t ReferenceSpaceType) (ReferenceSpace, error)
	// Views returns one view per eye, left first.
	Views() []View
	End() error
	// Ended is closed once the session is over, whoever ended it.
	Ended() <-chan struct{}
}

// ReferenceSpace is the frame a bound session reports poses in.
type ReferenceSpace struct {
	Type ReferenceSpaceType
	// Origin offsets the space from the camera rig
	Origin entity.Vec3
}

// Eye identifies a view
type Eye string

const (
	EyeLeft  Eye = "left"
	EyeRight Eye = "right"
)

// View is one eye's offset from the head pose, in head space.
type View struct {
	Eye    Eye
	Offset entity.Vec3
}
