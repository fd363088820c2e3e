package render

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/younwookim/xrscene/internal/infrastructure/xr"
)

var (
	ErrXRDisabled   = errors.New("xr is not enabled on this renderer")
	ErrSessionBound = errors.New("a session is already bound")
	ErrNoSession    = errors.New("no session bound")
)

// xrBinding is written from session request goroutines and read by Render,
// so every field is guarded by mu.
type xrBinding struct {
	mu        sync.Mutex
	enabled   bool
	spaceType xr.ReferenceSpaceType
	session   xr.Session
	space     xr.ReferenceSpace
}

// EnableXR allows sessions to be bound, reporting poses in the given space
func (r *Renderer) EnableXR(spaceType xr.ReferenceSpaceType) {
	r.xr.mu.Lock()
	defer r.xr.mu.Unlock()
	r.xr.enabled = true
	r.xr.spaceType = spaceType
}

// XREnabled reports whether EnableXR has been called
func (r *Renderer) XREnabled() bool {
	r.xr.mu.Lock()
	defer r.xr.mu.Unlock()
	return r.xr.enabled
}

// SetSession binds s to the surface after acquiring its reference space.
// Render draws stereo views from then on until the session ends.
func (r *Renderer) SetSession(ctx context.Context, s xr.Session) error {
	r.xr.mu.Lock()
	enabled, spaceType := r.xr.enabled, r.xr.spaceType
	r.xr.mu.Unlock()

	if !enabled {
		return ErrXRDisabled
	}

	space, err := s.RequestReferenceSpace(ctx, spaceType)
	if err != nil {
		return fmt.Errorf("failed to request reference space: %w", err)
	}

	r.xr.mu.Lock()
	defer r.xr.mu.Unlock()
	if r.disposed {
		return ErrXRDisabled
	}
	if r.xr.session != nil && !ended(r.xr.session) {
		return ErrSessionBound
	}
	r.xr.session = s
	r.xr.space = space
	return nil
}

// IsPresenting reports whether a live session is bound. An ended session
// is dropped here.
func (r *Renderer) IsPresenting() bool {
	_, _, presenting := r.xr.snapshot()
	return presenting
}

// ReferenceSpace returns the bound session's space
func (r *Renderer) ReferenceSpace() (xr.ReferenceSpace, bool) {
	_, space, presenting := r.xr.snapshot()
	return space, presenting
}

// EndSession ends the bound session, if any
func (r *Renderer) EndSession() error {
	r.xr.mu.Lock()
	s := r.xr.session
	r.xr.session = nil
	r.xr.mu.Unlock()

	if s == nil {
		return ErrNoSession
	}
	if ended(s) {
		return nil
	}
	return s.End()
}

func (b *xrBinding) snapshot() ([]xr.View, xr.ReferenceSpace, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session == nil {
		return nil, xr.ReferenceSpace{}, false
	}
	if ended(b.session) {
		b.session = nil
		return nil, xr.ReferenceSpace{}, false
	}
	return b.session.Views(), b.space, true
}

func ended(s xr.Session) bool {
	select {
	case <-s.Ended():
		return true
	default:
		return false
	}
}
