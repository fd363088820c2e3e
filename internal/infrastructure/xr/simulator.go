package xr

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/younwookim/xrscene/internal/domain/entity"
)

// DefaultIPD is the interpupillary distance in meters
const DefaultIPD = 0.064

// SimulatorConfig configures an emulated headset
type SimulatorConfig struct {
	// Supported is the answer to the capability probe
	Supported bool
	// ProbeDelay emulates the asynchronous capability query
	ProbeDelay time.Duration
	// RejectSessions makes every RequestSession fail, as when the user declines
	RejectSessions bool
	IPD            float64
	// ReferenceSpaces lists the spaces the device can provide; empty means all
	ReferenceSpaces []ReferenceSpaceType
}

// Simulator is an emulated headset that renders to the desktop window.
type Simulator struct {
	cfg SimulatorConfig

	mu     sync.Mutex
	active *simSession
}

// NewSimulator creates an emulated headset
func NewSimulator(cfg SimulatorConfig) *Simulator {
	if cfg.IPD == 0 {
		cfg.IPD = DefaultIPD
	}
	return &Simulator{cfg: cfg}
}

// IsSessionSupported answers after ProbeDelay, or fails when ctx ends first.
func (s *Simulator) IsSessionSupported(ctx context.Context, mode SessionMode) (bool, error) {
	if s.cfg.ProbeDelay > 0 {
		t := time.NewTimer(s.cfg.ProbeDelay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	if mode == ModeInline {
		return true, nil
	}
	return s.cfg.Supported, nil
}

// RequestSession starts a session. Only one session may be active at a time.
func (s *Simulator) RequestSession(ctx context.Context, mode SessionMode) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if mode == ModeImmersiveVR && !s.cfg.Supported {
		return nil, fmt.Errorf("%s: %w", mode, ErrNotSupported)
	}
	if s.cfg.RejectSessions {
		return nil, fmt.Errorf("%s: %w", mode, ErrSessionRejected)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil && !s.active.isEnded() {
		return nil, ErrSessionActive
	}

	sess := &simSession{
		sim:   s,
		mode:  mode,
		ended: make(chan struct{}),
		views: []View{
			{Eye: EyeLeft, Offset: entity.V3(-s.cfg.IPD/2, 0, 0)},
			{Eye: EyeRight, Offset: entity.V3(s.cfg.IPD/2, 0, 0)},
		},
	}
	s.active = sess
	return sess, nil
}

// Active returns the running session, if any
func (s *Simulator) Active() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil || s.active.isEnded() {
		return nil
	}
	return s.active
}

func (s *Simulator) allows(t ReferenceSpaceType) bool {
	return len(s.cfg.ReferenceSpaces) == 0 || slices.Contains(s.cfg.ReferenceSpaces, t)
}

type simSession struct {
	sim   *Simulator
	mode  SessionMode
	views []View

	once  sync.Once
	ended chan struct{}
}

func (s *simSession) Mode() SessionMode { return s.mode }

func (s *simSession) Views() []View { return slices.Clone(s.views) }

func (s *simSession) Ended() <-chan struct{} { return s.ended }

func (s *simSession) RequestReferenceSpace(ctx context.Context, t ReferenceSpaceType) (ReferenceSpace, error) {
	if err := ctx.Err(); err != nil {
		return ReferenceSpace{}, err
	}
	if s.isEnded() {
		return ReferenceSpace{}, ErrSessionEnded
	}
	if !s.sim.allows(t) {
		return ReferenceSpace{}, fmt.Errorf("%s: %w", t, ErrReferenceSpaceInvalid)
	}
	return ReferenceSpace{Type: t}, nil
}

func (s *simSession) End() error {
	if s.isEnded() {
		return ErrSessionEnded
	}
	s.once.Do(func() { close(s.ended) })
	return nil
}

func (s *simSession) isEnded() bool {
	select {
	case <-s.ended:
		return true
	default:
		return false
	}
}
