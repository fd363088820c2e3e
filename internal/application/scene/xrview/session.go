package xrview

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/younwookim/xrscene/internal/application/state"
	"github.com/younwookim/xrscene/internal/infrastructure/render"
	"github.com/younwookim/xrscene/internal/infrastructure/xr"
)

var (
	// ErrCapabilityUnavailable is reported when the host cannot say whether
	// immersive VR is supported
	ErrCapabilityUnavailable = errors.New("immersive vr capability unavailable")
	// ErrSessionFailure is reported when an immersive session could not be
	// started or bound
	ErrSessionFailure = errors.New("immersive vr session failed")
)

type resultKind int

const (
	probeResult resultKind = iota
	sessionResult
)

// result is posted by request goroutines and applied on the update loop.
// gen ties it to the mount that started the request.
type result struct {
	gen       uint64
	kind      resultKind
	supported bool
	err       error
}

// probe asks the host whether immersive VR is supported. The answer is
// applied by Update.
func (s *XRScene) probe() {
	s.state = state.StateCapabilityUnknown
	if s.xrSystem == nil {
		s.logger.Printf("VR capability check failed: %v", ErrCapabilityUnavailable)
		s.state = state.StateUnsupported
		return
	}

	ctx, gen, sys := s.ctx, s.generation, s.xrSystem
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, span := s.tracer.Start(ctx, "xr.IsSessionSupported", traceAttrs(xr.ModeImmersiveVR)...)
		supported, err := sys.IsSessionSupported(ctx, xr.ModeImmersiveVR)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.Bool("xr.supported", supported))
		span.End()
		s.post(ctx, result{gen: gen, kind: probeResult, supported: supported, err: err})
	}()
}

// EnterVR requests an immersive session and binds it to the render surface.
// It does nothing unless support was confirmed and no request is running.
func (s *XRScene) EnterVR() {
	if !s.mounted || s.renderer == nil || !s.state.CanEnterVR() || s.requesting {
		s.logger.Printf("VR not supported or renderer not ready")
		return
	}
	s.requesting = true

	ctx, gen, sys, r := s.ctx, s.generation, s.xrSystem, s.renderer
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, span := s.tracer.Start(ctx, "xr.RequestSession", traceAttrs(xr.ModeImmersiveVR)...)
		err := startSession(ctx, sys, r)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		s.post(ctx, result{gen: gen, kind: sessionResult, err: err})
	}()
}

func startSession(ctx context.Context, sys xr.System, r Renderer) error {
	sess, err := sys.RequestSession(ctx, xr.ModeImmersiveVR)
	if err != nil {
		return fmt.Errorf("%w: failed to request session: %w", ErrSessionFailure, err)
	}
	if err := r.SetSession(ctx, sess); err != nil {
		_ = sess.End()
		return fmt.Errorf("%w: failed to bind session: %w", ErrSessionFailure, err)
	}
	return nil
}

// ExitVR ends the presenting session
func (s *XRScene) ExitVR() {
	if !s.mounted || s.state != state.StatePresenting {
		return
	}
	if err := s.renderer.EndSession(); err != nil && !errors.Is(err, render.ErrNoSession) {
		s.logger.Printf("Failed to end VR session: %v", err)
	}
	s.state = state.StateSupported
	s.logger.Printf("VR session ended")
}

// post hands a result to the update loop. It gives up once the mount that
// started the request is gone.
func (s *XRScene) post(ctx context.Context, r result) {
	select {
	case s.results <- r:
	case <-ctx.Done():
	}
}

func (s *XRScene) drainResults() {
	for {
		select {
		case r := <-s.results:
			s.apply(r)
		default:
			return
		}
	}
}

// apply ignores results from an earlier mount and anything arriving after
// unmount.
func (s *XRScene) apply(r result) {
	if !s.mounted || r.gen != s.generation {
		return
	}

	switch r.kind {
	case probeResult:
		if s.state != state.StateCapabilityUnknown {
			return
		}
		switch {
		case r.err != nil:
			s.logger.Printf("VR capability check failed: %v", fmt.Errorf("%w: %w", ErrCapabilityUnavailable, r.err))
			s.state = state.StateUnsupported
		case r.supported:
			s.state = state.StateSupported
		default:
			s.logger.Printf("immersive-vr is not supported on this host")
			s.state = state.StateUnsupported
		}

	case sessionResult:
		s.requesting = false
		if r.err != nil {
			s.logger.Printf("Failed to start VR session: %v", r.err)
			s.state = state.StateSupported
			return
		}
		s.state = state.StatePresenting
		s.logger.Printf("VR session started successfully (reference space: %s)", s.spaceType)
	}
}

// watchSession returns to Supported when the host ends the session
func (s *XRScene) watchSession() {
	if s.state == state.StatePresenting && !s.renderer.IsPresenting() {
		s.state = state.StateSupported
		s.logger.Printf("VR session ended")
	}
}

func traceAttrs(mode xr.SessionMode) []trace.SpanStartOption {
	return []trace.SpanStartOption{trace.WithAttributes(attribute.String("xr.mode", string(mode)))}
}
