package xrview

import (
	"bytes"
	"context"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/xrscene/internal/application/system"
	"github.com/younwookim/xrscene/internal/domain/entity"
	"github.com/younwookim/xrscene/internal/infrastructure/render"
	"github.com/younwookim/xrscene/internal/infrastructure/xr"
)

// fakeRenderer records what the scene asks of its render surface
type fakeRenderer struct {
	mu sync.Mutex

	pixelRatio float64
	width      int
	height     int
	background entity.Background
	loop       func(*ebiten.Image)
	xrSpace    xr.ReferenceSpaceType
	xrEnabled  bool
	session    xr.Session
	bindErr    error
	disposed   bool
	frames     int
}

func (f *fakeRenderer) SetPixelRatio(ratio float64)        { f.pixelRatio = ratio }
func (f *fakeRenderer) SetSize(width, height int)          { f.width, f.height = width, height }
func (f *fakeRenderer) SetBackground(bg entity.Background) { f.background = bg }
func (f *fakeRenderer) SetAnimationLoop(fn func(*ebiten.Image)) {
	f.loop = fn
}

func (f *fakeRenderer) DrawingBufferSize() (int, int) {
	return int(float64(f.width) * f.pixelRatio), int(float64(f.height) * f.pixelRatio)
}

func (f *fakeRenderer) Frame(screen *ebiten.Image) {
	if f.disposed || f.loop == nil {
		return
	}
	f.frames++
	f.loop(screen)
}

func (f *fakeRenderer) Render(*ebiten.Image, *entity.Object, *entity.PerspectiveCamera) {}

func (f *fakeRenderer) EnableXR(spaceType xr.ReferenceSpaceType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.xrEnabled = true
	f.xrSpace = spaceType
}

func (f *fakeRenderer) SetSession(_ context.Context, s xr.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.bindErr != nil {
		return f.bindErr
	}
	if f.disposed {
		return render.ErrXRDisabled
	}
	f.session = s
	return nil
}

func (f *fakeRenderer) IsPresenting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session == nil {
		return false
	}
	select {
	case <-f.session.Ended():
		f.session = nil
		return false
	default:
		return true
	}
}

func (f *fakeRenderer) EndSession() error {
	f.mu.Lock()
	s := f.session
	f.session = nil
	f.mu.Unlock()
	if s == nil {
		return render.ErrNoSession
	}
	return s.End()
}

func (f *fakeRenderer) Dispose() {
	f.mu.Lock()
	f.disposed = true
	f.mu.Unlock()
	f.loop = nil
	_ = f.EndSession()
}

func (f *fakeRenderer) isDisposed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.disposed
}

// blockingXR answers capability probes only when the test says so and
// ignores cancellation, like a host that cannot abort the query
type blockingXR struct {
	answers chan bool
	sim     *xr.Simulator
}

func newBlockingXR() *blockingXR {
	return &blockingXR{
		answers: make(chan bool),
		sim:     xr.NewSimulator(xr.SimulatorConfig{Supported: true}),
	}
}

func (b *blockingXR) IsSessionSupported(context.Context, xr.SessionMode) (bool, error) {
	return <-b.answers, nil
}

func (b *blockingXR) RequestSession(ctx context.Context, mode xr.SessionMode) (xr.Session, error) {
	return b.sim.RequestSession(ctx, mode)
}

// scriptedInput returns queued input states, then nothing
type scriptedInput struct {
	queue []system.InputState
}

func (s *scriptedInput) GetInput() system.InputState {
	if len(s.queue) == 0 {
		return system.InputState{}
	}
	in := s.queue[0]
	s.queue = s.queue[1:]
	return in
}

type harness struct {
	scene     *XRScene
	renderers []*fakeRenderer
	logs      *bytes.Buffer
}

func (h *harness) renderer() *fakeRenderer {
	return h.renderers[len(h.renderers)-1]
}

// settle waits for request goroutines and applies their results
func (h *harness) settle() {
	h.scene.Wait()
	_, _ = h.scene.Update(1.0 / 60)
}

func newHarness(cfg *Configuration, opts Options) *harness {
	h := &harness{logs: &bytes.Buffer{}}
	opts.NewRenderer = func() Renderer {
		r := &fakeRenderer{}
		h.renderers = append(h.renderers, r)
		return r
	}
	opts.Logger = log.New(h.logs, "", 0)
	if opts.Width == 0 {
		opts.Width, opts.Height = 800, 600
	}
	h.scene = New(cfg, opts)
	return h
}
