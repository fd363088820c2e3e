// Package xrview provides the scene that mounts a configured set of 3D
// components and manages the immersive VR session for it.
package xrview

import (
	"context"
	"image"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/younwookim/xrscene/internal/application/component"
	"github.com/younwookim/xrscene/internal/application/inspect"
	"github.com/younwookim/xrscene/internal/application/scene"
	"github.com/younwookim/xrscene/internal/application/state"
	"github.com/younwookim/xrscene/internal/application/system"
	"github.com/younwookim/xrscene/internal/domain/entity"
	"github.com/younwookim/xrscene/internal/infrastructure/render"
	"github.com/younwookim/xrscene/internal/infrastructure/xr"
)

// Camera and lighting rig of every mounted scene
const (
	CameraFOV    = 50
	CameraNear   = 0.1
	CameraFar    = 100
	CameraHeight = 1.6
)

// Names of the lights added on mount
const (
	LightAmbient     = "ambient"
	LightDirectional = "directional"
	LightPoint       = "point"
)

// Configuration is what a scene shows. It is immutable once handed to a
// scene; pass a new one to Reconfigure to change it.
type Configuration struct {
	Components []component.Descriptor
	VREnabled  bool
	Background entity.Background
}

// DefaultConfiguration is an empty scene with VR enabled on black
func DefaultConfiguration() *Configuration {
	return &Configuration{
		VREnabled:  true,
		Background: entity.Background{Color: entity.Black},
	}
}

// Renderer is the render surface a mounted scene draws through
type Renderer interface {
	SetPixelRatio(ratio float64)
	SetSize(width, height int)
	DrawingBufferSize() (int, int)
	SetBackground(bg entity.Background)
	SetAnimationLoop(fn func(screen *ebiten.Image))
	Frame(screen *ebiten.Image)
	Render(screen *ebiten.Image, root *entity.Object, cam *entity.PerspectiveCamera)
	EnableXR(spaceType xr.ReferenceSpaceType)
	SetSession(ctx context.Context, s xr.Session) error
	IsPresenting() bool
	EndSession() error
	Dispose()
}

// InputSource supplies per-frame input
type InputSource interface {
	GetInput() system.InputState
}

// Options wires a scene to its host. Zero values get working defaults.
type Options struct {
	// NewRenderer allocates a render surface on every mount
	NewRenderer func() Renderer
	// XR is the host's XR system; nil when the host has none
	XR             xr.System
	ReferenceSpace xr.ReferenceSpaceType
	Camera         *inspect.CameraHandle
	Input          InputSource
	Logger         *log.Logger
	Width          int
	Height         int
	PixelRatio     float64
	// TracerProvider defaults to the global provider
	TracerProvider trace.TracerProvider
}

// XRScene is a Scene that shows a Configuration and drives the VR session
// lifecycle for it
type XRScene struct {
	cfg *Configuration

	newRenderer func() Renderer
	xrSystem    xr.System
	spaceType   xr.ReferenceSpaceType
	cameraRef   *inspect.CameraHandle
	input       InputSource
	actions     *system.InputSystem
	logger      *log.Logger
	tracer      trace.Tracer

	width      int
	height     int
	pixelRatio float64

	// valid while mounted
	mounted    bool
	generation uint64
	ctx        context.Context
	cancel     context.CancelFunc
	renderer   Renderer
	root       *entity.Object
	camera     *entity.PerspectiveCamera
	state      state.SessionState
	requesting bool

	results chan result
	// in-flight request goroutines, see Wait
	pending sync.WaitGroup
}

var (
	_ scene.Scene            = (*XRScene)(nil)
	_ scene.Resizer          = (*XRScene)(nil)
	_ scene.PixelRatioSetter = (*XRScene)(nil)
	_ Renderer               = (*render.Renderer)(nil)
)

// New creates an unmounted scene for cfg. A nil cfg uses DefaultConfiguration.
func New(cfg *Configuration, opts Options) *XRScene {
	if cfg == nil {
		cfg = DefaultConfiguration()
	}
	if opts.NewRenderer == nil {
		opts.NewRenderer = func() Renderer { return render.New() }
	}
	if opts.ReferenceSpace == "" {
		opts.ReferenceSpace = xr.ReferenceSpaceLocal
	}
	if opts.Camera == nil {
		opts.Camera = inspect.NewCameraHandle()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 720
	}
	if opts.PixelRatio <= 0 {
		opts.PixelRatio = 1
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}

	return &XRScene{
		cfg:         cfg,
		newRenderer: opts.NewRenderer,
		xrSystem:    opts.XR,
		spaceType:   opts.ReferenceSpace,
		cameraRef:   opts.Camera,
		input:       opts.Input,
		actions:     system.NewInputSystem(),
		logger:      opts.Logger,
		tracer:      opts.TracerProvider.Tracer("github.com/younwookim/xrscene/internal/application/scene/xrview"),
		width:       opts.Width,
		height:      opts.Height,
		pixelRatio:  opts.PixelRatio,
		results:     make(chan result, 4),
	}
}

// OnEnter mounts the scene
func (s *XRScene) OnEnter() { s.Mount() }

// OnExit unmounts the scene
func (s *XRScene) OnExit() { s.Unmount() }

// Mount allocates the render surface, builds the scene graph and starts the
// capability probe when VR is enabled. Mounting a mounted scene is a no-op.
func (s *XRScene) Mount() {
	if s.mounted {
		return
	}
	_, span := s.tracer.Start(context.Background(), "xrview.Mount")
	defer span.End()

	s.generation++
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.camera = entity.NewPerspectiveCamera(CameraFOV, float64(s.width)/float64(s.height), CameraNear, CameraFar)
	s.camera.Position = entity.V3(0, CameraHeight, 0)
	s.cameraRef.Set(s.camera)

	s.renderer = s.newRenderer()
	s.renderer.SetPixelRatio(s.pixelRatio)
	s.renderer.SetSize(s.width, s.height)
	s.renderer.SetBackground(s.cfg.Background)
	if s.cfg.VREnabled {
		s.renderer.EnableXR(s.spaceType)
	}

	s.root = entity.NewGroup("scene")
	s.addLights()
	s.populate()

	s.renderer.SetAnimationLoop(s.renderFrame)
	s.mounted = true
	s.requesting = false
	s.state = state.StateIdle

	span.SetAttributes(
		attribute.Int("xrscene.components", len(s.cfg.Components)),
		attribute.Bool("xrscene.vr_enabled", s.cfg.VREnabled),
	)

	if s.cfg.VREnabled {
		s.probe()
	}
}

func (s *XRScene) addLights() {
	s.root.Add(entity.NewLightObject(LightAmbient, entity.NewHemisphereLight(entity.Hex(0x606060), entity.Hex(0x404040), 0.8)))
	s.root.Add(entity.NewLightObject(LightDirectional, entity.NewDirectionalLight(entity.White, 1, entity.V3(1, 1, 1).Norm())))
	s.root.Add(entity.NewLightObject(LightPoint, entity.NewPointLight(entity.White, 0.5, entity.V3(0, 5, 0))))
}

// populate adds one subtree per descriptor, in configuration order.
func (s *XRScene) populate() {
	for _, d := range s.cfg.Components {
		obj := d.Build()
		if obj == nil {
			continue
		}
		obj.Name = d.ID
		s.root.Add(obj)
	}
}

func (s *XRScene) renderFrame(screen *ebiten.Image) {
	s.renderer.Render(screen, s.root, s.camera)
}

// Unmount stops the loop, ends any session, releases the surface and
// withdraws the camera. Pending asynchronous results are ignored from here
// on. Safe to call more than once and without a prior Mount.
func (s *XRScene) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	s.cancel()

	s.renderer.SetAnimationLoop(nil)
	s.renderer.Dispose()
	s.cameraRef.Clear(s.camera)
	s.requesting = false
}

// Reconfigure swaps the configuration. A mounted scene is torn down and
// mounted again; the same configuration is a no-op.
func (s *XRScene) Reconfigure(cfg *Configuration) {
	if cfg == nil || cfg == s.cfg {
		return
	}
	wasMounted := s.mounted
	s.Unmount()
	s.cfg = cfg
	if wasMounted {
		s.Mount()
	}
}

// Update applies finished capability and session requests, notices ended
// sessions and handles VR input
func (s *XRScene) Update(_ float64) (scene.Scene, error) {
	if !s.mounted {
		return nil, nil
	}
	s.drainResults()
	s.watchSession()

	if s.input != nil && s.cfg.VREnabled {
		in := s.input.GetInput()
		switch s.actions.Action(in, s.ButtonBounds(), s.state == state.StatePresenting) {
		case system.ActionEnter:
			s.EnterVR()
		case system.ActionExit:
			s.ExitVR()
		}
	}
	return nil, nil
}

// Draw runs one frame of the animation loop and overlays the VR button
func (s *XRScene) Draw(screen *ebiten.Image) {
	if !s.mounted {
		return
	}
	s.renderer.Frame(screen)
	if s.ShowsVRButton() {
		s.drawButton(screen)
	}
}

// Resize keeps the camera aspect and surface size in step with the
// viewport
func (s *XRScene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	if !s.mounted {
		return
	}
	s.camera.Aspect = float64(width) / float64(height)
	s.camera.UpdateProjectionMatrix()
	s.renderer.SetSize(width, height)
}

// SetPixelRatio follows the device pixel ratio, which moves the drawing
// buffer and the VR button hit area with it
func (s *XRScene) SetPixelRatio(ratio float64) {
	if ratio <= 0 {
		return
	}
	s.pixelRatio = ratio
	if s.mounted {
		s.renderer.SetPixelRatio(ratio)
	}
}

// Wait blocks until in-flight capability and session requests have
// returned. Results still queued are dropped by the next Update unless the
// scene is mounted.
func (s *XRScene) Wait() {
	s.pending.Wait()
}

// State returns the VR session state
func (s *XRScene) State() state.SessionState { return s.state }

// Mounted reports whether the scene is mounted
func (s *XRScene) Mounted() bool { return s.mounted }

// Configuration returns the configuration being shown
func (s *XRScene) Configuration() *Configuration { return s.cfg }

// Root returns the scene graph root, or nil before the first mount
func (s *XRScene) Root() *entity.Object { return s.root }

// Camera returns the scene camera, or nil before the first mount
func (s *XRScene) Camera() *entity.PerspectiveCamera { return s.camera }

// ShowsVRButton reports whether the VR entry control is shown
func (s *XRScene) ShowsVRButton() bool { return s.mounted && s.cfg.VREnabled }

// ButtonBounds returns the VR button rectangle in drawing buffer pixels.
// It is empty while the button is hidden.
func (s *XRScene) ButtonBounds() image.Rectangle {
	if !s.ShowsVRButton() {
		return image.Rectangle{}
	}
	w, h := s.renderer.DrawingBufferSize()
	return buttonRect(w, h, s.pixelRatio)
}
