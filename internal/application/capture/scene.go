package capture

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/xrscene/internal/application/inspect"
	"github.com/younwookim/xrscene/internal/application/scene"
	"github.com/younwookim/xrscene/internal/application/state"
)

// stateReporter is implemented by scenes that expose their VR state
type stateReporter interface {
	State() state.SessionState
}

// Scene wraps another scene and records the published camera after every
// update. The capture is saved when the scene exits.
type Scene struct {
	inner    scene.Scene
	camera   *inspect.CameraHandle
	recorder *Recorder
	filename string
}

var _ scene.Scene = (*Scene)(nil)
var _ scene.Resizer = (*Scene)(nil)
var _ scene.PixelRatioSetter = (*Scene)(nil)

// Wrap records inner's camera into filename
func Wrap(inner scene.Scene, camera *inspect.CameraHandle, sceneName, filename string) *Scene {
	log.Printf("Capture enabled: %s", filename)
	return &Scene{
		inner:    inner,
		camera:   camera,
		recorder: NewRecorder(sceneName),
		filename: filename,
	}
}

// Update updates the wrapped scene, then samples the camera
func (s *Scene) Update(dt float64) (scene.Scene, error) {
	next, err := s.inner.Update(dt)
	if err != nil {
		return nil, err
	}

	st := state.StateIdle
	if r, ok := s.inner.(stateReporter); ok {
		st = r.State()
	}
	pose, ok := s.camera.Pose()
	s.recorder.RecordFrame(pose, ok, st)
	return next, nil
}

// Draw draws the wrapped scene
func (s *Scene) Draw(screen *ebiten.Image) { s.inner.Draw(screen) }

// OnEnter mounts the wrapped scene
func (s *Scene) OnEnter() { s.inner.OnEnter() }

// OnExit unmounts the wrapped scene and saves the capture
func (s *Scene) OnExit() {
	s.inner.OnExit()
	if !s.recorder.IsRecording() {
		return
	}
	s.recorder.Stop()
	if err := s.recorder.Save(s.filename); err != nil {
		log.Printf("Failed to save capture: %v", err)
		return
	}
	log.Printf("Capture saved: %s (%d frames)", s.filename, s.recorder.FrameCount())
}

// Resize forwards to the wrapped scene when it tracks size
func (s *Scene) Resize(width, height int) {
	if r, ok := s.inner.(scene.Resizer); ok {
		r.Resize(width, height)
	}
}

// SetPixelRatio forwards to the wrapped scene when it follows the ratio
func (s *Scene) SetPixelRatio(ratio float64) {
	if p, ok := s.inner.(scene.PixelRatioSetter); ok {
		p.SetPixelRatio(ratio)
	}
}

// Recorder returns the underlying recorder
func (s *Scene) Recorder() *Recorder { return s.recorder }
