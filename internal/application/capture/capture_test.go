package capture

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/xrscene/internal/application/inspect"
	"github.com/younwookim/xrscene/internal/application/scene"
	"github.com/younwookim/xrscene/internal/application/state"
	"github.com/younwookim/xrscene/internal/domain/entity"
)

func createTestPose() inspect.Pose {
	return inspect.Pose{
		Position: entity.V3(0, 1.6, 0),
		Rotation: entity.Euler{Y: 0.5},
		FOV:      50,
		Aspect:   1.5,
	}
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder("demo")
	assert.True(t, r.IsRecording())

	r.RecordFrame(createTestPose(), true, state.StateSupported)
	r.RecordFrame(inspect.Pose{}, false, state.StateSupported)
	r.RecordFrame(createTestPose(), true, state.StatePresenting)

	data := r.Data()
	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, "demo", data.Scene)
	require.Len(t, data.Frames, 2, "frames without a camera are skipped")
	assert.Equal(t, 0, data.Frames[0].F)
	assert.Equal(t, 2, data.Frames[1].F, "frame counter keeps counting")
	assert.Equal(t, [3]float64{0, 1.6, 0}, data.Frames[0].P)
	assert.Equal(t, [3]float64{0, 0.5, 0}, data.Frames[0].R)
	assert.Equal(t, 50.0, data.Frames[0].FOV)
	assert.Equal(t, "Supported", data.Frames[0].VR)
	assert.Equal(t, "Presenting", data.Frames[1].VR)

	r.Stop()
	r.RecordFrame(createTestPose(), true, state.StateIdle)
	assert.False(t, r.IsRecording())
	assert.Equal(t, 2, r.FrameCount())
}

func TestRecorder_Write(t *testing.T) {
	r := NewRecorder("demo")
	var buf bytes.Buffer
	assert.ErrorContains(t, r.Write(&buf), "no frames to save")

	r.RecordFrame(createTestPose(), true, state.StateIdle)
	require.NoError(t, r.Write(&buf))

	var decoded CaptureData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "demo", decoded.Scene)
	assert.Len(t, decoded.Frames, 1)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	r := NewRecorder("rooms")
	for i := 0; i < 3; i++ {
		r.RecordFrame(createTestPose(), true, state.StateIdle)
	}

	path := filepath.Join(t.TempDir(), "capture.json")
	require.NoError(t, r.Save(path))

	data, err := LoadCapture(path)
	require.NoError(t, err)
	assert.Equal(t, "rooms", data.Scene)
	assert.Len(t, data.Frames, 3)

	_, err = LoadCapture(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to open file")
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.Regexp(t, `^capture_\d{8}_\d{6}\.json$`, name)
}

// mockScene publishes a camera on mount like the XR scene does
type mockScene struct {
	handle  *inspect.CameraHandle
	cam     *entity.PerspectiveCamera
	st      state.SessionState
	updates int
	exits   int
	sizes   [][2]int
	ratios  []float64
	next    scene.Scene
}

func (m *mockScene) Update(float64) (scene.Scene, error) {
	m.updates++
	return m.next, nil
}
func (m *mockScene) Draw(*ebiten.Image)        {}
func (m *mockScene) OnEnter()                  { m.handle.Set(m.cam) }
func (m *mockScene) OnExit()                   { m.exits++; m.handle.Clear(m.cam) }
func (m *mockScene) State() state.SessionState { return m.st }
func (m *mockScene) Resize(w, h int)           { m.sizes = append(m.sizes, [2]int{w, h}) }
func (m *mockScene) SetPixelRatio(r float64)   { m.ratios = append(m.ratios, r) }

func TestScene_RecordsCameraAndSavesOnExit(t *testing.T) {
	handle := inspect.NewCameraHandle()
	cam := entity.NewPerspectiveCamera(50, 2, 0.1, 100)
	cam.Position = entity.V3(0, 1.6, 0)
	inner := &mockScene{handle: handle, cam: cam, st: state.StateSupported}

	path := filepath.Join(t.TempDir(), "out.json")
	s := Wrap(inner, handle, "demo", path)

	s.Update(1.0 / 60)
	s.OnEnter()
	for i := 0; i < 3; i++ {
		_, err := s.Update(1.0 / 60)
		require.NoError(t, err)
	}
	s.Resize(640, 480)
	s.SetPixelRatio(2)
	s.OnExit()
	s.OnExit()

	assert.Equal(t, 4, inner.updates)
	assert.Equal(t, 2, inner.exits)
	assert.Equal(t, [][2]int{{640, 480}}, inner.sizes)
	assert.Equal(t, []float64{2}, inner.ratios)

	data, err := LoadCapture(path)
	require.NoError(t, err)
	require.Len(t, data.Frames, 3, "no camera before mount")
	assert.Equal(t, 1, data.Frames[0].F)
	assert.Equal(t, 2.0, data.Frames[0].Aspect)
	assert.Equal(t, "Supported", data.Frames[0].VR)
}

func TestScene_PassesTransitionThrough(t *testing.T) {
	handle := inspect.NewCameraHandle()
	next := &mockScene{handle: handle}
	inner := &mockScene{handle: handle, next: next}
	s := Wrap(inner, handle, "demo", filepath.Join(t.TempDir(), "out.json"))

	got, err := s.Update(1.0 / 60)
	require.NoError(t, err)
	assert.Same(t, next, got)
}
