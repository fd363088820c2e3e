package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/xrscene/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

// resizingScene also records Resize calls
type resizingScene struct {
	mockScene
	sizes [][2]int
}

func (r *resizingScene) Resize(width, height int) {
	r.sizes = append(r.sizes, [2]int{width, height})
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Same(t, mockInitial, g.Current())
}

func TestNew_SizesSceneBeforeMount(t *testing.T) {
	s := &resizingScene{}
	New(s, 320, 240)

	assert.Equal(t, [][2]int{{320, 240}}, s.sizes)
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 320, 240)

	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	tests := []struct {
		name       string
		ratio      float64
		outW, outH int
		wantW      int
		wantH      int
	}{
		{"same size", 1, 320, 240, 320, 240},
		{"window grew", 1, 640, 480, 640, 480},
		{"hidpi", 2, 640, 480, 1280, 960},
		{"bad ratio falls back to 1", 0, 640, 480, 640, 480},
		{"minimized keeps last size", 1, 0, 0, 320, 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&mockScene{}, 320, 240)
			g.SetScaleFactor(func() float64 { return tt.ratio })

			w, h := g.Layout(tt.outW, tt.outH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestGame_LayoutForwardsChangesOnce(t *testing.T) {
	s := &resizingScene{}
	g := New(s, 320, 240)

	g.Layout(320, 240)
	g.Layout(800, 600)
	g.Layout(800, 600)
	g.Layout(1024, 768)

	assert.Equal(t, [][2]int{{320, 240}, {800, 600}, {1024, 768}}, s.sizes)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &resizingScene{}

	scene1.nextScene = scene2

	g := New(scene1, 320, 240)
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")
	assert.Equal(t, [][2]int{{320, 240}}, scene2.sizes, "scene2 sized before mount")

	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil}

	g := New(scene1, 320, 240)

	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}

	g := New(scene1, 320, 240)

	err := g.Update()
	assert.Error(t, err, "Error should propagate from scene")
}

func TestGame_Close(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240)

	g.Close()
	assert.Equal(t, 1, s.onExitCalled)
}

// scalingScene records SetPixelRatio calls
type scalingScene struct {
	mockScene
	ratios []float64
}

func (s *scalingScene) SetPixelRatio(ratio float64) {
	s.ratios = append(s.ratios, ratio)
}

func TestGame_ForwardsPixelRatioChanges(t *testing.T) {
	s := &scalingScene{}
	g := New(s, 320, 240)
	assert.Equal(t, []float64{1}, s.ratios, "starts at 1")

	ratio := 2.0
	g.SetScaleFactor(func() float64 { return ratio })
	assert.Equal(t, []float64{1, 2}, s.ratios)

	g.Layout(320, 240)
	assert.Equal(t, []float64{1, 2}, s.ratios, "unchanged ratio not forwarded")

	// window moved to a monitor with a different scale
	ratio = 1.5
	w, h := g.Layout(320, 240)
	assert.Equal(t, 480, w)
	assert.Equal(t, 360, h)
	assert.Equal(t, []float64{1, 2, 1.5}, s.ratios)

	next := &scalingScene{}
	s.nextScene = next
	assert.NoError(t, g.Update())
	assert.Equal(t, []float64{1.5}, next.ratios, "next scene gets the current ratio")
}
