// Package game provides the main loop manager that mounts scenes and
// forwards window changes to them.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/xrscene/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	width   int
	height  int
	dt      float64

	// scaleFactor returns the device pixel ratio of the window's monitor
	scaleFactor func() float64
	ratio       float64
}

// New creates a new Game with the given initial scene and viewport size in
// device-independent pixels. The initial scene's OnEnter is called
// immediately. The pixel ratio starts at 1 until SetScaleFactor.
func New(initialScene scene.Scene, width, height int) *Game {
	g := &Game{
		current:     initialScene,
		width:       width,
		height:      height,
		dt:          1.0 / 60.0,
		scaleFactor: func() float64 { return 1 },
		ratio:       1,
	}
	g.resize(g.current)
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.resize(g.current)
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout forwards size changes to the scene and returns the drawing buffer
// size, which is the window size times the device pixel ratio.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.resize(g.current)
	}
	g.updateRatio()
	return int(float64(g.width) * g.ratio), int(float64(g.height) * g.ratio)
}

// updateRatio reads the device pixel ratio and forwards a change to the
// scene.
func (g *Game) updateRatio() {
	ratio := g.scaleFactor()
	if ratio <= 0 {
		ratio = 1
	}
	if ratio == g.ratio {
		return
	}
	g.ratio = ratio
	if p, ok := g.current.(scene.PixelRatioSetter); ok {
		p.SetPixelRatio(ratio)
	}
}

func (g *Game) resize(s scene.Scene) {
	if r, ok := s.(scene.Resizer); ok {
		r.Resize(g.width, g.height)
	}
	if p, ok := s.(scene.PixelRatioSetter); ok {
		p.SetPixelRatio(g.ratio)
	}
}

// Close unmounts the current scene. Call it after the loop exits.
func (g *Game) Close() {
	g.current.OnExit()
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetScaleFactor sets the source of the device pixel ratio, typically
// ebiten.Monitor().DeviceScaleFactor.
func (g *Game) SetScaleFactor(fn func() float64) {
	if fn != nil {
		g.scaleFactor = fn
		g.updateRatio()
	}
}

// Current returns the mounted scene
func (g *Game) Current() scene.Scene {
	return g.current
}
