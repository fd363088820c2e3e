// Package scene defines the Scene interface for screens driven by the game loop.
//
// Each screen (here, the XR viewer) implements the Scene interface to handle
// its own update logic and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a screen mounted in the window.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the loop.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen. Called once per display refresh.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene (mount).
	OnEnter()

	// OnExit is called when leaving this scene (unmount).
	// Use this for cleanup and resource release.
	OnExit()
}

// Resizer is implemented by scenes that track the window size.
type Resizer interface {
	// Resize is called with the new viewport size in device-independent
	// pixels, once per change.
	Resize(width, height int)
}

// PixelRatioSetter is implemented by scenes that follow the device pixel
// ratio of the window's monitor.
type PixelRatioSetter interface {
	// SetPixelRatio is called with the new ratio, once per change.
	SetPixelRatio(ratio float64)
}
