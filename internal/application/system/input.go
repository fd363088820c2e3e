package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem reads the keyboard and mouse and maps them to VR actions
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	MouseX     int
	MouseY     int
	MouseClick bool
	// V toggles VR, Escape leaves it
	TogglePressed bool
	ExitPressed   bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		MouseX:        mx,
		MouseY:        my,
		MouseClick:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		TogglePressed: inpututil.IsKeyJustPressed(ebiten.KeyV),
		ExitPressed:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// VRAction is what the user asked the session manager to do this frame
type VRAction int

const (
	ActionNone VRAction = iota
	ActionEnter
	ActionExit
)

// String returns the string representation of the action
func (a VRAction) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionEnter:
		return "Enter"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Action maps input to a VR action. button is the on-screen VR button in
// cursor coordinates; an empty rectangle means no button is shown.
func (s *InputSystem) Action(input InputState, button image.Rectangle, presenting bool) VRAction {
	clicked := input.MouseClick && !button.Empty() &&
		image.Pt(input.MouseX, input.MouseY).In(button)

	switch {
	case presenting && (input.ExitPressed || input.TogglePressed || clicked):
		return ActionExit
	case !presenting && (input.TogglePressed || clicked):
		return ActionEnter
	default:
		return ActionNone
	}
}
