package xrview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/xrscene/internal/application/state"
)

// Button size in device-independent pixels, anchored bottom center
const (
	buttonWidth  = 160
	buttonHeight = 40
	buttonMargin = 20
)

// Button labels
const (
	LabelEnterVR     = "Enter VR"
	LabelExitVR      = "Exit VR"
	LabelUnavailable = "VR Not Available"
)

var (
	colorButtonReady       = color.RGBA{37, 99, 235, 230}
	colorButtonUnavailable = color.RGBA{220, 38, 38, 230}
	colorButtonBorder      = color.RGBA{255, 255, 255, 200}
)

// buttonRect places the button in a w×h drawing buffer
func buttonRect(w, h int, pixelRatio float64) image.Rectangle {
	bw := int(buttonWidth * pixelRatio)
	bh := int(buttonHeight * pixelRatio)
	margin := int(buttonMargin * pixelRatio)
	x := (w - bw) / 2
	y := h - margin - bh
	return image.Rect(x, y, x+bw, y+bh)
}

// ButtonLabel returns the VR button text for the current state
func (s *XRScene) ButtonLabel() string {
	switch s.state {
	case state.StatePresenting:
		return LabelExitVR
	case state.StateSupported:
		return LabelEnterVR
	default:
		return LabelUnavailable
	}
}

func (s *XRScene) buttonColor() color.RGBA {
	switch s.state {
	case state.StatePresenting, state.StateSupported:
		return colorButtonReady
	default:
		return colorButtonUnavailable
	}
}

func (s *XRScene) drawButton(screen *ebiten.Image) {
	r := s.ButtonBounds()
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())

	vector.DrawFilledRect(screen, x, y, w, h, s.buttonColor(), true)
	vector.StrokeRect(screen, x, y, w, h, float32(s.pixelRatio), colorButtonBorder, true)

	// debug font glyphs are 6x16
	label := s.ButtonLabel()
	tx := r.Min.X + (r.Dx()-len(label)*6)/2
	ty := r.Min.Y + (r.Dy()-16)/2
	ebitenutil.DebugPrintAt(screen, label, tx, ty)
}
