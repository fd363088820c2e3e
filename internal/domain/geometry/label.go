package geometry

import (
	"image"
	"image/color"
	"unicode"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Label bitmap size in pixels
const (
	LabelWidth  = 512
	LabelHeight = 256
)

// labelScale upsizes the 13px bitmap face to roughly a 48px headline.
const labelScale = 4

// FoldLabel strips combining marks so accented letters fall back to their
// base letter, which the ASCII bitmap face can draw.
func FoldLabel(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// RasterizeLabel draws text, bold and centered, onto a transparent
// LabelWidth×LabelHeight bitmap. Text wider than the bitmap is scaled down
// to fit.
func RasterizeLabel(text string, c color.Color) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, LabelWidth, LabelHeight))
	text = FoldLabel(text)
	if text == "" {
		return canvas
	}

	face := basicfont.Face7x13
	metrics := face.Metrics()
	d := &font.Drawer{Face: face, Src: image.NewUniform(c)}

	// one extra column for the bold pass
	w := d.MeasureString(text).Ceil() + 1
	h := metrics.Height.Ceil()
	line := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = line
	for _, dx := range []int{0, 1} {
		d.Dot = fixed.P(dx, metrics.Ascent.Ceil())
		d.DrawString(text)
	}

	scale := float64(labelScale)
	if float64(w)*scale > LabelWidth {
		scale = float64(LabelWidth) / float64(w)
	}
	dw, dh := int(float64(w)*scale), int(float64(h)*scale)
	x0, y0 := (LabelWidth-dw)/2, (LabelHeight-dh)/2
	xdraw.NearestNeighbor.Scale(canvas, image.Rect(x0, y0, x0+dw, y0+dh), line, line.Bounds(), xdraw.Over, nil)

	return canvas
}
