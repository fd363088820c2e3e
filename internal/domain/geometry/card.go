package geometry

import (
	"image/color"

	"github.com/younwookim/xrscene/internal/domain/entity"
)

// Card layout constants
const (
	DefaultCardWidth  = 1.0
	DefaultCardHeight = 0.6
	DefaultCardText   = "Card"

	// TextWidthRatio and TextHeightRatio size the label panel relative to the card.
	TextWidthRatio  = 0.8
	TextHeightRatio = 0.4

	// TextOffset lifts the label panel off the card face to avoid z-fighting.
	TextOffset = 0.01

	cardOpacity     = 0.9
	cardBorderWidth = 2
)

// Names of the card's child objects
const (
	CardPanel  = "panel"
	CardBorder = "border"
	CardLabel  = "label"
)

// CardProps configures a card. Zero values take the defaults.
type CardProps struct {
	Width  float64
	Height float64
	Color  color.RGBA
	Text   string
}

// withDefaults fills zero fields.
func (p CardProps) withDefaults() CardProps {
	if p.Width == 0 {
		p.Width = DefaultCardWidth
	}
	if p.Height == 0 {
		p.Height = DefaultCardHeight
	}
	if p.Color == (color.RGBA{}) {
		p.Color = entity.White
	}
	if p.Text == "" {
		p.Text = DefaultCardText
	}
	return p
}

// BuildCard builds a translucent panel with a black outline and a text label
// floating just in front of it.
func BuildCard(props CardProps) *entity.Object {
	p := props.withDefaults()
	group := entity.NewGroup("card")

	panel := Plane(p.Width, p.Height, 1, 1, entity.MeshMaterial{
		Color:       p.Color,
		Opacity:     cardOpacity,
		Transparent: true,
		DoubleSide:  true,
	})
	group.Add(entity.NewMeshObject(CardPanel, panel))

	group.Add(entity.NewLinesObject(CardBorder, &entity.Lines{
		Segments: Edges(p.Width, p.Height),
		Material: entity.LineMaterial{Color: entity.Black, Width: cardBorderWidth, Opacity: 1},
	}))

	label := Plane(p.Width*TextWidthRatio, p.Height*TextHeightRatio, 1, 1, entity.MeshMaterial{
		Color:       entity.White,
		Opacity:     1,
		Transparent: true,
		DoubleSide:  true,
		Texture:     RasterizeLabel(p.Text, entity.White),
	})
	labelObj := entity.NewMeshObject(CardLabel, label)
	labelObj.Position.Z = TextOffset
	group.Add(labelObj)

	return group
}
