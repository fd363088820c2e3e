package geometry

import (
	"image/color"
	"math"

	"github.com/younwookim/xrscene/internal/domain/entity"
)

// Room defaults
const (
	DefaultRoomWidth   = 10.0
	DefaultRoomHeight  = 8.0
	DefaultRoomDepth   = 10.0
	DefaultLineWidth   = 2.0
	DefaultGridSpacing = 1.0

	gridOpacity     = 0.7
	edgesOpacity    = 0.8
	helperOpacity   = 0.3
	helperDivisions = 10
	helperLineWidth = 1.0
)

// Names of the edges-style room's child objects
const (
	RoomOutline = "outline"
	RoomHelper  = "helper"
)

// Face is a bitmask of room surfaces.
type Face uint8

const (
	FaceFloor Face = 1 << iota
	FaceCeiling
	FaceFront
	FaceBack
	FaceLeft
	FaceRight

	FaceWalls = FaceFront | FaceBack | FaceLeft | FaceRight
	FaceAll   = FaceFloor | FaceCeiling | FaceWalls
)

// Name returns the object name of a single face.
func (f Face) Name() string {
	switch f {
	case FaceFloor:
		return "floor"
	case FaceCeiling:
		return "ceiling"
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	default:
		return "unknown"
	}
}

// RoomStyle selects how the room is drawn.
type RoomStyle int

const (
	// RoomGrid draws a wireframe grid on every visible face.
	RoomGrid RoomStyle = iota
	// RoomEdges draws the box outline plus a floor grid helper.
	RoomEdges
)

// RoomProps configures a wireframe room. Use DefaultRoomProps as a base;
// a zero Faces mask hides every face.
type RoomProps struct {
	Width       float64
	Height      float64
	Depth       float64
	Color       color.RGBA
	LineWidth   float64
	GridSpacing float64
	Faces       Face
	Style       RoomStyle
}

// DefaultRoomProps returns a 10×8×10 white grid room with every face shown.
func DefaultRoomProps() RoomProps {
	return RoomProps{
		Width:       DefaultRoomWidth,
		Height:      DefaultRoomHeight,
		Depth:       DefaultRoomDepth,
		Color:       entity.White,
		LineWidth:   DefaultLineWidth,
		GridSpacing: DefaultGridSpacing,
		Faces:       FaceAll,
		Style:       RoomGrid,
	}
}

// Segments returns the per-axis cell count for a dimension. A spacing larger
// than the dimension yields a single cell rather than an empty grid.
func Segments(dimension, spacing float64) int {
	return max(int(math.Floor(dimension/spacing)), 1)
}

// BuildRoom builds the room with its floor at y=0, centered on X and Z.
func BuildRoom(p RoomProps) *entity.Object {
	if p.Style == RoomEdges {
		return buildEdgesRoom(p)
	}

	group := entity.NewGroup("wireframe-room")
	mat := entity.LineMaterial{Color: p.Color, Width: p.LineWidth, Opacity: gridOpacity, Transparent: true}
	w, h, d, s := p.Width, p.Height, p.Depth, p.GridSpacing

	faces := []struct {
		face     Face
		u, v     float64
		rotation entity.Euler
		position entity.Vec3
	}{
		{FaceFloor, w, d, entity.Euler{X: -math.Pi / 2}, entity.V3(0, 0, 0)},
		{FaceCeiling, w, d, entity.Euler{X: math.Pi / 2}, entity.V3(0, h, 0)},
		{FaceFront, w, h, entity.Euler{}, entity.V3(0, h/2, -d/2)},
		{FaceBack, w, h, entity.Euler{Y: math.Pi}, entity.V3(0, h/2, d/2)},
		{FaceLeft, d, h, entity.Euler{Y: math.Pi / 2}, entity.V3(-w/2, h/2, 0)},
		{FaceRight, d, h, entity.Euler{Y: -math.Pi / 2}, entity.V3(w/2, h/2, 0)},
	}

	for _, f := range faces {
		if p.Faces&f.face == 0 {
			continue
		}
		grid := entity.NewLinesObject(f.face.Name(), &entity.Lines{
			Segments: WireframeGrid(f.u, f.v, Segments(f.u, s), Segments(f.v, s)),
			Material: mat,
		})
		grid.Rotation = f.rotation
		grid.Position = f.position
		group.Add(grid)
	}

	return group
}

func buildEdgesRoom(p RoomProps) *entity.Object {
	group := entity.NewGroup("wireframe-room")

	box := entity.NewLinesObject(RoomOutline, &entity.Lines{
		Segments: BoxEdges(p.Width, p.Height, p.Depth),
		Material: entity.LineMaterial{Color: p.Color, Width: p.LineWidth, Opacity: edgesOpacity, Transparent: true},
	})
	box.Position = entity.V3(0, p.Height/2, 0)
	group.Add(box)

	group.Add(entity.NewLinesObject(RoomHelper, &entity.Lines{
		Segments: GridHelper(math.Max(p.Width, p.Depth), helperDivisions),
		Material: entity.LineMaterial{Color: p.Color, Width: helperLineWidth, Opacity: helperOpacity, Transparent: true},
	}))

	return group
}
