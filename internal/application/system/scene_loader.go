package system

import (
	"fmt"

	"github.com/younwookim/xrscene/internal/application/component"
	"github.com/younwookim/xrscene/internal/domain/entity"
	"github.com/younwookim/xrscene/internal/domain/geometry"
	"github.com/younwookim/xrscene/internal/infrastructure/config"
)

// LoadComponents converts component configs into descriptors, keeping
// their order
func LoadComponents(f *component.Factory, cfgs []config.ComponentConfig) ([]component.Descriptor, error) {
	descs := make([]component.Descriptor, 0, len(cfgs))
	for i, c := range cfgs {
		var d component.Descriptor
		switch c.Type {
		case config.TypeCard:
			props, err := CardProps(c)
			if err != nil {
				return nil, fmt.Errorf("failed to load component %d: %w", i, err)
			}
			d = f.Card(props, LoadPlacement(c))
		case config.TypeRoom:
			props, err := RoomProps(c)
			if err != nil {
				return nil, fmt.Errorf("failed to load component %d: %w", i, err)
			}
			d = f.Room(props, LoadPlacement(c))
		default:
			return nil, fmt.Errorf("failed to load component %d: unknown type %q", i, c.Type)
		}
		descs = append(descs, d)
	}
	return descs, nil
}

// LoadBackground parses the scene background, black when unset
func LoadBackground(cfg config.SceneConfig) (entity.Background, error) {
	if cfg.BackgroundColor == "" {
		return entity.Background{Color: entity.Black}, nil
	}
	bg, err := entity.ParseBackground(cfg.BackgroundColor)
	if err != nil {
		return entity.Background{}, fmt.Errorf("failed to parse background: %w", err)
	}
	return bg, nil
}

// LoadPlacement converts the optional transform of a component
func LoadPlacement(c config.ComponentConfig) component.Placement {
	var p component.Placement
	if c.Position != nil {
		v := entity.V3(c.Position[0], c.Position[1], c.Position[2])
		p.Position = &v
	}
	if c.Rotation != nil {
		e := entity.Euler{X: c.Rotation[0], Y: c.Rotation[1], Z: c.Rotation[2]}
		p.Rotation = &e
	}
	if c.Scale != nil {
		v := entity.V3(c.Scale[0], c.Scale[1], c.Scale[2])
		p.Scale = &v
	}
	return p
}

// CardProps converts a card config. Zero fields take the card defaults.
func CardProps(c config.ComponentConfig) (geometry.CardProps, error) {
	props := geometry.CardProps{
		Width:  c.Width,
		Height: c.Height,
		Text:   c.Text,
	}
	if c.Color != "" {
		col, err := entity.ParseColor(c.Color)
		if err != nil {
			return geometry.CardProps{}, err
		}
		props.Color = col
	}
	return props, nil
}

// RoomProps converts a room config on top of geometry.DefaultRoomProps
func RoomProps(c config.ComponentConfig) (geometry.RoomProps, error) {
	props := geometry.DefaultRoomProps()
	if c.Width > 0 {
		props.Width = c.Width
	}
	if c.Height > 0 {
		props.Height = c.Height
	}
	if c.Depth > 0 {
		props.Depth = c.Depth
	}
	if c.LineWidth > 0 {
		props.LineWidth = c.LineWidth
	}
	if c.GridSpacing < 0 {
		return geometry.RoomProps{}, fmt.Errorf("grid spacing must be positive, got %v", c.GridSpacing)
	}
	if c.GridSpacing > 0 {
		props.GridSpacing = c.GridSpacing
	}
	if c.Color != "" {
		col, err := entity.ParseColor(c.Color)
		if err != nil {
			return geometry.RoomProps{}, err
		}
		props.Color = col
	}

	faces, err := roomFaces(c)
	if err != nil {
		return geometry.RoomProps{}, err
	}
	props.Faces = faces

	switch c.Style {
	case "", "grid":
		props.Style = geometry.RoomGrid
	case "edges":
		props.Style = geometry.RoomEdges
	default:
		return geometry.RoomProps{}, fmt.Errorf("unknown room style %q", c.Style)
	}
	return props, nil
}

var wallsByName = map[string]geometry.Face{
	"front": geometry.FaceFront,
	"back":  geometry.FaceBack,
	"left":  geometry.FaceLeft,
	"right": geometry.FaceRight,
}

func roomFaces(c config.ComponentConfig) (geometry.Face, error) {
	faces := geometry.FaceAll
	if c.ShowFloor != nil && !*c.ShowFloor {
		faces &^= geometry.FaceFloor
	}
	if c.ShowCeiling != nil && !*c.ShowCeiling {
		faces &^= geometry.FaceCeiling
	}
	if c.ShowWalls != nil && !*c.ShowWalls {
		faces &^= geometry.FaceWalls
	}
	for _, name := range c.HiddenWalls {
		wall, ok := wallsByName[name]
		if !ok {
			return 0, fmt.Errorf("unknown wall %q", name)
		}
		faces &^= wall
	}
	return faces, nil
}
