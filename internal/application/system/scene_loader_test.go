package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/xrscene/internal/application/component"
	"github.com/younwookim/xrscene/internal/domain/entity"
	"github.com/younwookim/xrscene/internal/domain/geometry"
	"github.com/younwookim/xrscene/internal/infrastructure/config"
)

func boolPtr(v bool) *bool { return &v }

func TestLoadComponents(t *testing.T) {
	t.Run("loads demo components in order", func(t *testing.T) {
		cfgs := []config.ComponentConfig{
			{Type: config.TypeCard, Position: &[3]float64{0, 1.6, -3}, Width: 2, Height: 1.5, Color: "#87CEEB", Text: "2D Card"},
			{Type: config.TypeRoom, Width: 12, Height: 8, Depth: 12, Color: "#00FF00", LineWidth: 1},
		}

		descs, err := LoadComponents(component.NewFactory(), cfgs)
		require.NoError(t, err)
		require.Len(t, descs, 2)

		assert.Equal(t, "card-1", descs[0].ID)
		assert.Equal(t, component.KindCard, descs[0].Kind)
		require.NotNil(t, descs[0].Placement.Position)
		assert.Equal(t, entity.V3(0, 1.6, -3), *descs[0].Placement.Position)
		assert.Nil(t, descs[0].Placement.Rotation)

		assert.Equal(t, "wireframe-room-2", descs[1].ID)
		assert.Equal(t, component.KindRoom, descs[1].Kind)

		card := descs[0].Build()
		assert.Equal(t, entity.V3(0, 1.6, -3), card.Position)
		assert.NotNil(t, card.Find(geometry.CardLabel))
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := LoadComponents(component.NewFactory(), []config.ComponentConfig{{Type: "sphere"}})
		assert.ErrorContains(t, err, `unknown type "sphere"`)
	})

	t.Run("bad color", func(t *testing.T) {
		_, err := LoadComponents(component.NewFactory(), []config.ComponentConfig{{Type: config.TypeCard, Color: "blue"}})
		assert.ErrorContains(t, err, "failed to load component 0")
	})
}

func TestLoadPlacement(t *testing.T) {
	p := LoadPlacement(config.ComponentConfig{
		Rotation: &[3]float64{0.1, 0.2, 0.3},
		Scale:    &[3]float64{2, 2, 2},
	})

	assert.Nil(t, p.Position)
	require.NotNil(t, p.Rotation)
	assert.Equal(t, entity.Euler{X: 0.1, Y: 0.2, Z: 0.3}, *p.Rotation)
	require.NotNil(t, p.Scale)
	assert.Equal(t, entity.V3(2, 2, 2), *p.Scale)
}

func TestCardProps(t *testing.T) {
	props, err := CardProps(config.ComponentConfig{Type: config.TypeCard})
	require.NoError(t, err)
	assert.Equal(t, geometry.CardProps{}, props, "zero config leaves builder defaults")

	props, err = CardProps(config.ComponentConfig{Color: "#f00", Text: "Hi"})
	require.NoError(t, err)
	assert.Equal(t, entity.Hex(0xff0000), props.Color)
	assert.Equal(t, "Hi", props.Text)
}

func TestRoomProps(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.ComponentConfig
		wantFaces geometry.Face
		wantStyle geometry.RoomStyle
		wantErr   string
	}{
		{"defaults", config.ComponentConfig{}, geometry.FaceAll, geometry.RoomGrid, ""},
		{"no floor", config.ComponentConfig{ShowFloor: boolPtr(false)}, geometry.FaceAll &^ geometry.FaceFloor, geometry.RoomGrid, ""},
		{"no ceiling", config.ComponentConfig{ShowCeiling: boolPtr(false)}, geometry.FaceAll &^ geometry.FaceCeiling, geometry.RoomGrid, ""},
		{"no walls", config.ComponentConfig{ShowWalls: boolPtr(false)}, geometry.FaceFloor | geometry.FaceCeiling, geometry.RoomGrid, ""},
		{"explicit true", config.ComponentConfig{ShowFloor: boolPtr(true)}, geometry.FaceAll, geometry.RoomGrid, ""},
		{"hidden walls", config.ComponentConfig{HiddenWalls: []string{"back", "left"}}, geometry.FaceAll &^ (geometry.FaceBack | geometry.FaceLeft), geometry.RoomGrid, ""},
		{"edges style", config.ComponentConfig{Style: "edges"}, geometry.FaceAll, geometry.RoomEdges, ""},
		{"unknown wall", config.ComponentConfig{HiddenWalls: []string{"roof"}}, 0, 0, `unknown wall "roof"`},
		{"unknown style", config.ComponentConfig{Style: "solid"}, 0, 0, `unknown room style "solid"`},
		{"negative spacing", config.ComponentConfig{GridSpacing: -1}, 0, 0, "grid spacing must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, err := RoomProps(tt.cfg)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFaces, props.Faces)
			assert.Equal(t, tt.wantStyle, props.Style)
		})
	}
}

func TestRoomProps_Dimensions(t *testing.T) {
	props, err := RoomProps(config.ComponentConfig{Width: 12, Height: 8, Depth: 12, Color: "#00FF00", LineWidth: 1, GridSpacing: 0.5})
	require.NoError(t, err)

	assert.Equal(t, 12.0, props.Width)
	assert.Equal(t, 8.0, props.Height)
	assert.Equal(t, 12.0, props.Depth)
	assert.Equal(t, 1.0, props.LineWidth)
	assert.Equal(t, 0.5, props.GridSpacing)
	assert.Equal(t, entity.Hex(0x00ff00), props.Color)

	defaults, err := RoomProps(config.ComponentConfig{})
	require.NoError(t, err)
	assert.Equal(t, geometry.DefaultRoomProps(), defaults)
}

func TestLoadBackground(t *testing.T) {
	bg, err := LoadBackground(config.SceneConfig{})
	require.NoError(t, err)
	assert.Equal(t, entity.Background{Color: entity.Black}, bg)

	bg, err = LoadBackground(config.SceneConfig{BackgroundColor: "#1f2937"})
	require.NoError(t, err)
	assert.Equal(t, entity.Hex(0x1f2937), bg.Color)

	bg, err = LoadBackground(config.SceneConfig{BackgroundColor: "transparent"})
	require.NoError(t, err)
	assert.True(t, bg.Transparent)

	_, err = LoadBackground(config.SceneConfig{BackgroundColor: "nope"})
	assert.ErrorContains(t, err, "failed to parse background")
}
