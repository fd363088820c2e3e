package entity

import "image/color"

// LightKind identifies the type of a light
type LightKind int

const (
	LightHemisphere LightKind = iota
	LightDirectional
	LightPoint
)

// String returns the string representation of the light kind
func (k LightKind) String() string {
	switch k {
	case LightHemisphere:
		return "Hemisphere"
	case LightDirectional:
		return "Directional"
	case LightPoint:
		return "Point"
	default:
		return "Unknown"
	}
}

// Light is a scene light. GroundColor is only used by hemisphere lights.
type Light struct {
	Kind        LightKind
	Color       color.RGBA
	GroundColor color.RGBA
	Intensity   float64
	Position    Vec3
}

// NewHemisphereLight creates an ambient sky/ground light.
func NewHemisphereLight(sky, ground color.RGBA, intensity float64) *Light {
	return &Light{Kind: LightHemisphere, Color: sky, GroundColor: ground, Intensity: intensity, Position: Vec3{0, 1, 0}}
}

// NewDirectionalLight creates a light shining from position toward the origin.
func NewDirectionalLight(c color.RGBA, intensity float64, position Vec3) *Light {
	return &Light{Kind: LightDirectional, Color: c, Intensity: intensity, Position: position}
}

// NewPointLight creates an omnidirectional light.
func NewPointLight(c color.RGBA, intensity float64, position Vec3) *Light {
	return &Light{Kind: LightPoint, Color: c, Intensity: intensity, Position: position}
}
