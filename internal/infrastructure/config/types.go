package config

// AppConfig is the root config for scenes/<name>.json
type AppConfig struct {
	Display DisplayConfig `json:"display"`
	Scene   SceneConfig   `json:"scene"`
	XR      XRConfig      `json:"xr"`
}

type DisplayConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	TPS    int    `json:"tps"`
}

// SceneConfig describes what the scene shows
type SceneConfig struct {
	VREnabled       *bool             `json:"vrEnabled"`
	BackgroundColor string            `json:"backgroundColor"` // "#rrggbb" or "transparent"
	Components      []ComponentConfig `json:"components"`
}

// VR returns whether VR is enabled, defaulting to true
func (s SceneConfig) VR() bool {
	return s.VREnabled == nil || *s.VREnabled
}

// ComponentConfig is one card or room. Zero values take the builder
// defaults.
type ComponentConfig struct {
	Type     string      `json:"type"` // "card" or "room"
	Position *[3]float64 `json:"position,omitempty"`
	Rotation *[3]float64 `json:"rotation,omitempty"` // radians, XYZ order
	Scale    *[3]float64 `json:"scale,omitempty"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
	Color  string  `json:"color"`

	// card
	Text string `json:"text"`

	// room
	LineWidth   float64  `json:"lineWidth"`
	GridSpacing float64  `json:"gridSpacing"`
	ShowFloor   *bool    `json:"showFloor"`
	ShowCeiling *bool    `json:"showCeiling"`
	ShowWalls   *bool    `json:"showWalls"`
	HiddenWalls []string `json:"hiddenWalls"` // "back", "front", "left", "right"
	Style       string   `json:"style"`       // "grid" or "edges"
}

// XRConfig selects and tunes the XR host
type XRConfig struct {
	Host           string  `json:"host"` // "simulator" or "none"
	Supported      bool    `json:"supported"`
	ProbeDelayMs   int     `json:"probeDelayMs"`
	RejectSessions bool    `json:"rejectSessions"`
	ReferenceSpace string  `json:"referenceSpace"`
	IPD            float64 `json:"ipd"`
}

// Component types
const (
	TypeCard = "card"
	TypeRoom = "room"
)

// XR hosts
const (
	HostSimulator = "simulator"
	HostNone      = "none"
)
