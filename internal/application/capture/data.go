// Package capture records the active camera pose once per update so a
// session can be inspected after the window closes.
package capture

// FramePose records the camera for a single frame
type FramePose struct {
	F      int        `json:"f"`            // Frame number
	P      [3]float64 `json:"p"`            // Position
	R      [3]float64 `json:"r"`            // Rotation (radians, XYZ)
	FOV    float64    `json:"fov"`          // Vertical field of view (degrees)
	Aspect float64    `json:"aspect"`       // Width / height
	VR     string     `json:"vr,omitempty"` // Session state
}

// CaptureData contains a whole capture
type CaptureData struct {
	Version   string      `json:"version"`
	Scene     string      `json:"scene"`
	StartTime string      `json:"startTime"`
	Frames    []FramePose `json:"frames"`
}
