package capture

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/xrscene/internal/application/inspect"
	"github.com/younwookim/xrscene/internal/application/state"
)

// Recorder accumulates camera poses
type Recorder struct {
	data      CaptureData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for the named scene
func NewRecorder(sceneName string) *Recorder {
	return &Recorder{
		data: CaptureData{
			Version:   "1.0",
			Scene:     sceneName,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FramePose, 0, 3600), // ~1 minute at 60 TPS
		},
		recording: true,
	}
}

// RecordFrame records a single frame's pose. The frame counter advances
// even when ok is false so gaps stay visible.
func (r *Recorder) RecordFrame(pose inspect.Pose, ok bool, st state.SessionState) {
	if !r.recording {
		return
	}
	defer func() { r.frame++ }()
	if !ok {
		return
	}

	r.data.Frames = append(r.data.Frames, FramePose{
		F:      r.frame,
		P:      [3]float64{pose.Position.X, pose.Position.Y, pose.Position.Z},
		R:      [3]float64{pose.Rotation.X, pose.Rotation.Y, pose.Rotation.Z},
		FOV:    pose.FOV,
		Aspect: pose.Aspect,
		VR:     st.String(),
	})
}

// Write encodes the capture as indented JSON
func (r *Recorder) Write(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode capture: %w", err)
	}
	return nil
}

// Save writes the capture to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.Write(file)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the capture data
func (r *Recorder) Data() CaptureData {
	return r.data
}

// LoadCapture loads capture data from a file
func LoadCapture(filename string) (*CaptureData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data CaptureData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode capture: %w", err)
	}
	return &data, nil
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("capture_%s.json", time.Now().Format("20060102_150405"))
}
