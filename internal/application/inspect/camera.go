// Package inspect exposes the active camera to tools outside the scene.
package inspect

import (
	"sync/atomic"

	"github.com/younwookim/xrscene/internal/domain/entity"
)

// CameraHandle holds the camera of the most recently mounted scene.
// The last writer wins. Readers must treat the camera as read-only.
type CameraHandle struct {
	cam atomic.Pointer[entity.PerspectiveCamera]
}

// NewCameraHandle creates an empty handle
func NewCameraHandle() *CameraHandle {
	return &CameraHandle{}
}

// Set publishes cam. Nil clears the handle.
func (h *CameraHandle) Set(cam *entity.PerspectiveCamera) {
	h.cam.Store(cam)
}

// Clear empties the handle only if it still holds cam, so a scene that
// unmounts late does not clear a newer scene's camera.
func (h *CameraHandle) Clear(cam *entity.PerspectiveCamera) {
	h.cam.CompareAndSwap(cam, nil)
}

// Camera returns the active camera, or nil
func (h *CameraHandle) Camera() *entity.PerspectiveCamera {
	return h.cam.Load()
}

// Pose is a snapshot of a camera
type Pose struct {
	Position entity.Vec3
	Rotation entity.Euler
	FOV      float64
	Aspect   float64
}

// Pose returns a snapshot of the active camera. ok is false when no camera
// is published.
func (h *CameraHandle) Pose() (Pose, bool) {
	cam := h.Camera()
	if cam == nil {
		return Pose{}, false
	}
	return Pose{Position: cam.Position, Rotation: cam.Rotation, FOV: cam.FOV, Aspect: cam.Aspect}, true
}
