package entity

import "math"

// PerspectiveCamera looks down its local -Z axis.
type PerspectiveCamera struct {
	FOV      float64 // vertical field of view in degrees
	Aspect   float64
	Near     float64
	Far      float64
	Position Vec3
	Rotation Euler

	focal float64
}

// NewPerspectiveCamera creates a camera and computes its projection.
func NewPerspectiveCamera(fov, aspect, near, far float64) *PerspectiveCamera {
	c := &PerspectiveCamera{FOV: fov, Aspect: aspect, Near: near, Far: far}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix must be called after changing FOV or Aspect.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	c.focal = 1 / math.Tan(c.FOV*math.Pi/360)
}

// Focal returns cot(fov/2) as of the last projection update.
func (c *PerspectiveCamera) Focal() float64 { return c.focal }

// WorldMatrix returns the camera's pose in world space.
func (c *PerspectiveCamera) WorldMatrix() Mat4 {
	return Translation(c.Position).Mul(Rotation(c.Rotation))
}

// ViewMatrix maps world space into camera space.
func (c *PerspectiveCamera) ViewMatrix() Mat4 {
	return c.WorldMatrix().RigidInverse()
}

// Project maps a camera-space point to normalized device coordinates.
// ok is false when the point lies in front of the near plane or beyond far.
func (c *PerspectiveCamera) Project(p Vec3) (x, y float64, ok bool) {
	depth := -p.Z
	if depth < c.Near || depth > c.Far {
		return 0, 0, false
	}
	x = c.focal / c.Aspect * p.X / depth
	y = c.focal * p.Y / depth
	return x, y, true
}
