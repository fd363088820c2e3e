package entity

import (
	"image"
	"image/color"
)

// Object is a node in the scene graph. A node carries at most one of
// Mesh, Lines or Light; nodes with none of them are plain groups.
type Object struct {
	Name     string
	Position Vec3
	Rotation Euler
	Scale    Vec3
	Visible  bool
	Children []*Object

	Mesh  *Mesh
	Lines *Lines
	Light *Light
}

// NewGroup creates an empty, visible node with identity transform.
func NewGroup(name string) *Object {
	return &Object{Name: name, Scale: One, Visible: true}
}

// NewMeshObject wraps a mesh in a node.
func NewMeshObject(name string, mesh *Mesh) *Object {
	o := NewGroup(name)
	o.Mesh = mesh
	return o
}

// NewLinesObject wraps line segments in a node.
func NewLinesObject(name string, lines *Lines) *Object {
	o := NewGroup(name)
	o.Lines = lines
	return o
}

// NewLightObject wraps a light in a node.
func NewLightObject(name string, light *Light) *Object {
	o := NewGroup(name)
	o.Light = light
	o.Position = light.Position
	return o
}

// Add appends children in order.
func (o *Object) Add(children ...*Object) {
	o.Children = append(o.Children, children...)
}

// Matrix returns the local transform T·R·S.
func (o *Object) Matrix() Mat4 {
	return Compose(o.Position, o.Rotation, o.Scale)
}

// Traverse visits visible nodes depth-first in insertion order with
// their world matrix. Hidden nodes prune their subtree.
func (o *Object) Traverse(fn func(obj *Object, world Mat4)) {
	o.traverse(Identity(), fn)
}

func (o *Object) traverse(parent Mat4, fn func(obj *Object, world Mat4)) {
	if !o.Visible {
		return
	}
	world := parent.Mul(o.Matrix())
	fn(o, world)
	for _, c := range o.Children {
		c.traverse(world, fn)
	}
}

// Find returns the first direct or nested child with the given name.
func (o *Object) Find(name string) *Object {
	for _, c := range o.Children {
		if c.Name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Positions []Vec3
	UVs       [][2]float64
	Indices   []int
	Material  MeshMaterial
}

// Triangles returns the number of triangles in the mesh.
func (m *Mesh) Triangles() int { return len(m.Indices) / 3 }

// MeshMaterial is an unlit material. Lights do not affect it.
type MeshMaterial struct {
	Color       color.RGBA
	Opacity     float64
	Transparent bool
	DoubleSide  bool
	Texture     image.Image
}

// Segment is a single line segment.
type Segment struct {
	A, B Vec3
}

// Lines is a set of independent line segments.
type Lines struct {
	Segments []Segment
	Material LineMaterial
}

// LineMaterial is an unlit line material.
type LineMaterial struct {
	Color       color.RGBA
	Width       float64
	Opacity     float64
	Transparent bool
}
