package render

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/xrscene/internal/domain/entity"
)

// Viewport is a pixel rectangle of the drawing buffer
type Viewport struct {
	X, Y, W, H float64
}

// toScreen maps normalized device coordinates into the viewport (y down).
func (vp Viewport) toScreen(nx, ny float64) (float32, float32) {
	return float32(vp.X + (nx+1)/2*vp.W), float32(vp.Y + (1-ny)/2*vp.H)
}

// primitive is a projected line or triangle ready to be drawn.
type primitive struct {
	depth float64

	// lines
	isLine bool
	x0, y0 float32
	x1, y1 float32
	width  float32

	// triangles
	verts   [3]ebiten.Vertex
	texture image.Image

	color color.NRGBA
}

// project flattens the visible scene into primitives sorted back to front.
func project(root *entity.Object, cam *entity.PerspectiveCamera, vp Viewport, lineScale float64) []primitive {
	view := cam.ViewMatrix()
	var prims []primitive

	root.Traverse(func(obj *entity.Object, world entity.Mat4) {
		mv := view.Mul(world)
		switch {
		case obj.Lines != nil:
			prims = appendLines(prims, obj.Lines, mv, cam, vp, lineScale)
		case obj.Mesh != nil:
			prims = appendMesh(prims, obj.Mesh, mv, cam, vp)
		}
	})

	sort.SliceStable(prims, func(i, j int) bool { return prims[i].depth > prims[j].depth })
	return prims
}

func appendLines(prims []primitive, l *entity.Lines, mv entity.Mat4, cam *entity.PerspectiveCamera, vp Viewport, lineScale float64) []primitive {
	c := withOpacity(l.Material.Color, l.Material.Opacity)
	width := float32(max(l.Material.Width, 1) * lineScale)

	for _, s := range l.Segments {
		a, b, ok := clipNear(mv.MulPoint(s.A), mv.MulPoint(s.B), cam.Near)
		if !ok {
			continue
		}
		ax, ay, okA := cam.Project(a)
		bx, by, okB := cam.Project(b)
		if !okA || !okB {
			continue
		}
		p := primitive{isLine: true, depth: -(a.Z + b.Z) / 2, width: width, color: c}
		p.x0, p.y0 = vp.toScreen(ax, ay)
		p.x1, p.y1 = vp.toScreen(bx, by)
		prims = append(prims, p)
	}
	return prims
}

func appendMesh(prims []primitive, m *entity.Mesh, mv entity.Mat4, cam *entity.PerspectiveCamera, vp Viewport) []primitive {
	c := withOpacity(m.Material.Color, m.Material.Opacity)
	var tw, th float64
	if m.Material.Texture != nil {
		b := m.Material.Texture.Bounds()
		tw, th = float64(b.Dx()), float64(b.Dy())
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		var tri [3]clipVertex
		for k := range tri {
			idx := m.Indices[i+k]
			tri[k].pos = mv.MulPoint(m.Positions[idx])
			if idx < len(m.UVs) {
				tri[k].uv = m.UVs[idx]
			}
		}

		// a clipped triangle is a convex polygon; fan it out
		poly := clipTriangleNear(tri, cam.Near)
		for j := 1; j+1 < len(poly); j++ {
			p, ok := projectTriangle([3]clipVertex{poly[0], poly[j], poly[j+1]}, m.Material, c, tw, th, cam, vp)
			if ok {
				prims = append(prims, p)
			}
		}
	}
	return prims
}

// clipVertex is a camera-space vertex with its texture coordinate.
type clipVertex struct {
	pos entity.Vec3
	uv  [2]float64
}

func (a clipVertex) lerp(b clipVertex, t float64) clipVertex {
	return clipVertex{
		pos: a.pos.Lerp(b.pos, t),
		uv:  [2]float64{a.uv[0] + (b.uv[0]-a.uv[0])*t, a.uv[1] + (b.uv[1]-a.uv[1])*t},
	}
}

// clipTriangleNear clips a camera-space triangle to the visible side of the
// near plane. The result has 0, 3 or 4 vertices in the original winding.
func clipTriangleNear(tri [3]clipVertex, near float64) []clipVertex {
	limit := -near
	out := make([]clipVertex, 0, 4)
	for k := range tri {
		a, b := tri[k], tri[(k+1)%3]
		aIn, bIn := a.pos.Z <= limit, b.pos.Z <= limit
		if aIn {
			out = append(out, a)
		}
		if aIn != bIn {
			cut := a.lerp(b, (limit-a.pos.Z)/(b.pos.Z-a.pos.Z))
			cut.pos.Z = limit
			out = append(out, cut)
		}
	}
	return out
}

// projectTriangle maps a clipped triangle to screen space. ok is false when
// it lies past the far plane or faces away from a single-sided material.
func projectTriangle(tri [3]clipVertex, mat entity.MeshMaterial, c color.NRGBA, tw, th float64, cam *entity.PerspectiveCamera, vp Viewport) (primitive, bool) {
	p := primitive{texture: mat.Texture, color: c}
	var nx, ny [3]float64
	for k, v := range tri {
		x, y, inside := cam.Project(v.pos)
		if !inside {
			return primitive{}, false
		}
		nx[k], ny[k] = x, y
		p.depth += -v.pos.Z / 3

		sx, sy := vp.toScreen(x, y)
		vert := ebiten.Vertex{
			DstX: sx, DstY: sy,
			ColorR: float32(c.R) / 255, ColorG: float32(c.G) / 255,
			ColorB: float32(c.B) / 255, ColorA: float32(c.A) / 255,
		}
		if p.texture != nil {
			vert.SrcX = float32(v.uv[0] * tw)
			vert.SrcY = float32((1 - v.uv[1]) * th)
		}
		p.verts[k] = vert
	}
	if !mat.DoubleSide && signedArea(nx, ny) <= 0 {
		return primitive{}, false
	}
	return p, true
}

// clipNear clips a camera-space segment to the visible side of the near
// plane (z <= -near). ok is false when the whole segment is behind it.
func clipNear(a, b entity.Vec3, near float64) (entity.Vec3, entity.Vec3, bool) {
	limit := -near
	aIn, bIn := a.Z <= limit, b.Z <= limit
	switch {
	case aIn && bIn:
		return a, b, true
	case !aIn && !bIn:
		return a, b, false
	}
	t := (limit - a.Z) / (b.Z - a.Z)
	cut := a.Lerp(b, t)
	cut.Z = limit
	if aIn {
		return a, cut, true
	}
	return cut, b, true
}

// signedArea is positive for counter-clockwise triangles in NDC.
func signedArea(x, y [3]float64) float64 {
	return (x[1]-x[0])*(y[2]-y[0]) - (x[2]-x[0])*(y[1]-y[0])
}

// withOpacity returns the straight-alpha color. A zero opacity is treated
// as unset and draws opaque.
func withOpacity(c color.RGBA, opacity float64) color.NRGBA {
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * opacity)}
}
