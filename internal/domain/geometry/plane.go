// Package geometry builds the renderable objects placed in the scene.
//
// Builders are pure: the same props always yield the same geometry. They
// allocate vertex data and, for cards, a label bitmap, but never touch the
// renderer.
package geometry

import "github.com/younwookim/xrscene/internal/domain/entity"

// Plane builds a width×height plane in the XY plane, centered at the origin,
// facing +Z, subdivided into wSeg×hSeg cells. Vertices run row by row from
// the top-left corner; UV (0,0) is the bottom-left corner.
func Plane(width, height float64, wSeg, hSeg int, mat entity.MeshMaterial) *entity.Mesh {
	wSeg, hSeg = max(wSeg, 1), max(hSeg, 1)
	cols, rows := wSeg+1, hSeg+1
	segW, segH := width/float64(wSeg), height/float64(hSeg)

	m := &entity.Mesh{
		Positions: make([]entity.Vec3, 0, cols*rows),
		UVs:       make([][2]float64, 0, cols*rows),
		Indices:   make([]int, 0, wSeg*hSeg*6),
		Material:  mat,
	}

	for iy := 0; iy < rows; iy++ {
		y := height/2 - float64(iy)*segH
		for ix := 0; ix < cols; ix++ {
			x := float64(ix)*segW - width/2
			m.Positions = append(m.Positions, entity.V3(x, y, 0))
			m.UVs = append(m.UVs, [2]float64{float64(ix) / float64(wSeg), 1 - float64(iy)/float64(hSeg)})
		}
	}

	for iy := 0; iy < hSeg; iy++ {
		for ix := 0; ix < wSeg; ix++ {
			a := ix + cols*iy
			b := ix + cols*(iy+1)
			c := ix + 1 + cols*(iy+1)
			d := ix + 1 + cols*iy
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}

	return m
}

// WireframeGrid returns the cell borders of a subdivided width×height plane
// in the XY plane. Each cell edge is its own segment, so the segment count is
// wSeg*(hSeg+1) + hSeg*(wSeg+1).
func WireframeGrid(width, height float64, wSeg, hSeg int) []entity.Segment {
	segW, segH := width/float64(wSeg), height/float64(hSeg)
	x0, y0 := -width/2, -height/2

	segs := make([]entity.Segment, 0, GridSegmentCount(wSeg, hSeg))
	for iy := 0; iy <= hSeg; iy++ {
		y := y0 + float64(iy)*segH
		for ix := 0; ix < wSeg; ix++ {
			segs = append(segs, entity.Segment{
				A: entity.V3(x0+float64(ix)*segW, y, 0),
				B: entity.V3(x0+float64(ix+1)*segW, y, 0),
			})
		}
	}
	for ix := 0; ix <= wSeg; ix++ {
		x := x0 + float64(ix)*segW
		for iy := 0; iy < hSeg; iy++ {
			segs = append(segs, entity.Segment{
				A: entity.V3(x, y0+float64(iy)*segH, 0),
				B: entity.V3(x, y0+float64(iy+1)*segH, 0),
			})
		}
	}
	return segs
}

// GridSegmentCount is the number of segments WireframeGrid emits.
func GridSegmentCount(wSeg, hSeg int) int {
	return wSeg*(hSeg+1) + hSeg*(wSeg+1)
}

// Edges returns the outline of a width×height plane in the XY plane.
func Edges(width, height float64) []entity.Segment {
	hw, hh := width/2, height/2
	tl, tr := entity.V3(-hw, hh, 0), entity.V3(hw, hh, 0)
	bl, br := entity.V3(-hw, -hh, 0), entity.V3(hw, -hh, 0)
	return []entity.Segment{{A: tl, B: tr}, {A: tr, B: br}, {A: br, B: bl}, {A: bl, B: tl}}
}

// BoxEdges returns the 12 edges of a width×height×depth box centered at the origin.
func BoxEdges(width, height, depth float64) []entity.Segment {
	hw, hh, hd := width/2, height/2, depth/2
	var c [8]entity.Vec3
	for i := range c {
		c[i] = entity.V3(
			pick(i&1 != 0, hw, -hw),
			pick(i&2 != 0, hh, -hh),
			pick(i&4 != 0, hd, -hd),
		)
	}

	segs := make([]entity.Segment, 0, 12)
	for i := 0; i < 8; i++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if j := i | bit; j != i {
				segs = append(segs, entity.Segment{A: c[i], B: c[j]})
			}
		}
	}
	return segs
}

// GridHelper returns a size×size grid on the XZ plane with the given number
// of divisions per side: divisions+1 full-length lines along each axis.
func GridHelper(size float64, divisions int) []entity.Segment {
	divisions = max(divisions, 1)
	step := size / float64(divisions)
	half := size / 2

	segs := make([]entity.Segment, 0, 2*(divisions+1))
	for i := 0; i <= divisions; i++ {
		k := -half + float64(i)*step
		segs = append(segs,
			entity.Segment{A: entity.V3(-half, 0, k), B: entity.V3(half, 0, k)},
			entity.Segment{A: entity.V3(k, 0, -half), B: entity.V3(k, 0, half)},
		)
	}
	return segs
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
