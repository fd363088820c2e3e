// Package render draws the scene graph onto ebiten images and binds XR
// sessions to the render surface.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/xrscene/internal/domain/entity"
)

// Renderer owns the render surface state: its size, clear color, the
// animation loop, cached GPU images and the XR binding.
type Renderer struct {
	width      int
	height     int
	pixelRatio float64
	background entity.Background

	loop     func(screen *ebiten.Image)
	disposed bool
	frames   uint64

	white    *ebiten.Image
	textures map[image.Image]*ebiten.Image

	xr xrBinding
}

// New creates a renderer with a 1:1 pixel ratio and a black background
func New() *Renderer {
	return &Renderer{
		pixelRatio: 1,
		background: entity.Background{Color: entity.Black},
		textures:   make(map[image.Image]*ebiten.Image),
	}
}

// SetPixelRatio sets the device pixel ratio applied to the drawing buffer
func (r *Renderer) SetPixelRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	r.pixelRatio = ratio
}

// PixelRatio returns the device pixel ratio
func (r *Renderer) PixelRatio() float64 { return r.pixelRatio }

// SetSize sets the surface size in device-independent pixels
func (r *Renderer) SetSize(width, height int) {
	r.width, r.height = width, height
}

// Size returns the surface size in device-independent pixels
func (r *Renderer) Size() (int, int) { return r.width, r.height }

// DrawingBufferSize returns the surface size in device pixels
func (r *Renderer) DrawingBufferSize() (int, int) {
	return int(float64(r.width) * r.pixelRatio), int(float64(r.height) * r.pixelRatio)
}

// SetBackground sets the clear color
func (r *Renderer) SetBackground(bg entity.Background) { r.background = bg }

// SetAnimationLoop installs the per-frame callback. Nil stops the loop.
func (r *Renderer) SetAnimationLoop(fn func(screen *ebiten.Image)) {
	r.loop = fn
}

// Frame is called by the host once per display refresh. It runs the
// animation loop unless the loop is stopped or the renderer is disposed.
func (r *Renderer) Frame(screen *ebiten.Image) {
	if r.disposed || r.loop == nil {
		return
	}
	r.frames++
	r.loop(screen)
}

// Frames returns how many times the animation loop has run
func (r *Renderer) Frames() uint64 { return r.frames }

// Render clears the screen and draws root from cam. While a session is
// presenting, each eye gets half of the screen.
func (r *Renderer) Render(screen *ebiten.Image, root *entity.Object, cam *entity.PerspectiveCamera) {
	if r.disposed {
		return
	}
	if r.background.Transparent {
		screen.Clear()
	} else {
		screen.Fill(r.background.Color)
	}

	b := screen.Bounds()
	full := Viewport{X: float64(b.Min.X), Y: float64(b.Min.Y), W: float64(b.Dx()), H: float64(b.Dy())}

	views, space, presenting := r.xr.snapshot()
	if !presenting || len(views) == 0 {
		r.draw(screen, project(root, cam, full, r.pixelRatio))
		return
	}

	eyeW := full.W / float64(len(views))
	for i, v := range views {
		vp := Viewport{X: full.X + float64(i)*eyeW, Y: full.Y, W: eyeW, H: full.H}
		eye := *cam
		eye.Aspect = vp.W / vp.H
		offset := entity.Rotation(cam.Rotation).MulPoint(v.Offset)
		eye.Position = cam.Position.Add(space.Origin).Add(offset)
		r.draw(screen, project(root, &eye, vp, r.pixelRatio))
	}
}

func (r *Renderer) draw(screen *ebiten.Image, prims []primitive) {
	for i := range prims {
		p := &prims[i]
		if p.isLine {
			vector.StrokeLine(screen, p.x0, p.y0, p.x1, p.y1, p.width, p.color, true)
			continue
		}
		src := r.whiteImage()
		if p.texture != nil {
			src = r.texture(p.texture)
		} else {
			for k := range p.verts {
				p.verts[k].SrcX, p.verts[k].SrcY = 1, 1
			}
		}
		screen.DrawTriangles(p.verts[:], []uint16{0, 1, 2}, src, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
}

func (r *Renderer) whiteImage() *ebiten.Image {
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img
	}
	return r.white
}

// texture uploads src on first use and caches it until Dispose.
func (r *Renderer) texture(src image.Image) *ebiten.Image {
	if img, ok := r.textures[src]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(src)
	r.textures[src] = img
	return img
}

// Dispose stops the loop, ends any bound session and releases every GPU
// image. Safe to call more than once.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	r.xr.mu.Lock()
	r.disposed = true
	r.xr.mu.Unlock()
	r.loop = nil
	_ = r.EndSession()
	for key, img := range r.textures {
		img.Deallocate()
		delete(r.textures, key)
	}
	if r.white != nil {
		r.white.Deallocate()
		r.white = nil
	}
}

// Disposed reports whether Dispose has been called
func (r *Renderer) Disposed() bool { return r.disposed }
