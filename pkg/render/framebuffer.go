package render

import (
	"image"
	"image/png"
	"math"
	"os"

	"github.com/facet3d/facet/pkg/math3d"
)

// Framebuffer is a software pixel canvas implementing Surface. The
// terminal presenter draws it with half-block characters at double
// vertical resolution; the desktop frontend blits it into a window.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Color // Row-major pixel data

	// Background is the color Clear fills with.
	Background Color
}

// NewFramebuffer creates a framebuffer with the given dimensions and a
// black background.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:      width,
		Height:     height,
		Pixels:     make([]Color, width*height),
		Background: ColorBlack,
	}
}

// Size implements Surface.
func (fb *Framebuffer) Size() (w, h int) {
	return fb.Width, fb.Height
}

// Clear fills the framebuffer with the background color.
func (fb *Framebuffer) Clear() {
	for i := range fb.Pixels {
		fb.Pixels[i] = fb.Background
	}
}

// SetPixel sets the pixel at (x, y). Out-of-bounds writes are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y), or transparent black if out of
// bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawPoint implements Surface. Vertices are drawn as 3x3 blocks so they
// stay visible on low-resolution canvases.
func (fb *Framebuffer) DrawPoint(x, y float64, c Color) {
	cx, cy := int(math.Round(x)), int(math.Round(y))
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			fb.SetPixel(cx+dx, cy+dy, c)
		}
	}
}

// DrawLine implements Surface using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x1, y1, x2, y2 float64, c Color) {
	fb.drawLineInt(int(math.Round(x1)), int(math.Round(y1)), int(math.Round(x2)), int(math.Round(y2)), c)
}

func (fb *Framebuffer) drawLineInt(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawPolygon implements Surface. The fill is rasterized first (fan
// triangulation, barycentric coverage test), then the outline is traced on
// top so edges stay crisp.
func (fb *Framebuffer) DrawPolygon(pts []math3d.Vec2, outline, fill Color) {
	if len(pts) < 2 {
		return
	}
	if fill.A != 0 && len(pts) >= 3 {
		for i := 1; i+1 < len(pts); i++ {
			fb.fillTriangle(pts[0], pts[i], pts[i+1], fill)
		}
	}
	for i := range pts {
		next := pts[(i+1)%len(pts)]
		fb.DrawLine(pts[i].X, pts[i].Y, next.X, next.Y, outline)
	}
}

// fillTriangle rasterizes a triangle by testing barycentric coordinates
// over its bounding box.
func (fb *Framebuffer) fillTriangle(p0, p1, p2 math3d.Vec2, c Color) {
	minX := int(math.Max(0, math.Floor(min3(p0.X, p1.X, p2.X))))
	maxX := int(math.Min(float64(fb.Width-1), math.Ceil(max3(p0.X, p1.X, p2.X))))
	minY := int(math.Max(0, math.Floor(min3(p0.Y, p1.Y, p2.Y))))
	maxY := int(math.Min(float64(fb.Height-1), math.Ceil(max3(p0.Y, p1.Y, p2.Y))))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			u, v, w := barycentric(p0, p1, p2, px, py)
			if u < 0 || v < 0 || w < 0 {
				continue
			}
			fb.SetPixel(x, y, c)
		}
	}
}

// barycentric returns the coordinates of (px, py) relative to the triangle
// p0, p1, p2. All three are non-negative for points inside the triangle.
func barycentric(p0, p1, p2 math3d.Vec2, px, py float64) (u, v, w float64) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	denom := e1.Cross(e2)
	if denom == 0 {
		return -1, -1, -1 // Degenerate triangle covers nothing
	}
	p := math3d.V2(px, py).Sub(p0)
	v = p.Cross(e2) / denom
	w = e1.Cross(p) / denom
	u = 1 - v - w
	return u, v, w
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
