package render

import (
	"testing"

	"github.com/facet3d/facet/pkg/math3d"
)

func TestFramebuffer_ClearFillsBackground(t *testing.T) {
	fb := NewFramebuffer(8, 6)
	fb.Background = RGB(10, 20, 30)
	fb.SetPixel(3, 3, ColorWhite)

	fb.Clear()
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if got := fb.GetPixel(x, y); got != fb.Background {
				t.Fatalf("pixel (%d, %d) = %v, want background %v", x, y, got, fb.Background)
			}
		}
	}
}

func TestFramebuffer_OutOfBoundsIsSafe(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(-1, 0, ColorWhite)
	fb.SetPixel(0, -1, ColorWhite)
	fb.SetPixel(4, 0, ColorWhite)
	fb.SetPixel(0, 4, ColorWhite)

	if got := fb.GetPixel(-1, 0); got != (Color{}) {
		t.Errorf("GetPixel out of bounds = %v, want zero color", got)
	}
	for i, p := range fb.Pixels {
		if p != (Color{}) {
			t.Errorf("pixel %d written by out-of-bounds SetPixel", i)
		}
	}
}

func TestFramebuffer_DrawLineEndpoints(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	c := ColorWhite

	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
	}{
		{"horizontal", 2, 5, 15, 5},
		{"vertical", 7, 1, 7, 18},
		{"diagonal", 0, 0, 19, 19},
		{"steep", 3, 2, 5, 17},
		{"reversed", 15, 10, 2, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb.Clear()
			fb.DrawLine(tc.x1, tc.y1, tc.x2, tc.y2, c)
			if got := fb.GetPixel(int(tc.x1), int(tc.y1)); got != c {
				t.Errorf("start pixel (%v, %v) = %v, want %v", tc.x1, tc.y1, got, c)
			}
			if got := fb.GetPixel(int(tc.x2), int(tc.y2)); got != c {
				t.Errorf("end pixel (%v, %v) = %v, want %v", tc.x2, tc.y2, got, c)
			}
		})
	}
}

func TestFramebuffer_DrawPointBlock(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.DrawPoint(5, 5, ColorBlue)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if got := fb.GetPixel(5+dx, 5+dy); got != ColorBlue {
				t.Errorf("pixel (%d, %d) = %v, want blue", 5+dx, 5+dy, got)
			}
		}
	}
	if got := fb.GetPixel(5, 3); got == ColorBlue {
		t.Error("point block extends beyond 3x3")
	}
}

func TestFramebuffer_DrawPolygonFill(t *testing.T) {
	fb := NewFramebuffer(40, 40)
	fill := RGB(0, 0, 0x5F)
	outline := ColorBlue

	pts := []math3d.Vec2{
		math3d.V2(5, 5), math3d.V2(35, 5), math3d.V2(20, 35),
	}
	fb.DrawPolygon(pts, outline, fill)

	// Centroid lands well inside.
	if got := fb.GetPixel(20, 15); got != fill {
		t.Errorf("interior pixel = %v, want fill %v", got, fill)
	}
	// Corners of the canvas stay untouched.
	if got := fb.GetPixel(0, 39); got != (Color{}) {
		t.Errorf("exterior pixel = %v, want untouched", got)
	}
	// Vertices sit on the outline.
	if got := fb.GetPixel(5, 5); got != outline {
		t.Errorf("vertex pixel = %v, want outline %v", got, outline)
	}
}

func TestFramebuffer_DrawPolygonNoFill(t *testing.T) {
	fb := NewFramebuffer(40, 40)
	pts := []math3d.Vec2{
		math3d.V2(5, 5), math3d.V2(35, 5), math3d.V2(20, 35),
	}
	fb.DrawPolygon(pts, ColorBlue, NoFill)

	if got := fb.GetPixel(20, 15); got != (Color{}) {
		t.Errorf("interior pixel = %v, want untouched with NoFill", got)
	}
	if got := fb.GetPixel(5, 5); got != ColorBlue {
		t.Errorf("vertex pixel = %v, want outline", got)
	}
}

func TestFramebuffer_DegenerateTriangleCoversNothing(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	pts := []math3d.Vec2{
		math3d.V2(2, 2), math3d.V2(10, 10), math3d.V2(18, 18),
	}
	fb.DrawPolygon(pts, NoFill, ColorWhite)

	// Collinear points: the fill rasterizes nothing.
	if got := fb.GetPixel(2, 18); got != (Color{}) {
		t.Errorf("off-line pixel = %v, want untouched", got)
	}
}

func TestFramebuffer_ToImage(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.SetPixel(1, 1, RGB(9, 8, 7))

	img := fb.ToImage()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds = %v, want 3x2", img.Bounds())
	}
	if got := img.RGBAAt(1, 1); got != RGB(9, 8, 7) {
		t.Errorf("image pixel = %v, want %v", got, RGB(9, 8, 7))
	}
}
