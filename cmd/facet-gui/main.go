// facet-gui - Desktop viewer for triangular meshes
// Renders the same software pipeline as the terminal viewer into a window.
//
// Controls:
//
//	Mouse drag  - Rotate mesh
//	X           - Toggle wireframe / flat shaded
//	R           - Reset view
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/facet3d/facet/pkg/mesh"
	"github.com/facet3d/facet/pkg/meshio"
	"github.com/facet3d/facet/pkg/render"
	"github.com/facet3d/facet/pkg/viewer"
)

var (
	windowW = flag.Int("width", 800, "Initial window width")
	windowH = flag.Int("height", 600, "Initial window height")
	bgColor = flag.String("bg", "255,255,255", "Background color (R,G,B)")
	logPath = flag.String("log", "", "Write a JSON log to this file (default: no logging)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "facet-gui - Desktop mesh viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: facet-gui [options] <mesh.tri|mesh.obj|mesh.glb>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(meshPath string) error {
	log := zap.NewNop()
	if *logPath != "" {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{*logPath}
		cfg.ErrorOutputPaths = []string{*logPath}
		var err error
		if log, err = cfg.Build(); err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		defer log.Sync()
	}

	loaded, err := meshio.Load(meshPath)
	if err != nil {
		return fmt.Errorf("load mesh: %w", err)
	}

	var bgR, bgG, bgB uint8 = 255, 255, 255
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)

	proj := render.Orthographic{}
	fb := render.NewFramebuffer(*windowW, *windowH)
	fb.Background = render.RGB(bgR, bgG, bgB)

	g := &game{
		source:    loaded,
		wire:      render.NewWireframe(proj),
		flat:      render.NewFlatShaded(proj),
		fb:        fb,
		bg:        render.RGB(bgR, bgG, bgB),
		wireframe: true,
		log:       log,
	}
	g.view = viewer.New(g.wire, fb, viewer.WithLogger(log))
	if err := g.view.PutMesh(loaded); err != nil {
		return fmt.Errorf("put mesh: %w", err)
	}

	ebiten.SetWindowTitle("facet - " + loaded.Name)
	ebiten.SetWindowSize(*windowW, *windowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

// game owns the window loop: it forwards drags to the viewer and blits the
// software framebuffer onto the screen each frame.
type game struct {
	source *mesh.Mesh
	view   *viewer.Viewer
	wire   *render.Wireframe
	flat   *render.FlatShaded
	fb     *render.Framebuffer
	bg     render.Color
	fbImg  *ebiten.Image
	log    *zap.Logger

	wireframe bool
	dragging  bool
	lastX     int
	lastY     int
	err       error
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.wireframe = !g.wireframe
		if g.wireframe {
			g.err = g.view.SetRenderer(g.wire)
		} else {
			g.err = g.view.SetRenderer(g.flat)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.err = g.view.PutMesh(g.source)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			dx, dy := x-g.lastX, y-g.lastY
			if dx != 0 || dy != 0 {
				// Horizontal drags spin about the vertical axis, vertical
				// drags tumble about the horizontal one.
				g.err = g.view.Rotate(0, float64(dx)*0.01, float64(dy)*0.01)
			}
		}
		g.dragging = true
		g.lastX, g.lastY = x, y
	} else {
		g.dragging = false
	}

	return g.err
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.fb.Width != w || g.fb.Height != h {
		g.fb = render.NewFramebuffer(w, h)
		g.fb.Background = g.bg
		if g.fbImg != nil {
			g.fbImg.Deallocate()
			g.fbImg = nil
		}
		if err := g.view.SetSurface(g.fb); err != nil {
			g.err = err
			return
		}
	}
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(w, h)
	}

	g.fbImg.WritePixels(g.fb.ToImage().Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
