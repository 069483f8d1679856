// facet - Terminal viewer for triangular meshes
// Loads .tri/.obj/.glb files, projects them orthographically and lets you
// tumble them with the mouse.
//
// Controls:
//
//	Mouse drag  - Rotate mesh
//	W/S         - Tumble up/down
//	A/D         - Spin left/right
//	Q/E         - Twist counter/clockwise
//	X           - Toggle wireframe / flat shaded
//	P           - Export the current view as SVG
//	R           - Reset view (reload the display mesh)
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"

	"github.com/facet3d/facet/pkg/meshio"
	"github.com/facet3d/facet/pkg/render"
	"github.com/facet3d/facet/pkg/svgcanvas"
	"github.com/facet3d/facet/pkg/viewer"
)

var (
	targetFPS   = flag.Int("fps", 60, "Target FPS")
	bgColor     = flag.String("bg", "255,255,255", "Background color (R,G,B)")
	edgeColor   = flag.String("edge", "#0000ff", "Edge color (hex)")
	vertexColor = flag.String("vertex", "#0000ff", "Vertex color (hex)")
	brightColor = flag.String("bright", "#0000ff", "Face color when parallel to the screen (hex)")
	darkColor   = flag.String("dark", "#00005f", "Face color when edge-on to the screen (hex)")
	flatShaded  = flag.Bool("flat", false, "Start in flat-shaded mode instead of wireframe")
	svgPath     = flag.String("svg", "facet.svg", "Output path for SVG snapshots (P key)")
	logPath     = flag.String("log", "", "Write a JSON log to this file (default: no logging)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "facet - Terminal mesh viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: facet [options] <mesh.tri|mesh.obj|mesh.glb>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Rotate mesh\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Tumble and spin\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Twist\n")
		fmt.Fprintf(os.Stderr, "  X           - Toggle wireframe / flat shaded\n")
		fmt.Fprintf(os.Stderr, "  P           - Export SVG snapshot\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
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

// spinAxis tracks the rotation velocity of one axis, decayed toward zero
// with a critically damped spring so drags glide to a stop.
type spinAxis struct {
	velocity float64
	accel    float64
	spring   harmonica.Spring
}

func newSpinAxis(fps int) spinAxis {
	// Frequency 4.0 = moderate speed, damping 1.0 = no overshoot
	return spinAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

// Step returns this frame's rotation delta and decays the velocity.
func (a *spinAxis) Step() float64 {
	delta := a.velocity
	a.velocity, a.accel = a.spring.Update(a.velocity, a.accel, 0)
	return delta
}

// spinState holds per-axis rotation springs: yaw about Z, pitch about Y,
// roll about X, matching the mesh rotation convention.
type spinState struct {
	yaw, pitch, roll spinAxis
	fps              int
}

func newSpinState(fps int) *spinState {
	return &spinState{
		yaw:   newSpinAxis(fps),
		pitch: newSpinAxis(fps),
		roll:  newSpinAxis(fps),
		fps:   fps,
	}
}

func (s *spinState) Impulse(yaw, pitch, roll float64) {
	s.yaw.velocity += yaw
	s.pitch.velocity += pitch
	s.roll.velocity += roll
}

func (s *spinState) Reset() {
	s.yaw = newSpinAxis(s.fps)
	s.pitch = newSpinAxis(s.fps)
	s.roll = newSpinAxis(s.fps)
}

func buildLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func parseColors() (bg, edge, vertex, bright, dark render.Color, err error) {
	var r, g, b uint8 = 255, 255, 255
	fmt.Sscanf(*bgColor, "%d,%d,%d", &r, &g, &b)
	bg = render.RGB(r, g, b)

	if edge, err = render.ParseHex(*edgeColor); err != nil {
		return
	}
	if vertex, err = render.ParseHex(*vertexColor); err != nil {
		return
	}
	if bright, err = render.ParseHex(*brightColor); err != nil {
		return
	}
	dark, err = render.ParseHex(*darkColor)
	return
}

func run(meshPath string) error {
	log, err := buildLogger(*logPath)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	bg, edge, vertex, bright, dark, err := parseColors()
	if err != nil {
		return err
	}

	loaded, err := meshio.Load(meshPath)
	if err != nil {
		return fmt.Errorf("load mesh: %w", err)
	}
	log.Info("mesh loaded from disk",
		zap.String("path", meshPath),
		zap.Int("vertices", loaded.VertexCount()),
		zap.Int("faces", loaded.FaceCount()))

	proj := render.Orthographic{}
	wire := render.NewWireframe(proj)
	wire.EdgeColor = edge
	wire.VertexColor = vertex
	flat := render.NewFlatShaded(proj)
	flat.EdgeColor = edge
	flat.VertexColor = vertex
	flat.BrightFace = bright
	flat.DarkFace = dark

	var active render.Renderer = wire
	if *flatShaded {
		active = flat
	}

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	// Half-block cells double the vertical resolution.
	fb := render.NewFramebuffer(width, height*2)
	fb.Background = bg
	view := viewer.New(active, fb, viewer.WithLogger(log))
	if err := view.PutMesh(loaded); err != nil {
		return fmt.Errorf("put mesh: %w", err)
	}

	spin := newSpinState(*targetFPS)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	var mouseDown bool
	var lastMouseX, lastMouseY int

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fb = render.NewFramebuffer(width, height*2)
				fb.Background = bg
				if err := view.SetSurface(fb); err != nil {
					log.Error("resize redraw failed", zap.Error(err))
				}

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("a", "left"):
					spin.Impulse(0, -0.05, 0)
				case ev.MatchString("d", "right"):
					spin.Impulse(0, 0.05, 0)
				case ev.MatchString("w", "up"):
					spin.Impulse(0, 0, -0.05)
				case ev.MatchString("s", "down"):
					spin.Impulse(0, 0, 0.05)
				case ev.MatchString("q"):
					spin.Impulse(-0.05, 0, 0)
				case ev.MatchString("e"):
					spin.Impulse(0.05, 0, 0)
				case ev.MatchString("x"):
					if active == render.Renderer(wire) {
						active = render.Renderer(flat)
					} else {
						active = render.Renderer(wire)
					}
					if err := view.SetRenderer(active); err != nil {
						log.Error("renderer switch failed", zap.Error(err))
					}
				case ev.MatchString("p"):
					if err := exportSVG(*svgPath, view, active, width, height*2); err != nil {
						log.Error("svg export failed", zap.Error(err))
					} else {
						log.Info("svg snapshot written", zap.String("path", *svgPath))
					}
				case ev.MatchString("r"):
					spin.Reset()
					if err := view.PutMesh(loaded); err != nil {
						log.Error("reset failed", zap.Error(err))
					}
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					spin.Impulse(0, float64(dx)*0.02, float64(dy)*0.02)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}
			}
		}
	}()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	// Main loop
	targetDuration := time.Second / time.Duration(*targetFPS)
	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		frameStart := time.Now()

		yaw := spin.yaw.Step()
		pitch := spin.pitch.Step()
		roll := spin.roll.Step()
		if yaw != 0 || pitch != 0 || roll != 0 {
			if err := view.Rotate(yaw, pitch, roll); err != nil {
				cleanup()
				return fmt.Errorf("rotate: %w", err)
			}
		}

		fb.Draw(term, term.Bounds())
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// exportSVG renders the current display mesh once onto an SVG canvas of the
// framebuffer's size.
func exportSVG(path string, view *viewer.Viewer, r render.Renderer, w, h int) error {
	m := view.Mesh()
	if m == nil {
		return fmt.Errorf("no mesh loaded")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	canvas := svgcanvas.New(f, w, h)
	// Render a copy so the snapshot cannot reorder the display mesh faces.
	display := m.Clone()
	if err := r.Render(display, canvas); err != nil {
		return err
	}
	return canvas.Close()
}
