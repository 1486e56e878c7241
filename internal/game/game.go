// Package game runs the interactive viewer: SDL window, input, the frame
// pipeline and the GL presenter.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/hypercube/internal/config"
	"github.com/Faultbox/hypercube/internal/engine/camera"
	"github.com/Faultbox/hypercube/internal/engine/debug"
	"github.com/Faultbox/hypercube/internal/engine/input"
	"github.com/Faultbox/hypercube/internal/engine/pipeline"
	"github.com/Faultbox/hypercube/internal/engine/renderer"
	"github.com/Faultbox/hypercube/internal/engine/window"
	"github.com/Faultbox/hypercube/internal/game/control"
	"github.com/Faultbox/hypercube/internal/logger"
)

// Game is the viewer instance.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	log      *zap.Logger

	pipeline   *pipeline.Pipeline
	control    *control.Controller
	screenshot *debug.ScreenshotCapture
	viewport   control.Viewport
}

// New opens the window and prepares the pipeline.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Component("game"),
	}
	g.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("trig", cfg.Render.Trig),
	)

	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, since the OpenGL context must exist.
	g.renderer, err = renderer.New(renderer.Config{
		Width:  pipeline.Width,
		Height: pipeline.Height,
		Clear:  [4]float32{0, 0, 0, 1},
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()
	g.pipeline = pipeline.New(pipeline.FromConfig(cfg))

	orbit := camera.NewOrbit()
	orbit.KeyStep = cfg.Animation.KeyStep
	orbit.DragSensitivity = cfg.Animation.DragSensitivity
	g.control = control.NewController(orbit, cfg.Animation.StepPercent)
	g.screenshot = debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix)

	g.resize(g.window.Size())

	g.log.Info("viewer initialized")
	return g, nil
}

// Run drives frames until the window closes or Esc is pressed.
func (g *Game) Run() error {
	g.running = true

	var frameBudget time.Duration
	if limit := g.config.Window.FPSLimit; limit > 0 && !g.config.Window.VSync {
		frameBudget = time.Second / time.Duration(limit)
	}

	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting frame loop")
	for g.running {
		start := time.Now()

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		canvas := g.pipeline.RenderFrame(g.control.Next())
		if err := g.renderer.Present(canvas); err != nil {
			return fmt.Errorf("present: %w", err)
		}
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			st := g.pipeline.Stats()
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("faces", st.Faces),
				zap.Int("hovered", st.Hovered),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, ev := range g.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			g.resize(ev.Width, ev.Height)

		case input.EventKeyDown:
			a, ok := keyMap[ev.Key]
			if !ok || (ev.Repeat && !repeatable(a)) {
				continue
			}
			switch a {
			case control.ActionQuit:
				g.running = false
			case control.ActionScreenshot:
				if _, err := g.screenshot.Capture(g.pipeline.Canvas()); err != nil {
					g.log.Warn("screenshot failed", zap.Error(err))
				}
			default:
				g.control.Press(a)
			}

		case input.EventMouseMove:
			fx, fy, _ := g.viewport.ToFrame(ev.MouseX, ev.MouseY)
			g.control.Cursor(fx, fy)
			if ev.Dragging() {
				g.control.Drag(ev.DeltaX, ev.DeltaY)
			}
		}
	}
}

// resize refits the frame into the window. Mouse positions arrive in
// screen coordinates; GL works in drawable pixels.
func (g *Game) resize(width, height int) {
	g.viewport = control.Fit(width, height, pipeline.Width, pipeline.Height)

	dw, _ := g.window.DrawableSize()
	px := g.viewport
	if width > 0 {
		px = g.viewport.Scale(dw, width)
	}
	g.renderer.SetViewport(px.X, px.Y, px.Width, px.Height)
}

// Close releases the renderer and the window.
func (g *Game) Close() {
	g.log.Info("closing viewer")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
