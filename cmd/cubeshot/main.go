// cubeshot renders puzzle frames to PNG files without opening a window.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/Faultbox/hypercube/internal/config"
	"github.com/Faultbox/hypercube/internal/engine/animation"
	"github.com/Faultbox/hypercube/internal/engine/camera"
	"github.com/Faultbox/hypercube/internal/engine/debug"
	"github.com/Faultbox/hypercube/internal/engine/pipeline"
	"github.com/Faultbox/hypercube/internal/game/control"
	"github.com/Faultbox/hypercube/internal/logger"
	"github.com/Faultbox/hypercube/internal/puzzle"
	"github.com/Faultbox/hypercube/pkg/math"
	"github.com/Faultbox/hypercube/pkg/raster"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "render", "r":
		err = cmdRender(args)
	case "sequence", "seq":
		err = cmdSequence(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sync()
}

func printUsage() {
	fmt.Println(`cubeshot - render hypercube frames to PNG

Usage:
  cubeshot <command> [options]

Commands:
  render    Commit moves and write one frame
  sequence  Write every preview frame of one animated move
  help      Show this help

Selectors: 0-26 turn the core layer group at that local index (13 does
nothing); 27 and up merge cluster selector/27 into the core.

Examples:
  cubeshot render -o solved.png
  cubeshot render -moves 1,5,27 -yaw 30 -pitch 20 -o turned.png
  cubeshot render -scramble 25 -seed 7 -hud -o scrambled.png
  cubeshot render -preview 4 -percent 50 -o half.png
  cubeshot sequence -move 108 -step 10 -o frames/`)
}

// common holds the options shared by every rendering command.
type common struct {
	config           *string
	yaw, pitch, roll *float64
	hud              *bool
	verbose          *bool
}

func addCommon(fs *flag.FlagSet) *common {
	return &common{
		config:  fs.String("config", "", "YAML config file (defaults otherwise)"),
		yaw:     fs.Float64("yaw", 0, "Yaw in degrees"),
		pitch:   fs.Float64("pitch", 0, "Pitch in degrees"),
		roll:    fs.Float64("roll", 0, "Roll in degrees"),
		hud:     fs.Bool("hud", false, "Draw the HUD overlay"),
		verbose: fs.Bool("v", false, "Debug logging"),
	}
}

// setup loads the config, starts logging and builds a pipeline.
func (c *common) setup() (*config.Config, *pipeline.Pipeline, error) {
	cfg := config.Default()
	if *c.config != "" {
		var err error
		if cfg, err = config.LoadFile(*c.config); err != nil {
			return nil, nil, err
		}
	}
	if *c.hud {
		cfg.HUD.Enabled = true
	}

	level := "warn"
	if *c.verbose {
		level = "debug"
	}
	if err := logger.Init(level, cfg.Logging.LogFile); err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}

	return cfg, pipeline.New(pipeline.FromConfig(cfg)), nil
}

func (c *common) orbit() *camera.Orbit {
	o := camera.NewOrbit()
	o.Yaw = math.WrapAngle(radians(*c.yaw))
	o.Pitch = math.WrapAngle(radians(*c.pitch))
	o.Roll = math.WrapAngle(radians(*c.roll))
	return o
}

func radians(deg float64) float32 {
	return float32(deg) * math.Pi / 180
}

func cmdRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	opts := addCommon(fs)
	out := fs.String("o", "hypercube.png", "Output PNG")
	moves := fs.String("moves", "", "Comma-separated selectors to commit")
	scramble := fs.Int("scramble", 0, "Commit N random layer turns first")
	seed := fs.Uint64("seed", 1, "Scramble seed")
	selected := fs.Int("select", -1, "Selector to highlight")
	preview := fs.Int("preview", -1, "Selector to preview without committing")
	percent := fs.Float64("percent", 50, "Preview progress, 0-100")
	fs.Parse(args)

	seq, err := parseMoves(*moves)
	if err != nil {
		return err
	}
	_, p, err := opts.setup()
	if err != nil {
		return err
	}

	pz := p.Puzzle()
	if *scramble > 0 {
		rng := rand.New(rand.NewPCG(*seed, *seed))
		applied := pz.Scramble(rng, *scramble)
		fmt.Printf("Scramble: %s\n", formatMoves(applied))
	}
	for _, sel := range seq {
		pz.Apply(sel, true)
	}

	o := opts.orbit()
	in := pipeline.Input{
		Yaw:      o.Yaw,
		Pitch:    o.Pitch,
		Roll:     o.Roll,
		CursorX:  -1,
		CursorY:  -1,
		Selector: *selected,
		Type:     animation.NoRotation,
	}
	if *preview >= 0 {
		in.Selector = *preview
		in.Type = control.PreviewType(puzzle.Selector(*preview))
		in.Percent = float32(*percent)
	}

	canvas := p.RenderFrame(in)
	if err := writeFrame(*out, canvas); err != nil {
		return err
	}

	st := p.Stats()
	fmt.Printf("Wrote:  %s\n", *out)
	fmt.Printf("Faces:  %d painted, %d skipped\n", st.Faces, st.Skipped)
	fmt.Printf("Solved: %v\n", pz.Solved())
	return nil
}

func cmdSequence(args []string) error {
	fs := flag.NewFlagSet("sequence", flag.ExitOnError)
	opts := addCommon(fs)
	out := fs.String("o", "frames", "Output directory")
	move := fs.Int("move", -1, "Selector to animate")
	step := fs.Float64("step", 15, "Preview percent per frame")
	fs.Parse(args)

	if *move < 0 {
		return fmt.Errorf("sequence needs -move")
	}
	_, p, err := opts.setup()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*out, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	c := control.NewController(opts.orbit(), float32(*step))
	p.RenderFrame(c.Next())
	if !c.Start(puzzle.Selector(*move)) {
		return fmt.Errorf("selector %d has no move", *move)
	}

	n := 0
	for c.Animating() {
		in := c.Next()
		canvas := p.RenderFrame(in)
		name := filepath.Join(*out, fmt.Sprintf("frame_%03d.png", n))
		if err := writeFrame(name, canvas); err != nil {
			return err
		}
		n++
	}

	fmt.Printf("Wrote %d frames to %s\n", n, *out)
	return nil
}

func writeFrame(path string, c *raster.Canvas) error {
	return debug.WritePNG(path, c.Image())
}
