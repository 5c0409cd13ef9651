// coursetool is a CLI utility for working with greenside course files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/fairwaylabs/greenside/internal/config"
	"github.com/fairwaylabs/greenside/internal/logger"
	"github.com/fairwaylabs/greenside/internal/world"
	"github.com/fairwaylabs/greenside/pkg/course"
	"github.com/fairwaylabs/greenside/pkg/geom"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "bake":
		cmdBake(args)
	case "roll":
		cmdRoll(args)
	case "lie":
		cmdLie(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`coursetool - greenside course file utility

Usage:
  coursetool <command> [options]

Commands:
  info <course.yaml>                       Show course information
  bake <course.yaml> [-o out.yaml]         Carve hazards and save the elevation grid
  roll <course.yaml> -x -y -ax -ay -feet   Simulate a roll and print where it stops
  lie  <course.yaml> -x -y                 Report lie, elevation and slope at a point

Examples:
  coursetool info pine_hollow_7.yaml
  coursetool bake pine_hollow_7.yaml -o pine_hollow_7_baked.yaml
  coursetool roll pine_hollow_7.yaml -x 104 -y 30 -ax 1 -ay 0 -feet 15
  coursetool lie pine_hollow_7.yaml -x 90 -y 20`)
}

// loadWorld loads a course file and builds the world with the user's
// configured carve, roll and friction settings.
func loadWorld(path string) (*world.World, *course.Course) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	c, err := course.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w, err := world.Load(context.Background(), c, world.Options{
		Carve:    cfg.CarveParams(),
		Roll:     cfg.PhysicsParams(),
		Friction: cfg.FrictionTable(),
		Logger:   logger.Log,
	})
	if err != nil {
		logger.Error("failed to load course", zap.Error(err))
		os.Exit(1)
	}
	return w, c
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: coursetool info <course.yaml>")
		os.Exit(1)
	}

	c, err := course.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cols, rows := c.GridDims()
	fmt.Printf("Course:     %s\n", c.Name)
	fmt.Printf("Bounds:     %.1f x %.1f yd\n", c.Bounds.MaxX-c.Bounds.MinX, c.Bounds.MaxY-c.Bounds.MinY)
	fmt.Printf("Grid:       %d x %d nodes (cell %.2g yd)\n", cols, rows, c.CellSize)
	fmt.Printf("Centreline: %.1f yd\n", c.Centreline.Length())
	if len(c.Elevation) > 0 {
		lo, hi := c.ElevationRange()
		fmt.Printf("Elevation:  baked, %.2f to %.2f yd\n", lo, hi)
	} else {
		fmt.Println("Elevation:  not baked")
	}

	counts := c.CountByType()
	var types []course.TerrainType
	for tt := range counts {
		types = append(types, tt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	fmt.Println()
	fmt.Println("Zones by type:")
	for _, tt := range types {
		fmt.Printf("  %-13s %d\n", tt.String(), counts[tt])
	}
}

func cmdBake(args []string) {
	fs := flag.NewFlagSet("bake", flag.ExitOnError)
	out := fs.String("o", "", "Output path (default: overwrite input)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: coursetool bake <course.yaml> [-o out.yaml]")
		os.Exit(1)
	}
	path := fs.Arg(0)

	w, c := loadWorld(path)
	defer logger.Sync()

	w.Bake()

	dest := *out
	if dest == "" {
		dest = path
	}
	if err := c.SaveTo(dest); err != nil {
		logger.Error("failed to save baked course", zap.Error(err))
		os.Exit(1)
	}

	lo, hi := c.ElevationRange()
	fmt.Printf("Baked %s: elevation %.2f to %.2f yd -> %s\n", c.Name, lo, hi, dest)
}

func cmdRoll(args []string) {
	fs := flag.NewFlagSet("roll", flag.ExitOnError)
	x := fs.Float64("x", 0, "Start X in yards")
	y := fs.Float64("y", 0, "Start Y in yards")
	ax := fs.Float64("ax", 1, "Aim direction X")
	ay := fs.Float64("ay", 0, "Aim direction Y")
	feet := fs.Float64("feet", 10, "Requested roll distance in feet")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: coursetool roll <course.yaml> -x -y -ax -ay -feet")
		os.Exit(1)
	}

	w, _ := loadWorld(fs.Arg(0))
	defer logger.Sync()

	start := geom.Vec2{X: *x, Y: *y}
	res := w.Simulate(start, geom.Vec2{X: *ax, Y: *ay}, *feet)

	fmt.Printf("Start:   (%.2f, %.2f) on %s\n", start.X, start.Y, w.LieAt(start.X, start.Y))
	fmt.Printf("Rest:    (%.2f, %.2f) on %s\n", res.Rest.X, res.Rest.Y, w.LieAt(res.Rest.X, res.Rest.Y))
	fmt.Printf("Forward: %.2f ft (requested %.2f)\n", res.ForwardFeet, *feet)
	fmt.Printf("Break:   %.2f ft\n", res.LateralFeet)
	fmt.Printf("Rolled:  %.2fs at up to %.2f yd/s\n", res.Elapsed, res.MaxSpeed)
	if !res.Converged {
		fmt.Println("Warning: simulation hit the time bound before the ball stopped")
	}
}

func cmdLie(args []string) {
	fs := flag.NewFlagSet("lie", flag.ExitOnError)
	x := fs.Float64("x", 0, "X in yards")
	y := fs.Float64("y", 0, "Y in yards")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: coursetool lie <course.yaml> -x -y")
		os.Exit(1)
	}

	w, _ := loadWorld(fs.Arg(0))
	defer logger.Sync()

	slope := w.SlopeAt(*x, *y)
	fmt.Printf("Lie:       %s\n", w.LieAt(*x, *y))
	fmt.Printf("Elevation: %.3f yd\n", w.ElevationAt(*x, *y))
	fmt.Printf("Slope:     (%.4f, %.4f) grade %.4f\n", slope.DX, slope.DY, slope.Mag)
}
