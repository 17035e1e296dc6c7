package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
	"github.com/willbeason/fractal-tree/pkg/canvas"
	"github.com/willbeason/fractal-tree/pkg/config"
	"github.com/willbeason/fractal-tree/pkg/tree"
	"github.com/willbeason/fractal-tree/pkg/turtle"
)

type options struct {
	configPath string
	verbose    bool
	dryRun     bool

	// flagged holds flag values. Only flags set explicitly override the
	// configuration file.
	flagged config.File
}

// overrides copies each flag's value from src to dst.
var overrides = map[string]func(dst, src *config.File){
	"branch-length":    func(d, s *config.File) { d.Tree.BranchLength = s.Tree.BranchLength },
	"length-decrement": func(d, s *config.File) { d.Tree.LengthDecrement = s.Tree.LengthDecrement },
	"min-length":       func(d, s *config.File) { d.Tree.MinLength = s.Tree.MinLength },
	"angle":            func(d, s *config.File) { d.Tree.Angle = s.Tree.Angle },
	"angle-variation":  func(d, s *config.File) { d.Tree.AngleVariation = s.Tree.AngleVariation },
	"leaf-probability": func(d, s *config.File) { d.Tree.LeafProbability = s.Tree.LeafProbability },
	"max-depth":        func(d, s *config.File) { d.Tree.MaxDepth = s.Tree.MaxDepth },
	"branch-color":     func(d, s *config.File) { d.Tree.BranchColor = s.Tree.BranchColor },
	"leaf-color":       func(d, s *config.File) { d.Tree.LeafColor = s.Tree.LeafColor },
	"background-color": func(d, s *config.File) { d.Tree.BackgroundColor = s.Tree.BackgroundColor },
	"out":              func(d, s *config.File) { d.Render.Out = s.Render.Out },
	"width":            func(d, s *config.File) { d.Render.Width = s.Render.Width },
	"height":           func(d, s *config.File) { d.Render.Height = s.Render.Height },
	"scale":            func(d, s *config.File) { d.Render.Scale = s.Render.Scale },
	"line-width":       func(d, s *config.File) { d.Render.LineWidth = s.Render.LineWidth },
	"segment":          func(d, s *config.File) { d.Render.Segment = s.Render.Segment },
	"passes":           func(d, s *config.File) { d.Render.Passes = s.Render.Passes },
	"seed":             func(d, s *config.File) { d.Render.Seed = s.Render.Seed },
}

func mainCmd() *cobra.Command {
	opts := &options{flagged: config.Default()}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Draw a randomized fractal tree to a PNG",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	f := cmd.Flags()
	t, r := &opts.flagged.Tree, &opts.flagged.Render

	f.StringVar(&opts.configPath, "config", "", "TOML file of tree and render settings")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	f.BoolVar(&opts.dryRun, "dry-run", false, "generate the tree without rendering an image")

	f.Float64Var(&t.BranchLength, "branch-length", t.BranchLength, "length of the first branch")
	f.Float64Var(&t.LengthDecrement, "length-decrement", t.LengthDecrement, "length lost at each level")
	f.Float64Var(&t.MinLength, "min-length", t.MinLength, "branches this short or shorter become leaves")
	f.IntVar(&t.Angle, "angle", t.Angle, "base split angle in degrees")
	f.IntVar(&t.AngleVariation, "angle-variation", t.AngleVariation, "maximum random deviation from the split angle")
	f.Float64Var(&t.LeafProbability, "leaf-probability", t.LeafProbability, "chance a branch ends early in a leaf")
	f.IntVar(&t.MaxDepth, "max-depth", t.MaxDepth, "recursion ceiling")
	f.StringVar(&t.BranchColor, "branch-color", t.BranchColor, "branch color name or #hex")
	f.StringVar(&t.LeafColor, "leaf-color", t.LeafColor, "leaf color name or #hex")
	f.StringVar(&t.BackgroundColor, "background-color", t.BackgroundColor, "background color name or #hex")

	f.StringVarP(&r.Out, "out", "o", r.Out, "PNG file to write")
	f.IntVar(&r.Width, "width", r.Width, "image width in pixels")
	f.IntVar(&r.Height, "height", r.Height, "image height in pixels")
	f.Float64Var(&r.Scale, "scale", r.Scale, "pixels per unit of branch length")
	f.Float64Var(&r.LineWidth, "line-width", r.LineWidth, "stroke width in pixels")
	f.StringVar(&r.Segment, "segment", r.Segment, "branch shape: straight or arc")
	f.IntVar(&r.Passes, "passes", r.Passes, "number of layered trees drawn on the trunk")
	f.Int64Var(&r.Seed, "seed", r.Seed, "random seed; 0 seeds from the clock")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// settings layers explicitly-set flags over the configuration file.
func settings(cmd *cobra.Command, opts *options) (config.File, error) {
	file, err := config.Load(opts.configPath)
	if err != nil {
		return config.File{}, err
	}

	for name, apply := range overrides {
		if cmd.Flags().Changed(name) {
			apply(&file, &opts.flagged)
		}
	}

	return file, file.Validate()
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true
	start := time.Now()

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	gg.SetLogger(slog.New(logger))

	file, err := settings(cmd, opts)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return err
	}

	segment, err := tree.ParseSegment(file.Render.Segment)
	if err != nil {
		return err
	}

	seed := file.Render.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("configured", "seed", seed, "segment", file.Render.Segment, "passes", file.Render.Passes)

	var pen turtle.Pen
	if opts.dryRun {
		pen = turtle.NewRecorder()
	} else {
		out, err := os.Create(file.Render.Out)
		if err != nil {
			return err
		}
		defer out.Close()

		c, err := canvas.New(file.Render.Width, file.Render.Height, file.Tree.BackgroundColor,
			canvas.WithOutput(out),
			canvas.WithLineWidth(file.Render.LineWidth),
			canvas.WithScale(file.Render.Scale))
		if err != nil {
			return err
		}
		defer c.Close()
		pen = c
	}

	g := tree.NewGenerator(file.Tree.TreeConfig(), segment, pen, rand.New(rand.NewSource(seed)))
	g.Logger = logger

	if err := g.Run(file.Render.Passes); err != nil {
		logger.Error("drawing tree", "err", err)
		return fmt.Errorf("drawing tree: %w", err)
	}

	dest := file.Render.Out
	if opts.dryRun {
		dest = "(dry run)"
	}
	logger.Info("drew tree",
		"segments", g.Stats.Segments,
		"leaves", g.Stats.Leaves,
		"depth", g.Stats.Deepest,
		"truncated", g.Stats.Truncated,
		"out", dest,
		"elapsed", time.Since(start).Round(time.Millisecond))

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
