// Package config loads tree and rendering settings from TOML.
//
// Settings are layered: Default, then an optional file decoded on top, then
// whatever the caller overrides (the CLI applies explicitly-set flags).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/willbeason/fractal-tree/pkg/canvas"
	"github.com/willbeason/fractal-tree/pkg/tree"
)

// File is the on-disk form of a run's settings.
type File struct {
	Tree   Tree   `toml:"tree"`
	Render Render `toml:"render"`
}

// Tree mirrors tree.Config.
type Tree struct {
	BranchLength    float64 `toml:"branch_length"`
	LengthDecrement float64 `toml:"length_decrement"`
	MinLength       float64 `toml:"min_length"`
	Angle           int     `toml:"angle"`
	AngleVariation  int     `toml:"angle_variation"`
	LeafProbability float64 `toml:"leaf_probability"`
	MaxDepth        int     `toml:"max_depth"`
	BranchColor     string  `toml:"branch_color"`
	LeafColor       string  `toml:"leaf_color"`
	BackgroundColor string  `toml:"background_color"`
}

type Render struct {
	Out       string  `toml:"out"`
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Scale     float64 `toml:"scale"`
	LineWidth float64 `toml:"line_width"`
	Segment   string  `toml:"segment"`
	Passes    int     `toml:"passes"`
	// Seed 0 means seed from the clock.
	Seed int64 `toml:"seed"`
}

// Default returns the settings used when nothing is configured.
func Default() File {
	d := tree.DefaultConfig()
	return File{
		Tree: Tree{
			BranchLength:    d.BranchLength,
			LengthDecrement: d.LengthDecrement,
			MinLength:       d.MinLength,
			Angle:           d.BaseAngle,
			AngleVariation:  d.AngleVariation,
			LeafProbability: d.LeafProbability,
			MaxDepth:        d.MaxDepth,
			BranchColor:     d.BranchColor,
			LeafColor:       d.LeafColor,
			BackgroundColor: d.BackgroundColor,
		},
		Render: Render{
			Out:       "out.png",
			Width:     canvas.DefaultWidth,
			Height:    canvas.DefaultHeight,
			Scale:     1.0,
			LineWidth: canvas.DefaultLineWidth,
			Segment:   tree.SegmentArc,
			Passes:    tree.DefaultPasses,
		},
	}
}

// Load decodes the TOML file at path over Default. An empty path returns
// Default. Keys the file sets that File does not know are an error.
func Load(path string) (File, error) {
	f := Default()
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}

	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return File{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return File{}, fmt.Errorf("parsing %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return f, nil
}

// TreeConfig converts t to the generator's configuration.
func (t Tree) TreeConfig() tree.Config {
	return tree.Config{
		BranchLength:    t.BranchLength,
		LengthDecrement: t.LengthDecrement,
		MinLength:       t.MinLength,
		BaseAngle:       t.Angle,
		AngleVariation:  t.AngleVariation,
		LeafProbability: t.LeafProbability,
		MaxDepth:        t.MaxDepth,
		BranchColor:     t.BranchColor,
		LeafColor:       t.LeafColor,
		BackgroundColor: t.BackgroundColor,
	}
}

// Validate checks everything that would otherwise fail part way through
// drawing: the depth ceiling, the segment name, the colors and the canvas.
func (f File) Validate() error {
	var errs []error

	if err := f.Tree.TreeConfig().Validate(); err != nil {
		errs = append(errs, err)
	}

	if _, err := tree.ParseSegment(f.Render.Segment); err != nil {
		errs = append(errs, err)
	}

	for _, name := range []string{f.Tree.BranchColor, f.Tree.LeafColor, f.Tree.BackgroundColor} {
		if _, err := canvas.ParseColor(name); err != nil {
			errs = append(errs, err)
		}
	}

	if f.Render.Width <= 0 || f.Render.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size must be positive: got %dx%d", f.Render.Width, f.Render.Height))
	}
	if f.Render.Passes < 0 {
		errs = append(errs, fmt.Errorf("passes must not be negative: got %d", f.Render.Passes))
	}

	return errors.Join(errs...)
}
