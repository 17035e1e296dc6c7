package tree

import (
	"errors"
	"fmt"
)

// ErrInvalidMaxDepth is returned when a Config has no room to recurse.
var ErrInvalidMaxDepth = errors.New("max depth must be positive")

// Config is the shape of a tree. It is not modified while drawing.
type Config struct {
	// BranchLength is the length of the first branch of each pass.
	BranchLength float64

	// LengthDecrement is subtracted from the branch length at each level.
	LengthDecrement float64

	// MinLength is the length at or below which a branch becomes a leaf.
	MinLength float64

	// BaseAngle is the turn, in degrees, between a branch and each child.
	// Each split draws one angle uniformly from
	// [BaseAngle-AngleVariation, BaseAngle+AngleVariation].
	BaseAngle      int
	AngleVariation int

	// LeafProbability is the chance a branch longer than MinLength ends in
	// a leaf instead of growing.
	LeafProbability float64

	// MaxDepth is a hard ceiling on recursion, independent of length.
	MaxDepth int

	BranchColor     string
	LeafColor       string
	BackgroundColor string
}

// DefaultConfig returns a tree of about eight levels with occasional early
// leaves.
func DefaultConfig() Config {
	return Config{
		BranchLength:    100,
		LengthDecrement: 10,
		MinLength:       20,
		BaseAngle:       15,
		AngleVariation:  20,
		LeafProbability: 0.15,
		MaxDepth:        300,
		BranchColor:     "brown",
		LeafColor:       "green",
		BackgroundColor: "white",
	}
}

// Validate reports configurations that cannot be drawn. Every other value is
// accepted as-is.
func (c Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxDepth, c.MaxDepth)
	}
	return nil
}

// angleRange is the inclusive range split angles are drawn from.
func (c Config) angleRange() (lo, hi int) {
	v := c.AngleVariation
	if v < 0 {
		v = -v
	}
	return c.BaseAngle - v, c.BaseAngle + v
}
