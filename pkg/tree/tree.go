package tree

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/willbeason/fractal-tree/pkg/turtle"
)

// Rand is the source of randomness for a Generator. *rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// A Generator draws randomized binary trees through a shared Pen.
//
// The Generator holds no copy of the pen's state. Each branch returns the pen
// to where it began by issuing the inverse of every motion it made, which is
// what lets the two children of a split start from the same point.
type Generator struct {
	Config  Config
	Segment Segment
	Pen     turtle.Pen
	Rand    Rand

	// Logger receives per-pass detail at debug level.
	Logger *log.Logger

	Stats Stats
}

// Stats counts what a Generator has drawn.
type Stats struct {
	Segments int
	Leaves   int

	// Truncated counts branches dropped by the depth ceiling.
	Truncated int

	// Deepest is the greatest depth at which a segment was drawn.
	Deepest int

	// SegmentsByDepth[d] is the number of segments drawn at depth d.
	SegmentsByDepth []int
}

func NewGenerator(cfg Config, segment Segment, pen turtle.Pen, r Rand) *Generator {
	return &Generator{
		Config:  cfg,
		Segment: segment,
		Pen:     pen,
		Rand:    r,
		Logger:  log.New(io.Discard),
	}
}

// DrawBranch draws a branch of the given length at depth, and recursively
// all of its children.
//
// Unless the branch ends in a leaf or is past the depth ceiling, the pen's
// position and heading are the same on return as on entry.
func (g *Generator) DrawBranch(length float64, depth int) {
	if depth > g.Config.MaxDepth {
		g.Stats.Truncated++
		return
	}

	if length <= g.Config.MinLength {
		g.DrawLeaf()
		return
	}

	// The leaf is drawn where the branch would have started.
	if g.Rand.Float64() < g.Config.LeafProbability {
		g.DrawLeaf()
		return
	}

	g.Pen.SetColor(g.Config.BranchColor)
	g.Segment.Draw(g.Pen, length)
	g.countSegment(depth)

	angle := float64(g.sampleAngle())
	child := length - g.Config.LengthDecrement

	g.Pen.Turn(angle, turtle.Right)
	g.DrawBranch(child, depth+1)

	g.Pen.Turn(2*angle, turtle.Left)
	g.DrawBranch(child, depth+1)

	g.Pen.Turn(angle, turtle.Right)
	g.Segment.Undo(g.Pen, length)
}

// sampleAngle draws the split angle uniformly from the configured range,
// inclusive at both ends.
func (g *Generator) sampleAngle() int {
	lo, hi := g.Config.angleRange()
	return lo + g.Rand.Intn(hi-lo+1)
}

func (g *Generator) countSegment(depth int) {
	g.Stats.Segments++
	if depth > g.Stats.Deepest {
		g.Stats.Deepest = depth
	}
	for len(g.Stats.SegmentsByDepth) <= depth {
		g.Stats.SegmentsByDepth = append(g.Stats.SegmentsByDepth, 0)
	}
	g.Stats.SegmentsByDepth[depth]++
}
