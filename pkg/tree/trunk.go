package tree

import "github.com/willbeason/fractal-tree/pkg/turtle"

const (
	// TrunkOffset is how far below the origin the trunk starts.
	TrunkOffset = 300.0

	// TrunkFactor is the length of the visible trunk relative to BranchLength.
	TrunkFactor = 1.5

	// DefaultPasses is the number of trees layered on the trunk.
	DefaultPasses = 5

	// PassScaleStep is how much shorter each pass is than the last, as a
	// fraction of BranchLength.
	PassScaleStep = 0.05
)

// Trunk points the pen up, lifts it to the base of the trunk and draws the
// trunk stub. Trees drawn afterwards grow from its top.
func (g *Generator) Trunk() {
	g.Pen.Turn(90, turtle.Left)
	g.Pen.Move(-TrunkOffset, false)
	g.Pen.SetColor(g.Config.BranchColor)
	g.Pen.Move(g.Config.BranchLength*TrunkFactor, true)
}

// PassScale is the length multiplier for the given zero-based pass.
func PassScale(pass int) float64 {
	return 1.0 - PassScaleStep*float64(pass)
}

// Run draws the trunk, then passes overlapping trees of decreasing size from
// its top, then finalizes the pen.
func (g *Generator) Run(passes int) error {
	if err := g.Config.Validate(); err != nil {
		return err
	}

	g.Trunk()

	for p := 0; p < passes; p++ {
		length := g.Config.BranchLength * PassScale(p)
		before := g.Stats

		g.DrawBranch(length, 0)

		g.Logger.Debug("pass complete",
			"pass", p+1,
			"length", length,
			"segments", g.Stats.Segments-before.Segments,
			"leaves", g.Stats.Leaves-before.Leaves)
	}

	return g.Pen.Finalize()
}
