package tree

import "github.com/willbeason/fractal-tree/pkg/turtle"

const (
	// LeafTilt is how far a leaf is turned left of the branch heading.
	LeafTilt = 45.0

	// A leaf is two lobes, each a quarter circle of LeafOuterRadius followed
	// by a quarter circle of LeafInnerRadius.
	LeafOuterRadius = 4.0
	LeafInnerRadius = 2.0
	leafLobes       = 2
	leafLobeExtent  = 90.0
)

// DrawLeaf draws a small filled oval at the pen.
//
// The heading is unchanged on return. The position is not: the oval does not
// close on itself, and nothing is drawn after a leaf that would depend on it.
func (g *Generator) DrawLeaf() {
	pen := g.Pen

	pen.SetColor(g.Config.LeafColor)
	pen.BeginFill()
	pen.Turn(LeafTilt, turtle.Left)
	for range leafLobes {
		pen.Arc(LeafOuterRadius, leafLobeExtent)
		pen.Arc(LeafInnerRadius, leafLobeExtent)
	}
	pen.Turn(LeafTilt, turtle.Right)
	pen.EndFill()
	pen.SetColor(g.Config.BranchColor)

	g.Stats.Leaves++
}
