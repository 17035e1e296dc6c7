package tree

import (
	"fmt"
	"strings"

	"github.com/willbeason/fractal-tree/pkg/turtle"
)

// DefaultArcExtent is the sweep, in degrees, of an arc branch.
const DefaultArcExtent = 60.0

// A Segment is the shape of one branch body.
//
// Undo must exactly reverse Draw for the same length, returning the pen to
// the position and heading it had before Draw.
type Segment interface {
	Draw(pen turtle.Pen, length float64)
	Undo(pen turtle.Pen, length float64)
}

// Straight branches are line segments.
type Straight struct{}

func (Straight) Draw(pen turtle.Pen, length float64) {
	pen.Move(length, true)
}

func (Straight) Undo(pen turtle.Pen, length float64) {
	pen.Move(-length, true)
}

// Arc branches bend left along a circle whose diameter is the branch length.
type Arc struct {
	Extent float64
}

func (a Arc) Draw(pen turtle.Pen, length float64) {
	pen.Arc(length/2, a.Extent)
}

func (a Arc) Undo(pen turtle.Pen, length float64) {
	pen.Arc(-length/2, a.Extent)
}

// Segment names accepted by ParseSegment.
const (
	SegmentStraight = "straight"
	SegmentArc      = "arc"
)

// ParseSegment returns the Segment with the given name.
func ParseSegment(name string) (Segment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case SegmentStraight:
		return Straight{}, nil
	case SegmentArc:
		return Arc{Extent: DefaultArcExtent}, nil
	default:
		return nil, fmt.Errorf("unknown segment %q: want %q or %q", name, SegmentStraight, SegmentArc)
	}
}
