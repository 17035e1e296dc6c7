package turtle

import (
	"math"

	"github.com/willbeason/fractal-tree/pkg/geometry"
)

// Turtle is the position and drawing state of a pen.
//
// Coordinates have Y pointing up. Heading is in degrees counter-clockwise
// from the positive X axis and is never normalized, so inverse motions
// restore it exactly.
type Turtle struct {
	Position geometry.XY
	Heading  float64
	PenDown  bool
	Filling  bool
	Color    string
}

// New returns a Turtle at the origin facing east with the pen down.
func New() Turtle {
	return Turtle{PenDown: true}
}

func (t *Turtle) Turn(degrees float64, dir Direction) {
	if dir == Right {
		degrees = -degrees
	}
	t.Heading += degrees
}

// Move advances the turtle and returns the start and end points.
func (t *Turtle) Move(distance float64, penDown bool) (from, to geometry.XY) {
	from = t.Position
	t.Position = t.Position.Add(geometry.Polar(distance, t.Heading))
	t.PenDown = penDown
	return from, t.Position
}

// Arc advances the turtle along a circular arc and returns the path it took.
func (t *Turtle) Arc(radius, extent float64) ArcPath {
	sweep := extent
	if radius < 0 {
		sweep = -extent
	}

	r := math.Abs(radius)
	path := ArcPath{
		Center: t.Position.Add(geometry.Polar(r, t.Heading+90)),
		Radius: r,
		Start:  t.Heading - 90,
		Sweep:  sweep,
	}

	t.Position = path.End()
	t.Heading += sweep
	return path
}

// ArcPath is a circular arc. Angles are in degrees and measured from Center.
type ArcPath struct {
	Center geometry.XY
	Radius float64
	Start  float64
	Sweep  float64
}

// At returns the point a fraction frac of the way along the arc.
func (a ArcPath) At(frac float64) geometry.XY {
	return a.Center.Add(geometry.Polar(a.Radius, a.Start+frac*a.Sweep))
}

func (a ArcPath) End() geometry.XY {
	return a.At(1.0)
}

// Points samples the arc at roughly every step degrees, including both ends.
func (a ArcPath) Points(step float64) []geometry.XY {
	n := int(math.Ceil(math.Abs(a.Sweep) / step))
	if n < 1 {
		n = 1
	}

	points := make([]geometry.XY, 0, n+1)
	for i := 0; i <= n; i++ {
		points = append(points, a.At(float64(i)/float64(n)))
	}
	return points
}
