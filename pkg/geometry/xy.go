package geometry

import "math"

// XY is a point or displacement in the plane.
type XY struct {
	X, Y float64
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// Polar returns the displacement of length r in the direction angle,
// measured in degrees counter-clockwise from the positive X axis.
func Polar(r, angle float64) XY {
	sin, cos := math.Sincos(Radians(angle))
	return XY{X: r * cos, Y: r * sin}
}

func (xy XY) Add(o XY) XY {
	return XY{X: xy.X + o.X, Y: xy.Y + o.Y}
}

func (xy XY) Sub(o XY) XY {
	return XY{X: xy.X - o.X, Y: xy.Y - o.Y}
}

func (xy XY) Scale(s float64) XY {
	return XY{X: xy.X * s, Y: xy.Y * s}
}

// Distance is the Euclidean distance between two points.
func (xy XY) Distance(o XY) float64 {
	return math.Hypot(xy.X-o.X, xy.Y-o.Y)
}

// Rescale scales xy about the origin, rotates it counter-clockwise by angle
// radians, and then translates it by offset.
func Rescale(xy XY, scale float64, angle float64, offset XY) XY {
	x := xy.X * scale
	y := xy.Y * scale

	x2 := x*math.Cos(angle) - y*math.Sin(angle) + offset.X
	y2 := x*math.Sin(angle) + y*math.Cos(angle) + offset.Y

	return XY{X: x2, Y: y2}
}
