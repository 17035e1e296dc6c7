// Package turtle defines the immediate-mode pen that tree generation draws
// through, along with the exact pen-state arithmetic shared by every
// implementation.
package turtle

// Direction is the sense of a heading change.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// A Pen is a drawing collaborator with a position and heading.
//
// Callers share one Pen by reference and restore it by issuing the inverse of
// every motion they made, so implementations must apply motions exactly.
type Pen interface {
	// Turn rotates the heading by degrees in the given direction.
	Turn(degrees float64, dir Direction)

	// Move advances along the heading. A negative distance moves backward.
	// The stroke is drawn only if penDown is set.
	Move(distance float64, penDown bool)

	// Arc traces a circular arc of the given radius through extent degrees.
	// The center is abs(radius) to the pen's left. A negative radius traces
	// the same circle backward, exactly undoing Arc(-radius, extent).
	Arc(radius, extent float64)

	// SetColor sets the stroke and fill color by name.
	SetColor(name string)

	BeginFill()
	EndFill()

	// Finalize flushes the completed drawing.
	Finalize() error
}
