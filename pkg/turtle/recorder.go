package turtle

import "github.com/willbeason/fractal-tree/pkg/geometry"

type Op int

const (
	OpTurn Op = iota
	OpMove
	OpArc
	OpColor
	OpBeginFill
	OpEndFill
	OpFinalize
)

var opNames = [...]string{"turn", "move", "arc", "color", "begin_fill", "end_fill", "finalize"}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "unknown"
	}
	return opNames[op]
}

// A Command is one call made on a Recorder, along with the pen state
// immediately after it was applied.
type Command struct {
	Op Op

	// Degrees and Dir are set for OpTurn.
	Degrees float64
	Dir     Direction

	// Distance and PenDown are set for OpMove.
	Distance float64
	PenDown  bool

	// Radius and Extent are set for OpArc.
	Radius float64
	Extent float64

	// Color is set for OpColor.
	Color string

	Position geometry.XY
	Heading  float64
}

// Recorder is a headless Pen which keeps every command issued to it.
type Recorder struct {
	state     Turtle
	Commands  []Command
	Finalized bool
}

var _ Pen = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{state: New()}
}

func (r *Recorder) record(c Command) {
	c.Position = r.state.Position
	c.Heading = r.state.Heading
	r.Commands = append(r.Commands, c)
}

func (r *Recorder) Turn(degrees float64, dir Direction) {
	r.state.Turn(degrees, dir)
	r.record(Command{Op: OpTurn, Degrees: degrees, Dir: dir})
}

func (r *Recorder) Move(distance float64, penDown bool) {
	r.state.Move(distance, penDown)
	r.record(Command{Op: OpMove, Distance: distance, PenDown: penDown})
}

func (r *Recorder) Arc(radius, extent float64) {
	r.state.Arc(radius, extent)
	r.record(Command{Op: OpArc, Radius: radius, Extent: extent})
}

func (r *Recorder) SetColor(name string) {
	r.state.Color = name
	r.record(Command{Op: OpColor, Color: name})
}

func (r *Recorder) BeginFill() {
	r.state.Filling = true
	r.record(Command{Op: OpBeginFill})
}

func (r *Recorder) EndFill() {
	r.state.Filling = false
	r.record(Command{Op: OpEndFill})
}

func (r *Recorder) Finalize() error {
	r.Finalized = true
	r.record(Command{Op: OpFinalize})
	return nil
}

// State returns the current pen state.
func (r *Recorder) State() Turtle {
	return r.state
}

// Count returns how many commands of the given kind were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded commands for which keep returns true.
func (r *Recorder) Filter(keep func(Command) bool) []Command {
	var result []Command
	for _, c := range r.Commands {
		if keep(c) {
			result = append(result, c)
		}
	}
	return result
}

// Reset discards recorded commands without moving the pen.
func (r *Recorder) Reset() {
	r.Commands = nil
	r.Finalized = false
}
