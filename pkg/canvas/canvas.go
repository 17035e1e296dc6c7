// Package canvas is a turtle.Pen which rasterizes onto an image with
// github.com/gogpu/gg and encodes the result as PNG.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/willbeason/fractal-tree/pkg/geometry"
	"github.com/willbeason/fractal-tree/pkg/turtle"
)

const (
	DefaultWidth     = 1024
	DefaultHeight    = 1024
	DefaultLineWidth = 1.0

	// fillStep is the angular resolution, in degrees, of arcs traced into a
	// fill polygon.
	fillStep = 5.0
)

// Canvas draws turtle motions onto a raster image.
//
// Turtle coordinates have their origin at the center of the image with Y
// pointing up, and are multiplied by the view scale before being mapped to
// pixels.
//
// Pen methods do not return errors. The first drawing error is kept and
// returned from Finalize, after which drawing is a no-op.
type Canvas struct {
	dc     *gg.Context
	width  int
	height int
	scale  float64

	state  turtle.Turtle
	colors map[string]color.Color
	fill   []geometry.XY

	out io.Writer
	err error
}

var _ turtle.Pen = (*Canvas)(nil)

// Option configures a Canvas.
type Option func(*Canvas)

// WithLineWidth sets the stroke width in pixels.
func WithLineWidth(w float64) Option {
	return func(c *Canvas) { c.dc.SetLineWidth(w) }
}

// WithScale sets the number of pixels per turtle unit.
func WithScale(s float64) Option {
	return func(c *Canvas) { c.scale = s }
}

// WithOutput sets where Finalize writes the encoded PNG. Without it Finalize
// only flushes pending drawing.
func WithOutput(w io.Writer) Option {
	return func(c *Canvas) { c.out = w }
}

// New returns a width by height Canvas cleared to background.
func New(width, height int, background string, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive: got %dx%d", width, height)
	}

	bg, err := ParseColor(background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	c := &Canvas{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
		scale:  1.0,
		state:  turtle.New(),
		colors: make(map[string]color.Color),
	}
	c.dc.ClearWithColor(gg.FromColor(bg))
	c.dc.SetLineWidth(DefaultLineWidth)
	c.dc.SetColor(color.Black)

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// toPixel maps a turtle point to image coordinates.
func (c *Canvas) toPixel(xy geometry.XY) (float64, float64) {
	p := geometry.Rescale(xy, c.scale, 0.0, geometry.XY{})
	return float64(c.width)/2 + p.X, float64(c.height)/2 - p.Y
}

func (c *Canvas) setErr(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

// State returns the current pen state.
func (c *Canvas) State() turtle.Turtle {
	return c.state
}

func (c *Canvas) Turn(degrees float64, dir turtle.Direction) {
	c.state.Turn(degrees, dir)
}

func (c *Canvas) Move(distance float64, penDown bool) {
	from, to := c.state.Move(distance, penDown)
	if c.err != nil {
		return
	}

	if c.state.Filling {
		c.fill = append(c.fill, to)
	}
	if !penDown {
		return
	}

	x1, y1 := c.toPixel(from)
	x2, y2 := c.toPixel(to)
	c.dc.ClearPath()
	c.dc.DrawLine(x1, y1, x2, y2)
	c.setErr(c.dc.Stroke())
}

func (c *Canvas) Arc(radius, extent float64) {
	path := c.state.Arc(radius, extent)
	if c.err != nil {
		return
	}

	if c.state.Filling {
		points := path.Points(fillStep)
		c.fill = append(c.fill, points[1:]...)
	}
	if path.Sweep == 0 || path.Radius == 0 {
		return
	}

	// Pixel space has Y pointing down, which reverses the sense of angles.
	a1 := -geometry.Radians(path.Start + path.Sweep)
	a2 := -geometry.Radians(path.Start)
	if a2 < a1 {
		a1, a2 = a2, a1
	}

	x, y := c.toPixel(path.Center)
	c.dc.ClearPath()
	c.dc.DrawArc(x, y, path.Radius*c.scale, a1, a2)
	c.setErr(c.dc.Stroke())
}

func (c *Canvas) SetColor(name string) {
	c.state.Color = name

	col, ok := c.colors[name]
	if !ok {
		var err error
		col, err = ParseColor(name)
		if err != nil {
			c.setErr(err)
			return
		}
		c.colors[name] = col
	}
	c.dc.SetColor(col)
}

func (c *Canvas) BeginFill() {
	c.state.Filling = true
	c.fill = append(c.fill[:0], c.state.Position)
}

// EndFill fills the polygon traced since BeginFill with the current color.
func (c *Canvas) EndFill() {
	c.state.Filling = false
	if c.err != nil || len(c.fill) < 3 {
		return
	}

	c.dc.ClearPath()
	for i, p := range c.fill {
		x, y := c.toPixel(p)
		if i == 0 {
			c.dc.MoveTo(x, y)
		} else {
			c.dc.LineTo(x, y)
		}
	}
	c.dc.ClosePath()
	c.setErr(c.dc.Fill())
	c.fill = c.fill[:0]
}

// Finalize flushes the drawing and, if an output is set, writes it as PNG.
func (c *Canvas) Finalize() error {
	if c.err != nil {
		return c.err
	}
	if err := c.dc.FlushGPU(); err != nil {
		return fmt.Errorf("flushing canvas: %w", err)
	}
	if c.out == nil {
		return nil
	}
	if err := c.dc.EncodePNG(c.out); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// Image returns the image drawn so far.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
