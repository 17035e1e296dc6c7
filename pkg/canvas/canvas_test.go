package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/fractal-tree/pkg/turtle"
)

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r > 0xf000 && g > 0xf000 && b > 0xf000
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r < 0x8000 && g < 0x8000 && b < 0x8000
}

func TestNew(t *testing.T) {
	c, err := New(64, 32, "white")
	require.NoError(t, err)
	defer c.Close()

	img := c.Image()
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
	assert.True(t, isWhite(img.At(0, 0)))
	assert.True(t, isWhite(img.At(63, 31)))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(0, 10, "white")
	assert.Error(t, err)

	_, err = New(10, 10, "not-a-color")
	assert.Error(t, err)
}

func TestMove(t *testing.T) {
	c, err := New(100, 100, "white", WithLineWidth(3))
	require.NoError(t, err)
	defer c.Close()

	c.SetColor("black")
	c.Move(40, true)

	img := c.Image()
	assert.True(t, isDark(img.At(70, 50)), "stroke along the heading")
	assert.True(t, isWhite(img.At(30, 50)), "nothing behind the pen")
	assert.True(t, isWhite(img.At(70, 20)), "nothing off the line")

	c.Turn(90, turtle.Left)
	c.Move(30, false)
	assert.True(t, isWhite(c.Image().At(90, 30)), "pen up draws nothing")

	assert.InDelta(t, 40.0, c.State().Position.X, 1e-9)
	assert.InDelta(t, 30.0, c.State().Position.Y, 1e-9)
}

func TestWithScale(t *testing.T) {
	c, err := New(100, 100, "white", WithLineWidth(3), WithScale(2))
	require.NoError(t, err)
	defer c.Close()

	c.SetColor("black")
	c.Move(20, true)

	assert.True(t, isDark(c.Image().At(85, 50)))
}

func TestFill(t *testing.T) {
	c, err := New(100, 100, "white")
	require.NoError(t, err)
	defer c.Close()

	c.SetColor("green")
	c.BeginFill()
	c.Arc(20, 360)
	c.EndFill()

	// The circle is centered 20 units left of (to the north of) the origin.
	r, g, b, _ := c.Image().At(50, 30).RGBA()
	assert.Less(t, r, uint32(0x4000))
	assert.Greater(t, g, uint32(0x4000))
	assert.Less(t, b, uint32(0x4000))
	assert.False(t, c.State().Filling)
}

func TestArcReturnsPen(t *testing.T) {
	c, err := New(200, 200, "white")
	require.NoError(t, err)
	defer c.Close()

	c.Arc(50, 60)
	c.Arc(-50, 60)

	assert.InDelta(t, 0.0, c.State().Position.X, 1e-9)
	assert.InDelta(t, 0.0, c.State().Position.Y, 1e-9)
	assert.InDelta(t, 0.0, c.State().Heading, 1e-9)
}

func TestFinalize(t *testing.T) {
	var buf bytes.Buffer
	c, err := New(40, 30, "#336699", WithOutput(&buf))
	require.NoError(t, err)
	defer c.Close()

	c.SetColor("brown")
	c.Move(10, true)
	require.NoError(t, c.Finalize())

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	// One 8-bit step of rounding slack.
	assert.InDelta(t, 0x3333, r, 0x101)
	assert.InDelta(t, 0x6666, g, 0x101)
	assert.InDelta(t, 0x9999, b, 0x101)
}

func TestFinalize_ColorError(t *testing.T) {
	var buf bytes.Buffer
	c, err := New(10, 10, "white", WithOutput(&buf))
	require.NoError(t, err)
	defer c.Close()

	c.SetColor("chartreuse-ish")
	c.Move(3, true)

	assert.ErrorContains(t, c.Finalize(), "chartreuse-ish")
	assert.Zero(t, buf.Len())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		want    color.RGBA
		wantErr bool
	}{
		{name: "brown", want: color.RGBA{R: 0xa5, G: 0x2a, B: 0x2a, A: 0xff}},
		{name: " Green ", want: color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}},
		{name: "#ff0000", want: color.RGBA{R: 0xff, A: 0xff}},
		{name: "#0f0", want: color.RGBA{G: 0xff, A: 0xff}},
		{name: "#12345", wantErr: true},
		{name: "#zzzzzz", wantErr: true},
		{name: "mauve-ish", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			r, g, b, a := got.RGBA()
			wr, wg, wb, wa := tt.want.RGBA()
			assert.Equal(t, []uint32{wr, wg, wb, wa}, []uint32{r, g, b, a})
		})
	}
}
