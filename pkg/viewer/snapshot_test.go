package viewer

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/philipparndt/geomodel/pkg/geometry"
	"github.com/philipparndt/geomodel/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCamera(t *testing.T) {
	bounds := geometry.CuboidOf(geometry.NewPoint(0, 0, 0), geometry.NewPoint(2, 4, 6))
	c := NewCamera(bounds)

	assert.Equal(t, geometry.NewPoint(1, 2, 3), c.Target)
	assert.Equal(t, 12.0, c.Distance)
	assert.InDelta(t, 12.0, c.Position.Distance(c.Target), 1e-9)
}

func TestNewCameraEmptyBounds(t *testing.T) {
	c := NewCamera(geometry.NewCuboid())
	assert.Equal(t, 1.0, c.Distance)
	assert.False(t, math.IsNaN(c.Position.Z))
}

func TestCameraRotateClampsElevation(t *testing.T) {
	c := NewCamera(geometry.CuboidOf(geometry.NewPoint(0, 0, 0), geometry.NewPoint(1, 1, 1)))
	c.Rotate(10, 0)
	assert.InDelta(t, math.Pi/2-0.1, c.RotationX, 1e-12)

	c.Zoom(-0.999)
	assert.Equal(t, 0.1, c.Distance)
}

func TestProjectTargetToCenter(t *testing.T) {
	c := NewCamera(geometry.CuboidOf(geometry.NewPoint(-1, -1, -1), geometry.NewPoint(1, 1, 1)))
	x, y, z := c.Project(c.Target, 200, 100)

	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)
	assert.InDelta(t, c.Distance, z, 1e-9)
}

func TestFillTriangleDepth(t *testing.T) {
	bg := color.RGBA{A: 255}
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	c := newCanvas(20, 20, bg)
	c.fillTriangle(vertex{0, 0, 5}, vertex{19, 0, 5}, vertex{0, 19, 5}, red)
	assert.Equal(t, red, c.img.RGBAAt(2, 2))
	assert.Equal(t, bg, c.img.RGBAAt(18, 18))

	// farther triangle does not overwrite
	c.fillTriangle(vertex{0, 0, 9}, vertex{19, 0, 9}, vertex{0, 19, 9}, blue)
	assert.Equal(t, red, c.img.RGBAAt(2, 2))

	// nearer one does
	c.fillTriangle(vertex{0, 0, 1}, vertex{19, 0, 1}, vertex{0, 19, 1}, blue)
	assert.Equal(t, blue, c.img.RGBAAt(2, 2))
}

func TestDrawLine(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	c := newCanvas(10, 10, color.RGBA{A: 255})
	c.drawLine(vertex{0, 0, 1}, vertex{9, 9, 1}, 1, white)

	for i := 0; i < 10; i++ {
		assert.Equal(t, white, c.img.RGBAAt(i, i), "pixel %d", i)
	}
	// clipped segments do not panic
	c.drawLine(vertex{-5, -5, 1}, vertex{30, 4, 1}, 3, white)
}

func TestWritePNG(t *testing.T) {
	m := model.NewModel("snap")
	_, err := m.AddFacePoints(geometry.NewPoint(0, 0, 0), geometry.NewPoint(1, 0, 0), geometry.NewPoint(0, 1, 0))
	require.NoError(t, err)
	_, err = m.AddLinePoints(geometry.NewPoint(0, 0, 0), geometry.NewPoint(0, 0, 1))
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Width, opts.Height = 64, 48

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, m, opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	// something besides the background was drawn
	rendered, err := Render(m, opts)
	require.NoError(t, err)
	drawn := 0
	for i := 0; i < len(rendered.Pix); i += 4 {
		if rendered.Pix[i] != opts.Background.R || rendered.Pix[i+1] != opts.Background.G || rendered.Pix[i+2] != opts.Background.B {
			drawn++
		}
	}
	assert.Positive(t, drawn)
}

func TestRenderRejectsInvalidSize(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 0
	_, err := Render(model.NewModel(""), opts)
	assert.Error(t, err)
}
