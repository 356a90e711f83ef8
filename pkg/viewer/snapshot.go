package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/philipparndt/geomodel/pkg/geometry"
	"github.com/philipparndt/geomodel/pkg/model"
)

// Options control a snapshot
type Options struct {
	Width      int
	Height     int
	Background color.RGBA
	Face       geometry.Appearance
	Line       geometry.Appearance
	RotationX  float64 // Elevation in radians
	RotationY  float64 // Azimuth in radians
	Caption    bool    // Draw the model name and counts in the top left corner
}

// DefaultOptions returns a three-quarter view on a dark background
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     600,
		Background: color.RGBA{R: 30, G: 30, B: 36, A: 255},
		Face:       geometry.DefaultAppearance,
		Line: geometry.Appearance{
			Color:     color.RGBA{R: 255, G: 200, B: 60, A: 255},
			Material:  "wire",
			Thickness: 1,
		},
		RotationX: math.Pi / 6,
		RotationY: math.Pi / 4,
		Caption:   true,
	}
}

// Render draws the model with flat shading: each face is lit by a light
// placed at the camera
func Render(m *model.Model, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}

	camera := NewCamera(m.Bounds())
	camera.Rotate(opts.RotationX, opts.RotationY)
	view := camera.ViewDirection()

	c := newCanvas(opts.Width, opts.Height, opts.Background)
	w, h := float64(opts.Width), float64(opts.Height)

	project := func(p geometry.Point) vertex {
		x, y, z := camera.Project(p, w, h)
		return vertex{x: x, y: y, z: z}
	}

	for _, f := range m.Faces() {
		a, b, cc := f.Vertices()
		intensity := math.Abs(f.Normal().Dot(view))
		col := shade(opts.Face.Color, 0.25+0.75*intensity)
		c.fillTriangle(project(a), project(b), project(cc), col)
	}

	thickness := int(math.Round(opts.Line.Thickness))
	for _, l := range m.Lines() {
		a, b := l.Endpoints()
		c.drawLine(project(a), project(b), thickness, opts.Line.Color)
	}

	if opts.Caption {
		s := m.Stats()
		drawCaption(c.img, fmt.Sprintf("%s  faces:%d lines:%d", m.Name, s.FaceCount, s.LineCount))
	}

	return c.img, nil
}

// WritePNG renders the model and encodes the image as PNG
func WritePNG(w io.Writer, m *model.Model, opts Options) error {
	img, err := Render(m, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// shade scales the color channels by f, keeping alpha
func shade(col color.RGBA, f float64) color.RGBA {
	f = math.Max(0, math.Min(1, f))
	return color.RGBA{
		R: uint8(float64(col.R) * f),
		G: uint8(float64(col.G) * f),
		B: uint8(float64(col.B) * f),
		A: col.A,
	}
}

func drawCaption(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	padding := 4
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 230, G: 230, B: 230, A: 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(padding), Y: fixed.I(padding + face.Metrics().Ascent.Ceil())},
	}
	d.DrawString(text)
}
