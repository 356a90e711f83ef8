package geometry

import (
	"fmt"
	"image/color"
)

// Appearance describes how a shape is drawn
type Appearance struct {
	Color     color.RGBA
	Material  string
	Thickness float64
}

// DefaultAppearance is used for shapes drawn without a style
var DefaultAppearance = Appearance{
	Color:     color.RGBA{R: 180, G: 180, B: 200, A: 255},
	Material:  "default",
	Thickness: 1,
}

// Renderable is implemented by shapes that carry presentation attributes.
// Plain Line and Face values do not implement it.
type Renderable interface {
	Appearance() Appearance
}

// StyledFace is a face decorated with an appearance
type StyledFace struct {
	*Face
	Style Appearance
}

// Appearance implements Renderable
func (s StyledFace) Appearance() Appearance {
	return s.Style
}

// StyledLine is a line decorated with an appearance
type StyledLine struct {
	*Line
	Style Appearance
}

// Appearance implements Renderable
func (s StyledLine) Appearance() Appearance {
	return s.Style
}

// AppearanceOf returns the appearance of v, or ErrNotApplicable if v carries
// no presentation attributes
func AppearanceOf(v any) (Appearance, error) {
	if r, ok := v.(Renderable); ok {
		return r.Appearance(), nil
	}
	return Appearance{}, fmt.Errorf("%w: %T has no appearance", ErrNotApplicable, v)
}
