package geometry

import "math"

// Cuboid is the axis-aligned box enclosing a set of points. The zero value
// is not usable; start from NewCuboid.
type Cuboid struct {
	Min   Point
	Max   Point
	count int
}

// NewCuboid returns an empty cuboid that encloses nothing
func NewCuboid() Cuboid {
	return Cuboid{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// CuboidOf returns the cuboid enclosing all given points
func CuboidOf(points ...Point) Cuboid {
	c := NewCuboid()
	for _, p := range points {
		c.Extend(p)
	}
	return c
}

// Extend grows the cuboid to include p
func (c *Cuboid) Extend(p Point) {
	c.Min = c.Min.Min(p)
	c.Max = c.Max.Max(p)
	c.count++
}

// Empty reports whether no point has been added yet
func (c Cuboid) Empty() bool {
	return c.count == 0
}

// Size returns the extents along X, Y and Z
func (c Cuboid) Size() Point {
	if c.Empty() {
		return Point{}
	}
	return c.Max.Sub(c.Min)
}

// Length is the extent along X
func (c Cuboid) Length() float64 {
	return c.Size().X
}

// Width is the extent along Y
func (c Cuboid) Width() float64 {
	return c.Size().Y
}

// Height is the extent along Z
func (c Cuboid) Height() float64 {
	return c.Size().Z
}

// Area returns the surface area of the box
func (c Cuboid) Area() float64 {
	s := c.Size()
	return 2 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}

// Volume returns the volume of the box
func (c Cuboid) Volume() float64 {
	s := c.Size()
	return s.X * s.Y * s.Z
}

// Center returns the middle of the box, or the origin when empty
func (c Cuboid) Center() Point {
	if c.Empty() {
		return Point{}
	}
	return c.Min.Add(c.Max).Scale(0.5)
}

// Diagonal returns the length of the box diagonal
func (c Cuboid) Diagonal() float64 {
	return c.Size().Length()
}
