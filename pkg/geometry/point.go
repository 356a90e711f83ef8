package geometry

import (
	"math"
	"strconv"
)

// Point is an immutable position in 3D space. Two points are equal when all
// three components are equal, so Point can be compared with == and used as a
// map key.
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of two points
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y, Z: p.Z + other.Z}
}

// Sub returns the vector from other to p
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// Scale multiplies every component by f
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f, Z: p.Z * f}
}

// Dot returns the dot product of p and other treated as vectors
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y + p.Z*other.Z
}

// Cross returns the cross product of p and other treated as vectors
func (p Point) Cross(other Point) Point {
	return Point{
		X: p.Y*other.Z - p.Z*other.Y,
		Y: p.Z*other.X - p.X*other.Z,
		Z: p.X*other.Y - p.Y*other.X,
	}
}

// Length returns the distance of p from the origin
func (p Point) Length() float64 {
	return math.Sqrt(p.Dot(p))
}

// Distance returns the Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// Normalize returns the unit vector pointing the same way as p.
// The zero vector normalizes to itself.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return p.Scale(1 / l)
}

// Min returns the component-wise minimum of two points
func (p Point) Min(other Point) Point {
	return Point{X: math.Min(p.X, other.X), Y: math.Min(p.Y, other.Y), Z: math.Min(p.Z, other.Z)}
}

// Max returns the component-wise maximum of two points
func (p Point) Max(other Point) Point {
	return Point{X: math.Max(p.X, other.X), Y: math.Max(p.Y, other.Y), Z: math.Max(p.Z, other.Z)}
}

// IsFinite reports whether no coordinate is NaN or infinite
func (p Point) IsFinite() bool {
	for _, c := range p.Components() {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Components returns the coordinates as an array indexed by axis
func (p Point) Components() [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

// Format renders the coordinates separated by single spaces using the given
// number of significant decimals. A precision of -1 gives the shortest
// representation that parses back to the same value.
func (p Point) Format(precision int) string {
	buf := make([]byte, 0, 48)
	buf = strconv.AppendFloat(buf, p.X, 'g', precision, 64)
	buf = append(buf, ' ')
	buf = strconv.AppendFloat(buf, p.Y, 'g', precision, 64)
	buf = append(buf, ' ')
	buf = strconv.AppendFloat(buf, p.Z, 'g', precision, 64)
	return string(buf)
}

// String implements fmt.Stringer
func (p Point) String() string {
	return p.Format(-1)
}
