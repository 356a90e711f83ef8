package geometry

import (
	"fmt"
	"math"
)

// Face is a triangle with three distinct vertices
type Face struct {
	PointGroup
}

// NewFace creates a triangle from three distinct points
func NewFace(p1, p2, p3 Point) (*Face, error) {
	if p1 == p2 || p2 == p3 || p1 == p3 {
		return nil, ErrDuplicatePoints
	}
	g, err := NewPointGroup(3, p1, p2, p3)
	if err != nil {
		return nil, err
	}
	return &Face{PointGroup: g}, nil
}

// Vertices returns the three corners in order
func (f *Face) Vertices() (Point, Point, Point) {
	pts := f.Points()
	return pts[0], pts[1], pts[2]
}

// Point returns vertex i (0, 1 or 2)
func (f *Face) Point(i int) (Point, error) {
	return f.At(i)
}

// EdgeLengths returns the lengths of the three edges v1-v2, v2-v3, v3-v1
func (f *Face) EdgeLengths() [3]float64 {
	a, b, c := f.Vertices()
	return [3]float64{a.Distance(b), b.Distance(c), c.Distance(a)}
}

// Perimeter returns the sum of the edge lengths
func (f *Face) Perimeter() float64 {
	e := f.EdgeLengths()
	return e[0] + e[1] + e[2]
}

// Area returns the triangle area using Heron's formula. Rounding on
// near-degenerate triangles can push the radicand below zero; it is clamped.
func (f *Face) Area() float64 {
	e := f.EdgeLengths()
	s := (e[0] + e[1] + e[2]) / 2
	r := s * (s - e[0]) * (s - e[1]) * (s - e[2])
	if r <= 0 {
		return 0
	}
	return math.Sqrt(r)
}

// Normal returns the unit normal following the right-hand rule over the
// vertex order. Degenerate triangles have a zero normal.
func (f *Face) Normal() Point {
	a, b, c := f.Vertices()
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Centroid returns the average of the three vertices
func (f *Face) Centroid() Point {
	a, b, c := f.Vertices()
	return a.Add(b).Add(c).Scale(1.0 / 3.0)
}

// SetPoints replaces all three vertices. The face is unchanged on error.
func (f *Face) SetPoints(p1, p2, p3 Point) error {
	if p1 == p2 || p2 == p3 || p1 == p3 {
		return ErrDuplicatePoints
	}
	g, err := NewPointGroup(3, p1, p2, p3)
	if err != nil {
		return err
	}
	f.PointGroup = g
	return nil
}

// facePermutations lists every vertex ordering of a triangle
var facePermutations = [6][3]int{
	{0, 1, 2}, {0, 2, 1},
	{1, 0, 2}, {1, 2, 0},
	{2, 0, 1}, {2, 1, 0},
}

// Equal reports whether other has the same vertices in some order
func (f *Face) Equal(other *Face) bool {
	if other == nil {
		return false
	}
	a := f.Points()
	b := other.Points()
	for _, p := range facePermutations {
		if a[0] == b[p[0]] && a[1] == b[p[1]] && a[2] == b[p[2]] {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the face
func (f *Face) Clone() *Face {
	return &Face{PointGroup: f.PointGroup.Clone()}
}

func (f *Face) String() string {
	return fmt.Sprintf("Face%s", f.PointGroup.String())
}
