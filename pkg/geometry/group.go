package geometry

import (
	"fmt"
	"strings"

	"github.com/philipparndt/geomodel/pkg/set"
)

// PointGroup is a set of distinct points whose size is fixed at creation.
// Points can be swapped one for another but never added or removed.
type PointGroup struct {
	points *set.Set[Point]
}

// NewPointGroup creates a group of exactly k distinct points
func NewPointGroup(k int, points ...Point) (PointGroup, error) {
	if k <= 0 || len(points) != k {
		return PointGroup{}, fmt.Errorf("%w: expected %d points, got %d", ErrPointCountMismatch, k, len(points))
	}

	for _, p := range points {
		if !p.IsFinite() {
			return PointGroup{}, fmt.Errorf("%w: %s", ErrNonFinitePoint, p)
		}
	}

	s, err := set.WithCapacity[Point](k)
	if err != nil {
		return PointGroup{}, err
	}
	for _, p := range points {
		if s.Contains(p) {
			continue
		}
		if err := s.Add(p); err != nil {
			return PointGroup{}, err
		}
	}
	if s.Len() != k {
		return PointGroup{}, fmt.Errorf("%w: only %d of %d points are distinct", ErrPointCountMismatch, s.Len(), k)
	}
	return PointGroup{points: s}, nil
}

// Arity returns the fixed number of points
func (g PointGroup) Arity() int {
	if g.points == nil {
		return 0
	}
	return g.points.Cap()
}

// Len returns the number of points, which always equals Arity for a valid group
func (g PointGroup) Len() int {
	return g.points.Len()
}

// Points returns a copy of the points in order
func (g PointGroup) Points() []Point {
	return g.points.Items()
}

// At returns the point at position i
func (g PointGroup) At(i int) (Point, error) {
	if g.points == nil {
		return Point{}, fmt.Errorf("%w: empty group", set.ErrIndexOutOfRange)
	}
	return g.points.At(i)
}

// Contains reports whether p is one of the points
func (g PointGroup) Contains(p Point) bool {
	return g.points.Contains(p)
}

// IndexOf returns the position of p, or -1
func (g PointGroup) IndexOf(p Point) int {
	return g.points.IndexOf(p)
}

// ChangePoint replaces old with p, keeping its position
func (g *PointGroup) ChangePoint(old, p Point) error {
	if !p.IsFinite() {
		return fmt.Errorf("%w: %s", ErrNonFinitePoint, p)
	}
	if g.points.Contains(p) {
		return ErrDuplicatePoint
	}
	return g.points.Change(old, p)
}

// ChangePointAt replaces the point at position i with p
func (g *PointGroup) ChangePointAt(i int, p Point) error {
	old, err := g.At(i)
	if err != nil {
		return err
	}
	return g.ChangePoint(old, p)
}

// AddPoint always fails: the arity is fixed
func (g *PointGroup) AddPoint(Point) error {
	return ErrFixedArity
}

// RemovePoint always fails: the arity is fixed
func (g *PointGroup) RemovePoint(Point) error {
	return ErrFixedArity
}

// ClearPoints always fails: the arity is fixed
func (g *PointGroup) ClearPoints() error {
	return ErrFixedArity
}

// Equal reports whether both groups hold the same points in any order
func (g PointGroup) Equal(other PointGroup) bool {
	return g.points.Equal(other.points)
}

// Clone returns a group that shares no state with g
func (g PointGroup) Clone() PointGroup {
	if g.points == nil {
		return PointGroup{}
	}
	return PointGroup{points: g.points.Clone()}
}

// String formats the group as "{(x y z) (x y z)}"
func (g PointGroup) String() string {
	parts := make([]string, 0, g.Len())
	for _, p := range g.points.All() {
		parts = append(parts, "("+p.String()+")")
	}
	return "{" + strings.Join(parts, " ") + "}"
}
