package geometry

import "fmt"

// Line is a segment between two distinct points
type Line struct {
	PointGroup
}

// NewLine creates a line from p1 to p2
func NewLine(p1, p2 Point) (*Line, error) {
	g, err := NewPointGroup(2, p1, p2)
	if err != nil {
		return nil, err
	}
	return &Line{PointGroup: g}, nil
}

// Endpoints returns both ends of the line
func (l *Line) Endpoints() (Point, Point) {
	pts := l.Points()
	return pts[0], pts[1]
}

// Point returns endpoint i (0 or 1)
func (l *Line) Point(i int) (Point, error) {
	return l.At(i)
}

// Length returns the distance between the endpoints
func (l *Line) Length() float64 {
	a, b := l.Endpoints()
	return a.Distance(b)
}

// Midpoint returns the point halfway between the endpoints
func (l *Line) Midpoint() Point {
	a, b := l.Endpoints()
	return a.Add(b).Scale(0.5)
}

// SetPoints replaces both endpoints. The line is unchanged on error.
func (l *Line) SetPoints(p1, p2 Point) error {
	g, err := NewPointGroup(2, p1, p2)
	if err != nil {
		return err
	}
	l.PointGroup = g
	return nil
}

// Equal reports whether both lines join the same two points, in either direction
func (l *Line) Equal(other *Line) bool {
	if other == nil {
		return false
	}
	return l.PointGroup.Equal(other.PointGroup)
}

// Clone returns an independent copy of the line
func (l *Line) Clone() *Line {
	return &Line{PointGroup: l.PointGroup.Clone()}
}

func (l *Line) String() string {
	return fmt.Sprintf("Line%s", l.PointGroup.String())
}
