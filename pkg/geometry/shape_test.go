package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/geomodel/pkg/set"
)

func mustFace(t *testing.T, p1, p2, p3 Point) *Face {
	t.Helper()
	f, err := NewFace(p1, p2, p3)
	if err != nil {
		t.Fatalf("NewFace failed: %v", err)
	}
	return f
}

func mustLine(t *testing.T, p1, p2 Point) *Line {
	t.Helper()
	l, err := NewLine(p1, p2)
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}
	return l
}

func TestPointGroupArity(t *testing.T) {
	if _, err := NewPointGroup(3, NewPoint(0, 0, 0), NewPoint(1, 0, 0)); !errors.Is(err, ErrPointCountMismatch) {
		t.Errorf("Expected ErrPointCountMismatch for short input, got %v", err)
	}

	_, err := NewPointGroup(3, NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 0, 0))
	if !errors.Is(err, ErrPointCountMismatch) {
		t.Errorf("Expected ErrPointCountMismatch for repeated point, got %v", err)
	}

	g, err := NewPointGroup(2, NewPoint(0, 0, 0), NewPoint(1, 0, 0))
	if err != nil {
		t.Fatalf("NewPointGroup failed: %v", err)
	}
	if g.Arity() != 2 || g.Len() != 2 {
		t.Errorf("Arity failed: expected 2/2, got %d/%d", g.Arity(), g.Len())
	}

	for name, err := range map[string]error{
		"AddPoint":    g.AddPoint(NewPoint(5, 5, 5)),
		"RemovePoint": g.RemovePoint(NewPoint(0, 0, 0)),
		"ClearPoints": g.ClearPoints(),
	} {
		if !errors.Is(err, ErrFixedArity) {
			t.Errorf("%s: expected ErrFixedArity, got %v", name, err)
		}
	}
	if g.Len() != 2 {
		t.Errorf("Fixed arity violated: length %d", g.Len())
	}
}

func TestPointGroupChangePoint(t *testing.T) {
	g, err := NewPointGroup(3, NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0))
	if err != nil {
		t.Fatalf("NewPointGroup failed: %v", err)
	}

	if err := g.ChangePoint(NewPoint(1, 0, 0), NewPoint(0, 1, 0)); !errors.Is(err, ErrDuplicatePoint) {
		t.Errorf("Expected ErrDuplicatePoint, got %v", err)
	}
	if err := g.ChangePoint(NewPoint(9, 9, 9), NewPoint(2, 2, 2)); !errors.Is(err, set.ErrElementNotFound) {
		t.Errorf("Expected ErrElementNotFound, got %v", err)
	}
	if err := g.ChangePoint(NewPoint(1, 0, 0), NewPoint(2, 0, 0)); err != nil {
		t.Fatalf("ChangePoint failed: %v", err)
	}

	p, _ := g.At(1)
	if p != NewPoint(2, 0, 0) {
		t.Errorf("ChangePoint must keep position: got %v at 1", p)
	}
	if g.Len() != 3 {
		t.Errorf("Arity changed to %d", g.Len())
	}

	if err := g.ChangePointAt(5, NewPoint(7, 7, 7)); !errors.Is(err, set.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestLine(t *testing.T) {
	if _, err := NewLine(NewPoint(1, 1, 1), NewPoint(1, 1, 1)); !errors.Is(err, ErrPointCountMismatch) {
		t.Errorf("Expected ErrPointCountMismatch, got %v", err)
	}

	l := mustLine(t, NewPoint(0, 0, 0), NewPoint(0, 0, 2))
	if math.Abs(l.Length()-2) > 1e-10 {
		t.Errorf("Length failed: expected 2, got %v", l.Length())
	}
	if l.Midpoint() != NewPoint(0, 0, 1) {
		t.Errorf("Midpoint failed: got %v", l.Midpoint())
	}

	reversed := mustLine(t, NewPoint(0, 0, 2), NewPoint(0, 0, 0))
	if !l.Equal(reversed) {
		t.Error("Reversed line should be equal")
	}

	if err := l.SetPoints(NewPoint(3, 3, 3), NewPoint(3, 3, 3)); err == nil {
		t.Error("SetPoints with coincident points should fail")
	}
	if math.Abs(l.Length()-2) > 1e-10 {
		t.Errorf("Failed SetPoints changed the line: length %v", l.Length())
	}
}

func TestFaceRejectsCoincidentPoints(t *testing.T) {
	_, err := NewFace(NewPoint(1, 1, 1), NewPoint(1, 1, 1), NewPoint(2, 2, 2))
	if !errors.Is(err, ErrDuplicatePoints) {
		t.Errorf("Expected ErrDuplicatePoints, got %v", err)
	}
}

func TestFaceArea(t *testing.T) {
	f := mustFace(t, NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0))

	if math.Abs(f.Area()-0.5) > 1e-10 {
		t.Errorf("Area failed: expected 0.5, got %v", f.Area())
	}

	expectedPerimeter := 2 + math.Sqrt2
	if math.Abs(f.Perimeter()-expectedPerimeter) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", expectedPerimeter, f.Perimeter())
	}
}

func TestFaceAreaCollinear(t *testing.T) {
	f := mustFace(t, NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(2, 0, 0))

	area := f.Area()
	if math.IsNaN(area) || area != 0 {
		t.Errorf("Collinear area failed: expected 0, got %v", area)
	}

	f = mustFace(t, NewPoint(0, 0, 0), NewPoint(0.1, 0.2, 0.3), NewPoint(0.3, 0.6, 0.9))
	if area := f.Area(); math.IsNaN(area) || area < 0 || area > 1e-6 {
		t.Errorf("Near-degenerate area failed: got %v", area)
	}
}

func TestFaceNormalAndCentroid(t *testing.T) {
	f := mustFace(t, NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0))

	if f.Normal() != NewPoint(0, 0, 1) {
		t.Errorf("Normal failed: expected (0 0 1), got %v", f.Normal())
	}

	c := f.Centroid()
	if math.Abs(c.X-1.0/3.0) > 1e-10 || math.Abs(c.Y-1.0/3.0) > 1e-10 || c.Z != 0 {
		t.Errorf("Centroid failed: got %v", c)
	}
}

func TestFaceEqualPermutations(t *testing.T) {
	a, b, c := NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0)
	f := mustFace(t, a, b, c)

	orders := [][3]Point{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}
	for _, o := range orders {
		if !f.Equal(mustFace(t, o[0], o[1], o[2])) {
			t.Errorf("Face should equal permutation %v", o)
		}
	}

	if f.Equal(mustFace(t, a, b, NewPoint(0, 0, 1))) {
		t.Error("Faces with different vertices should not be equal")
	}
}

func TestFaceChangePoint(t *testing.T) {
	f := mustFace(t, NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0))

	if err := f.ChangePoint(NewPoint(1, 0, 0), NewPoint(0, 1, 0)); !errors.Is(err, ErrDuplicatePoint) {
		t.Errorf("Expected ErrDuplicatePoint, got %v", err)
	}
	if err := f.ChangePoint(NewPoint(1, 0, 0), NewPoint(2, 0, 0)); err != nil {
		t.Fatalf("ChangePoint failed: %v", err)
	}
	if math.Abs(f.Area()-1) > 1e-10 {
		t.Errorf("Area after change failed: expected 1, got %v", f.Area())
	}
	if f.Len() != 3 {
		t.Errorf("Arity changed to %d", f.Len())
	}
}

func TestFaceClone(t *testing.T) {
	f := mustFace(t, NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0))
	c := f.Clone()

	if err := c.ChangePoint(NewPoint(1, 0, 0), NewPoint(5, 0, 0)); err != nil {
		t.Fatalf("ChangePoint failed: %v", err)
	}
	if !f.Contains(NewPoint(1, 0, 0)) {
		t.Error("Changing the clone modified the original")
	}
}

func TestAppearanceOf(t *testing.T) {
	f := mustFace(t, NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0))

	if _, err := AppearanceOf(f); !errors.Is(err, ErrNotApplicable) {
		t.Errorf("Expected ErrNotApplicable for a plain face, got %v", err)
	}

	styled := StyledFace{Face: f, Style: Appearance{Material: "steel", Thickness: 2}}
	a, err := AppearanceOf(styled)
	if err != nil {
		t.Fatalf("AppearanceOf failed: %v", err)
	}
	if a.Material != "steel" || a.Thickness != 2 {
		t.Errorf("Appearance failed: got %+v", a)
	}
	if math.Abs(styled.Area()-0.5) > 1e-10 {
		t.Errorf("StyledFace should keep face behavior, area %v", styled.Area())
	}
}

func TestNonFinitePointsRejected(t *testing.T) {
	nan := NewPoint(math.NaN(), 0, 0)
	inf := NewPoint(0, math.Inf(-1), 0)
	origin := NewPoint(0, 0, 0)
	unitX := NewPoint(1, 0, 0)

	if nan.IsFinite() || inf.IsFinite() || !origin.IsFinite() {
		t.Error("IsFinite failed")
	}
	if _, err := NewFace(nan, origin, unitX); !errors.Is(err, ErrNonFinitePoint) {
		t.Errorf("Expected ErrNonFinitePoint for NaN face, got %v", err)
	}
	if _, err := NewLine(origin, inf); !errors.Is(err, ErrNonFinitePoint) {
		t.Errorf("Expected ErrNonFinitePoint for infinite line, got %v", err)
	}

	l := mustLine(t, origin, unitX)
	if err := l.ChangePoint(unitX, nan); !errors.Is(err, ErrNonFinitePoint) {
		t.Errorf("Expected ErrNonFinitePoint from ChangePoint, got %v", err)
	}
	if !l.Contains(unitX) {
		t.Error("Failed ChangePoint modified the line")
	}
}
