package geometry

import (
	"math"
	"testing"
)

func TestCuboidExtend(t *testing.T) {
	c := NewCuboid()

	c.Extend(NewPoint(1, 2, 3))
	c.Extend(NewPoint(4, 5, 6))
	c.Extend(NewPoint(-1, 0, 2))

	expectedMin := NewPoint(-1, 0, 2)
	expectedMax := NewPoint(4, 5, 6)

	if c.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, c.Min)
	}
	if c.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, c.Max)
	}
}

func TestCuboidExtents(t *testing.T) {
	c := CuboidOf(NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0), NewPoint(0, 0, 2))

	if c.Length() != 1 || c.Width() != 1 || c.Height() != 2 {
		t.Errorf("Extents failed: expected 1 1 2, got %v %v %v", c.Length(), c.Width(), c.Height())
	}

	if math.Abs(c.Volume()-2) > 1e-10 {
		t.Errorf("Volume failed: expected 2, got %v", c.Volume())
	}

	expectedArea := 2 * (1*1 + 1*2 + 2*1.0)
	if math.Abs(c.Area()-expectedArea) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expectedArea, c.Area())
	}
}

func TestCuboidCenter(t *testing.T) {
	c := CuboidOf(NewPoint(0, 0, 0), NewPoint(10, 20, 30))

	expected := NewPoint(5, 10, 15)
	if c.Center() != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, c.Center())
	}
}

func TestCuboidDiagonal(t *testing.T) {
	c := CuboidOf(NewPoint(0, 0, 0), NewPoint(3, 4, 0))

	if math.Abs(c.Diagonal()-5) > 1e-10 {
		t.Errorf("Diagonal failed: expected 5, got %v", c.Diagonal())
	}
}

func TestEmptyCuboid(t *testing.T) {
	c := NewCuboid()

	if !c.Empty() {
		t.Error("New cuboid should be empty")
	}
	if c.Length() != 0 || c.Width() != 0 || c.Height() != 0 {
		t.Errorf("Empty extents should be zero, got %v", c.Size())
	}
	if c.Area() != 0 || c.Volume() != 0 {
		t.Errorf("Empty area/volume should be zero, got %v %v", c.Area(), c.Volume())
	}
	if c.Center() != (Point{}) {
		t.Errorf("Empty center should be origin, got %v", c.Center())
	}
}

func TestSinglePointCuboid(t *testing.T) {
	c := CuboidOf(NewPoint(1, 1, 1))

	if c.Empty() {
		t.Error("Cuboid with a point should not be empty")
	}
	if c.Volume() != 0 {
		t.Errorf("Volume failed: expected 0, got %v", c.Volume())
	}
}
