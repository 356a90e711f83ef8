package viewer

import (
	"math"

	"github.com/philipparndt/geomodel/pkg/geometry"
)

// Camera is a perspective camera orbiting a target point
type Camera struct {
	Position  geometry.Point
	Target    geometry.Point
	Up        geometry.Point
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Elevation, around the horizontal axis
	RotationY float64 // Azimuth, around the vertical axis
}

// NewCamera creates a camera looking at the center of a cuboid from far
// enough away to see all of it
func NewCamera(bounds geometry.Cuboid) *Camera {
	size := bounds.Size()
	distance := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0
	if distance == 0 {
		distance = 1
	}

	c := &Camera{
		Target:   bounds.Center(),
		Up:       geometry.NewPoint(0, 1, 0),
		FOV:      math.Pi / 4,
		Distance: distance,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition places the camera on its orbit from the rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewPoint(x, y, z))
}

// Rotate turns the camera around the target. Elevation stops short of the
// poles where the up vector would be parallel to the view direction.
func (c *Camera) Rotate(deltaX, deltaY float64) {
	maxAngle := math.Pi/2 - 0.1
	c.RotationX = math.Max(-maxAngle, math.Min(maxAngle, c.RotationX+deltaX))
	c.RotationY += deltaY
	c.UpdatePosition()
}

// Zoom scales the distance to the target by 1+delta
func (c *Camera) Zoom(delta float64) {
	c.Distance = math.Max(0.1, c.Distance*(1.0+delta))
	c.UpdatePosition()
}

// basis returns the camera's forward, right and up axes
func (c *Camera) basis() (forward, right, up geometry.Point) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// ViewDirection returns the unit vector from the camera to the target
func (c *Camera) ViewDirection() geometry.Point {
	forward, _, _ := c.basis()
	return forward
}

// Project maps a point to screen coordinates and its depth along the view
// direction
func (c *Camera) Project(point geometry.Point, width, height float64) (x, y, depth float64) {
	forward, right, up := c.basis()

	relative := point.Sub(c.Position)
	cx := relative.Dot(right)
	cy := relative.Dot(up)
	depth = math.Max(relative.Dot(forward), 0.01)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	x = (cx/(depth*fovScale*aspect))*(width/2) + width/2
	y = (-cy/(depth*fovScale))*(height/2) + height/2
	return x, y, depth
}
