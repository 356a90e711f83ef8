package viewer

import (
	"image"
	"image/color"
	"math"
)

// vertex is a projected point: screen position plus depth
type vertex struct {
	x, y, z float64
}

// canvas is an image with a depth buffer
type canvas struct {
	img    *image.RGBA
	zbuf   []float64
	width  int
	height int
}

func newCanvas(width, height int, background color.RGBA) *canvas {
	c := &canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		zbuf:   make([]float64, width*height),
		width:  width,
		height: height,
	}
	for i := range c.zbuf {
		c.zbuf[i] = math.MaxFloat64
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.img.SetRGBA(x, y, background)
		}
	}
	return c
}

// plot draws a pixel if it is on the canvas and closer than what is there
func (c *canvas) plot(x, y int, z float64, col color.RGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	idx := y*c.width + x
	if z < c.zbuf[idx] {
		c.zbuf[idx] = z
		c.img.SetRGBA(x, y, col)
	}
}

// edgeAt returns where the edge a-b crosses scanline y
func edgeAt(a, b vertex, y float64) (x, z float64, ok bool) {
	if a.y == b.y || y < a.y || y > b.y {
		return 0, 0, false
	}
	t := (y - a.y) / (b.y - a.y)
	return a.x + t*(b.x-a.x), a.z + t*(b.z-a.z), true
}

// fillTriangle scan-converts a triangle with depth testing
func (c *canvas) fillTriangle(v1, v2, v3 vertex, col color.RGBA) {
	// sort by y, top to bottom
	if v1.y > v2.y {
		v1, v2 = v2, v1
	}
	if v2.y > v3.y {
		v2, v3 = v3, v2
	}
	if v1.y > v2.y {
		v1, v2 = v2, v1
	}

	yStart := int(math.Max(0, math.Ceil(v1.y)))
	yEnd := int(math.Min(float64(c.height-1), v3.y))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		var xs, zs [2]float64
		var ok bool
		if xs[0], zs[0], ok = edgeAt(v1, v3, fy); !ok {
			continue
		}

		a, b := v1, v2
		if fy >= v2.y {
			a, b = v2, v3
		}
		if a.y == b.y {
			// flat top or bottom row
			xs[0], zs[0], xs[1], zs[1] = a.x, a.z, b.x, b.z
		} else if xs[1], zs[1], ok = edgeAt(a, b, fy); !ok {
			continue
		}

		if xs[0] > xs[1] {
			xs[0], xs[1] = xs[1], xs[0]
			zs[0], zs[1] = zs[1], zs[0]
		}

		xFrom := int(math.Max(0, math.Ceil(xs[0])))
		xTo := int(math.Min(float64(c.width-1), xs[1]))
		for x := xFrom; x <= xTo; x++ {
			t := 0.0
			if xs[1] != xs[0] {
				t = (float64(x) - xs[0]) / (xs[1] - xs[0])
			}
			c.plot(x, y, zs[0]+t*(zs[1]-zs[0]), col)
		}
	}
}

// drawLine draws a segment with Bresenham's algorithm. Depth is
// interpolated along the segment and pulled slightly towards the viewer so
// lines lying on a face stay visible.
func (c *canvas) drawLine(a, b vertex, thickness int, col color.RGBA) {
	x1, y1 := int(math.Round(a.x)), int(math.Round(a.y))
	x2, y2 := int(math.Round(b.x)), int(math.Round(b.y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	steps := max(dx, dy)
	half := max(thickness, 1) / 2
	err := dx - dy

	for step := 0; ; step++ {
		t := 0.0
		if steps > 0 {
			t = float64(step) / float64(steps)
		}
		z := (a.z + t*(b.z-a.z)) * 0.999

		for ox := -half; ox <= half; ox++ {
			for oy := -half; oy <= half; oy++ {
				c.plot(x1+ox, y1+oy, z, col)
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
