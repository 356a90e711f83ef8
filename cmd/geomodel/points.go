package main

import (
	"fmt"
	"strconv"

	"github.com/philipparndt/geomodel/pkg/geometry"
)

// parsePoints reads consecutive x y z triples
func parsePoints(args []string) ([]geometry.Point, error) {
	if len(args)%3 != 0 {
		return nil, fmt.Errorf("expected x y z triples, got %d coordinates", len(args))
	}
	points := make([]geometry.Point, 0, len(args)/3)
	for i := 0; i < len(args); i += 3 {
		var c [3]float64
		for j := range c {
			v, err := strconv.ParseFloat(args[i+j], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid coordinate %q: %w", args[i+j], err)
			}
			c[j] = v
		}
		p := geometry.NewPoint(c[0], c[1], c[2])
		if !p.IsFinite() {
			return nil, fmt.Errorf("%w: %s", geometry.ErrNonFinitePoint, p)
		}
		points = append(points, p)
	}
	return points, nil
}

func parseTag(s string) (int, error) {
	tag, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid tag %q: %w", s, err)
	}
	return tag, nil
}
