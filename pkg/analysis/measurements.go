package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/geomodel/pkg/geometry"
	"github.com/philipparndt/geomodel/pkg/model"
)

// EdgeInfo contains information about an edge in the model. Face edges carry
// the face tag; line elements are edges of their own with FaceTag -1.
type EdgeInfo struct {
	Start   geometry.Point
	End     geometry.Point
	Length  float64
	FaceTag int
	LineTag int
}

// MeasurementResult contains various measurements of a model
type MeasurementResult struct {
	Bounds        geometry.Cuboid
	Dimensions    geometry.Point
	Stats         model.Stats
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// AnalyzeModel collects every face edge and line of the model
func AnalyzeModel(m *model.Model) *MeasurementResult {
	result := &MeasurementResult{
		Bounds:   m.Bounds(),
		Stats:    m.Stats(),
		AllEdges: make([]EdgeInfo, 0, 3*m.FaceCount()+m.LineCount()),
	}
	result.Dimensions = result.Bounds.Size()

	for i, f := range m.Faces() {
		v1, v2, v3 := f.Vertices()
		edges := []struct {
			start, end geometry.Point
		}{
			{v1, v2},
			{v2, v3},
			{v3, v1},
		}
		for _, edge := range edges {
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:   edge.start,
				End:     edge.end,
				Length:  edge.start.Distance(edge.end),
				FaceTag: i,
				LineTag: -1,
			})
		}
	}

	for i, l := range m.Lines() {
		a, b := l.Endpoints()
		result.AllEdges = append(result.AllEdges, EdgeInfo{
			Start:   a,
			End:     b,
			Length:  l.Length(),
			FaceTag: -1,
			LineTag: i,
		})
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount == 0 {
		return result
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	for _, edge := range result.AllEdges {
		totalLength += edge.Length
		minLength = math.Min(minLength, edge.Length)
		maxLength = math.Max(maxLength, edge.Length)
	}
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	result.AvgEdgeLength = totalLength / float64(result.EdgeCount)

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the model
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges in the model
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	return edges[:clampCount(count, len(edges))]
}

func clampCount(count, n int) int {
	if count < 0 || count > n {
		return n
	}
	return count
}

// FindNearestVertex finds the vertex in the model nearest to a given point.
// ok is false for a model without elements.
func FindNearestVertex(m *model.Model, point geometry.Point) (nearest geometry.Point, distance float64, ok bool) {
	distance = math.MaxFloat64

	visit := func(vertices []geometry.Point) {
		for _, vertex := range vertices {
			if d := point.Distance(vertex); d < distance {
				distance = d
				nearest = vertex
				ok = true
			}
		}
	}
	for _, f := range m.Faces() {
		visit(f.Points())
	}
	for _, l := range m.Lines() {
		visit(l.Points())
	}

	if !ok {
		return geometry.Point{}, 0, false
	}
	return nearest, distance, true
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatPoint formats a 3D point
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", p.X, p.Y, p.Z)
}
