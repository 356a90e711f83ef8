package analysis

import (
	"sort"

	"github.com/philipparndt/geomodel/pkg/geometry"
	"github.com/philipparndt/geomodel/pkg/model"
)

// PointInfo is a point in a form suitable for structured output
type PointInfo struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
	Z float64 `json:"z" yaml:"z" toml:"z"`
}

// NewPointInfo converts a point
func NewPointInfo(p geometry.Point) PointInfo {
	return PointInfo{X: p.X, Y: p.Y, Z: p.Z}
}

// CuboidInfo describes the box around a model
type CuboidInfo struct {
	Length float64 `json:"length" yaml:"length" toml:"length"`
	Width  float64 `json:"width" yaml:"width" toml:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height"`
	Area   float64 `json:"area" yaml:"area" toml:"area"`
	Volume float64 `json:"volume" yaml:"volume" toml:"volume"`
}

// ModelInfo is the summary of a model
type ModelInfo struct {
	ID            string     `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Name          string     `json:"name" yaml:"name" toml:"name"`
	Notes         []string   `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`
	PointCount    int        `json:"points" yaml:"points" toml:"points"`
	LineCount     int        `json:"lines" yaml:"lines" toml:"lines"`
	FaceCount     int        `json:"faces" yaml:"faces" toml:"faces"`
	ElementCount  int        `json:"elements" yaml:"elements" toml:"elements"`
	LineLengthSum float64    `json:"line_length_sum" yaml:"line_length_sum" toml:"line_length_sum"`
	FaceAreaSum   float64    `json:"face_area_sum" yaml:"face_area_sum" toml:"face_area_sum"`
	Cuboid        CuboidInfo `json:"cuboid" yaml:"cuboid" toml:"cuboid"`
}

// FaceInfo describes one face
type FaceInfo struct {
	Tag       int          `json:"tag" yaml:"tag" toml:"tag"`
	Points    [3]PointInfo `json:"points" yaml:"points" toml:"points"`
	Area      float64      `json:"area" yaml:"area" toml:"area"`
	Perimeter float64      `json:"perimeter" yaml:"perimeter" toml:"perimeter"`
}

// LineInfo describes one line
type LineInfo struct {
	Tag    int          `json:"tag" yaml:"tag" toml:"tag"`
	Points [2]PointInfo `json:"points" yaml:"points" toml:"points"`
	Length float64      `json:"length" yaml:"length" toml:"length"`
}

// DescribeModel summarizes a model from its cached statistics
func DescribeModel(m *model.Model) ModelInfo {
	s := m.Stats()
	return ModelInfo{
		Name:          m.Name,
		Notes:         append([]string(nil), m.Notes...),
		PointCount:    s.PointCount,
		LineCount:     s.LineCount,
		FaceCount:     s.FaceCount,
		ElementCount:  s.ElementCount,
		LineLengthSum: s.LineLengthSum,
		FaceAreaSum:   s.FaceAreaSum,
		Cuboid: CuboidInfo{
			Length: s.Cuboid.Length,
			Width:  s.Cuboid.Width,
			Height: s.Cuboid.Height,
			Area:   s.Cuboid.Area,
			Volume: s.Cuboid.Volume,
		},
	}
}

// DescribeFace summarizes a face with the given tag
func DescribeFace(tag int, f *geometry.Face) FaceInfo {
	a, b, c := f.Vertices()
	return FaceInfo{
		Tag:       tag,
		Points:    [3]PointInfo{NewPointInfo(a), NewPointInfo(b), NewPointInfo(c)},
		Area:      f.Area(),
		Perimeter: f.Perimeter(),
	}
}

// DescribeLine summarizes a line with the given tag
func DescribeLine(tag int, l *geometry.Line) LineInfo {
	a, b := l.Endpoints()
	return LineInfo{
		Tag:    tag,
		Points: [2]PointInfo{NewPointInfo(a), NewPointInfo(b)},
		Length: l.Length(),
	}
}

// DescribeFaces summarizes every face in tag order
func DescribeFaces(m *model.Model) []FaceInfo {
	faces := m.Faces()
	out := make([]FaceInfo, len(faces))
	for i, f := range faces {
		out[i] = DescribeFace(i, f)
	}
	return out
}

// DescribeLines summarizes every line in tag order
func DescribeLines(m *model.Model) []LineInfo {
	lines := m.Lines()
	out := make([]LineInfo, len(lines))
	for i, l := range lines {
		out[i] = DescribeLine(i, l)
	}
	return out
}

// LargestFaces returns the N faces with the largest area. A negative count
// returns all of them.
func LargestFaces(m *model.Model, count int) []FaceInfo {
	faces := DescribeFaces(m)
	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].Area > faces[j].Area
	})
	return faces[:clampCount(count, len(faces))]
}

// LongestLines returns the N longest lines. A negative count returns all.
func LongestLines(m *model.Model, count int) []LineInfo {
	lines := DescribeLines(m)
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Length > lines[j].Length
	})
	return lines[:clampCount(count, len(lines))]
}
