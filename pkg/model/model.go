// Package model holds the editable 3D model: a named collection of unique
// triangular faces and line segments with cached derived statistics.
package model

import (
	"slices"

	"github.com/philipparndt/geomodel/pkg/geometry"
)

// DefaultName is the name of a model created without one
const DefaultName = "NONE"

// CuboidStats are the extents of the axis-aligned box around every point
type CuboidStats struct {
	Length float64
	Width  float64
	Height float64
	Area   float64
	Volume float64
}

// Stats are the derived figures kept up to date on every mutation
type Stats struct {
	FaceCount     int
	LineCount     int
	PointCount    int
	ElementCount  int
	FaceAreaSum   float64
	LineLengthSum float64
	Cuboid        CuboidStats
}

// Model represents a complete 3D model. Faces and lines are unique under
// shape equality and addressed by their position (tag).
type Model struct {
	Name  string
	Notes []string

	faces  []*geometry.Face
	lines  []*geometry.Line
	stats  Stats
	bounds geometry.Cuboid
}

// NewModel creates a new empty model. An empty name becomes DefaultName.
func NewModel(name string) *Model {
	if name == "" {
		name = DefaultName
	}
	return &Model{
		Name:   name,
		faces:  make([]*geometry.Face, 0),
		lines:  make([]*geometry.Line, 0),
		bounds: geometry.NewCuboid(),
	}
}

// AddNote appends a free-text note
func (m *Model) AddNote(note string) {
	m.Notes = append(m.Notes, note)
}

func (m *Model) indexOfFace(f *geometry.Face) int {
	if f == nil {
		return -1
	}
	return slices.IndexFunc(m.faces, f.Equal)
}

func (m *Model) indexOfLine(l *geometry.Line) int {
	if l == nil {
		return -1
	}
	return slices.IndexFunc(m.lines, l.Equal)
}

// HasFace reports whether a face equal to f is stored
func (m *Model) HasFace(f *geometry.Face) bool {
	return m.indexOfFace(f) >= 0
}

// HasLine reports whether a line equal to l is stored
func (m *Model) HasLine(l *geometry.Line) bool {
	return m.indexOfLine(l) >= 0
}

// AddFace stores a copy of f. It returns false if an equal face exists.
func (m *Model) AddFace(f *geometry.Face) bool {
	if f == nil || m.HasFace(f) {
		return false
	}
	m.faces = append(m.faces, f.Clone())
	m.stats.FaceCount++
	m.stats.FaceAreaSum += f.Area()
	m.refresh()
	return true
}

// AddFacePoints builds a face from three points and adds it
func (m *Model) AddFacePoints(p1, p2, p3 geometry.Point) (bool, error) {
	f, err := geometry.NewFace(p1, p2, p3)
	if err != nil {
		return false, err
	}
	return m.AddFace(f), nil
}

// DeleteFace removes the face equal to f. It returns false if none exists.
func (m *Model) DeleteFace(f *geometry.Face) bool {
	i := m.indexOfFace(f)
	if i < 0 {
		return false
	}
	m.stats.FaceCount--
	m.stats.FaceAreaSum -= m.faces[i].Area()
	m.faces = slices.Delete(m.faces, i, i+1)
	m.refresh()
	return true
}

// DeleteFacePoints removes the face with the given vertices
func (m *Model) DeleteFacePoints(p1, p2, p3 geometry.Point) (bool, error) {
	f, err := geometry.NewFace(p1, p2, p3)
	if err != nil {
		return false, err
	}
	return m.DeleteFace(f), nil
}

// ChangeFace replaces old with f at the same tag. It returns false unless
// old is stored and f is not.
func (m *Model) ChangeFace(old, f *geometry.Face) bool {
	i := m.indexOfFace(old)
	if i < 0 || f == nil || m.HasFace(f) {
		return false
	}
	m.stats.FaceAreaSum += f.Area() - m.faces[i].Area()
	m.faces[i] = f.Clone()
	m.refresh()
	return true
}

// ChangeFacePoint moves vertex old of the stored face equal to f to p
func (m *Model) ChangeFacePoint(f *geometry.Face, old, p geometry.Point) bool {
	if f == nil {
		return false
	}
	changed := f.Clone()
	if err := changed.ChangePoint(old, p); err != nil {
		return false
	}
	return m.ChangeFace(f, changed)
}

// ChangeFacePointAt moves vertex i of the stored face equal to f to p
func (m *Model) ChangeFacePointAt(f *geometry.Face, i int, p geometry.Point) bool {
	if f == nil {
		return false
	}
	old, err := f.Point(i)
	if err != nil {
		return false
	}
	return m.ChangeFacePoint(f, old, p)
}

// AddLine stores a copy of l. It returns false if an equal line exists.
func (m *Model) AddLine(l *geometry.Line) bool {
	if l == nil || m.HasLine(l) {
		return false
	}
	m.lines = append(m.lines, l.Clone())
	m.stats.LineCount++
	m.stats.LineLengthSum += l.Length()
	m.refresh()
	return true
}

// AddLinePoints builds a line from two points and adds it
func (m *Model) AddLinePoints(p1, p2 geometry.Point) (bool, error) {
	l, err := geometry.NewLine(p1, p2)
	if err != nil {
		return false, err
	}
	return m.AddLine(l), nil
}

// DeleteLine removes the line equal to l. It returns false if none exists.
func (m *Model) DeleteLine(l *geometry.Line) bool {
	i := m.indexOfLine(l)
	if i < 0 {
		return false
	}
	m.stats.LineCount--
	m.stats.LineLengthSum -= m.lines[i].Length()
	m.lines = slices.Delete(m.lines, i, i+1)
	m.refresh()
	return true
}

// DeleteLinePoints removes the line between the given points
func (m *Model) DeleteLinePoints(p1, p2 geometry.Point) (bool, error) {
	l, err := geometry.NewLine(p1, p2)
	if err != nil {
		return false, err
	}
	return m.DeleteLine(l), nil
}

// ChangeLine replaces old with l at the same tag. It returns false unless
// old is stored and l is not.
func (m *Model) ChangeLine(old, l *geometry.Line) bool {
	i := m.indexOfLine(old)
	if i < 0 || l == nil || m.HasLine(l) {
		return false
	}
	m.stats.LineLengthSum += l.Length() - m.lines[i].Length()
	m.lines[i] = l.Clone()
	m.refresh()
	return true
}

// ChangeLinePoint moves endpoint old of the stored line equal to l to p
func (m *Model) ChangeLinePoint(l *geometry.Line, old, p geometry.Point) bool {
	if l == nil {
		return false
	}
	changed := l.Clone()
	if err := changed.ChangePoint(old, p); err != nil {
		return false
	}
	return m.ChangeLine(l, changed)
}

// ChangeLinePointAt moves endpoint i of the stored line equal to l to p
func (m *Model) ChangeLinePointAt(l *geometry.Line, i int, p geometry.Point) bool {
	if l == nil {
		return false
	}
	old, err := l.Point(i)
	if err != nil {
		return false
	}
	return m.ChangeLinePoint(l, old, p)
}

// AddFaces adds every face and returns how many were new
func (m *Model) AddFaces(faces ...*geometry.Face) int {
	n, _ := m.AddElements(faces, nil)
	return n
}

// DeleteFaces deletes every face and returns how many were found
func (m *Model) DeleteFaces(faces ...*geometry.Face) int {
	n, _ := m.DeleteElements(faces, nil)
	return n
}

// AddLines adds every line and returns how many were new
func (m *Model) AddLines(lines ...*geometry.Line) int {
	_, n := m.AddElements(nil, lines)
	return n
}

// DeleteLines deletes every line and returns how many were found
func (m *Model) DeleteLines(lines ...*geometry.Line) int {
	_, n := m.DeleteElements(nil, lines)
	return n
}

// Merge adds every face and line of other
func (m *Model) Merge(other *Model) {
	m.AddElements(slices.Clone(other.faces), slices.Clone(other.lines))
}

// Subtract deletes every face and line that other also holds
func (m *Model) Subtract(other *Model) {
	m.DeleteElements(slices.Clone(other.faces), slices.Clone(other.lines))
}

// ClearFaces removes all faces
func (m *Model) ClearFaces() {
	m.faces = m.faces[:0]
	m.stats.FaceCount = 0
	m.stats.FaceAreaSum = 0
	m.refresh()
}

// ClearLines removes all lines
func (m *Model) ClearLines() {
	m.lines = m.lines[:0]
	m.stats.LineCount = 0
	m.stats.LineLengthSum = 0
	m.refresh()
}

// ClearAll removes all faces and lines
func (m *Model) ClearAll() {
	m.ClearFaces()
	m.ClearLines()
}

// AddPoint always fails: points only exist as face and line vertices
func (m *Model) AddPoint(geometry.Point) error {
	return ErrNoPointOperation
}

// AddPoints always fails, see AddPoint
func (m *Model) AddPoints(...geometry.Point) error {
	return ErrNoPointOperation
}

// DeletePoint always fails, see AddPoint
func (m *Model) DeletePoint(geometry.Point) error {
	return ErrNoPointOperation
}

// DeletePoints always fails, see AddPoint
func (m *Model) DeletePoints(...geometry.Point) error {
	return ErrNoPointOperation
}

// ChangePoint always fails, see AddPoint
func (m *Model) ChangePoint(_, _ geometry.Point) error {
	return ErrNoPointOperation
}

// ClearPoints always fails, see AddPoint
func (m *Model) ClearPoints() error {
	return ErrNoPointOperation
}

// Face returns a copy of the face with the given tag
func (m *Model) Face(tag int) (*geometry.Face, error) {
	if tag < 0 || tag >= len(m.faces) {
		return nil, tagError("face", tag, len(m.faces))
	}
	return m.faces[tag].Clone(), nil
}

// Line returns a copy of the line with the given tag
func (m *Model) Line(tag int) (*geometry.Line, error) {
	if tag < 0 || tag >= len(m.lines) {
		return nil, tagError("line", tag, len(m.lines))
	}
	return m.lines[tag].Clone(), nil
}

// Faces returns copies of all faces in tag order
func (m *Model) Faces() []*geometry.Face {
	out := make([]*geometry.Face, len(m.faces))
	for i, f := range m.faces {
		out[i] = f.Clone()
	}
	return out
}

// Lines returns copies of all lines in tag order
func (m *Model) Lines() []*geometry.Line {
	out := make([]*geometry.Line, len(m.lines))
	for i, l := range m.lines {
		out[i] = l.Clone()
	}
	return out
}

// FaceCount returns the number of faces
func (m *Model) FaceCount() int {
	return len(m.faces)
}

// LineCount returns the number of lines
func (m *Model) LineCount() int {
	return len(m.lines)
}

// Stats returns a snapshot of the cached statistics
func (m *Model) Stats() Stats {
	return m.stats
}

// Bounds returns the box around every face and line point
func (m *Model) Bounds() geometry.Cuboid {
	return m.bounds
}

// Clone returns a deep copy of the model
func (m *Model) Clone() *Model {
	c := &Model{
		Name:   m.Name,
		Notes:  slices.Clone(m.Notes),
		faces:  m.Faces(),
		lines:  m.Lines(),
		stats:  m.stats,
		bounds: m.bounds,
	}
	return c
}

// ComputeStats derives the statistics from scratch without touching the cache
func (m *Model) ComputeStats() Stats {
	s := Stats{FaceCount: len(m.faces), LineCount: len(m.lines)}
	for _, f := range m.faces {
		s.FaceAreaSum += f.Area()
	}
	for _, l := range m.lines {
		s.LineLengthSum += l.Length()
	}
	s.PointCount = 3*s.FaceCount + 2*s.LineCount
	s.ElementCount = s.FaceCount + s.LineCount
	s.Cuboid = cuboidStats(m.computeBounds())
	return s
}

// RecomputeStats replaces the cache with freshly derived statistics
func (m *Model) RecomputeStats() Stats {
	m.stats = m.ComputeStats()
	m.bounds = m.computeBounds()
	return m.stats
}

func (m *Model) computeBounds() geometry.Cuboid {
	c := geometry.NewCuboid()
	for _, f := range m.faces {
		for _, p := range f.Points() {
			c.Extend(p)
		}
	}
	for _, l := range m.lines {
		for _, p := range l.Points() {
			c.Extend(p)
		}
	}
	return c
}

// refresh updates the counters that follow from the element counts and
// rebuilds the cuboid
func (m *Model) refresh() {
	m.stats.PointCount = 3*m.stats.FaceCount + 2*m.stats.LineCount
	m.stats.ElementCount = m.stats.FaceCount + m.stats.LineCount
	m.bounds = m.computeBounds()
	m.stats.Cuboid = cuboidStats(m.bounds)
}

func cuboidStats(c geometry.Cuboid) CuboidStats {
	return CuboidStats{
		Length: c.Length(),
		Width:  c.Width(),
		Height: c.Height(),
		Area:   c.Area(),
		Volume: c.Volume(),
	}
}
