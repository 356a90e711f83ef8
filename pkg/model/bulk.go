package model

import (
	"cmp"
	"slices"

	"github.com/philipparndt/geomodel/pkg/geometry"
)

// faceKey and lineKey hold the vertices in sorted order, so equal shapes
// share a key whatever their vertex order
type (
	faceKey [3]geometry.Point
	lineKey [2]geometry.Point
)

func comparePoints(a, b geometry.Point) int {
	return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Y, b.Y), cmp.Compare(a.Z, b.Z))
}

func keyOfFace(f *geometry.Face) faceKey {
	k := faceKey(f.Points())
	slices.SortFunc(k[:], comparePoints)
	return k
}

func keyOfLine(l *geometry.Line) lineKey {
	k := lineKey(l.Points())
	slices.SortFunc(k[:], comparePoints)
	return k
}

// AddElements stores copies of the faces and lines that are not yet held,
// in order, and returns how many of each were new. Nil entries and
// duplicates within the input are skipped. The statistics are rebuilt once,
// which makes this the path for loading whole meshes.
func (m *Model) AddElements(faces []*geometry.Face, lines []*geometry.Line) (addedFaces, addedLines int) {
	if len(faces) > 0 {
		seen := make(map[faceKey]struct{}, len(m.faces)+len(faces))
		for _, f := range m.faces {
			seen[keyOfFace(f)] = struct{}{}
		}
		for _, f := range faces {
			if f == nil {
				continue
			}
			k := keyOfFace(f)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			m.faces = append(m.faces, f.Clone())
			m.stats.FaceCount++
			m.stats.FaceAreaSum += f.Area()
			addedFaces++
		}
	}

	if len(lines) > 0 {
		seen := make(map[lineKey]struct{}, len(m.lines)+len(lines))
		for _, l := range m.lines {
			seen[keyOfLine(l)] = struct{}{}
		}
		for _, l := range lines {
			if l == nil {
				continue
			}
			k := keyOfLine(l)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			m.lines = append(m.lines, l.Clone())
			m.stats.LineCount++
			m.stats.LineLengthSum += l.Length()
			addedLines++
		}
	}

	if addedFaces+addedLines > 0 {
		m.refresh()
	}
	return addedFaces, addedLines
}

// DeleteElements removes every stored face and line equal to one of the
// given ones and returns how many of each were removed. The remaining
// elements keep their relative order.
func (m *Model) DeleteElements(faces []*geometry.Face, lines []*geometry.Line) (deletedFaces, deletedLines int) {
	if len(faces) > 0 {
		drop := make(map[faceKey]struct{}, len(faces))
		for _, f := range faces {
			if f != nil {
				drop[keyOfFace(f)] = struct{}{}
			}
		}
		m.faces = slices.DeleteFunc(m.faces, func(f *geometry.Face) bool {
			if _, ok := drop[keyOfFace(f)]; !ok {
				return false
			}
			m.stats.FaceAreaSum -= f.Area()
			deletedFaces++
			return true
		})
		m.stats.FaceCount -= deletedFaces
	}

	if len(lines) > 0 {
		drop := make(map[lineKey]struct{}, len(lines))
		for _, l := range lines {
			if l != nil {
				drop[keyOfLine(l)] = struct{}{}
			}
		}
		m.lines = slices.DeleteFunc(m.lines, func(l *geometry.Line) bool {
			if _, ok := drop[keyOfLine(l)]; !ok {
				return false
			}
			m.stats.LineLengthSum -= l.Length()
			deletedLines++
			return true
		})
		m.stats.LineCount -= deletedLines
	}

	if deletedFaces+deletedLines > 0 {
		m.refresh()
	}
	return deletedFaces, deletedLines
}
