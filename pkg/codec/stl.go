package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/geomodel/pkg/geometry"
	"github.com/philipparndt/geomodel/pkg/model"
)

// STL reads ASCII and binary STL and writes ASCII STL. STL only knows
// triangles: lines and notes are not written, and degenerate facets are
// skipped on read.
type STL struct {
	precision int
}

// NewSTL creates an STL codec writing coordinates with the given number
// of significant digits, -1 for exact values
func NewSTL(precision int) *STL {
	return &STL{precision: precision}
}

// Suffix implements Codec
func (s *STL) Suffix() string {
	return "stl"
}

// Decode implements Codec. Input starting with "solid" is read as ASCII,
// anything else as binary.
func (s *STL) Decode(r io.Reader) (*model.Model, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(5)
	if err != nil && len(header) == 0 {
		return nil, fmt.Errorf("%w: failed to read STL header: %w", ErrImport, err)
	}
	if string(header) == "solid" {
		return decodeASCIISTL(br)
	}
	return decodeBinarySTL(br)
}

func decodeASCIISTL(r io.Reader) (*model.Model, error) {
	scanner := newScanner(r)
	m := model.NewModel("")

	var (
		vertices []geometry.Point
		faces    []*geometry.Face
		lineNo   int
	)

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				m.Name = strings.Join(fields[1:], " ")
			}

		case "vertex":
			p, err := parseVertex(fields)
			if err != nil {
				return nil, importError(lineNo, err)
			}
			vertices = append(vertices, p)

		case "endfacet":
			if len(vertices) != 3 {
				return nil, importError(lineNo, fmt.Errorf("facet has %d vertices, expected 3", len(vertices)))
			}
			faces = appendFacet(faces, vertices[0], vertices[1], vertices[2])
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: error reading ASCII STL: %w", ErrImport, err)
	}
	m.AddElements(faces, nil)
	return m, nil
}

// binaryFacet is the on-disk layout of one binary STL triangle
type binaryFacet struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

func decodeBinarySTL(r io.Reader) (*model.Model, error) {
	m := model.NewModel("")

	header := make([]byte, 80)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrImport, err)
	}
	if name := strings.TrimSpace(string(bytes.TrimRight(header, "\x00"))); name != "" {
		m.Name = name
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: failed to read triangle count: %w", ErrImport, err)
	}

	// the count comes from the file, so it only caps the preallocation
	faces := make([]*geometry.Face, 0, min(count, 1<<20))
	for i := uint32(0); i < count; i++ {
		var f binaryFacet
		if err := binary.Read(r, binary.LittleEndian, &f); err != nil {
			return nil, fmt.Errorf("%w: failed to read triangle %d: %w", ErrImport, i, err)
		}
		var pts [3]geometry.Point
		for j, v := range f.Vertices {
			pts[j] = geometry.NewPoint(float64(v[0]), float64(v[1]), float64(v[2]))
			if !pts[j].IsFinite() {
				return nil, fmt.Errorf("%w: triangle %d: %w: %s", ErrImport, i, geometry.ErrNonFinitePoint, pts[j])
			}
		}
		faces = appendFacet(faces, pts[0], pts[1], pts[2])
	}
	m.AddElements(faces, nil)
	return m, nil
}

// appendFacet appends the triangle unless two of its corners coincide
func appendFacet(faces []*geometry.Face, a, b, c geometry.Point) []*geometry.Face {
	f, err := geometry.NewFace(a, b, c)
	if err != nil {
		return faces
	}
	return append(faces, f)
}

// Encode implements Codec
func (s *STL) Encode(w io.Writer, m *model.Model) error {
	bw := bufio.NewWriter(w)
	name := strings.ReplaceAll(m.Name, "\n", " ")

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, f := range m.Faces() {
		a, b, c := f.Vertices()
		fmt.Fprintf(bw, "  facet normal %s\n", f.Normal().Format(s.precision))
		fmt.Fprintln(bw, "    outer loop")
		for _, p := range []geometry.Point{a, b, c} {
			fmt.Fprintf(bw, "      vertex %s\n", p.Format(s.precision))
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: failed to write STL: %w", ErrExport, err)
	}
	return nil
}
