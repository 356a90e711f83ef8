package codec

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/philipparndt/geomodel/pkg/geometry"
	"github.com/philipparndt/geomodel/pkg/model"
)

// OBJOptions controls how OBJ files are written
type OBJOptions struct {
	// Precision is the number of significant digits per coordinate.
	// -1 writes the shortest form that reads back to the same value.
	Precision int

	// OmitNotes skips the "#" note lines
	OmitNotes bool
}

// DefaultOBJOptions writes exact coordinates and keeps notes
func DefaultOBJOptions() OBJOptions {
	return OBJOptions{Precision: -1}
}

// OBJ reads and writes the Wavefront OBJ subset made of notes (#), the
// group name (g), vertices (v), line elements (l) and triangular faces (f).
type OBJ struct {
	opts OBJOptions
}

// NewOBJ creates an OBJ codec
func NewOBJ(opts OBJOptions) *OBJ {
	return &OBJ{opts: opts}
}

// Suffix implements Codec
func (o *OBJ) Suffix() string {
	return "obj"
}

// element is an l or f record waiting for its indices to be resolved
type element struct {
	line    int
	indices []int
}

// Decode implements Codec. Indices are resolved after the whole input is
// read; faces are added before lines and duplicate shapes are dropped.
func (o *OBJ) Decode(r io.Reader) (*model.Model, error) {
	scanner := newScanner(r)
	m := model.NewModel("")

	var (
		points []geometry.Point
		faces  []element
		lines  []element
		lineNo int
	)

	for scanner.Scan() {
		lineNo++
		text := strings.TrimLeft(strings.TrimRight(scanner.Text(), "\r"), " \t")

		if rest, ok := strings.CutPrefix(text, "#"); ok {
			m.AddNote(strings.TrimPrefix(rest, " "))
			continue
		}

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "g":
			// the name is everything after the separator, kept as written
			if name := text[min(len(text), 2):]; name != "" {
				m.Name = name
			}

		case "v":
			p, err := parseVertex(fields)
			if err != nil {
				return nil, importError(lineNo, err)
			}
			points = append(points, p)

		case "l":
			idx, err := parseIndices(fields, 2)
			if err != nil {
				return nil, importError(lineNo, err)
			}
			lines = append(lines, element{line: lineNo, indices: idx})

		case "f":
			idx, err := parseIndices(fields, 3)
			if err != nil {
				return nil, importError(lineNo, err)
			}
			faces = append(faces, element{line: lineNo, indices: idx})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: error reading OBJ: %w", ErrImport, err)
	}

	newFaces := make([]*geometry.Face, 0, len(faces))
	for _, e := range faces {
		pts, err := resolve(points, e)
		if err != nil {
			return nil, err
		}
		f, err := geometry.NewFace(pts[0], pts[1], pts[2])
		if err != nil {
			return nil, importError(e.line, err)
		}
		newFaces = append(newFaces, f)
	}

	newLines := make([]*geometry.Line, 0, len(lines))
	for _, e := range lines {
		pts, err := resolve(points, e)
		if err != nil {
			return nil, err
		}
		l, err := geometry.NewLine(pts[0], pts[1])
		if err != nil {
			return nil, importError(e.line, err)
		}
		newLines = append(newLines, l)
	}

	m.AddElements(newFaces, newLines)
	return m, nil
}

func importError(line int, err error) error {
	return fmt.Errorf("%w: line %d: %w", ErrImport, line, err)
}

func parseVertex(fields []string) (geometry.Point, error) {
	if len(fields) != 4 {
		return geometry.Point{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields)-1)
	}
	var c [3]float64
	for i := range c {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return geometry.Point{}, fmt.Errorf("invalid coordinate %q: %w", fields[i+1], err)
		}
		c[i] = v
	}
	p := geometry.NewPoint(c[0], c[1], c[2])
	if !p.IsFinite() {
		return geometry.Point{}, fmt.Errorf("%w: %s", geometry.ErrNonFinitePoint, p)
	}
	return p, nil
}

// parseIndices reads n 1-based vertex references. Texture and normal
// references after a slash ("3/1/2", "3//2") are ignored.
func parseIndices(fields []string, n int) ([]int, error) {
	if len(fields) != n+1 {
		return nil, fmt.Errorf("%q needs %d vertex indices, got %d", fields[0], n, len(fields)-1)
	}
	idx := make([]int, n)
	for i := range idx {
		token, _, _ := strings.Cut(fields[i+1], "/")
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid vertex index %q: %w", fields[i+1], err)
		}
		if v < 1 {
			return nil, fmt.Errorf("vertex index %d must be >= 1", v)
		}
		idx[i] = v
	}
	return idx, nil
}

func resolve(points []geometry.Point, e element) ([]geometry.Point, error) {
	pts := make([]geometry.Point, len(e.indices))
	for i, idx := range e.indices {
		if idx > len(points) {
			return nil, importError(e.line, fmt.Errorf("vertex index %d out of range, %d vertices defined", idx, len(points)))
		}
		pts[i] = points[idx-1]
	}
	return pts, nil
}

// Encode implements Codec. Points shared by several elements are written
// once, in the order they are first met scanning faces and then lines.
// Points are shared by their written text, so with a fixed precision two
// points that round alike become one vertex. Encoding fails if that makes
// an element degenerate or two elements identical.
func (o *OBJ) Encode(w io.Writer, m *model.Model) error {
	faces := m.Faces()
	lines := m.Lines()

	index := make(map[string]int)
	var order []string
	indices := func(pts []geometry.Point) []int {
		out := make([]int, len(pts))
		for i, p := range pts {
			text := p.Format(o.opts.Precision)
			n, ok := index[text]
			if !ok {
				order = append(order, text)
				n = len(order)
				index[text] = n
			}
			out[i] = n
		}
		return out
	}

	faceIndices := make([][]int, len(faces))
	for i, f := range faces {
		faceIndices[i] = indices(f.Points())
	}
	lineIndices := make([][]int, len(lines))
	for i, l := range lines {
		lineIndices[i] = indices(l.Points())
	}

	if err := checkCollapsed("face", faceIndices); err != nil {
		return err
	}
	if err := checkCollapsed("line", lineIndices); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	if !o.opts.OmitNotes {
		for _, note := range m.Notes {
			for _, line := range strings.Split(note, "\n") {
				fmt.Fprintf(bw, "# %s\n", strings.TrimRight(line, "\r"))
			}
		}
	}
	fmt.Fprintf(bw, "g %s\n", m.Name)

	for _, text := range order {
		fmt.Fprintf(bw, "v %s\n", text)
	}
	for _, idx := range lineIndices {
		fmt.Fprintf(bw, "l %d %d\n", idx[0], idx[1])
	}
	for _, idx := range faceIndices {
		fmt.Fprintf(bw, "f %d %d %d\n", idx[0], idx[1], idx[2])
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: failed to write OBJ: %w", ErrExport, err)
	}
	return nil
}

// checkCollapsed fails when an element refers to the same vertex twice or
// two elements refer to the same vertices
func checkCollapsed(kind string, elements [][]int) error {
	seen := make(map[string]int, len(elements))
	for tag, idx := range elements {
		sorted := slices.Clone(idx)
		slices.Sort(sorted)
		if len(slices.Compact(sorted)) != len(idx) {
			return fmt.Errorf("%w: %s %d collapses at this precision", ErrExport, kind, tag)
		}
		key := fmt.Sprint(sorted)
		if other, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s %d and %d are identical at this precision", ErrExport, kind, other, tag)
		}
		seen[key] = tag
	}
	return nil
}
