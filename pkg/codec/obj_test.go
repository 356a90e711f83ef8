package codec

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/geomodel/pkg/geometry"
	"github.com/philipparndt/geomodel/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModel(t *testing.T) *model.Model {
	t.Helper()
	m := model.NewModel("sample")
	m.AddNote("made by hand")
	_, err := m.AddFacePoints(geometry.NewPoint(0, 0, 0), geometry.NewPoint(1, 0, 0), geometry.NewPoint(0, 1, 0))
	require.NoError(t, err)
	_, err = m.AddFacePoints(geometry.NewPoint(1, 0, 0), geometry.NewPoint(0, 1, 0), geometry.NewPoint(0.1, 0.2, 0.3))
	require.NoError(t, err)
	_, err = m.AddLinePoints(geometry.NewPoint(0, 0, 0), geometry.NewPoint(0, 0, 2))
	require.NoError(t, err)
	return m
}

func TestOBJEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOBJ(DefaultOBJOptions()).Encode(&buf, sampleModel(t)))

	expected := strings.Join([]string{
		"# made by hand",
		"g sample",
		"v 0 0 0",
		"v 1 0 0",
		"v 0 1 0",
		"v 0.1 0.2 0.3",
		"v 0 0 2",
		"l 1 5",
		"f 1 2 3",
		"f 2 3 4",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestOBJEncodeOptions(t *testing.T) {
	m := model.NewModel("p")
	m.AddNote("hidden")
	_, err := m.AddLinePoints(geometry.NewPoint(1.0/3.0, 0, 0), geometry.NewPoint(0, 2.0/3.0, 0))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewOBJ(OBJOptions{Precision: 4, OmitNotes: true}).Encode(&buf, m))
	assert.Equal(t, "g p\nv 0.3333 0 0\nv 0 0.6667 0\nl 1 2\n", buf.String())
}

func TestOBJEncodePrecisionCollisions(t *testing.T) {
	c := NewOBJ(OBJOptions{Precision: 3})

	t.Run("distinct elements stay distinct", func(t *testing.T) {
		m := model.NewModel("near")
		_, err := m.AddLinePoints(geometry.NewPoint(0, 0, 0), geometry.NewPoint(1.0001, 0, 0))
		require.NoError(t, err)
		_, err = m.AddLinePoints(geometry.NewPoint(0, 1, 0), geometry.NewPoint(1.0002, 0, 0))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, c.Encode(&buf, m))
		assert.Equal(t, "g near\nv 0 0 0\nv 1 0 0\nv 0 1 0\nl 1 2\nl 3 2\n", buf.String())

		got, err := c.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, 2, got.LineCount())
	})

	t.Run("line collapses to one vertex", func(t *testing.T) {
		m := model.NewModel("short")
		_, err := m.AddLinePoints(geometry.NewPoint(1.0001, 0, 0), geometry.NewPoint(1.0002, 0, 0))
		require.NoError(t, err)

		var buf bytes.Buffer
		err = c.Encode(&buf, m)
		assert.ErrorIs(t, err, ErrExport)
		assert.Equal(t, model.KindExportFailure, model.Kind(err))
		assert.Zero(t, buf.Len(), "nothing is written on failure")
	})

	t.Run("two faces become identical", func(t *testing.T) {
		m := model.NewModel("twins")
		_, err := m.AddFacePoints(geometry.NewPoint(0, 0, 0), geometry.NewPoint(1.0001, 0, 0), geometry.NewPoint(0, 1, 0))
		require.NoError(t, err)
		_, err = m.AddFacePoints(geometry.NewPoint(0, 0, 0), geometry.NewPoint(1.0002, 0, 0), geometry.NewPoint(0, 1, 0))
		require.NoError(t, err)

		err = c.Encode(&bytes.Buffer{}, m)
		assert.ErrorIs(t, err, ErrExport)
	})
}

func TestOBJRoundTrip(t *testing.T) {
	orig := sampleModel(t)
	c := NewOBJ(DefaultOBJOptions())

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, orig))
	got, err := c.Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, orig.Name, got.Name)
	assert.Equal(t, orig.Notes, got.Notes)
	require.Equal(t, orig.FaceCount(), got.FaceCount())
	require.Equal(t, orig.LineCount(), got.LineCount())
	for i, f := range orig.Faces() {
		g, err := got.Face(i)
		require.NoError(t, err)
		assert.True(t, f.Equal(g), "face %d", i)
	}
	l, err := got.Line(0)
	require.NoError(t, err)
	assert.True(t, orig.Lines()[0].Equal(l))
	assert.Equal(t, orig.Stats(), got.Stats())
}

func TestOBJDecode(t *testing.T) {
	input := `# first note
#second note
   # indented
g  my model
o ignored
vn 0 0 1
v 0 0 0
v 1 0 0
v 0 1 0

v 0 0 2
f 1/1/1 2//1 3
l 1 4
f 3 2 1
g final name
`
	m, err := NewOBJ(DefaultOBJOptions()).Decode(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "final name", m.Name)
	assert.Equal(t, []string{"first note", "second note", "indented"}, m.Notes)
	// the repeated face is dropped
	assert.Equal(t, 1, m.FaceCount())
	assert.Equal(t, 1, m.LineCount())
	assert.InDelta(t, 0.5, m.Stats().FaceAreaSum, 1e-12)
	assert.InDelta(t, 2.0, m.Stats().LineLengthSum, 1e-12)
}

func TestOBJDecodeGroupName(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{"g cube\n", "cube"},
		{"g  padded name \n", " padded name "},
		{"g\tcube\n", "cube"},
		{"g\n", model.DefaultName},
		{"g cube\ng\n", "cube"},
	}
	for _, tt := range tests {
		m, err := NewOBJ(DefaultOBJOptions()).Decode(strings.NewReader(tt.input))
		require.NoError(t, err)
		assert.Equal(t, tt.name, m.Name, "%q", tt.input)
	}
}

func TestOBJDecodeLongLine(t *testing.T) {
	note := strings.Repeat("n", 200*1024)
	m, err := NewOBJ(DefaultOBJOptions()).Decode(strings.NewReader("#" + note + "\nv 0 0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{note}, m.Notes)
}

func TestOBJDecodeLargeMesh(t *testing.T) {
	const size = 120
	var sb strings.Builder
	for y := 0; y <= size; y++ {
		for x := 0; x <= size; x++ {
			fmt.Fprintf(&sb, "v %d %d 0\n", x, y)
		}
	}
	vertex := func(x, y int) int { return y*(size+1) + x + 1 }
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fmt.Fprintf(&sb, "f %d %d %d\n", vertex(x, y), vertex(x+1, y), vertex(x, y+1))
			fmt.Fprintf(&sb, "f %d %d %d\n", vertex(x+1, y), vertex(x+1, y+1), vertex(x, y+1))
			// the same triangle again in another vertex order
			fmt.Fprintf(&sb, "f %d %d %d\n", vertex(x, y+1), vertex(x, y), vertex(x+1, y))
		}
	}

	m, err := NewOBJ(DefaultOBJOptions()).Decode(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, 2*size*size, m.FaceCount())
	assert.InDelta(t, float64(size*size), m.Stats().FaceAreaSum, 1e-6)
	assert.Equal(t, float64(size), m.Stats().Cuboid.Length)
}

func TestOBJDecodeDefaults(t *testing.T) {
	m, err := NewOBJ(DefaultOBJOptions()).Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultName, m.Name)
	assert.Empty(t, m.Notes)
	assert.Equal(t, model.Stats{}, m.Stats())
}

func TestOBJDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad coordinate", "v 0 x 0\n"},
		{"short vertex", "v 0 0\n"},
		{"long vertex", "v 0 0 0 1\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nl 1 3\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nl 0 1\n"},
		{"negative index", "v 0 0 0\nv 1 0 0\nl -1 2\n"},
		{"bad index", "v 0 0 0\nv 1 0 0\nl a 2\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"quad face", "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\nf 1 2 3 4\n"},
		{"coincident face points", "v 0 0 0\nv 1 0 0\nf 1 1 2\n"},
		{"coincident values", "v 0 0 0\nv 0 0 0\nl 1 2\n"},
		{"nan vertex", "v 0 0 0\nv NaN 0 0\nv 0 1 0\nf 1 2 3\n"},
		{"infinite vertex", "v 0 -Inf 0\n"},
		{"overflowing vertex", "v 1e400 0 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOBJ(DefaultOBJOptions()).Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrImport)
			assert.Equal(t, model.KindImportFailure, model.Kind(err))
		})
	}
}

func TestGzipOBJRoundTrip(t *testing.T) {
	orig := sampleModel(t)
	c := NewGzipOBJ(DefaultOBJOptions())

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, orig))
	assert.Equal(t, []byte{0x1f, 0x8b}, buf.Bytes()[:2])

	got, err := c.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, orig.Stats(), got.Stats())

	_, err = c.Decode(strings.NewReader("not gzip"))
	assert.ErrorIs(t, err, ErrImport)
}

func TestRegistryLookup(t *testing.T) {
	r := NewDefaultRegistry(nil, DefaultOBJOptions())
	assert.Equal(t, []string{"obj", "obj.gz", "stl"}, r.Suffixes())

	c, err := r.Lookup("models/cube.OBJ")
	require.NoError(t, err)
	assert.Equal(t, "obj", c.Suffix())

	c, err = r.Lookup("cube.obj.gz")
	require.NoError(t, err)
	assert.Equal(t, "obj.gz", c.Suffix())

	_, err = r.Lookup("cube.ply")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, err = r.Lookup("obj")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	assert.ErrorIs(t, r.Register(NewOBJ(DefaultOBJOptions())), ErrDuplicateSuffix)
}

func TestRegistryImportExport(t *testing.T) {
	dir := t.TempDir()
	r := NewDefaultRegistry(nil, DefaultOBJOptions())
	orig := sampleModel(t)

	for _, name := range []string{"model.obj", "model.obj.gz"} {
		path := filepath.Join(dir, name)
		require.NoError(t, r.Export(path, orig))

		got, err := r.Import(path)
		require.NoError(t, err)
		assert.Equal(t, orig.Stats(), got.Stats(), name)
		assert.Equal(t, orig.Name, got.Name, name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary files left behind")
}

func TestRegistryFailures(t *testing.T) {
	dir := t.TempDir()
	r := NewDefaultRegistry(nil, DefaultOBJOptions())

	_, err := r.Import(filepath.Join(dir, "missing.obj"))
	assert.ErrorIs(t, err, ErrImport)

	_, err = r.Import(filepath.Join(dir, "model.ply"))
	assert.ErrorIs(t, err, ErrImport)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	err = r.Export(filepath.Join(dir, "model.ply"), model.NewModel(""))
	assert.ErrorIs(t, err, ErrExport)

	err = r.Export(filepath.Join(dir, "no-such-dir", "model.obj"), model.NewModel(""))
	assert.ErrorIs(t, err, ErrExport)

	bad := filepath.Join(dir, "bad.obj")
	require.NoError(t, os.WriteFile(bad, []byte("v 0 0 0\nl 1 2\n"), 0o644))
	_, err = r.Import(bad)
	assert.ErrorIs(t, err, ErrImport)
}
