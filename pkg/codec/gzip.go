package codec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/philipparndt/geomodel/pkg/model"
)

// GzipOBJ is the OBJ format inside a gzip stream
type GzipOBJ struct {
	obj *OBJ
}

// NewGzipOBJ creates a gzip OBJ codec
func NewGzipOBJ(opts OBJOptions) *GzipOBJ {
	return &GzipOBJ{obj: NewOBJ(opts)}
}

// Suffix implements Codec
func (g *GzipOBJ) Suffix() string {
	return "obj.gz"
}

// Decode implements Codec
func (g *GzipOBJ) Decode(r io.Reader) (*model.Model, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid gzip stream: %w", ErrImport, err)
	}
	defer zr.Close()
	return g.obj.Decode(zr)
}

// Encode implements Codec
func (g *GzipOBJ) Encode(w io.Writer, m *model.Model) error {
	zw := gzip.NewWriter(w)
	zw.Name = m.Name + ".obj"
	if err := g.obj.Encode(zw, m); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: failed to finish gzip stream: %w", ErrExport, err)
	}
	return nil
}
