// Package codec reads and writes models in text mesh formats. Codecs are
// collected in a Registry and chosen by file suffix.
package codec

import (
	"bufio"
	"errors"
	"io"

	"github.com/philipparndt/geomodel/pkg/model"
)

// Import and export failures wrap these, so model.Kind classifies them
var (
	ErrImport = model.ErrImport
	ErrExport = model.ErrExport
)

// Registry errors
var (
	ErrDuplicateSuffix   = errors.New("a codec is already registered for this suffix")
	ErrUnsupportedFormat = errors.New("no codec registered for this file type")
)

// Codec converts between a model and its serialized form
type Codec interface {
	// Suffix is the file extension without the leading dot, e.g. "obj"
	Suffix() string

	// Decode reads a complete model
	Decode(r io.Reader) (*model.Model, error)

	// Encode writes the complete model
	Encode(w io.Writer, m *model.Model) error
}

// maxLineSize bounds a single input line. Notes and names can be far longer
// than the bufio.Scanner default of 64 KiB.
const maxLineSize = 64 << 20

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}
