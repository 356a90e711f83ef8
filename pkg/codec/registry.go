package codec

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/philipparndt/geomodel/pkg/model"
)

// Registry maps file suffixes to codecs
type Registry struct {
	codecs map[string]Codec
	logger *slog.Logger
}

// NewRegistry creates a registry holding the given codecs
func NewRegistry(logger *slog.Logger, codecs ...Codec) (*Registry, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Registry{
		codecs: make(map[string]Codec),
		logger: logger,
	}
	for _, c := range codecs {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewDefaultRegistry creates a registry with the OBJ, gzip OBJ and STL
// codecs
func NewDefaultRegistry(logger *slog.Logger, opts OBJOptions) *Registry {
	r, err := NewRegistry(logger, NewOBJ(opts), NewGzipOBJ(opts), NewSTL(opts.Precision))
	if err != nil {
		// suffixes are distinct by construction
		panic(err)
	}
	return r
}

// Register adds c. Suffixes are compared case-insensitively.
func (r *Registry) Register(c Codec) error {
	suffix := strings.ToLower(strings.TrimPrefix(c.Suffix(), "."))
	if _, exists := r.codecs[suffix]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSuffix, suffix)
	}
	r.codecs[suffix] = c
	return nil
}

// Suffixes returns the registered suffixes in sorted order
func (r *Registry) Suffixes() []string {
	out := make([]string, 0, len(r.codecs))
	for s := range r.codecs {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Lookup returns the codec whose suffix matches the end of path. When
// several match, as "obj" and "obj.gz" do for "a.obj.gz", the longest wins.
func (r *Registry) Lookup(path string) (Codec, error) {
	name := strings.ToLower(filepath.Base(path))
	var (
		best    Codec
		bestLen int
	)
	for suffix, c := range r.codecs {
		if strings.HasSuffix(name, "."+suffix) && len(suffix) > bestLen {
			best, bestLen = c, len(suffix)
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return best, nil
}

// Import reads the model stored at path
func (r *Registry) Import(path string) (*model.Model, error) {
	c, err := r.Lookup(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImport, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file: %w", ErrImport, err)
	}
	defer file.Close()

	m, err := c.Decode(file)
	if err != nil {
		r.logger.Debug("decode failed", "path", path, "codec", c.Suffix(), "error", err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	r.logger.Debug("imported model",
		"path", path,
		"name", m.Name,
		"faces", m.FaceCount(),
		"lines", m.LineCount())
	return m, nil
}

// Export writes m to path. The file is written next to its destination and
// renamed into place, so a failed export leaves any existing file intact.
func (r *Registry) Export(path string, m *model.Model) error {
	c, err := r.Lookup(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: failed to create file: %w", ErrExport, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrExport, err)
	}

	if err := c.Encode(tmp, m); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to write file: %w", ErrExport, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: failed to move file into place: %w", ErrExport, err)
	}

	r.logger.Debug("exported model", "path", path, "name", m.Name, "codec", c.Suffix())
	return nil
}
