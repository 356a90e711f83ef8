// Package workspace keeps the models being edited and which one is current.
package workspace

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/philipparndt/geomodel/pkg/analysis"
	"github.com/philipparndt/geomodel/pkg/codec"
	"github.com/philipparndt/geomodel/pkg/geometry"
	"github.com/philipparndt/geomodel/pkg/model"
	"github.com/philipparndt/geomodel/pkg/set"
)

// NoTag is the current tag of an empty workspace
const NoTag = -1

type entry struct {
	id    uuid.UUID
	model *model.Model
}

// Workspace is an ordered list of models with one of them selected.
// It is not safe for concurrent use.
type Workspace struct {
	entries []entry
	current int
	codecs  *codec.Registry
	logger  *slog.Logger
}

// New creates an empty workspace that imports and exports through codecs
func New(codecs *codec.Registry, logger *slog.Logger) *Workspace {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Workspace{
		current: NoTag,
		codecs:  codecs,
		logger:  logger,
	}
}

// Len returns the number of models
func (w *Workspace) Len() int {
	return len(w.entries)
}

// Current returns the tag of the selected model, or NoTag
func (w *Workspace) Current() int {
	return w.current
}

func (w *Workspace) checkTag(tag int) error {
	if tag < 0 || tag >= len(w.entries) {
		return fmt.Errorf("%w: model tag %d, workspace has %d", model.ErrTagOutOfRange, tag, len(w.entries))
	}
	return nil
}

func (w *Workspace) currentModel() (*model.Model, error) {
	if w.current == NoTag {
		return nil, model.ErrNoModel
	}
	return w.entries[w.current].model, nil
}

// NewModel appends an empty model, selects it and returns its tag
func (w *Workspace) NewModel(name string) int {
	return w.add(model.NewModel(name))
}

// Add appends m, selects it and returns its tag
func (w *Workspace) Add(m *model.Model) int {
	return w.add(m)
}

func (w *Workspace) add(m *model.Model) int {
	e := entry{id: uuid.New(), model: m}
	w.entries = append(w.entries, e)
	w.current = len(w.entries) - 1
	w.logger.Debug("model added", "tag", w.current, "id", e.id, "name", m.Name)
	return w.current
}

// Select makes the model with the given tag current
func (w *Workspace) Select(tag int) error {
	if err := w.checkTag(tag); err != nil {
		return err
	}
	w.current = tag
	return nil
}

// Model returns the model with the given tag
func (w *Workspace) Model(tag int) (*model.Model, error) {
	if err := w.checkTag(tag); err != nil {
		return nil, err
	}
	return w.entries[tag].model, nil
}

// CurrentModel returns the selected model
func (w *Workspace) CurrentModel() (*model.Model, error) {
	return w.currentModel()
}

// ID returns the stable identifier of the model with the given tag
func (w *Workspace) ID(tag int) (uuid.UUID, error) {
	if err := w.checkTag(tag); err != nil {
		return uuid.Nil, err
	}
	return w.entries[tag].id, nil
}

// Delete removes the model with the given tag. If it was current, the
// first model becomes current; the selection is cleared when none remain.
func (w *Workspace) Delete(tag int) error {
	if err := w.checkTag(tag); err != nil {
		return err
	}
	id := w.entries[tag].id
	w.entries = slices.Delete(w.entries, tag, tag+1)

	switch {
	case len(w.entries) == 0:
		w.current = NoTag
	case tag == w.current:
		w.current = 0
	case tag < w.current:
		w.current--
	}

	w.logger.Debug("model deleted", "tag", tag, "id", id, "current", w.current)
	return nil
}

// Import replaces the model with the given tag by the contents of path.
// The entry keeps its ID.
func (w *Workspace) Import(path string, tag int) error {
	if err := w.checkTag(tag); err != nil {
		return err
	}
	m, err := w.codecs.Import(path)
	if err != nil {
		w.logger.Warn("import failed", "path", path, "error", err)
		return err
	}
	w.entries[tag].model = m
	w.logger.Info("model imported", "path", path, "tag", tag, "name", m.Name)
	return nil
}

// Export writes the model with the given tag to path
func (w *Workspace) Export(path string, tag int) error {
	if err := w.checkTag(tag); err != nil {
		return err
	}
	if err := w.codecs.Export(path, w.entries[tag].model); err != nil {
		w.logger.Warn("export failed", "path", path, "error", err)
		return err
	}
	w.logger.Info("model exported", "path", path, "tag", tag)
	return nil
}

// AddFace adds f to the current model
func (w *Workspace) AddFace(f *geometry.Face) error {
	m, err := w.currentModel()
	if err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("%w: face", model.ErrNilElement)
	}
	if !m.AddFace(f) {
		return fmt.Errorf("%w: face %s", set.ErrDuplicateElement, f)
	}
	return nil
}

// AddLine adds l to the current model
func (w *Workspace) AddLine(l *geometry.Line) error {
	m, err := w.currentModel()
	if err != nil {
		return err
	}
	if l == nil {
		return fmt.Errorf("%w: line", model.ErrNilElement)
	}
	if !m.AddLine(l) {
		return fmt.Errorf("%w: line %s", set.ErrDuplicateElement, l)
	}
	return nil
}

// DeleteFace removes the face with the given tag from the current model
func (w *Workspace) DeleteFace(tag int) error {
	m, err := w.currentModel()
	if err != nil {
		return err
	}
	f, err := m.Face(tag)
	if err != nil {
		return err
	}
	m.DeleteFace(f)
	return nil
}

// DeleteLine removes the line with the given tag from the current model
func (w *Workspace) DeleteLine(tag int) error {
	m, err := w.currentModel()
	if err != nil {
		return err
	}
	l, err := m.Line(tag)
	if err != nil {
		return err
	}
	m.DeleteLine(l)
	return nil
}

// ChangeFacePoint moves vertex pointTag of face faceTag in the current
// model to p
func (w *Workspace) ChangeFacePoint(faceTag, pointTag int, p geometry.Point) error {
	m, err := w.currentModel()
	if err != nil {
		return err
	}
	f, err := m.Face(faceTag)
	if err != nil {
		return err
	}
	old, err := f.Point(pointTag)
	if err != nil {
		return fmt.Errorf("%w: point tag %d", model.ErrTagOutOfRange, pointTag)
	}
	if !p.IsFinite() {
		return fmt.Errorf("%w: %s", geometry.ErrNonFinitePoint, p)
	}
	if f.Contains(p) {
		return fmt.Errorf("%w: %s", geometry.ErrDuplicatePoint, p)
	}
	if !m.ChangeFacePoint(f, old, p) {
		return fmt.Errorf("%w: the changed face already exists", set.ErrDuplicateElement)
	}
	return nil
}

// ChangeLinePoint moves endpoint pointTag of line lineTag in the current
// model to p
func (w *Workspace) ChangeLinePoint(lineTag, pointTag int, p geometry.Point) error {
	m, err := w.currentModel()
	if err != nil {
		return err
	}
	l, err := m.Line(lineTag)
	if err != nil {
		return err
	}
	old, err := l.Point(pointTag)
	if err != nil {
		return fmt.Errorf("%w: point tag %d", model.ErrTagOutOfRange, pointTag)
	}
	if !p.IsFinite() {
		return fmt.Errorf("%w: %s", geometry.ErrNonFinitePoint, p)
	}
	if l.Contains(p) {
		return fmt.Errorf("%w: %s", geometry.ErrDuplicatePoint, p)
	}
	if !m.ChangeLinePoint(l, old, p) {
		return fmt.Errorf("%w: the changed line already exists", set.ErrDuplicateElement)
	}
	return nil
}

func (w *Workspace) info(tag int) analysis.ModelInfo {
	e := w.entries[tag]
	info := analysis.DescribeModel(e.model)
	info.ID = e.id.String()
	return info
}

// Models summarizes every model in tag order
func (w *Workspace) Models() []analysis.ModelInfo {
	out := make([]analysis.ModelInfo, len(w.entries))
	for i := range w.entries {
		out[i] = w.info(i)
	}
	return out
}

// ModelInfo summarizes the model with the given tag
func (w *Workspace) ModelInfo(tag int) (analysis.ModelInfo, error) {
	if err := w.checkTag(tag); err != nil {
		return analysis.ModelInfo{}, err
	}
	return w.info(tag), nil
}

// CurrentInfo summarizes the selected model
func (w *Workspace) CurrentInfo() (analysis.ModelInfo, error) {
	if w.current == NoTag {
		return analysis.ModelInfo{}, model.ErrNoModel
	}
	return w.info(w.current), nil
}

// Faces summarizes every face of the current model
func (w *Workspace) Faces() ([]analysis.FaceInfo, error) {
	m, err := w.currentModel()
	if err != nil {
		return nil, err
	}
	return analysis.DescribeFaces(m), nil
}

// Lines summarizes every line of the current model
func (w *Workspace) Lines() ([]analysis.LineInfo, error) {
	m, err := w.currentModel()
	if err != nil {
		return nil, err
	}
	return analysis.DescribeLines(m), nil
}

// FacePoints returns the vertices of face tag in the current model
func (w *Workspace) FacePoints(tag int) ([]analysis.PointInfo, error) {
	m, err := w.currentModel()
	if err != nil {
		return nil, err
	}
	f, err := m.Face(tag)
	if err != nil {
		return nil, err
	}
	return pointInfos(f.Points()), nil
}

// LinePoints returns the endpoints of line tag in the current model
func (w *Workspace) LinePoints(tag int) ([]analysis.PointInfo, error) {
	m, err := w.currentModel()
	if err != nil {
		return nil, err
	}
	l, err := m.Line(tag)
	if err != nil {
		return nil, err
	}
	return pointInfos(l.Points()), nil
}

func pointInfos(points []geometry.Point) []analysis.PointInfo {
	out := make([]analysis.PointInfo, len(points))
	for i, p := range points {
		out[i] = analysis.NewPointInfo(p)
	}
	return out
}
