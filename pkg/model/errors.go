package model

import (
	"errors"
	"fmt"

	"github.com/philipparndt/geomodel/pkg/geometry"
	"github.com/philipparndt/geomodel/pkg/set"
)

// Sentinel errors for model and workspace operations
var (
	ErrNoPointOperation = errors.New("points cannot be edited on a model, edit faces and lines instead")
	ErrTagOutOfRange    = errors.New("tag out of range")
	ErrNoModel          = errors.New("no model selected")
	ErrNilElement       = errors.New("face or line is nil")
	ErrImport           = errors.New("failed to import model")
	ErrExport           = errors.New("failed to export model")
)

// ErrorKind is a coarse-grained categorization for errors
type ErrorKind string

const (
	KindNone               ErrorKind = ""
	KindUnknown            ErrorKind = "unknown"
	KindDuplicateElement   ErrorKind = "duplicate_element"
	KindDuplicatePoint     ErrorKind = "duplicate_point"
	KindElementNotFound    ErrorKind = "element_not_found"
	KindIndexOutOfRange    ErrorKind = "index_out_of_range"
	KindTagOutOfRange      ErrorKind = "tag_out_of_range"
	KindFixedArity         ErrorKind = "fixed_arity"
	KindNoPointOperation   ErrorKind = "no_point_operation"
	KindPointCountMismatch ErrorKind = "point_count_mismatch"
	KindDuplicatePoints    ErrorKind = "duplicate_points"
	KindNotApplicable      ErrorKind = "not_applicable"
	KindNoModel            ErrorKind = "no_model"
	KindImportFailure      ErrorKind = "import_failure"
	KindExportFailure      ErrorKind = "export_failure"
	KindNonFinitePoint     ErrorKind = "non_finite_point"
	KindNilElement         ErrorKind = "nil_element"
)

// kinds is checked in order, so wrappers come before the causes they wrap
var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrImport, KindImportFailure},
	{ErrExport, KindExportFailure},
	{ErrNoModel, KindNoModel},
	{ErrTagOutOfRange, KindTagOutOfRange},
	{ErrNoPointOperation, KindNoPointOperation},
	{ErrNilElement, KindNilElement},
	{geometry.ErrNonFinitePoint, KindNonFinitePoint},
	{geometry.ErrDuplicatePoint, KindDuplicatePoint},
	{geometry.ErrDuplicatePoints, KindDuplicatePoints},
	{geometry.ErrPointCountMismatch, KindPointCountMismatch},
	{geometry.ErrFixedArity, KindFixedArity},
	{geometry.ErrNotApplicable, KindNotApplicable},
	{set.ErrDuplicateElement, KindDuplicateElement},
	{set.ErrElementNotFound, KindElementNotFound},
	{set.ErrIndexOutOfRange, KindIndexOutOfRange},
}

// Kind classifies err. A nil error has KindNone.
func Kind(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

// IsKind helps callers classify errors without matching sentinels themselves
func IsKind(err error, kind ErrorKind) bool {
	return Kind(err) == kind
}

func tagError(what string, tag, n int) error {
	return fmt.Errorf("%w: %s tag %d, model has %d", ErrTagOutOfRange, what, tag, n)
}
