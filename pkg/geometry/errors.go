package geometry

import "errors"

// Shape construction and mutation errors
var (
	ErrPointCountMismatch = errors.New("point count does not match the required arity")
	ErrDuplicatePoints    = errors.New("shape has coincident points")
	ErrDuplicatePoint     = errors.New("point already belongs to the shape")
	ErrFixedArity         = errors.New("point count is fixed and cannot be changed")
	ErrNotApplicable      = errors.New("operation is not applicable to this shape")
	ErrNonFinitePoint     = errors.New("point has a NaN or infinite coordinate")
)
