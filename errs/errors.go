// Package errs defines sentinel errors shared across scedar packages.
//
// Callers should match these with errors.Is, since call sites wrap them
// with additional context:
//
//	xs, err := vector.Coerce(input, format.KindFloat64)
//	if errors.Is(err, errs.ErrInvalidShape) {
//	    // input was not a one-dimensional numeric vector
//	}
package errs

import "errors"

var (
	// ErrInvalidShape indicates input data is not a one-dimensional vector,
	// e.g. a scalar, a nested slice, or a map.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrInvalidKind indicates a value kind that is not numeric, either in
	// the requested target kind or in the input's element type.
	ErrInvalidKind = errors.New("invalid kind")

	// ErrSingularSample indicates a sample that cannot support a kernel
	// density fit: empty, fewer than two points, zero variance, or a
	// bandwidth rule that produced a non-positive factor.
	ErrSingularSample = errors.New("singular sample")
)
