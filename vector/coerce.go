// Package vector coerces arbitrary one-dimensional numeric input into the
// []float64 sample vectors consumed by the mdl estimators.
package vector

import (
	"fmt"
	"math"
	"reflect"

	"github.com/ahmet-humainr/scedar/errs"
	"github.com/ahmet-humainr/scedar/format"
)

// Coerce converts x into a freshly allocated []float64 sample vector.
//
// Accepted inputs are slices and arrays of any Go numeric element type
// ([]float64, []int, [3]float32, ...) and []any whose elements are numeric.
// A nil input coerces to an empty vector. The target kind selects how each
// element is normalized before being carried as float64:
//
//   - format.KindFloat64: values pass through unchanged
//   - format.KindFloat32: values are rounded through single precision
//   - format.KindInt64: values are truncated toward zero
//
// Parameters:
//   - x: Input data (slice, array, or nil)
//   - kind: Target numeric kind for the elements
//
// Returns:
//   - []float64: The coerced sample vector, owned by the caller
//   - error: ErrInvalidKind for unknown kinds or non-numeric elements,
//     ErrInvalidShape for scalars, maps, and nested slices
//
// Example:
//
//	xs, err := vector.Coerce([]int{3, 1, 2}, format.KindFloat64)
//	if err != nil {
//	    return err
//	}
//	m := mdl.NewMultinomial(xs)
func Coerce(x any, kind format.Kind) ([]float64, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if x == nil {
		return []float64{}, nil
	}

	// Fast paths for the common concrete types, bypassing reflection.
	switch v := x.(type) {
	case []float64:
		out := make([]float64, len(v))
		for i, f := range v {
			out[i] = normalize(f, kind)
		}

		return out, nil
	case []float32:
		out := make([]float64, len(v))
		for i, f := range v {
			out[i] = normalize(float64(f), kind)
		}

		return out, nil
	case []int:
		out := make([]float64, len(v))
		for i, n := range v {
			out[i] = normalize(float64(n), kind)
		}

		return out, nil
	case []int64:
		out := make([]float64, len(v))
		for i, n := range v {
			out[i] = normalize(float64(n), kind)
		}

		return out, nil
	}

	return coerceReflect(reflect.ValueOf(x), kind)
}

// coerceReflect handles the remaining numeric slice/array types and []any.
func coerceReflect(rv reflect.Value, kind format.Kind) ([]float64, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("%w: %s is not a one-dimensional vector", errs.ErrInvalidShape, rv.Kind())
	}

	out := make([]float64, rv.Len())
	for i := range out {
		elem := rv.Index(i)
		if elem.Kind() == reflect.Interface && !elem.IsNil() {
			elem = elem.Elem()
		}

		f, err := elemFloat(elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = normalize(f, kind)
	}

	return out, nil
}

func elemFloat(elem reflect.Value) (float64, error) {
	switch elem.Kind() {
	case reflect.Float32, reflect.Float64:
		return elem.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(elem.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(elem.Uint()), nil
	case reflect.Slice, reflect.Array:
		return 0, fmt.Errorf("%w: nested %s makes input multi-dimensional", errs.ErrInvalidShape, elem.Kind())
	default:
		return 0, fmt.Errorf("%w: element type %s is not numeric", errs.ErrInvalidKind, elem.Type())
	}
}

func validateKind(kind format.Kind) error {
	switch kind {
	case format.KindFloat64, format.KindFloat32, format.KindInt64:
		return nil
	default:
		return fmt.Errorf("%w: unsupported target kind %s", errs.ErrInvalidKind, kind)
	}
}

// normalize rounds v through the target kind.
// Truncation keeps NaN and infinities as-is rather than converting through
// int64, so out-of-range values never wrap.
func normalize(v float64, kind format.Kind) float64 {
	switch kind {
	case format.KindFloat32:
		return float64(float32(v))
	case format.KindInt64:
		return math.Trunc(v)
	default:
		return v
	}
}
