// Package host holds tensors as flat Go slices plus dimensions, the layout
// used to move data between host memory and an accelerator runtime.
//
// Host arrays carry no backend: they are the second tensor representation
// ops may be written against, next to backend-bound tensor.Tensor values.
package host

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/born-ml/estimator/internal/tensor"
)

// Element is the set of Go types an Array can hold.
type Element interface {
	float32 | float64 | int32 | int64 | uint8 | bool | float16.Float16
}

// Array is a dense row-major array stored as a flat slice.
type Array struct {
	dims  tensor.Shape
	dtype tensor.DataType
	flat  any
}

// FromFlat creates an Array over flat with the given dimensions.
// The slice is not copied. With no dimensions the array is a scalar and flat
// must have length 1.
func FromFlat[E Element](flat []E, dims ...int) (*Array, error) {
	shape := tensor.Shape(dims)
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrapf(err, "FromFlat cannot be given zero or negative dimensions, got %v", dims)
	}
	if len(flat) != shape.NumElements() {
		return nil, errors.Errorf("FromFlat(flat, dims=%v) needs %d values to match dimensions, but got len(flat)=%d",
			dims, shape.NumElements(), len(flat))
	}
	return &Array{
		dims:  shape.Clone(),
		dtype: dataTypeOf[E](),
		flat:  flat,
	}, nil
}

// Zeros allocates a zero-filled Array.
func Zeros[E Element](dims ...int) (*Array, error) {
	if err := tensor.Shape(dims).Validate(); err != nil {
		return nil, errors.Wrapf(err, "Zeros cannot be given zero or negative dimensions, got %v", dims)
	}
	return FromFlat(make([]E, tensor.Shape(dims).NumElements()), dims...)
}

// Flat returns the typed flat slice backing a. The slice is shared.
func Flat[E Element](a *Array) ([]E, error) {
	flat, ok := a.flat.([]E)
	if !ok {
		return nil, errors.Errorf("array holds %s, not %s", a.dtype, dataTypeOf[E]())
	}
	return flat, nil
}

// Shape returns the array dimensions.
func (a *Array) Shape() tensor.Shape {
	return a.dims
}

// DType returns the element type.
func (a *Array) DType() tensor.DataType {
	return a.dtype
}

// NumElements returns the number of elements.
func (a *Array) NumElements() int {
	return a.dims.NumElements()
}

// Flat returns the backing slice as an any, e.g. []float32.
func (a *Array) Flat() any {
	return a.flat
}

// String returns a human-readable representation of the array.
func (a *Array) String() string {
	return fmt.Sprintf("Array[%s]%v on %s", a.dtype, a.dims, tensor.Host)
}

func dataTypeOf[E Element]() tensor.DataType {
	var zero E
	switch any(zero).(type) {
	case float32:
		return tensor.Float32
	case float64:
		return tensor.Float64
	case int32:
		return tensor.Int32
	case int64:
		return tensor.Int64
	case uint8:
		return tensor.Uint8
	case bool:
		return tensor.Bool
	default:
		return tensor.Float16
	}
}
