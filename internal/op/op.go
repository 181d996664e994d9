package op

import (
	"slices"

	"github.com/born-ml/estimator/internal/tensor"
)

// Tensor is the capability set an op needs from a tensor representation.
type Tensor interface {
	Shape() tensor.Shape
	DType() tensor.DataType
	NumElements() int
}

// TensorOp is a unit of tensor transformation applied per batch.
type TensorOp[T Tensor] interface {
	// Forward transforms data. The result has the same category (single or
	// sequence) as data. Errors report incompatible shapes or dtypes.
	Forward(data Data[T], state State) (Data[T], error)

	// Inputs returns the batch keys Forward reads, in order.
	Inputs() []string

	// Outputs returns the batch keys Forward's result is written to.
	Outputs() []string

	// Modes returns the modes the op runs in.
	Modes() ModeSet
}

// Base is the identity TensorOp. Forward returns data unchanged for every
// state.
type Base[T Tensor] struct {
	inputs  []string
	outputs []string
	modes   ModeSet
}

// NewBase creates a Base reading inputs, writing outputs and running in
// modes. A zero ModeSet runs in every mode.
func NewBase[T Tensor](inputs, outputs []string, modes ModeSet) Base[T] {
	return Base[T]{
		inputs:  slices.Clone(inputs),
		outputs: slices.Clone(outputs),
		modes:   modes,
	}
}

// Forward returns data unchanged.
func (b Base[T]) Forward(data Data[T], _ State) (Data[T], error) {
	return data, nil
}

// Inputs returns the input keys.
func (b Base[T]) Inputs() []string {
	return slices.Clone(b.inputs)
}

// Outputs returns the output keys.
func (b Base[T]) Outputs() []string {
	return slices.Clone(b.outputs)
}

// Modes returns the op's mode filter.
func (b Base[T]) Modes() ModeSet {
	return b.modes
}

// LambdaFunc is the function a Lambda op applies.
type LambdaFunc[T Tensor] func(data Data[T], state State) (Data[T], error)

// Lambda adapts a function into a TensorOp.
type Lambda[T Tensor] struct {
	Base[T]
	fn LambdaFunc[T]
}

// NewLambda creates a Lambda applying fn. A nil fn behaves like Base.
func NewLambda[T Tensor](fn LambdaFunc[T], inputs, outputs []string, modes ModeSet) *Lambda[T] {
	return &Lambda[T]{
		Base: NewBase[T](inputs, outputs, modes),
		fn:   fn,
	}
}

// Forward applies the wrapped function.
func (l *Lambda[T]) Forward(data Data[T], state State) (Data[T], error) {
	if l.fn == nil {
		return data, nil
	}
	return l.fn(data, state)
}
