// Package tensorop implements tensor ops over backend tensors.
package tensorop

import (
	"github.com/pkg/errors"

	"github.com/born-ml/estimator/internal/op"
	"github.com/born-ml/estimator/internal/tensor"
)

// Scale multiplies every input tensor by a constant factor.
type Scale[T tensor.Float, B tensor.Backend] struct {
	op.Base[*tensor.Tensor[T, B]]
	factor T
}

// NewScale creates a Scale op.
func NewScale[T tensor.Float, B tensor.Backend](factor T, inputs, outputs []string, modes op.ModeSet) *Scale[T, B] {
	return &Scale[T, B]{
		Base:   op.NewBase[*tensor.Tensor[T, B]](inputs, outputs, modes),
		factor: factor,
	}
}

// Forward scales each tensor, keeping the data category.
func (s *Scale[T, B]) Forward(data op.Data[*tensor.Tensor[T, B]], _ op.State) (op.Data[*tensor.Tensor[T, B]], error) {
	return op.Map(data, func(t *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
		return t.MulScalar(s.factor), nil
	})
}

// Sum adds a sequence of tensors element-wise into one tensor, with
// broadcasting.
type Sum[T tensor.Float, B tensor.Backend] struct {
	op.Base[*tensor.Tensor[T, B]]
}

// NewSum creates a Sum op.
func NewSum[T tensor.Float, B tensor.Backend](inputs []string, output string, modes op.ModeSet) *Sum[T, B] {
	return &Sum[T, B]{
		Base: op.NewBase[*tensor.Tensor[T, B]](inputs, []string{output}, modes),
	}
}

// Forward returns a single tensor holding the sum of data.
func (s *Sum[T, B]) Forward(data op.Data[*tensor.Tensor[T, B]], _ op.State) (op.Data[*tensor.Tensor[T, B]], error) {
	if data.Len() == 0 {
		return op.Data[*tensor.Tensor[T, B]]{}, errors.New("sum: no tensors to add")
	}

	acc := data.At(0)
	for i := 1; i < data.Len(); i++ {
		next := data.At(i)
		if _, _, err := tensor.BroadcastShapes(acc.Shape(), next.Shape()); err != nil {
			return op.Data[*tensor.Tensor[T, B]]{}, errors.Wrapf(err, "sum: tensor %d", i)
		}
		acc = acc.Add(next)
	}
	return op.Single(acc), nil
}

// Reshape gives every input tensor a target shape. One dimension may be -1
// and is inferred from the element count.
type Reshape[T tensor.Float, B tensor.Backend] struct {
	op.Base[*tensor.Tensor[T, B]]
	shape tensor.Shape
}

// NewReshape creates a Reshape op.
func NewReshape[T tensor.Float, B tensor.Backend](shape tensor.Shape, inputs, outputs []string, modes op.ModeSet) *Reshape[T, B] {
	return &Reshape[T, B]{
		Base:  op.NewBase[*tensor.Tensor[T, B]](inputs, outputs, modes),
		shape: shape.Clone(),
	}
}

// Forward reshapes each tensor, keeping the data category.
func (r *Reshape[T, B]) Forward(data op.Data[*tensor.Tensor[T, B]], _ op.State) (op.Data[*tensor.Tensor[T, B]], error) {
	return op.Map(data, func(t *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
		target, err := r.shape.Infer(t.NumElements())
		if err != nil {
			return nil, errors.Wrapf(err, "reshape %v", t.Shape())
		}
		return t.Reshape(target...), nil
	})
}
