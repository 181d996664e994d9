package op

import (
	"fmt"
	"slices"
)

// Data is what flows through Forward: a single tensor or an ordered
// sequence of tensors. The zero value is an empty sequence-less Data.
type Data[T Tensor] struct {
	tensors  []T
	sequence bool
}

// Single wraps one tensor.
func Single[T Tensor](t T) Data[T] {
	return Data[T]{tensors: []T{t}}
}

// Sequence wraps an ordered list of tensors. A one-element sequence is
// still a sequence.
func Sequence[T Tensor](ts ...T) Data[T] {
	return Data[T]{tensors: slices.Clone(ts), sequence: true}
}

// IsSequence reports whether d holds a sequence.
func (d Data[T]) IsSequence() bool {
	return d.sequence
}

// Len returns the number of tensors in d.
func (d Data[T]) Len() int {
	return len(d.tensors)
}

// Tensor returns the tensor of a single Data.
// Panics if d is a sequence or empty.
func (d Data[T]) Tensor() T {
	if d.sequence || len(d.tensors) != 1 {
		panic(fmt.Sprintf("op: Tensor() called on data holding a sequence of %d tensors", len(d.tensors)))
	}
	return d.tensors[0]
}

// At returns the i-th tensor.
func (d Data[T]) At(i int) T {
	return d.tensors[i]
}

// Tensors returns a copy of the held tensors.
func (d Data[T]) Tensors() []T {
	return slices.Clone(d.tensors)
}

// Map applies fn to every tensor and keeps d's category.
func Map[T Tensor](d Data[T], fn func(T) (T, error)) (Data[T], error) {
	out := Data[T]{tensors: make([]T, len(d.tensors)), sequence: d.sequence}
	for i, t := range d.tensors {
		r, err := fn(t)
		if err != nil {
			return Data[T]{}, err
		}
		out.tensors[i] = r
	}
	return out, nil
}
