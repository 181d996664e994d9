// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package op defines the tensor operation contract used by forward pipelines.
//
// An op receives either one tensor or an ordered sequence of tensors and
// returns data of the same category. The base op is the identity:
//
//	type T = *tensor.Tensor[float32, *cpu.Backend]
//	base := op.NewBase[T]([]string{"x"}, []string{"x"}, op.AllModes)
//	out, _ := base.Forward(op.Single(x), op.State{Mode: op.Train}) // out holds x
//
// Ops declare which batch keys they read and write, and in which modes they
// run. Mode sets parse mode names, including negation:
//
//	modes, err := op.ParseModes("!infer") // train, eval and test
package op

import (
	"github.com/born-ml/estimator/internal/op"
)

// Tensor is what an op operates on: anything with a shape, a data type and
// an element count. Backend tensors and host arrays both qualify.
type Tensor = op.Tensor

// TensorOp is a forward operation over tensors of type T.
type TensorOp[T Tensor] = op.TensorOp[T]

// Data is a single tensor or an ordered sequence of tensors.
type Data[T Tensor] = op.Data[T]

// State carries the execution context of a forward call.
type State = op.State

// Mode is a pipeline execution mode.
type Mode = op.Mode

// ModeSet is a set of modes. The zero value means every mode.
type ModeSet = op.ModeSet

// Execution modes.
const (
	Train Mode = op.Train
	Eval  Mode = op.Eval
	Test  Mode = op.Test
	Infer Mode = op.Infer
)

// AllModes contains every mode.
const AllModes = op.AllModes

// Base is the identity op. Embed it to inherit Inputs, Outputs and Modes.
type Base[T Tensor] = op.Base[T]

// LambdaFunc is the function wrapped by Lambda.
type LambdaFunc[T Tensor] = op.LambdaFunc[T]

// Lambda adapts a function to TensorOp.
type Lambda[T Tensor] = op.Lambda[T]

// NewBase creates an identity op reading inputs and writing outputs.
func NewBase[T Tensor](inputs, outputs []string, modes ModeSet) Base[T] {
	return op.NewBase[T](inputs, outputs, modes)
}

// NewLambda creates an op that calls fn on Forward.
func NewLambda[T Tensor](fn LambdaFunc[T], inputs, outputs []string, modes ModeSet) *Lambda[T] {
	return op.NewLambda(fn, inputs, outputs, modes)
}

// Single wraps one tensor.
func Single[T Tensor](t T) Data[T] {
	return op.Single(t)
}

// Sequence wraps an ordered sequence of tensors.
func Sequence[T Tensor](ts ...T) Data[T] {
	return op.Sequence(ts...)
}

// Map applies fn to every tensor in d and keeps the category.
func Map[T Tensor](d Data[T], fn func(T) (T, error)) (Data[T], error) {
	return op.Map(d, fn)
}

// NewModeSet returns the set holding modes.
func NewModeSet(modes ...Mode) ModeSet {
	return op.NewModeSet(modes...)
}

// ParseMode parses a single mode name.
func ParseMode(s string) (Mode, error) {
	return op.ParseMode(s)
}

// ParseModes parses mode names, where a leading "!" excludes a mode.
func ParseModes(names ...string) (ModeSet, error) {
	return op.ParseModes(names...)
}
