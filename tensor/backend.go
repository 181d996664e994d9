// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/estimator/internal/tensor"

// Backend defines the compute operations a tensor dispatches to.
//
// Implementations:
//   - backend/cpu: Pure Go, NumPy-style broadcasting
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	y := x.MulScalar(2) // Uses backend.MulScalar under the hood
type Backend interface {
	// Element-wise binary operations.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations.
	MulScalar(x *RawTensor, scalar any) *RawTensor
	AddScalar(x *RawTensor, scalar any) *RawTensor

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Sum reduces all elements to a 0-D tensor.
	Sum(x *RawTensor) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
