// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensors for estimator ops.
//
// # Overview
//
// Tensor[T, B] pairs a reference-counted buffer with a compute backend.
// Operations never modify their operands; each returns a new tensor.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/estimator/backend/cpu"
//	    "github.com/born-ml/estimator/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Arange[float32](0, 6, backend)
//	    y := x.MulScalar(2).Reshape(2, 3)
//	    fmt.Println(y) // Tensor[float32][2 3] on CPU
//	}
//
// # Supported Data Types
//
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers, useful for images)
//   - bool (boolean masks)
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, backend) // (3, 1)
//	b := tensor.Ones[float32](tensor.Shape{3, 4}, backend)  // (3, 4)
//	c := a.Add(b)                                          // (3, 4)
package tensor
