// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// The backend supports float32, float64, int32, int64 and uint8 element-wise
// arithmetic with NumPy-compatible broadcasting, scalar arithmetic, reshape,
// transpose and full reduction. Operations allocate their result and never
// modify their inputs.
//
// Programmer errors such as mismatched dtypes or incompatible shapes panic
// with a message naming the operation.
//
// # Thread Safety
//
// The CPU backend holds no mutable state and is safe for concurrent use.
package cpu
