package cpu

import (
	"github.com/born-ml/estimator/internal/tensor"
)

type number interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
)

func combine[E number](op binaryOp, x, y E) E {
	switch op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	default:
		return x / y
	}
}

// applyBinary writes op(a, b) into dst. Same-shape inputs take the flat
// path; everything else maps each output index back through the input
// strides, with size-1 dimensions pinned to offset 0.
func applyBinary[E number](op binaryOp, dst, a, b []E, aShape, bShape, outShape tensor.Shape, needsBroadcast bool) {
	if !needsBroadcast {
		for i := range dst {
			dst[i] = combine(op, a[i], b[i])
		}
		return
	}

	aStrides := broadcastStrides(aShape, len(outShape))
	bStrides := broadcastStrides(bShape, len(outShape))
	outStrides := outShape.ComputeStrides()

	for i := range dst {
		rem := i
		aOff, bOff := 0, 0
		for d, stride := range outStrides {
			idx := rem / stride
			rem %= stride
			aOff += idx * aStrides[d]
			bOff += idx * bStrides[d]
		}
		dst[i] = combine(op, a[aOff], b[bOff])
	}
}

// broadcastStrides returns strides for shape right-aligned to rank dims.
// Broadcast dimensions (size 1 or missing) get stride 0.
func broadcastStrides(shape tensor.Shape, rank int) []int {
	strides := make([]int, rank)
	own := shape.ComputeStrides()
	pad := rank - len(shape)
	for i, dim := range shape {
		if dim != 1 {
			strides[pad+i] = own[i]
		}
	}
	return strides
}
