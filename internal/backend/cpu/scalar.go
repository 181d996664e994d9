package cpu

import (
	"fmt"

	"github.com/born-ml/estimator/internal/tensor"
)

// MulScalar multiplies each element of the tensor by a scalar value.
// The scalar's Go type must match the tensor dtype.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalar("mulScalar", opMul, x, scalar)
}

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalar("addScalar", opAdd, x, scalar)
}

func (cpu *CPUBackend) scalar(name string, op binaryOp, x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	ok := false
	switch x.DType() {
	case tensor.Float32:
		ok = applyScalar(op, result.AsFloat32(), x.AsFloat32(), scalar)
	case tensor.Float64:
		ok = applyScalar(op, result.AsFloat64(), x.AsFloat64(), scalar)
	case tensor.Int32:
		ok = applyScalar(op, result.AsInt32(), x.AsInt32(), scalar)
	case tensor.Int64:
		ok = applyScalar(op, result.AsInt64(), x.AsInt64(), scalar)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", name, x.DType()))
	}
	if !ok {
		panic(fmt.Sprintf("%s: scalar %T does not match dtype %s", name, scalar, x.DType()))
	}

	return result
}

func applyScalar[E number](op binaryOp, dst, src []E, scalar any) bool {
	s, ok := scalar.(E)
	if !ok {
		return false
	}
	for i, v := range src {
		dst[i] = combine(op, v, s)
	}
	return true
}
