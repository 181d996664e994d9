// Package op defines the contract every tensor-processing step of a pipeline
// implements.
//
// A TensorOp receives either one tensor or an ordered sequence of tensors
// together with the caller's State, and returns transformed data of the same
// category. The contract is generic over the tensor representation: any type
// satisfying Tensor works, including backend tensors (*tensor.Tensor[T, B])
// and host arrays (*host.Array). Ops never convert between representations.
//
// Base is the identity implementation; concrete ops embed it for their
// input/output keys and mode filter, and override Forward:
//
//	type Double[B tensor.Backend] struct {
//	    op.Base[*tensor.Tensor[float32, B]]
//	}
//
//	func (d *Double[B]) Forward(data op.Data[*tensor.Tensor[float32, B]], _ op.State) (op.Data[*tensor.Tensor[float32, B]], error) {
//	    return op.Map(data, func(t *tensor.Tensor[float32, B]) (*tensor.Tensor[float32, B], error) {
//	        return t.MulScalar(2), nil
//	    })
//	}
package op
