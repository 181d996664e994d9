package tensor

// Backend defines the compute operations tensor ops dispatch to.
//
// Element-wise binary operations follow NumPy broadcasting. Implementations
// panic on programmer errors such as incompatible shapes; callers that need
// an error check shapes first with BroadcastShapes.
type Backend interface {
	// Element-wise binary operations
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	MulScalar(x *RawTensor, scalar any) *RawTensor
	AddScalar(x *RawTensor, scalar any) *RawTensor

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Sum reduces all elements to a 0-D tensor.
	Sum(x *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
