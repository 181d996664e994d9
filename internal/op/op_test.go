package op_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/estimator/internal/backend/cpu"
	"github.com/born-ml/estimator/internal/host"
	"github.com/born-ml/estimator/internal/op"
	"github.com/born-ml/estimator/internal/tensor"
)

type cpuTensor = *tensor.Tensor[float32, *cpu.CPUBackend]

var (
	_ op.TensorOp[cpuTensor]   = op.Base[cpuTensor]{}
	_ op.TensorOp[*host.Array] = op.Base[*host.Array]{}
	_ op.TensorOp[*host.Array] = (*op.Lambda[*host.Array])(nil)
)

func states() []op.State {
	return []op.State{
		{},
		{Mode: op.Train, Epoch: 3, Step: 120},
		{Mode: op.Infer, Warmup: true},
	}
}

func TestBaseForwardIsIdentityForBackendTensors(t *testing.T) {
	backend := cpu.New()
	a := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
	b := tensor.Zeros[float32](tensor.Shape{4}, backend)
	base := op.NewBase[cpuTensor]([]string{"x"}, []string{"x"}, 0)

	for _, state := range states() {
		out, err := base.Forward(op.Single(a), state)
		require.NoError(t, err)
		assert.False(t, out.IsSequence())
		assert.Same(t, a, out.Tensor())

		seq, err := base.Forward(op.Sequence(a, b), state)
		require.NoError(t, err)
		assert.True(t, seq.IsSequence())
		require.Equal(t, 2, seq.Len())
		assert.Same(t, a, seq.At(0))
		assert.Same(t, b, seq.At(1))
	}
}

func TestBaseForwardIsIdentityForHostArrays(t *testing.T) {
	arr, err := host.FromFlat([]int64{1, 2, 3}, 3)
	require.NoError(t, err)
	base := op.NewBase[*host.Array](nil, []string{"y"}, op.NewModeSet(op.Eval))

	for _, state := range states() {
		out, err := base.Forward(op.Single(arr), state)
		require.NoError(t, err)
		assert.Same(t, arr, out.Tensor())

		seq, err := base.Forward(op.Sequence(arr), state)
		require.NoError(t, err)
		assert.True(t, seq.IsSequence())
		assert.Same(t, arr, seq.At(0))
	}
}

func TestBaseAccessorsCopyKeys(t *testing.T) {
	inputs := []string{"a", "b"}
	base := op.NewBase[*host.Array](inputs, []string{"c"}, op.NewModeSet(op.Train))
	inputs[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, base.Inputs())
	got := base.Outputs()
	got[0] = "mutated"
	assert.Equal(t, []string{"c"}, base.Outputs())
	assert.Equal(t, op.NewModeSet(op.Train), base.Modes())
}

func TestData(t *testing.T) {
	arr, err := host.Zeros[float32](2)
	require.NoError(t, err)

	single := op.Single(arr)
	assert.Equal(t, 1, single.Len())
	assert.False(t, single.IsSequence())

	seq := op.Sequence(arr, arr)
	assert.Panics(t, func() { seq.Tensor() })
	assert.Panics(t, func() { op.Data[*host.Array]{}.Tensor() })

	ts := seq.Tensors()
	ts[0] = nil
	assert.NotNil(t, seq.At(0))
}

func TestMapKeepsCategory(t *testing.T) {
	backend := cpu.New()
	x := tensor.Full[float32](tensor.Shape{2}, 2, backend)
	double := func(t cpuTensor) (cpuTensor, error) { return t.MulScalar(2), nil }

	out, err := op.Map(op.Single(x), double)
	require.NoError(t, err)
	assert.False(t, out.IsSequence())
	assert.Equal(t, []float32{4, 4}, out.Tensor().Data())

	seq, err := op.Map(op.Sequence(x), double)
	require.NoError(t, err)
	assert.True(t, seq.IsSequence())
}

func TestLambda(t *testing.T) {
	arr, err := host.FromFlat([]float32{1, 2}, 2)
	require.NoError(t, err)

	var seen op.State
	l := op.NewLambda[*host.Array](func(d op.Data[*host.Array], s op.State) (op.Data[*host.Array], error) {
		seen = s
		return op.Sequence(d.Tensors()...), nil
	}, []string{"x"}, []string{"x"}, 0)

	out, err := l.Forward(op.Single(arr), op.State{Mode: op.Test, Epoch: 2})
	require.NoError(t, err)
	assert.True(t, out.IsSequence())
	assert.Equal(t, op.State{Mode: op.Test, Epoch: 2}, seen)

	nop := op.NewLambda[*host.Array](nil, nil, nil, 0)
	out, err = nop.Forward(op.Single(arr), op.State{})
	require.NoError(t, err)
	assert.Same(t, arr, out.Tensor())
}
