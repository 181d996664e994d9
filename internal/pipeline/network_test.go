package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/estimator/internal/backend/cpu"
	"github.com/born-ml/estimator/internal/host"
	"github.com/born-ml/estimator/internal/op"
	"github.com/born-ml/estimator/internal/op/hostop"
	"github.com/born-ml/estimator/internal/op/tensorop"
	"github.com/born-ml/estimator/internal/tensor"
)

type cpuTensor = *tensor.Tensor[float32, *cpu.CPUBackend]

func cpuBatch(t *testing.T) Batch[cpuTensor] {
	t.Helper()
	backend := cpu.New()
	x, err := tensor.FromSlice[float32]([]float32{1, 2, 3, 4}, tensor.Shape{4}, backend)
	require.NoError(t, err)
	y, err := tensor.FromSlice[float32]([]float32{10, 10, 10, 10}, tensor.Shape{4}, backend)
	require.NoError(t, err)
	return Batch[cpuTensor]{"x": x, "y": y}
}

func TestNetworkRun(t *testing.T) {
	net, err := NewNetwork[cpuTensor](
		tensorop.NewScale[float32, *cpu.CPUBackend](2, []string{"x"}, []string{"x2"}, 0),
		tensorop.NewSum[float32, *cpu.CPUBackend]([]string{"x2", "y"}, "z", 0),
		tensorop.NewReshape[float32, *cpu.CPUBackend](tensor.Shape{2, -1}, []string{"z"}, []string{"z"}, 0),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, net.Len())

	in := cpuBatch(t)
	out, err := net.Run(context.Background(), in, op.State{Mode: op.Train})
	require.NoError(t, err)

	assert.Equal(t, []float32{12, 14, 16, 18}, out["z"].Data())
	assert.Equal(t, tensor.Shape{2, 2}, out["z"].Shape())
	assert.Len(t, in, 2, "input batch must not gain keys")
	assert.Contains(t, out, "x2")
}

func TestNetworkSkipsByMode(t *testing.T) {
	trainOnly := tensorop.NewScale[float32, *cpu.CPUBackend](100, []string{"x"}, []string{"x"}, op.NewModeSet(op.Train))
	net, err := NewNetwork[cpuTensor](trainOnly)
	require.NoError(t, err)

	in := cpuBatch(t)
	out, err := net.Run(context.Background(), in, op.State{Mode: op.Eval})
	require.NoError(t, err)
	assert.Same(t, in["x"], out["x"])

	out, err = net.Run(context.Background(), in, op.State{Mode: op.Train})
	require.NoError(t, err)
	assert.Equal(t, []float32{100, 200, 300, 400}, out["x"].Data())
	assert.Equal(t, []float32{1, 2, 3, 4}, in["x"].Data())
}

func TestNetworkErrors(t *testing.T) {
	_, err := NewNetwork[cpuTensor](nil)
	assert.ErrorContains(t, err, "op 0 is nil")

	_, err = NewNetwork[cpuTensor](op.NewBase[cpuTensor]([]string{"x"}, nil, 0))
	assert.ErrorContains(t, err, "has no outputs")

	missing, err := NewNetwork[cpuTensor](op.NewBase[cpuTensor]([]string{"nope"}, []string{"x"}, 0))
	require.NoError(t, err)
	_, err = missing.Run(context.Background(), cpuBatch(t), op.State{})
	assert.ErrorContains(t, err, `key "nope" not found`)

	split := op.NewLambda[cpuTensor](func(d op.Data[cpuTensor], _ op.State) (op.Data[cpuTensor], error) {
		return op.Sequence(d.Tensor(), d.Tensor()), nil
	}, []string{"x"}, []string{"x"}, 0)
	mismatch, err := NewNetwork[cpuTensor](split)
	require.NoError(t, err)
	_, err = mismatch.Run(context.Background(), cpuBatch(t), op.State{})
	assert.ErrorContains(t, err, "returned 2 tensors for outputs [x]")

	bad := tensorop.NewSum[float32, *cpu.CPUBackend]([]string{"x", "short"}, "z", 0)
	shapes, err := NewNetwork[cpuTensor](bad)
	require.NoError(t, err)
	batch := cpuBatch(t)
	batch["short"] = tensor.Zeros[float32](tensor.Shape{3}, cpu.New())
	_, err = shapes.Run(context.Background(), batch, op.State{})
	assert.ErrorContains(t, err, "op 0")
	assert.ErrorContains(t, err, "forward")
}

func TestNetworkCancelled(t *testing.T) {
	net, err := NewNetwork[cpuTensor](op.NewBase[cpuTensor]([]string{"x"}, []string{"x"}, 0))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = net.Run(ctx, cpuBatch(t), op.State{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNetworkHostArrays(t *testing.T) {
	net, err := NewNetwork[*host.Array](
		hostop.NewNormalize([]string{"img"}, []string{"img"}, 0),
		hostop.NewToHalf([]string{"img"}, []string{"img16"}, op.NewModeSet(op.Infer)),
	)
	require.NoError(t, err)

	img, err := host.FromFlat([]float32{1, 3}, 1, 2)
	require.NoError(t, err)

	out, err := net.Run(context.Background(), Batch[*host.Array]{"img": img}, op.State{Mode: op.Infer})
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, out["img"].DType())
	assert.Equal(t, tensor.Float16, out["img16"].DType())

	out, err = net.Run(context.Background(), Batch[*host.Array]{"img": img}, op.State{Mode: op.Train})
	require.NoError(t, err)
	assert.NotContains(t, out, "img16")
}
