package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/born-ml/estimator/internal/tensor"
)

func TestFromFlat(t *testing.T) {
	a, err := FromFlat([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, a.Shape())
	assert.Equal(t, tensor.Float32, a.DType())
	assert.Equal(t, 6, a.NumElements())
	assert.Equal(t, "Array[float32][2 3] on Host", a.String())

	flat, err := Flat[float32](a)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, flat)

	_, err = Flat[int64](a)
	assert.Error(t, err)
}

func TestFromFlatErrors(t *testing.T) {
	_, err := FromFlat([]int32{1, 2, 3}, 2, 2)
	assert.ErrorContains(t, err, "needs 4 values")

	_, err = FromFlat([]int32{1}, 0)
	assert.ErrorContains(t, err, "zero or negative")

	s, err := FromFlat([]bool{true})
	require.NoError(t, err)
	assert.Len(t, s.Shape(), 0)
	assert.Equal(t, tensor.Bool, s.DType())
}

func TestZeros(t *testing.T) {
	a, err := Zeros[float16.Float16](3)
	require.NoError(t, err)
	assert.Equal(t, tensor.Float16, a.DType())
	assert.Equal(t, 3, a.NumElements())
}

func TestHalfRoundTrip(t *testing.T) {
	a, err := FromFlat([]float32{0.5, -2, 1024}, 3)
	require.NoError(t, err)

	h, err := ToHalf(a)
	require.NoError(t, err)
	assert.Equal(t, tensor.Float16, h.DType())
	assert.Equal(t, a.Shape(), h.Shape())

	back, err := ToFloat32(h)
	require.NoError(t, err)
	flat, _ := Flat[float32](back)
	assert.Equal(t, []float32{0.5, -2, 1024}, flat)

	_, err = ToFloat32(a)
	assert.Error(t, err)
}

func TestMeanStd(t *testing.T) {
	a, err := FromFlat([]float32{2, 4, 4, 4, 5, 5, 7, 9}, 8)
	require.NoError(t, err)

	mean, std, err := MeanStd(a)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, mean, 1e-6)
	assert.InDelta(t, 2.0, std, 1e-6)
}
