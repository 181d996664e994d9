package host

import (
	"github.com/x448/float16"
)

// ToHalf converts a float32 array to float16. Values outside the float16
// range become ±Inf.
func ToHalf(a *Array) (*Array, error) {
	src, err := Flat[float32](a)
	if err != nil {
		return nil, err
	}
	dst := make([]float16.Float16, len(src))
	for i, v := range src {
		dst[i] = float16.Fromfloat32(v)
	}
	return FromFlat(dst, a.dims...)
}

// ToFloat32 converts a float16 array to float32.
func ToFloat32(a *Array) (*Array, error) {
	src, err := Flat[float16.Float16](a)
	if err != nil {
		return nil, err
	}
	dst := make([]float32, len(src))
	for i, v := range src {
		dst[i] = v.Float32()
	}
	return FromFlat(dst, a.dims...)
}
