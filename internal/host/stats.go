package host

import (
	"github.com/chewxy/math32"
)

// MeanStd returns the mean and population standard deviation of a float32
// array.
func MeanStd(a *Array) (mean, std float32, err error) {
	flat, err := Flat[float32](a)
	if err != nil {
		return 0, 0, err
	}

	n := float32(len(flat))
	for _, v := range flat {
		mean += v
	}
	mean /= n

	var variance float32
	for _, v := range flat {
		d := v - mean
		variance += d * d
	}
	return mean, math32.Sqrt(variance / n), nil
}
