// Package hostop implements tensor ops over host arrays.
package hostop

import (
	"github.com/pkg/errors"

	"github.com/born-ml/estimator/internal/host"
	"github.com/born-ml/estimator/internal/op"
)

// Normalize rescales each float32 array to zero mean and unit standard
// deviation. Constant arrays are only mean-centred.
type Normalize struct {
	op.Base[*host.Array]
}

// NewNormalize creates a Normalize op.
func NewNormalize(inputs, outputs []string, modes op.ModeSet) *Normalize {
	return &Normalize{Base: op.NewBase[*host.Array](inputs, outputs, modes)}
}

// Forward normalizes each array, keeping the data category.
func (n *Normalize) Forward(data op.Data[*host.Array], _ op.State) (op.Data[*host.Array], error) {
	return op.Map(data, normalize)
}

func normalize(a *host.Array) (*host.Array, error) {
	mean, std, err := host.MeanStd(a)
	if err != nil {
		return nil, errors.Wrap(err, "normalize")
	}
	src, err := host.Flat[float32](a)
	if err != nil {
		return nil, errors.Wrap(err, "normalize")
	}

	dst := make([]float32, len(src))
	for i, v := range src {
		dst[i] = v - mean
		if std > 0 {
			dst[i] /= std
		}
	}
	return host.FromFlat(dst, a.Shape()...)
}

// ToHalf converts float32 arrays to float16.
type ToHalf struct {
	op.Base[*host.Array]
}

// NewToHalf creates a ToHalf op.
func NewToHalf(inputs, outputs []string, modes op.ModeSet) *ToHalf {
	return &ToHalf{Base: op.NewBase[*host.Array](inputs, outputs, modes)}
}

// Forward converts each array, keeping the data category.
func (h *ToHalf) Forward(data op.Data[*host.Array], _ op.State) (op.Data[*host.Array], error) {
	return op.Map(data, func(a *host.Array) (*host.Array, error) {
		out, err := host.ToHalf(a)
		return out, errors.Wrap(err, "to half")
	})
}
