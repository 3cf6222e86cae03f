package datasets

import "github.com/gomlx/gomlx/pkg/core/tensors"

// Tensors exports the point set as a pair of gomlx tensors, inputs of shape
// [n][1] (x) and labels of shape [n][1] (y), so the synthetic sets can feed
// gomlx training loops directly. The conversion copies; the dataset itself
// stays immutable.
func (d *Dataset) Tensors() (inputs, labels *tensors.Tensor) {
	xs := make([][]float32, len(d.Points))
	ys := make([][]float32, len(d.Points))
	for i, p := range d.Points {
		xs[i] = []float32{float32(p.X)}
		ys[i] = []float32{float32(p.Y)}
	}
	return tensors.FromAnyValue(xs), tensors.FromAnyValue(ys)
}
