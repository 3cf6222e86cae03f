package neighbors

import "github.com/mlzoo/knnviz/datasets"

// CurvePoint is one sample along a prediction curve. Defined is false where
// the model has no prediction at X (a radius query with an empty
// neighborhood); renderers must treat such samples as breaks rather than
// interpolating through them. Count is the neighborhood size used at this
// sample.
type CurvePoint struct {
	X       float64
	Y       float64
	Defined bool
	Count   int
}

// Grid returns steps+1 evenly spaced query locations spanning [min, max]
// inclusive. Every hyperparameter curve is sampled at the same grid so curves
// are directly comparable sample-for-sample.
func Grid(min, max float64, steps int) []float64 {
	xs := make([]float64, steps+1)
	span := max - min
	for i := range xs {
		xs[i] = min + float64(i)*span/float64(steps)
	}
	return xs
}

// KCurve samples the k-NN prediction along grid for a single k. Predictions
// are evaluated at the raw grid location; the stored sample is rounded to two
// decimals like the dataset points. k-NN samples are always defined.
func KCurve(pts []datasets.Point, grid []float64, k int) []CurvePoint {
	out := make([]CurvePoint, len(grid))
	for i, x := range grid {
		y := MeanK(pts, x, k)
		out[i] = CurvePoint{
			X:       datasets.Round2(x),
			Y:       datasets.Round2(y),
			Defined: true,
			Count:   min(k, len(pts)),
		}
	}
	return out
}

// RadiusCurve samples the radius-neighbors prediction along grid for a single
// radius. Samples with an empty neighborhood stay undefined with Count 0.
func RadiusCurve(pts []datasets.Point, grid []float64, r float64) []CurvePoint {
	out := make([]CurvePoint, len(grid))
	for i, x := range grid {
		recs := WithinRadius(pts, x, r)
		cp := CurvePoint{X: datasets.Round2(x), Count: len(recs)}
		if len(recs) > 0 {
			sum := 0.0
			for _, rec := range recs {
				sum += rec.Y
			}
			cp.Y = datasets.Round2(sum / float64(len(recs)))
			cp.Defined = true
		}
		out[i] = cp
	}
	return out
}
