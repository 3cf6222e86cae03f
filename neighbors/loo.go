package neighbors

import (
	"math"

	"github.com/mlzoo/knnviz/datasets"
)

// LeaveOneOutK estimates the k-NN prediction error over pts by predicting
// each point from the remaining n-1 (the point itself excluded from its own
// neighbor pool) and returning the root of the mean squared error. The
// prediction rule is MeanK, literal-k division included. pts must be
// non-empty.
func LeaveOneOutK(pts []datasets.Point, k int) float64 {
	rest := make([]datasets.Point, 0, len(pts)-1)
	total := 0.0
	for i, p := range pts {
		rest = rest[:0]
		rest = append(rest, pts[:i]...)
		rest = append(rest, pts[i+1:]...)
		diff := p.Y - MeanK(rest, p.X, k)
		total += diff * diff
	}
	return math.Sqrt(total / float64(len(pts)))
}

// LeaveOneOutRadius estimates the radius-neighbors prediction error over pts.
// Points with no neighbors within r among the rest are excluded from both the
// sum and the divisor. When no point is scorable at all the result is +Inf,
// an explicit sentinel distinct from any ordinary error value.
func LeaveOneOutRadius(pts []datasets.Point, r float64) float64 {
	rest := make([]datasets.Point, 0, len(pts)-1)
	total := 0.0
	used := 0
	for i, p := range pts {
		rest = rest[:0]
		rest = append(rest, pts[:i]...)
		rest = append(rest, pts[i+1:]...)
		pred := MeanWithin(rest, p.X, r)
		if !pred.Valid {
			continue
		}
		diff := p.Y - pred.Value
		total += diff * diff
		used++
	}
	if used == 0 {
		return math.Inf(1)
	}
	return math.Sqrt(total / float64(used))
}
