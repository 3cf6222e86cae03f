/*
Package neighbors implements the instance-based prediction primitives shared
by the k-NN and radius-neighbors models: 1D distance, neighbor ranking and
selection, mean-of-neighbors prediction, curve sampling over a query grid,
and leave-one-out error estimation.

All functions are pure and operate on a point slice owned by the caller; the
slice is never mutated.
*/
package neighbors

import (
	"math"
	"sort"

	"github.com/mlzoo/knnviz/datasets"
)

// Record describes one candidate neighbor for a query location. Records are
// derived per query and carry the point's position so callers (e.g. the
// renderer drawing neighbor links) need no second lookup.
type Record struct {
	Index    int
	X        float64
	Y        float64
	Distance float64
}

// Distance is the distance between two query locations: the absolute
// difference of x coordinates (1D Euclidean).
func Distance(a, b float64) float64 {
	return math.Abs(a - b)
}

// ranked returns every point as a Record, sorted ascending by distance to x.
// The sort is stable, so equidistant points keep their dataset order.
func ranked(pts []datasets.Point, x float64) []Record {
	recs := make([]Record, len(pts))
	for i, p := range pts {
		recs[i] = Record{Index: i, X: p.X, Y: p.Y, Distance: Distance(p.X, x)}
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Distance < recs[j].Distance })
	return recs
}

// Nearest returns the k closest points to x, ordered ascending by distance
// with ties broken by dataset order. When k exceeds the number of points,
// every point is returned.
func Nearest(pts []datasets.Point, x float64, k int) []Record {
	if k < 0 {
		k = 0
	}
	recs := ranked(pts, x)
	if k < len(recs) {
		recs = recs[:k]
	}
	return recs
}

// WithinRadius returns every point whose distance to x is at most r, ordered
// ascending by distance with ties broken by dataset order.
func WithinRadius(pts []datasets.Point, x, r float64) []Record {
	recs := make([]Record, 0)
	for i, p := range pts {
		if d := Distance(p.X, x); d <= r {
			recs = append(recs, Record{Index: i, X: p.X, Y: p.Y, Distance: d})
		}
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Distance < recs[j].Distance })
	return recs
}

// Count returns how many points lie within distance r of x.
func Count(pts []datasets.Point, x, r float64) int {
	n := 0
	for _, p := range pts {
		if Distance(p.X, x) <= r {
			n++
		}
	}
	return n
}

// MeanK is the k-NN prediction at x: the sum of the y values of the (up to)
// k nearest points divided by the literal k. The division uses k, not the
// number of neighbors actually found, so a k larger than the dataset biases
// the mean toward zero. That matches the historical behavior this package
// reproduces; callers wanting a corrected mean can average Nearest themselves.
// k must be >= 1.
func MeanK(pts []datasets.Point, x float64, k int) float64 {
	sum := 0.0
	for _, rec := range Nearest(pts, x, k) {
		sum += rec.Y
	}
	return sum / float64(k)
}

// Prediction is a radius-model outcome. Valid is false when the query had no
// neighbors in range, which is a distinct state from a numeric zero and must
// survive to the rendering layer as a gap.
type Prediction struct {
	Value float64
	Valid bool
}

// MeanWithin is the radius-neighbors prediction at x: the arithmetic mean of
// every point within distance r, or an invalid Prediction when none is.
func MeanWithin(pts []datasets.Point, x, r float64) Prediction {
	recs := WithinRadius(pts, x, r)
	if len(recs) == 0 {
		return Prediction{}
	}
	sum := 0.0
	for _, rec := range recs {
		sum += rec.Y
	}
	return Prediction{Value: sum / float64(len(recs)), Valid: true}
}
