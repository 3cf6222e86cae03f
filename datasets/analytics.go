package datasets

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary holds basic location and scale statistics for a dataset. It backs
// the stats display in the comparison CLI.
type Summary struct {
	N int

	MeanX float64
	MeanY float64
	StdX  float64
	StdY  float64

	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Summarize computes a Summary over the point set. Standard deviations use
// the sample (n-1) estimator; with fewer than two points they are reported
// as zero.
func (d *Dataset) Summarize() Summary {
	n := len(d.Points)
	s := Summary{N: n}
	if n == 0 {
		return s
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	s.MinX, s.MaxX = math.Inf(1), math.Inf(-1)
	s.MinY, s.MaxY = math.Inf(1), math.Inf(-1)
	for i, p := range d.Points {
		xs[i] = p.X
		ys[i] = p.Y
		s.MinX = math.Min(s.MinX, p.X)
		s.MaxX = math.Max(s.MaxX, p.X)
		s.MinY = math.Min(s.MinY, p.Y)
		s.MaxY = math.Max(s.MaxY, p.Y)
	}

	s.MeanX = stat.Mean(xs, nil)
	s.MeanY = stat.Mean(ys, nil)
	if n > 1 {
		s.StdX = stat.StdDev(xs, nil)
		s.StdY = stat.StdDev(ys, nil)
	}
	return s
}
