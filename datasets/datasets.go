package datasets

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// This package builds the small synthetic 1D regression sets that drive the
// nearest-neighbor demos. A dataset is a handful of (x, y) observations along
// a noisy trend curve, generated from a fixed-seed Sequence so every run (and
// every test) sees the exact same points.
//
// Layout and intended usage:
//
// Config
//   - Trend describes the deterministic part of the target function.
//   - Bands describe one or more evenly spaced runs of x locations, each with
//     its own noise amplitude, so a single config can express both a uniform
//     set and a dense/sparse two-region set.
//
// All stored coordinates are rounded to two decimal places at creation time.
// The rounding is part of the observable behavior: neighbor distances and
// prediction fixtures are computed from the rounded values.

// Point is a single observation. Immutable after creation.
type Point struct {
	X float64
	Y float64
}

// Trend is the deterministic part of the synthetic target:
// y = SinAmp*sin(SinFreq*x) + Slope*x + Intercept.
type Trend struct {
	SinAmp    float64
	SinFreq   float64
	Slope     float64
	Intercept float64
}

// At evaluates the trend at x, without noise.
func (t Trend) At(x float64) float64 {
	return t.SinAmp*math.Sin(t.SinFreq*x) + t.Slope*x + t.Intercept
}

// Band is one evenly spaced run of N points with x spanning [XMin, XMax]
// inclusive. Noise is the peak-to-peak amplitude of the uniform noise added
// to y: noise = (rand()-0.5)*Noise.
type Band struct {
	N     int
	XMin  float64
	XMax  float64
	Noise float64
}

// Config holds everything needed to synthesize a dataset.
type Config struct {
	// Seed for the deterministic Sequence. The generators in the knn and
	// radius packages each fix their own seed; see those packages.
	Seed int64

	// Trend of the target function.
	Trend Trend

	// Bands to generate, consumed in order. One rand draw per point.
	Bands []Band

	// SortByX re-orders the final point set ascending by x. The radius
	// model wants this for curve continuity; the k-NN model keeps
	// generation order.
	SortByX bool
}

// Dataset is an immutable synthetic point set plus the seed that produced it.
type Dataset struct {
	Seed   int64
	Points []Point
}

// New synthesizes a dataset from cfg. Generation consumes exactly one
// Sequence draw per point, in band order, so point values are reproducible
// bit-for-bit for a given config.
func New(cfg Config) (*Dataset, error) {
	if len(cfg.Bands) == 0 {
		return nil, errors.New("at least one band is required")
	}
	total := 0
	for i, b := range cfg.Bands {
		if b.N < 1 {
			return nil, fmt.Errorf("band %d: point count must be >= 1, got %d", i, b.N)
		}
		if b.XMax < b.XMin {
			return nil, fmt.Errorf("band %d: x range [%v, %v] is inverted", i, b.XMin, b.XMax)
		}
		total += b.N
	}

	seq := NewSequence(cfg.Seed)
	pts := make([]Point, 0, total)
	for _, b := range cfg.Bands {
		step := 0.0
		if b.N > 1 {
			step = (b.XMax - b.XMin) / float64(b.N-1)
		}
		for i := 0; i < b.N; i++ {
			x := b.XMin + float64(i)*step
			y := cfg.Trend.At(x) + (seq.Next()-0.5)*b.Noise
			pts = append(pts, Point{X: Round2(x), Y: Round2(y)})
		}
	}

	if cfg.SortByX {
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
	}

	return &Dataset{Seed: cfg.Seed, Points: pts}, nil
}

// Len returns the number of points in the dataset.
func (d *Dataset) Len() int { return len(d.Points) }

// Round2 rounds v to two decimal places, half away from zero. Stored point
// coordinates and curve samples share this rounding.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
