// Package knn builds the k-nearest-neighbors regression demo: a fixed-seed
// synthetic dataset, a family of prediction curves over the candidate k
// values, the initial interactive state, and a leave-one-out error table.
// The bundle is computed once by New and immutable afterwards; the prediction
// methods are pure and may be re-invoked freely as a user drags the query
// point or switches k.
package knn

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"

	"github.com/mlzoo/knnviz/datasets"
	"github.com/mlzoo/knnviz/neighbors"
	"github.com/mlzoo/knnviz/render"
)

const (
	defaultSeed   = 73
	defaultK      = 5
	defaultQueryX = 5.0

	// Curves are sampled at curveSteps+1 locations spanning the query domain.
	curveXMin  = 0.3
	curveXMax  = 9.7
	curveSteps = 120
)

// candidate neighbor counts shown by the demo
var defaultKs = []int{1, 3, 5, 7, 10, 15}

// DemoData returns the synthesis configuration for the package's demo
// dataset: 30 points with x evenly spaced over [0.3, 9.7] along
// y = 2 sin(x) + 0.3 x + 3 with uniform noise of peak-to-peak 2.0.
// Generation order is preserved.
func DemoData(seed int64) datasets.Config {
	return datasets.Config{
		Seed:  seed,
		Trend: datasets.Trend{SinAmp: 2, SinFreq: 1, Slope: 0.3, Intercept: 3},
		Bands: []datasets.Band{{N: 30, XMin: 0.3, XMax: 9.7, Noise: 2.0}},
	}
}

// Config holds the tunables for building a Model. Zero-value fields are
// filled with the demo defaults by New.
type Config struct {
	// Seed for the dataset's deterministic sequence. Default 73.
	Seed int64

	// Ks is the candidate list of neighbor counts; a curve and a
	// leave-one-out RMSE entry are precomputed for each. Default
	// {1, 3, 5, 7, 10, 15}.
	Ks []int

	// DefaultK is the neighbor count of the initial interactive state.
	// Default 5. Must not exceed the dataset size.
	DefaultK int

	// DefaultQueryX is the query location of the initial interactive state.
	// Default 5.0.
	DefaultQueryX float64

	// Data overrides the full dataset synthesis configuration. When nil the
	// demo set from DemoData(Seed) is used.
	Data *datasets.Config

	// View overrides the presentation record handed to the renderer.
	View *render.Style
}

// Stats summarizes the bundle for display: the dataset size and one
// representative leave-one-out RMSE, computed at DefaultK.
type Stats struct {
	N    int
	RMSE float64
}

// Model is the immutable k-NN bundle.
type Model struct {
	// Points is the synthetic dataset in generation order.
	Points []datasets.Point

	// Ks are the candidate neighbor counts, in candidate-list order.
	Ks []int

	// Curves maps each candidate k to its prediction curve. Every curve is
	// sampled at the same 121 query locations.
	Curves map[int][]neighbors.CurvePoint

	// RMSEByK maps each candidate k to its leave-one-out RMSE.
	RMSEByK map[int]float64

	// Initial interactive state.
	DefaultK          int
	DefaultQueryX     float64
	DefaultPrediction float64
	DefaultNeighbors  []neighbors.Record

	Stats Stats

	// View is the opaque presentation record for the renderer.
	View render.Style
}

// New builds a Model from cfg. All curves, defaults and error statistics are
// precomputed eagerly; the returned bundle is safe to treat as immutable.
func New(cfg Config) (*Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}
	if len(cfg.Ks) == 0 {
		cfg.Ks = append([]int(nil), defaultKs...)
	}
	if cfg.DefaultK == 0 {
		cfg.DefaultK = defaultK
	}
	if cfg.DefaultQueryX == 0 {
		cfg.DefaultQueryX = defaultQueryX
	}

	if cfg.DefaultK < 1 {
		return nil, fmt.Errorf("default k must be >= 1, got %d", cfg.DefaultK)
	}
	for _, k := range cfg.Ks {
		if k < 1 {
			return nil, fmt.Errorf("candidate k must be >= 1, got %d", k)
		}
	}

	dataCfg := DemoData(cfg.Seed)
	if cfg.Data != nil {
		dataCfg = *cfg.Data
	}
	ds, err := datasets.New(dataCfg)
	if err != nil {
		return nil, fmt.Errorf("synthesize dataset: %w", err)
	}
	if cfg.DefaultK > ds.Len() {
		return nil, fmt.Errorf("default k %d exceeds dataset size %d", cfg.DefaultK, ds.Len())
	}

	grid := neighbors.Grid(curveXMin, curveXMax, curveSteps)
	curves := make(map[int][]neighbors.CurvePoint, len(cfg.Ks))
	rmse := make(map[int]float64, len(cfg.Ks))
	for _, k := range cfg.Ks {
		curves[k] = neighbors.KCurve(ds.Points, grid, k)
		rmse[k] = neighbors.LeaveOneOutK(ds.Points, k)
	}
	// the default k always has a curve, even off the candidate list
	if _, ok := curves[cfg.DefaultK]; !ok {
		curves[cfg.DefaultK] = neighbors.KCurve(ds.Points, grid, cfg.DefaultK)
	}

	view := defaultView()
	if cfg.View != nil {
		view = *cfg.View
	}

	return &Model{
		Points:            ds.Points,
		Ks:                cfg.Ks,
		Curves:            curves,
		RMSEByK:           rmse,
		DefaultK:          cfg.DefaultK,
		DefaultQueryX:     cfg.DefaultQueryX,
		DefaultPrediction: neighbors.MeanK(ds.Points, cfg.DefaultQueryX, cfg.DefaultK),
		DefaultNeighbors:  neighbors.Nearest(ds.Points, cfg.DefaultQueryX, cfg.DefaultK),
		Stats:             Stats{N: ds.Len(), RMSE: neighbors.LeaveOneOutK(ds.Points, cfg.DefaultK)},
		View:              view,
	}, nil
}

// Predict returns the k-NN prediction at x: the mean y of the k nearest
// points, with the literal-k division described on neighbors.MeanK.
func (m *Model) Predict(x float64, k int) float64 {
	return neighbors.MeanK(m.Points, x, k)
}

// Neighbors returns the ordered top-k neighbor records for a query location,
// closest first, ties in dataset order.
func (m *Model) Neighbors(x float64, k int) []neighbors.Record {
	return neighbors.Nearest(m.Points, x, k)
}

func defaultView() render.Style {
	return render.Style{
		Width:  8 * vg.Inch,
		Height: 5 * vg.Inch,
		XMin:   0, XMax: 10,
		YMin: 0, YMax: 8,
		Accent: color.RGBA{R: 31, G: 119, B: 180, A: 255},
		Title:  "k-nearest neighbors regression",
		XLabel: "x",
		YLabel: "y",
	}
}
