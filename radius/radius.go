// Package radius builds the radius-neighbors regression demo. It mirrors the
// knn package — fixed-seed dataset, precomputed curve family, defaults, error
// table — with two differences that follow from the prediction rule: a query
// with no neighbors in range yields an explicit "no prediction" (an invalid
// neighbors.Prediction, rendered as a curve gap), and the leave-one-out RMSE
// is +Inf when no point is scorable at all.
//
// The dataset has two density regions, a dense band on [0.5, 4.0] and a
// sparse band on [5.0, 9.5], so the effect of the radius on coverage is
// visible. The set is sorted ascending by x for curve continuity.
package radius

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"

	"github.com/mlzoo/knnviz/datasets"
	"github.com/mlzoo/knnviz/neighbors"
	"github.com/mlzoo/knnviz/render"
)

const (
	defaultSeed   = 137
	defaultRadius = 1.5
	defaultQueryX = 3.0

	curveXMin  = 0.3
	curveXMax  = 9.7
	curveSteps = 120
)

// candidate radii shown by the demo
var defaultRadii = []float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0}

// DemoData returns the synthesis configuration for the package's demo
// dataset: 20 densely spaced points over [0.5, 4.0] (noise peak-to-peak 1.6)
// and 15 sparsely spaced points over [5.0, 9.5] (noise peak-to-peak 2.0),
// along y = 1.5 sin(1.2 x) + 0.4 x + 2.5, sorted ascending by x.
func DemoData(seed int64) datasets.Config {
	return datasets.Config{
		Seed:  seed,
		Trend: datasets.Trend{SinAmp: 1.5, SinFreq: 1.2, Slope: 0.4, Intercept: 2.5},
		Bands: []datasets.Band{
			{N: 20, XMin: 0.5, XMax: 4.0, Noise: 1.6},
			{N: 15, XMin: 5.0, XMax: 9.5, Noise: 2.0},
		},
		SortByX: true,
	}
}

// Config holds the tunables for building a Model. Zero-value fields are
// filled with the demo defaults by New.
type Config struct {
	// Seed for the dataset's deterministic sequence. Default 137.
	Seed int64

	// Radii is the candidate list; a curve and a leave-one-out RMSE entry
	// are precomputed for each. Default {0.5, 1.0, 1.5, 2.0, 2.5, 3.0}.
	Radii []float64

	// DefaultRadius of the initial interactive state. Default 1.5.
	DefaultRadius float64

	// DefaultQueryX of the initial interactive state. Default 3.0.
	DefaultQueryX float64

	// Data overrides the full dataset synthesis configuration. When nil the
	// demo set from DemoData(Seed) is used.
	Data *datasets.Config

	// View overrides the presentation record handed to the renderer.
	View *render.Style
}

// Stats summarizes the bundle for display: the dataset size and one
// representative leave-one-out RMSE, computed at DefaultRadius. The RMSE is
// +Inf when no point had any same-radius neighbors among the rest.
type Stats struct {
	N    int
	RMSE float64
}

// Model is the immutable radius-neighbors bundle.
type Model struct {
	// Points is the synthetic dataset, sorted ascending by x.
	Points []datasets.Point

	// Radii are the candidate radii, in candidate-list order.
	Radii []float64

	// Curves maps each candidate radius to its prediction curve. Samples
	// where no point falls within the radius are undefined with Count 0.
	Curves map[float64][]neighbors.CurvePoint

	// RMSEByRadius maps each candidate radius to its leave-one-out RMSE
	// (possibly +Inf).
	RMSEByRadius map[float64]float64

	// Initial interactive state.
	DefaultRadius     float64
	DefaultQueryX     float64
	DefaultPrediction neighbors.Prediction
	DefaultNeighbors  []neighbors.Record

	Stats Stats

	// View is the opaque presentation record for the renderer.
	View render.Style
}

// New builds a Model from cfg, precomputing curves, defaults and error
// statistics eagerly. The returned bundle is safe to treat as immutable.
func New(cfg Config) (*Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}
	if len(cfg.Radii) == 0 {
		cfg.Radii = append([]float64(nil), defaultRadii...)
	}
	if cfg.DefaultRadius == 0 {
		cfg.DefaultRadius = defaultRadius
	}
	if cfg.DefaultQueryX == 0 {
		cfg.DefaultQueryX = defaultQueryX
	}

	if cfg.DefaultRadius <= 0 {
		return nil, fmt.Errorf("default radius must be > 0, got %v", cfg.DefaultRadius)
	}
	for _, r := range cfg.Radii {
		if r <= 0 {
			return nil, fmt.Errorf("candidate radius must be > 0, got %v", r)
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

	grid := neighbors.Grid(curveXMin, curveXMax, curveSteps)
	curves := make(map[float64][]neighbors.CurvePoint, len(cfg.Radii))
	rmse := make(map[float64]float64, len(cfg.Radii))
	for _, r := range cfg.Radii {
		curves[r] = neighbors.RadiusCurve(ds.Points, grid, r)
		rmse[r] = neighbors.LeaveOneOutRadius(ds.Points, r)
	}
	// the default radius always has a curve, even off the candidate list
	if _, ok := curves[cfg.DefaultRadius]; !ok {
		curves[cfg.DefaultRadius] = neighbors.RadiusCurve(ds.Points, grid, cfg.DefaultRadius)
	}

	view := defaultView()
	if cfg.View != nil {
		view = *cfg.View
	}

	return &Model{
		Points:            ds.Points,
		Radii:             cfg.Radii,
		Curves:            curves,
		RMSEByRadius:      rmse,
		DefaultRadius:     cfg.DefaultRadius,
		DefaultQueryX:     cfg.DefaultQueryX,
		DefaultPrediction: neighbors.MeanWithin(ds.Points, cfg.DefaultQueryX, cfg.DefaultRadius),
		DefaultNeighbors:  neighbors.WithinRadius(ds.Points, cfg.DefaultQueryX, cfg.DefaultRadius),
		Stats:             Stats{N: ds.Len(), RMSE: neighbors.LeaveOneOutRadius(ds.Points, cfg.DefaultRadius)},
		View:              view,
	}, nil
}

// Predict returns the radius-neighbors prediction at x: the mean y of every
// point within r, or an invalid Prediction when no point is in range.
func (m *Model) Predict(x, r float64) neighbors.Prediction {
	return neighbors.MeanWithin(m.Points, x, r)
}

// Neighbors returns every point within r of x, closest first, ties in
// dataset order.
func (m *Model) Neighbors(x, r float64) []neighbors.Record {
	return neighbors.WithinRadius(m.Points, x, r)
}

// NeighborCount returns how many points lie within r of x.
func (m *Model) NeighborCount(x, r float64) int {
	return neighbors.Count(m.Points, x, r)
}

func defaultView() render.Style {
	return render.Style{
		Width:  8 * vg.Inch,
		Height: 5 * vg.Inch,
		XMin:   0, XMax: 10,
		YMin: 0, YMax: 8,
		Accent: color.RGBA{R: 255, G: 127, B: 14, A: 255},
		Title:  "radius neighbors regression",
		XLabel: "x",
		YLabel: "y",
	}
}
