// Package render draws the nearest-neighbor demos with gonum/plot: the
// scatter of observations, prediction curves (with gaps where a curve sample
// is undefined), neighbor links and the query highlight. It consumes the
// precomputed data produced by the knn and radius packages and holds no
// model logic of its own.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mlzoo/knnviz/datasets"
	"github.com/mlzoo/knnviz/neighbors"
)

// Style is the presentation record a model bundle carries through to this
// package untouched: canvas size, axis domains, the accent color used for
// curves and highlights, and labels.
type Style struct {
	Width  vg.Length
	Height vg.Length

	XMin, XMax float64
	YMin, YMax float64

	Accent color.RGBA

	Title  string
	XLabel string
	YLabel string
}

// View is one rendered frame: the point set, the active prediction curve,
// optional neighbor links, and the query position with its prediction. Links
// are drawn from each neighbor to the predicted query location; an invalid
// prediction suppresses links and highlight, leaving only data and curve.
type View struct {
	Points     []datasets.Point
	Curve      []neighbors.CurvePoint
	Links      []neighbors.Record
	QueryX     float64
	Prediction neighbors.Prediction
}

var pointGray = color.RGBA{R: 120, G: 120, B: 120, A: 220}

func newPlot(st Style) *plot.Plot {
	p := plot.New()
	p.Title.Text = st.Title
	p.X.Label.Text = st.XLabel
	p.Y.Label.Text = st.YLabel
	p.X.Min, p.X.Max = st.XMin, st.XMax
	p.Y.Min, p.Y.Max = st.YMin, st.YMax
	p.Add(plotter.NewGrid())
	return p
}

func scatterPoints(pts []datasets.Point) (*plotter.Scatter, error) {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = pointGray
	sc.GlyphStyle.Radius = vg.Points(2.2)
	return sc, nil
}

// segments splits a curve at undefined samples so gaps render as line breaks
// instead of being interpolated through.
func segments(curve []neighbors.CurvePoint) []plotter.XYs {
	var segs []plotter.XYs
	var cur plotter.XYs
	for _, cp := range curve {
		if !cp.Defined {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: cp.X, Y: cp.Y})
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

// Save renders a single frame to path. The output format follows the file
// extension; the demos write .svg.
func Save(path string, st Style, v View) error {
	p := newPlot(st)

	sc, err := scatterPoints(v.Points)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	p.Add(sc)
	p.Legend.Add("data", sc)

	first := true
	for _, seg := range segments(v.Curve) {
		line, err := plotter.NewLine(seg)
		if err != nil {
			return fmt.Errorf("curve segment: %w", err)
		}
		line.Color = st.Accent
		line.Width = vg.Points(1.6)
		p.Add(line)
		if first {
			p.Legend.Add("prediction", line)
			first = false
		}
	}

	if v.Prediction.Valid {
		faint := color.RGBA{R: st.Accent.R, G: st.Accent.G, B: st.Accent.B, A: 90}
		for _, rec := range v.Links {
			link := plotter.XYs{
				{X: rec.X, Y: rec.Y},
				{X: v.QueryX, Y: v.Prediction.Value},
			}
			line, err := plotter.NewLine(link)
			if err != nil {
				return fmt.Errorf("neighbor link: %w", err)
			}
			line.Color = faint
			line.Width = vg.Points(0.8)
			p.Add(line)
		}

		q, err := plotter.NewScatter(plotter.XYs{{X: v.QueryX, Y: v.Prediction.Value}})
		if err != nil {
			return fmt.Errorf("query highlight: %w", err)
		}
		q.GlyphStyle.Color = st.Accent
		q.GlyphStyle.Radius = vg.Points(4.5)
		q.GlyphStyle.Shape = draw.RingGlyph{}
		p.Add(q)
		p.Legend.Add("query", q)
	}

	return p.Save(st.Width, st.Height, path)
}

// family palette, cycled when there are more curves than entries.
var familyColors = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
}

// SaveFamily renders every hyperparameter curve over the scatter for
// side-by-side comparison. labels and curves are parallel slices.
func SaveFamily(path string, st Style, pts []datasets.Point, labels []string, curves [][]neighbors.CurvePoint) error {
	if len(labels) != len(curves) {
		return fmt.Errorf("labels/curves length mismatch: %d != %d", len(labels), len(curves))
	}

	p := newPlot(st)

	sc, err := scatterPoints(pts)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	p.Add(sc)
	p.Legend.Add("data", sc)

	for i, curve := range curves {
		col := familyColors[i%len(familyColors)]
		first := true
		for _, seg := range segments(curve) {
			line, err := plotter.NewLine(seg)
			if err != nil {
				return fmt.Errorf("curve %s: %w", labels[i], err)
			}
			line.Color = col
			line.Width = vg.Points(1.2)
			p.Add(line)
			if first {
				p.Legend.Add(labels[i], line)
				first = false
			}
		}
	}

	return p.Save(st.Width, st.Height, path)
}
