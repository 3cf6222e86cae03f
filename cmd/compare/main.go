// Command compare builds the k-NN and radius-neighbors demo models, renders
// their interactive frames and curve families as SVG, and writes the
// leave-one-out error tables and point sets as CSV.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mlzoo/knnviz/datasets"
	"github.com/mlzoo/knnviz/knn"
	"github.com/mlzoo/knnviz/neighbors"
	"github.com/mlzoo/knnviz/radius"
	"github.com/mlzoo/knnviz/render"
)

func main() {
	outDir := flag.String("out", "output", "directory for SVG and CSV output")
	kQuery := flag.Float64("knn-query", 0, "query x for the k-NN frame (0 = model default)")
	k := flag.Int("k", 0, "neighbor count for the k-NN frame (0 = model default)")
	rQuery := flag.Float64("radius-query", 0, "query x for the radius frame (0 = model default)")
	r := flag.Float64("radius", 0, "radius for the radius frame (0 = model default)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logger.Fatal().Err(err).Str("dir", *outDir).Msg("create output directory")
	}

	km, err := knn.New(knn.Config{DefaultK: *k, DefaultQueryX: *kQuery})
	if err != nil {
		logger.Fatal().Err(err).Msg("build k-NN model")
	}
	rm, err := radius.New(radius.Config{DefaultRadius: *r, DefaultQueryX: *rQuery})
	if err != nil {
		logger.Fatal().Err(err).Msg("build radius model")
	}

	logDataset(logger, "knn", (&datasets.Dataset{Points: km.Points}).Summarize(), km.Stats.RMSE)
	logDataset(logger, "radius", (&datasets.Dataset{Points: rm.Points}).Summarize(), rm.Stats.RMSE)

	if err := renderKNN(*outDir, km); err != nil {
		logger.Fatal().Err(err).Msg("render k-NN model")
	}
	if err := renderRadius(*outDir, rm); err != nil {
		logger.Fatal().Err(err).Msg("render radius model")
	}
	if err := writeRMSE(filepath.Join(*outDir, "rmse.csv"), km, rm); err != nil {
		logger.Fatal().Err(err).Msg("write RMSE table")
	}
	if err := writePoints(filepath.Join(*outDir, "points_knn.csv"), km.Points); err != nil {
		logger.Fatal().Err(err).Msg("write k-NN points")
	}
	if err := writePoints(filepath.Join(*outDir, "points_radius.csv"), rm.Points); err != nil {
		logger.Fatal().Err(err).Msg("write radius points")
	}

	logger.Info().Str("dir", *outDir).Msg("done")
}

func logDataset(logger zerolog.Logger, name string, s datasets.Summary, rmse float64) {
	logger.Info().
		Str("model", name).
		Int("n", s.N).
		Float64("mean_x", s.MeanX).
		Float64("mean_y", s.MeanY).
		Float64("std_y", s.StdY).
		Float64("loo_rmse", rmse).
		Msg("dataset")
}

func renderKNN(dir string, m *knn.Model) error {
	frame := render.View{
		Points:     m.Points,
		Curve:      m.Curves[m.DefaultK],
		Links:      m.DefaultNeighbors,
		QueryX:     m.DefaultQueryX,
		Prediction: neighbors.Prediction{Value: m.DefaultPrediction, Valid: true},
	}
	if err := render.Save(filepath.Join(dir, "knn.svg"), m.View, frame); err != nil {
		return err
	}

	labels := make([]string, len(m.Ks))
	curves := make([][]neighbors.CurvePoint, len(m.Ks))
	for i, k := range m.Ks {
		labels[i] = fmt.Sprintf("k=%d", k)
		curves[i] = m.Curves[k]
	}
	return render.SaveFamily(filepath.Join(dir, "knn_family.svg"), m.View, m.Points, labels, curves)
}

func renderRadius(dir string, m *radius.Model) error {
	frame := render.View{
		Points:     m.Points,
		Curve:      m.Curves[m.DefaultRadius],
		Links:      m.DefaultNeighbors,
		QueryX:     m.DefaultQueryX,
		Prediction: m.DefaultPrediction,
	}
	if err := render.Save(filepath.Join(dir, "radius.svg"), m.View, frame); err != nil {
		return err
	}

	labels := make([]string, len(m.Radii))
	curves := make([][]neighbors.CurvePoint, len(m.Radii))
	for i, r := range m.Radii {
		labels[i] = fmt.Sprintf("r=%.1f", r)
		curves[i] = m.Curves[r]
	}
	return render.SaveFamily(filepath.Join(dir, "radius_family.svg"), m.View, m.Points, labels, curves)
}

func writeRMSE(path string, km *knn.Model, rm *radius.Model) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"model", "hyperparameter", "loo_rmse"}); err != nil {
		return err
	}
	for _, k := range km.Ks {
		row := []string{"knn", strconv.Itoa(k), formatFloat(km.RMSEByK[k])}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	for _, r := range rm.Radii {
		row := []string{"radius", formatFloat(r), formatFloat(rm.RMSEByRadius[r])}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writePoints(path string, pts []datasets.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range pts {
		if err := w.Write([]string{formatFloat(p.X), formatFloat(p.Y)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
