package datasets

import (
	"math"
	"testing"
)

// hasTwoDecimals reports whether v carries at most two decimal digits.
func hasTwoDecimals(v float64) bool {
	scaled := v * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{Seed: 1}); err == nil {
		t.Fatal("expected error for config without bands")
	}
	if _, err := New(Config{Seed: 1, Bands: []Band{{N: 0, XMin: 0, XMax: 1}}}); err == nil {
		t.Fatal("expected error for zero point count")
	}
	if _, err := New(Config{Seed: 1, Bands: []Band{{N: 3, XMin: 2, XMax: 1}}}); err == nil {
		t.Fatal("expected error for inverted x range")
	}
}

func TestNewSpacing(t *testing.T) {
	ds, err := New(Config{
		Seed:  1,
		Bands: []Band{{N: 5, XMin: 0, XMax: 1, Noise: 0}},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	wantX := []float64{0, 0.25, 0.5, 0.75, 1}
	if ds.Len() != len(wantX) {
		t.Fatalf("expected %d points, got %d", len(wantX), ds.Len())
	}
	for i, p := range ds.Points {
		if p.X != wantX[i] {
			t.Fatalf("point %d: x = %v, want %v", i, p.X, wantX[i])
		}
	}
}

func TestNewSingletonBand(t *testing.T) {
	ds, err := New(Config{Seed: 1, Bands: []Band{{N: 1, XMin: 2.5, XMax: 7.5}}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if ds.Len() != 1 || ds.Points[0].X != 2.5 {
		t.Fatalf("singleton band should sit at XMin, got %+v", ds.Points)
	}
}

func TestNewNoiseBounds(t *testing.T) {
	trend := Trend{SinAmp: 2, SinFreq: 1, Slope: 0.3, Intercept: 3}
	ds, err := New(Config{
		Seed:  73,
		Trend: trend,
		Bands: []Band{{N: 30, XMin: 0.3, XMax: 9.7, Noise: 2.0}},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i, p := range ds.Points {
		// Noise is bounded by half the peak-to-peak amplitude; allow for the
		// rounding of both coordinates.
		if math.Abs(p.Y-trend.At(p.X)) > 1.0+0.02 {
			t.Errorf("point %d: y %v too far from trend %v", i, p.Y, trend.At(p.X))
		}
	}
}

func TestNewRounding(t *testing.T) {
	ds, err := New(Config{
		Seed:  73,
		Trend: Trend{SinAmp: 2, SinFreq: 1, Slope: 0.3, Intercept: 3},
		Bands: []Band{{N: 30, XMin: 0.3, XMax: 9.7, Noise: 2.0}},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i, p := range ds.Points {
		if !hasTwoDecimals(p.X) || !hasTwoDecimals(p.Y) {
			t.Errorf("point %d not rounded to two decimals: %+v", i, p)
		}
	}
}

func TestNewSortByX(t *testing.T) {
	ds, err := New(Config{
		Seed: 9,
		Bands: []Band{
			{N: 5, XMin: 5, XMax: 9, Noise: 1},
			{N: 5, XMin: 0, XMax: 4, Noise: 1},
		},
		SortByX: true,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 1; i < ds.Len(); i++ {
		if ds.Points[i].X < ds.Points[i-1].X {
			t.Fatalf("points not sorted by x at %d: %v < %v", i, ds.Points[i].X, ds.Points[i-1].X)
		}
	}
}

func TestNewDeterminism(t *testing.T) {
	cfg := Config{
		Seed:  73,
		Trend: Trend{SinAmp: 2, SinFreq: 1, Slope: 0.3, Intercept: 3},
		Bands: []Band{{N: 30, XMin: 0.3, XMax: 9.7, Noise: 2.0}},
	}
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if a.Len() != b.Len() {
		t.Fatalf("length mismatch: %d != %d", a.Len(), b.Len())
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("point %d differs between runs: %+v != %+v", i, a.Points[i], b.Points[i])
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1.234, 1.23},
		{1.235, 1.24},
		{-1.235, -1.24},
		{2.675, 2.68},
		{0, 0},
	}
	for _, c := range cases {
		if got := Round2(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
