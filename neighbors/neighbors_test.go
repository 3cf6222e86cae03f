package neighbors

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlzoo/knnviz/datasets"
)

// testPoints is a small fixed set with an intentional duplicate distance
// structure around x=1 for tie-order checks.
var testPoints = []datasets.Point{
	{X: 2, Y: 1},
	{X: 0, Y: 5},
	{X: 2, Y: 9},
	{X: 5, Y: 2},
	{X: 7, Y: 4},
}

func sortedByDistance(recs []Record) bool {
	return sort.SliceIsSorted(recs, func(i, j int) bool {
		return recs[i].Distance < recs[j].Distance
	})
}

func TestNearestReturnsK(t *testing.T) {
	for k := 1; k <= len(testPoints); k++ {
		recs := Nearest(testPoints, 3.3, k)
		require.Len(t, recs, k, "k=%d", k)
		assert.True(t, sortedByDistance(recs), "k=%d not sorted by distance", k)
	}
}

func TestNearestTiesKeepDatasetOrder(t *testing.T) {
	// Points 0, 1 and 2 are all at distance 1 from x=1; the stable sort must
	// keep them in dataset order with no secondary key.
	recs := Nearest(testPoints, 1, 3)
	require.Len(t, recs, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{recs[0].Index, recs[1].Index, recs[2].Index})
	for _, rec := range recs {
		assert.Equal(t, 1.0, rec.Distance)
	}
}

func TestNearestKExceedsSize(t *testing.T) {
	recs := Nearest(testPoints, 3, 50)
	assert.Len(t, recs, len(testPoints))
}

func TestMeanKMatchesNearest(t *testing.T) {
	for _, k := range []int{1, 2, 3, 5} {
		recs := Nearest(testPoints, 4.2, k)
		sum := 0.0
		for _, rec := range recs {
			sum += rec.Y
		}
		assert.InDelta(t, sum/float64(k), MeanK(testPoints, 4.2, k), 1e-12, "k=%d", k)
	}
}

func TestMeanKLiteralDivision(t *testing.T) {
	// Historical behavior: with k larger than the dataset the sum is still
	// divided by k, biasing the mean toward zero.
	pts := []datasets.Point{{X: 0, Y: 2}, {X: 1, Y: 4}}
	assert.InDelta(t, 1.2, MeanK(pts, 0.5, 5), 1e-12)
}

func TestWithinRadius(t *testing.T) {
	recs := WithinRadius(testPoints, 2, 3)
	require.NotEmpty(t, recs)
	assert.True(t, sortedByDistance(recs))
	for _, rec := range recs {
		assert.LessOrEqual(t, rec.Distance, 3.0)
	}
	assert.Len(t, recs, Count(testPoints, 2, 3))

	// boundary distance is inclusive
	boundary := WithinRadius(testPoints, 4, 1)
	require.Len(t, boundary, 1)
	assert.Equal(t, 3, boundary[0].Index)
}

func TestWithinRadiusEmpty(t *testing.T) {
	assert.Empty(t, WithinRadius(testPoints, 20, 1))
	assert.Zero(t, Count(testPoints, 20, 1))
}

func TestMeanWithin(t *testing.T) {
	pred := MeanWithin(testPoints, 2, 0.5)
	require.True(t, pred.Valid)
	// points 0 and 2 are at distance zero
	assert.InDelta(t, 5.0, pred.Value, 1e-12)

	none := MeanWithin(testPoints, 20, 1)
	assert.False(t, none.Valid)
	assert.Zero(t, none.Value)
}

func TestMeanWithinValidIffCount(t *testing.T) {
	for _, x := range []float64{-3, 0, 1.7, 4.5, 9, 30} {
		for _, r := range []float64{0.1, 1, 2.5} {
			pred := MeanWithin(testPoints, x, r)
			assert.Equal(t, Count(testPoints, x, r) > 0, pred.Valid, "x=%v r=%v", x, r)
		}
	}
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 2.5, Distance(1, 3.5))
	assert.Equal(t, 2.5, Distance(3.5, 1))
	assert.Zero(t, Distance(4, 4))
}
