package heartrate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

type estimateCase struct {
	Name          string
	Indices       []int
	SamplingHz    float64
	MaxIntervalSD float64
	MinPeaks      int
	UseMedian     bool

	Expected float64
}

func TestEstimate(t *testing.T) {
	inf := math.Inf(1)

	for _, v := range []estimateCase{
		{"regular mean", []int{0, 10, 20, 30}, 10, inf, 2, false, 60},
		{"regular median", []int{0, 10, 20, 30}, 10, inf, 2, true, 60},
		{"too few peaks", []int{0, 10, 20}, 10, inf, 4, false, Invalid},
		{"irregular mean", []int{0, 8, 20, 33}, 10, inf, 2, false, 60 / 1.1},
		{"irregular median", []int{0, 8, 20, 33}, 10, inf, 2, true, 50},
		{"dispersion under gate", []int{0, 8, 20, 33}, 10, 0.25, 2, false, 60 / 1.1},
		{"dispersion over gate", []int{0, 8, 20, 33}, 10, 0.2, 2, false, Invalid},
		{"zero gate with constant intervals", []int{5, 505, 1005}, 500, 0, 2, false, 60},
		{"single peak allowed by minPeaks", []int{42}, 10, inf, 1, false, Invalid},
		{"no peaks", nil, 10, inf, 0, false, Invalid},
		{"even count median", []int{0, 10, 30, 60, 100}, 10, inf, 2, true, 60 / 2.5},
	} {
		got := Estimate(v.Indices, v.SamplingHz, v.MaxIntervalSD, v.MinPeaks, v.UseMedian)
		assert.InDelta(t, v.Expected, got, tolerance, v.Name)
	}
}

func TestEstimateTooFewPeaksIgnoresOtherParameters(t *testing.T) {
	indices := []int{0, 7, 19}

	for _, maxSD := range []float64{0, 0.1, math.Inf(1)} {
		for _, useMedian := range []bool{false, true} {
			for _, hz := range []float64{1, 250, 1000} {
				if got := Estimate(indices, hz, maxSD, len(indices)+1, useMedian); got != Invalid {
					t.Fatalf("maxSD=%v useMedian=%v hz=%v: expected %v, got %v", maxSD, useMedian, hz, Invalid, got)
				}
			}
		}
	}
}

func TestEstimateRepeatedIndexIsInfinite(t *testing.T) {
	got := Estimate([]int{3, 3}, 10, math.Inf(1), 2, false)
	assert.True(t, math.IsInf(got, 1), "got %v", got)
}

func TestEstimateDoesNotReorderIndices(t *testing.T) {
	indices := []int{0, 13, 20, 33}
	Estimate(indices, 10, math.Inf(1), 2, true)
	assert.Equal(t, []int{0, 13, 20, 33}, indices)
}

func TestIntervals(t *testing.T) {
	assert.InDeltaSlice(t, []float64{0.8, 1.2, 1.3}, Intervals([]int{0, 8, 20, 33}, 10), tolerance)
	assert.Empty(t, Intervals([]int{4}, 10))
	assert.Empty(t, Intervals(nil, 10))
}

func TestIntervalSDIsPopulation(t *testing.T) {
	// Deviations from the mean of 1.1 are -0.3, 0.1 and 0.2.
	expected := math.Sqrt((0.09 + 0.01 + 0.04) / 3)
	assert.InDelta(t, expected, IntervalSD([]float64{0.8, 1.2, 1.3}), tolerance)

	assert.Zero(t, IntervalSD([]float64{1, 1, 1}))
	assert.True(t, math.IsNaN(IntervalSD(nil)))
}
