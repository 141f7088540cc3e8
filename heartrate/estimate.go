package heartrate

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Invalid is returned in place of a heart rate (or an interval dispersion)
// when the peaks do not support an estimate.
const Invalid = -1.0

// SecondsPerMinute converts a mean beat interval in seconds into beats per
// minute.
const SecondsPerMinute = 60.0

// Estimate computes the heart rate in beats per minute from peak indices
// sampled at samplingHz. Fewer than minPeaks peaks, or inter-beat intervals
// whose population standard deviation exceeds maxIntervalSD seconds, yield
// Invalid. If useMedian is set, the median interval is used instead of the
// mean.
//
// Indices are expected to be strictly increasing. Nothing here checks that, nor
// that samplingHz is positive: such inputs produce whatever IEEE-754 arithmetic
// produces (±Inf or NaN), never a panic.
func Estimate(indices []int, samplingHz, maxIntervalSD float64, minPeaks int, useMedian bool) float64 {
	if len(indices) < minPeaks {
		return Invalid
	}

	// With minPeaks <= 1 a single peak can get this far, but there is no
	// interval to speak of.
	if len(indices) < 2 {
		return Invalid
	}

	intervals := Intervals(indices, samplingHz)

	if IntervalSD(intervals) > maxIntervalSD {
		return Invalid
	}

	return SecondsPerMinute / centralInterval(intervals, useMedian)
}

// Intervals returns the time, in seconds, between each pair of consecutive
// peaks. The result has one fewer entry than indices (or is empty).
func Intervals(indices []int, samplingHz float64) []float64 {
	if len(indices) < 2 {
		return []float64{}
	}

	out := make([]float64, 0, len(indices)-1)
	for i := 1; i < len(indices); i++ {
		out = append(out, float64(indices[i]-indices[i-1])/samplingHz)
	}

	return out
}

// IntervalSD returns the population standard deviation (denominator N) of the
// intervals, or NaN if there are none.
func IntervalSD(intervals []float64) float64 {
	sd, err := stats.StandardDeviationPopulation(intervals)
	if err != nil {
		return math.NaN()
	}

	return sd
}

func centralInterval(intervals []float64, useMedian bool) float64 {
	if !useMedian {
		return stat.Mean(intervals, nil)
	}

	// stats.Median sorts a copy, so the caller's ordering is left alone.
	med, err := stats.Median(intervals)
	if err != nil {
		return math.NaN()
	}

	return med
}
