package peakfile

import (
	"math"

	"github.com/carbocation/bcgrate/heartrate"
	"github.com/carbocation/runningvariance"
)

// Summary describes the gated heart rates across a batch of samples. Invalid
// samples are counted but contribute nothing to the moments.
type Summary struct {
	Samples int
	Invalid int

	MeanHeartRate float64
	SDHeartRate   float64
	MinHeartRate  float64
	MaxHeartRate  float64
}

// Summarize accumulates the valid heart rates of results. With no valid
// results, the moments and extrema are NaN.
func Summarize(results []Result) Summary {
	out := Summary{
		Samples:       len(results),
		MeanHeartRate: math.NaN(),
		SDHeartRate:   math.NaN(),
		MinHeartRate:  math.NaN(),
		MaxHeartRate:  math.NaN(),
	}

	rs := runningvariance.NewRunningStat()
	valid := 0
	for _, v := range results {
		if v.HeartRate == heartrate.Invalid || math.IsNaN(v.HeartRate) || math.IsInf(v.HeartRate, 0) {
			out.Invalid++
			continue
		}

		if valid == 0 || v.HeartRate < out.MinHeartRate {
			out.MinHeartRate = v.HeartRate
		}
		if valid == 0 || v.HeartRate > out.MaxHeartRate {
			out.MaxHeartRate = v.HeartRate
		}

		rs.Push(v.HeartRate)
		valid++
	}

	if valid > 0 {
		out.MeanHeartRate = rs.Mean()
	}
	if valid > 1 {
		out.SDHeartRate = rs.StandardDeviation()
	}

	return out
}
