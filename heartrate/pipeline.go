package heartrate

import (
	"math"

	"github.com/carbocation/pfx"
)

// Segmenter detects heartbeats in signal, sampled at samplingHz. Any args given
// to a pipeline are handed to the segmenter untouched.
type Segmenter func(signal []float64, samplingHz float64, args ...interface{}) (Peaks, error)

// Config is the fixed configuration of a RatePipeline.
type Config struct {
	// MaxIntervalSD is the largest population standard deviation of
	// inter-beat intervals, in seconds, that is still accepted.
	MaxIntervalSD float64

	// MinPeaks is the fewest peaks from which a rate will be estimated.
	MinPeaks int

	// UseMedian estimates from the median interval rather than the mean.
	UseMedian bool

	// Wave is the column of Peaks.Waves to analyze, or NoWave to analyze
	// Peaks.Beats.
	Wave int
}

// DefaultConfig accepts any interval dispersion, requires two peaks, uses the
// mean interval and reads flat Beats.
func DefaultConfig() Config {
	return Config{
		MaxIntervalSD: math.Inf(1),
		MinPeaks:      2,
		UseMedian:     false,
		Wave:          NoWave,
	}
}

// RatePipeline runs a Segmenter and estimates heart rate from its peaks. It
// holds no mutable state and may be shared between goroutines if the
// Segmenter can be.
type RatePipeline struct {
	segmenter Segmenter
	config    Config
}

// NewRatePipeline binds seg to cfg. The config is copied, so later changes to
// the caller's value have no effect on the pipeline.
func NewRatePipeline(seg Segmenter, cfg Config) *RatePipeline {
	return &RatePipeline{segmenter: seg, config: cfg}
}

// Config returns the configuration the pipeline was built with.
func (p *RatePipeline) Config() Config {
	return p.config
}

// Rate segments signal and returns the heart rate in beats per minute, or
// Invalid if the peaks fail the configured gates. A non-nil error means the
// segmenter failed or returned peaks of the wrong shape.
func (p *RatePipeline) Rate(signal []float64, samplingHz float64, args ...interface{}) (float64, error) {
	indices, err := segment(p.segmenter, p.config.Wave, signal, samplingHz, args...)
	if err != nil {
		return Invalid, err
	}

	return Estimate(indices, samplingHz, p.config.MaxIntervalSD, p.config.MinPeaks, p.config.UseMedian), nil
}

// Score is a heart rate together with the population standard deviation of
// the inter-beat intervals it came from. Both are Invalid when fewer than two
// peaks were found.
type Score struct {
	Rate       float64
	IntervalSD float64
}

// Valid reports whether a rate could be computed.
func (s Score) Valid() bool {
	return s.Rate != Invalid
}

// ScoredRatePipeline runs a Segmenter and reports both heart rate and interval
// dispersion. Unlike RatePipeline it never rejects on dispersion: it accepts
// any two or more peaks and leaves the judgement to the caller.
type ScoredRatePipeline struct {
	segmenter Segmenter
	useMedian bool
	wave      int
}

// NewScoredRatePipeline binds seg to a median/mean choice and a wave column
// (NoWave for flat peaks).
func NewScoredRatePipeline(seg Segmenter, useMedian bool, wave int) *ScoredRatePipeline {
	return &ScoredRatePipeline{segmenter: seg, useMedian: useMedian, wave: wave}
}

// Score segments signal and returns the heart rate with its interval
// dispersion.
func (p *ScoredRatePipeline) Score(signal []float64, samplingHz float64, args ...interface{}) (Score, error) {
	invalid := Score{Rate: Invalid, IntervalSD: Invalid}

	indices, err := segment(p.segmenter, p.wave, signal, samplingHz, args...)
	if err != nil {
		return invalid, err
	}

	if len(indices) < 2 {
		return invalid, nil
	}

	return Score{
		Rate:       Estimate(indices, samplingHz, math.Inf(1), 2, p.useMedian),
		IntervalSD: IntervalSD(Intervals(indices, samplingHz)),
	}, nil
}

func segment(seg Segmenter, wave int, signal []float64, samplingHz float64, args ...interface{}) ([]int, error) {
	peaks, err := seg(signal, samplingHz, args...)
	if err != nil {
		return nil, pfx.Err(err)
	}

	indices, err := peaks.Select(wave)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return indices, nil
}
