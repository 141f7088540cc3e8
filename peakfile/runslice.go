package peakfile

import (
	"fmt"

	"github.com/carbocation/bcgrate/heartrate"
	"github.com/carbocation/pfx"
)

// Run estimates heart rate for every sample in f, in identifier order, using
// cfg for the gated estimate and cfg.UseMedian and cfg.Wave for the scored one.
func Run(f *File, samplingHz float64, cfg heartrate.Config) ([]Result, error) {
	seg := f.Segmenter()
	ratePipe := heartrate.NewRatePipeline(seg, cfg)
	scorePipe := heartrate.NewScoredRatePipeline(seg, cfg.UseMedian, cfg.Wave)

	ids := f.Identifiers()
	results := make([]Result, 0, len(ids))

	for _, id := range ids {
		// Precomputed peaks need no signal.
		rate, err := ratePipe.Rate(nil, samplingHz, id)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("sample %s: %s", id, err))
		}

		score, err := scorePipe.Score(nil, samplingHz, id)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("sample %s: %s", id, err))
		}

		peaks, err := f.Peaks(id)
		if err != nil {
			return nil, err
		}

		results = append(results, Result{
			Identifier:      id,
			Wave:            f.WaveName(cfg.Wave),
			Peaks:           peaks.Len(),
			HeartRate:       rate,
			ScoredHeartRate: score.Rate,
			IntervalSD:      score.IntervalSD,
		})
	}

	return results, nil
}

// RunFromSlices runs the heart rate estimate using parallel slices of input: the
// sample identifiers and, for each, the wave indices of one heartbeat. The
// lengths of samples and indices must match, because the 0th sample
// corresponds to the 0th heartbeat, etc. waveNames labels the columns of each
// heartbeat and must have as many entries as every row of indices.
func RunFromSlices(samples []string, indices [][]int, waveNames []string, samplingHz float64, cfg heartrate.Config) ([]Result, error) {
	f, err := FromSlices(samples, indices, waveNames)
	if err != nil {
		return nil, err
	}

	return Run(f, samplingHz, cfg)
}

// FromSlices builds a File from parallel slices (see RunFromSlices).
func FromSlices(samples []string, indices [][]int, waveNames []string) (*File, error) {
	if len(samples) != len(indices) {
		return nil, fmt.Errorf("All input slices must have the same length (%d samples, %d heartbeats)", len(samples), len(indices))
	}

	if len(waveNames) < 1 {
		return nil, fmt.Errorf("At least one wave name is required")
	}

	sampleMap := make(map[Sample][][]int) // map[sample] contains => one row of wave indices per heartbeat

	for i, sampleID := range samples {
		if len(indices[i]) != len(waveNames) {
			return nil, fmt.Errorf("heartbeat %d has %d waves, expected %d", i, len(indices[i]), len(waveNames))
		}

		samp := Sample{
			Identifier: sampleID,
		}

		row := make([]int, len(indices[i]))
		copy(row, indices[i])

		sampleMap[samp] = append(sampleMap[samp], row)
	}

	names := make([]string, len(waveNames))
	copy(names, waveNames)

	return newFile(names, sampleMap), nil
}
