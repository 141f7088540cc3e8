package peakfile

import (
	"fmt"
	"sort"

	"github.com/carbocation/bcgrate/heartrate"
)

// Column positions within a peak file. Every column from FirstWave onward holds
// the index of one wave landmark.
const (
	Identifier = iota
	FirstWave
)

// Sample identifies one recording. A participant with several recordings
// should have one Sample per recording so that they are not modeled jointly.
type Sample struct {
	Identifier string
}

// File holds the peaks of every sample in a peak file, with each sample's
// heartbeats ordered by their first wave index.
type File struct {
	waveNames []string
	samples   map[Sample][][]int
}

// WaveNames returns the names of the wave columns, in column order.
func (f *File) WaveNames() []string {
	out := make([]string, len(f.waveNames))
	copy(out, f.waveNames)
	return out
}

// WaveIndex returns the column of the named wave.
func (f *File) WaveIndex(name string) (int, error) {
	for i, v := range f.waveNames {
		if v == name {
			return i, nil
		}
	}

	return heartrate.NoWave, fmt.Errorf("wave %q not found; available waves are %v", name, f.waveNames)
}

// DefaultWave is NoWave for single-wave files, whose peaks are flat, and the
// first wave otherwise.
func (f *File) DefaultWave() int {
	if len(f.waveNames) == 1 {
		return heartrate.NoWave
	}

	return 0
}

// WaveName is the label used in results for a wave column.
func (f *File) WaveName(wave int) string {
	if wave == heartrate.NoWave {
		if len(f.waveNames) == 1 {
			return f.waveNames[0]
		}
		return ""
	}

	if wave < 0 || wave >= len(f.waveNames) {
		return fmt.Sprintf("wave_%d", wave)
	}

	return f.waveNames[wave]
}

// Identifiers returns every sample identifier in sorted order.
func (f *File) Identifiers() []string {
	out := make([]string, 0, len(f.samples))
	for k := range f.samples {
		out = append(out, k.Identifier)
	}
	sort.Strings(out)

	return out
}

// Peaks returns the peaks recorded for a sample. Single-wave files fill both
// Beats and Waves, so they can be read with or without a wave selection.
func (f *File) Peaks(identifier string) (heartrate.Peaks, error) {
	rows, exists := f.samples[Sample{Identifier: identifier}]
	if !exists {
		return heartrate.Peaks{}, fmt.Errorf("sample %q is not present in the peak file", identifier)
	}

	out := heartrate.Peaks{Waves: rows}
	if len(f.waveNames) == 1 {
		out.Beats = make([]int, 0, len(rows))
		for _, row := range rows {
			out.Beats = append(out.Beats, row[0])
		}
	}

	return out, nil
}

// Indices returns the index sequence of a single wave (or the flat peaks, for
// NoWave) of one sample.
func (f *File) Indices(identifier string, wave int) ([]int, error) {
	p, err := f.Peaks(identifier)
	if err != nil {
		return nil, err
	}

	return p.Select(wave)
}

// Segmenter returns a heartrate.Segmenter that looks up precomputed peaks
// rather than detecting them. The signal is ignored; the first extra argument
// must be the sample identifier as a string.
func (f *File) Segmenter() heartrate.Segmenter {
	return func(signal []float64, samplingHz float64, args ...interface{}) (heartrate.Peaks, error) {
		if len(args) < 1 {
			return heartrate.Peaks{}, fmt.Errorf("expected the sample identifier as the first argument, got no arguments")
		}

		identifier, ok := args[0].(string)
		if !ok {
			return heartrate.Peaks{}, fmt.Errorf("expected the sample identifier as a string, got %T", args[0])
		}

		return f.Peaks(identifier)
	}
}

func newFile(waveNames []string, sampleMap map[Sample][][]int) *File {
	for _, rows := range sampleMap {
		// Rows are not guaranteed to arrive in time order, so sort on the
		// first wave.
		sort.SliceStable(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
	}

	return &File{waveNames: waveNames, samples: sampleMap}
}
