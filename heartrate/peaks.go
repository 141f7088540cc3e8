package heartrate

import (
	"fmt"
)

// NoWave selects the flat Beats of a Peaks value rather than one column of its
// Waves.
const NoWave = -1

// Peaks holds the output of a Segmenter. A segmenter that finds one landmark
// per heartbeat fills Beats. A segmenter that finds several landmarks per
// heartbeat (e.g., the I, J and K waves of a ballistocardiogram) fills Waves,
// with one row per heartbeat and one column per landmark. Filling both is
// allowed; which one a pipeline reads is fixed by its configured wave.
type Peaks struct {
	Beats []int
	Waves [][]int
}

// NewBeats wraps a flat sequence of peak indices.
func NewBeats(indices ...int) Peaks {
	return Peaks{Beats: indices}
}

// NewWaves wraps per-heartbeat tuples of wave indices.
func NewWaves(rows ...[]int) Peaks {
	return Peaks{Waves: rows}
}

// Len is the number of heartbeats represented.
func (p Peaks) Len() int {
	if len(p.Waves) > 0 {
		return len(p.Waves)
	}

	return len(p.Beats)
}

// Column projects the indices of a single wave out of every heartbeat.
func (p Peaks) Column(wave int) ([]int, error) {
	if wave < 0 {
		return nil, fmt.Errorf("wave %d is not a valid column", wave)
	}

	out := make([]int, 0, len(p.Waves))
	for i, row := range p.Waves {
		if wave >= len(row) {
			return nil, fmt.Errorf("wave %d requested but heartbeat %d only has %d waves", wave, i, len(row))
		}
		out = append(out, row[wave])
	}

	return out, nil
}

// Select returns the index sequence a pipeline should analyze: the flat Beats
// when wave is NoWave, otherwise the given column of Waves.
func (p Peaks) Select(wave int) ([]int, error) {
	if wave != NoWave {
		if len(p.Waves) == 0 && len(p.Beats) > 0 {
			return nil, fmt.Errorf("wave %d was selected but segmenter returned %d flat peaks", wave, len(p.Beats))
		}
		return p.Column(wave)
	}

	if len(p.Beats) == 0 && len(p.Waves) > 0 {
		return nil, fmt.Errorf("segmenter returned %d wave tuples but no wave was selected", len(p.Waves))
	}

	return p.Beats, nil
}
