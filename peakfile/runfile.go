package peakfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/bcgrate"
	"github.com/carbocation/bcgrate/heartrate"
	"github.com/carbocation/pfx"
)

// delimiterSampleBytes is how much of the file is examined to guess its
// delimiter.
const delimiterSampleBytes = 4096

// Load reads a peak file from a local path or, when client is non-nil, a
// gs:// path. Compressed files are decompressed transparently and the
// delimiter is detected from the first lines.
//
// The file must have a header. Its first column is the sample identifier and
// each further column holds one wave's peak index for one heartbeat, so a file
// of J peaks has two columns and a file of I, J and K peaks has four.
func Load(ctx context.Context, input string, client *storage.Client) (*File, error) {
	rc, err := bcgrate.OpenDecompressed(ctx, input, client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	f, err := Read(rc)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %s", input, err))
	}

	return f, nil
}

// Read parses an uncompressed peak file (see Load).
func Read(r io.Reader) (*File, error) {
	buffered := bufio.NewReaderSize(r, delimiterSampleBytes)
	sample, err := buffered.Peek(delimiterSampleBytes)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}

	cr := csv.NewReader(buffered)
	cr.Comma = bcgrate.DetermineDelimiter(sample)
	cr.TrimLeadingSpace = true

	var waveNames []string
	sampleMap := make(map[Sample][][]int) // map[sample] contains => one row of wave indices per heartbeat

	for i := 0; ; i++ {
		line, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if i == 0 {
			if len(line) < 2 {
				return nil, fmt.Errorf("Expected >= 2 columns in the header, got %d", len(line))
			}
			for _, name := range line[FirstWave:] {
				waveNames = append(waveNames, strings.TrimSpace(name))
			}
			continue
		}

		samp := Sample{
			Identifier: line[Identifier],
		}

		row := make([]int, 0, len(waveNames))
		for j, field := range line[FirstWave:] {
			idx, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("line %d, wave %s: %s", i+1, waveNames[j], err)
			}
			row = append(row, idx)
		}

		sampleMap[samp] = append(sampleMap[samp], row)
	}

	if waveNames == nil {
		return nil, fmt.Errorf("peak file is empty")
	}

	return newFile(waveNames, sampleMap), nil
}

// RunFromFile loads a peak file and estimates heart rate for every sample in it.
// The wave is named rather than indexed; an empty name selects the file's
// default wave. The resolved wave column (NoWave for flat peaks) is returned
// alongside the results.
func RunFromFile(ctx context.Context, input string, client *storage.Client, samplingHz float64, cfg heartrate.Config, waveName string) (*File, int, []Result, error) {
	f, err := Load(ctx, input, client)
	if err != nil {
		return nil, heartrate.NoWave, nil, err
	}

	cfg.Wave = f.DefaultWave()
	if waveName != "" {
		if cfg.Wave, err = f.WaveIndex(waveName); err != nil {
			return nil, heartrate.NoWave, nil, err
		}
	}

	results, err := Run(f, samplingHz, cfg)
	if err != nil {
		return nil, heartrate.NoWave, nil, err
	}

	return f, cfg.Wave, results, nil
}
