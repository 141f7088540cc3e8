// bcgheartrate estimates heart rate for every sample in a file of precomputed
// ballistocardiogram peaks and prints one TSV row per sample.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/bcgrate/heartrate"
	"github.com/carbocation/bcgrate/peakfile"
	"github.com/gocarina/gocsv"

	_ "github.com/carbocation/bcgrate/compileinfoprint"
)

// Safe for concurrent use by multiple goroutines
var client *storage.Client

func main() {
	var input, waveName, plotDir string
	var samplingHz, maxSD float64
	var minPeaks int
	var useMedian, debug bool

	flag.StringVar(&input, "file", "", "Comma- or tab-delimited file (optionally compressed, local or gs://) with a header. Column 1 is the sample identifier; each further column is the peak index of one wave (e.g., I, J, K) for one heartbeat")
	flag.Float64Var(&samplingHz, "sampling_hz", 0, "Sampling frequency of the signal the peaks were detected in, in cycles per second")
	flag.Float64Var(&maxSD, "max_sd", math.Inf(1), "Reject a sample whose inter-beat intervals have a standard deviation above this many seconds")
	flag.IntVar(&minPeaks, "min_peaks", 2, "Reject a sample with fewer than this many peaks")
	flag.BoolVar(&useMedian, "median", false, "Estimate from the median inter-beat interval instead of the mean?")
	flag.StringVar(&waveName, "wave", "", "(Optional) Name of the wave column to analyze. Defaults to the first wave")
	flag.StringVar(&plotDir, "plot", "", "(Optional) Directory in which to write a PNG of each sample's inter-beat intervals")
	flag.BoolVar(&debug, "debug", false, "Print a histogram of each sample's inter-beat intervals to stderr?")
	flag.Parse()

	if input == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := validateParameters(samplingHz, maxSD, minPeaks); err != nil {
		log.Fatalln(err)
	}

	// Storage paths.
	if strings.HasPrefix(input, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	cfg := heartrate.Config{
		MaxIntervalSD: maxSD,
		MinPeaks:      minPeaks,
		UseMedian:     useMedian,
	}

	if err := run(os.Stdout, input, samplingHz, cfg, waveName, plotDir, debug); err != nil {
		log.Fatalln(err)
	}
}

// validateParameters rejects numeric flags that would make every estimate
// meaningless rather than merely Invalid.
func validateParameters(samplingHz, maxSD float64, minPeaks int) error {
	if math.IsNaN(samplingHz) || math.IsInf(samplingHz, 0) || samplingHz <= 0 {
		return fmt.Errorf("-sampling_hz must be a positive, finite number, got %v", samplingHz)
	}

	if math.IsNaN(maxSD) || maxSD < 0 {
		return fmt.Errorf("-max_sd must not be negative, got %v", maxSD)
	}

	if minPeaks < 1 {
		return fmt.Errorf("-min_peaks must be at least 1, got %d", minPeaks)
	}

	return nil
}

func run(out io.Writer, input string, samplingHz float64, cfg heartrate.Config, waveName, plotDir string, debug bool) error {
	f, wave, results, err := peakfile.RunFromFile(context.Background(), input, client, samplingHz, cfg, waveName)
	if err != nil {
		return err
	}

	if debug || plotDir != "" {
		for _, id := range f.Identifiers() {
			indices, err := f.Indices(id, wave)
			if err != nil {
				return err
			}
			intervals := heartrate.Intervals(indices, samplingHz)

			if debug {
				if err := printIntervalHistogram(os.Stderr, id, intervals); err != nil {
					return err
				}
			}

			if plotDir != "" {
				if err := plotIntervals(plotDir, id, intervals); err != nil {
					return err
				}
			}
		}
	}

	w := csv.NewWriter(out)
	w.Comma = '\t'
	if err := gocsv.MarshalCSV(results, gocsv.NewSafeCSVWriter(w)); err != nil {
		return err
	}

	s := peakfile.Summarize(results)
	log.Printf("%d samples (%d invalid). Heart rate mean %.2f, SD %.2f, range %.2f-%.2f bpm\n",
		s.Samples, s.Invalid, s.MeanHeartRate, s.SDHeartRate, s.MinHeartRate, s.MaxHeartRate)

	return nil
}
