package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
)

// HistogramBins is the number of buckets used when printing interval
// histograms.
const HistogramBins = 10

func printIntervalHistogram(w io.Writer, identifier string, intervals []float64) error {
	if len(intervals) == 0 {
		_, err := fmt.Fprintf(w, "%s: no inter-beat intervals\n", identifier)
		return err
	}

	fmt.Fprintf(w, "%s: %d inter-beat intervals (seconds)\n", identifier, len(intervals))

	hist := histogram.Hist(HistogramBins, intervals)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

// plotIntervals writes a tachogram, the interval preceding each beat plotted
// against beat number, to dir/<identifier>_intervals.png.
func plotIntervals(dir, identifier string, intervals []float64) error {
	// A chart needs at least two points.
	if len(intervals) < 2 {
		return nil
	}

	graph := chart.Chart{
		Width:  512,
		Height: 256,
		XAxis: chart.XAxis{
			Name: "Beat",
		},
		YAxis: chart.YAxis{
			Name: "Interval (s)",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    identifier,
				XValues: intSeq(len(intervals)),
				YValues: intervals,
			},
		},
	}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return pfx.Err(err)
	}

	outFile, err := os.Create(filepath.Join(dir, plotFileName(identifier)))
	if err != nil {
		return pfx.Err(err)
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// plotFileName keeps a sample's chart inside the plot directory whatever
// characters its identifier contains.
func plotFileName(identifier string) string {
	return pathSeparators.Replace(identifier) + "_intervals.png"
}

var pathSeparators = strings.NewReplacer("/", "_", `\`, "_")

func intSeq(n int) []float64 {
	out := make([]float64, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, float64(i))
	}

	return out
}
