package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintIntervalHistogram(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printIntervalHistogram(&buf, "A", []float64{0.8, 1.2, 1.3, 1.0}))
	assert.True(t, strings.HasPrefix(buf.String(), "A: 4 inter-beat intervals"))

	buf.Reset()
	require.NoError(t, printIntervalHistogram(&buf, "B", nil))
	assert.Equal(t, "B: no inter-beat intervals\n", buf.String())
}

func TestPlotIntervals(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, plotIntervals(dir, "A", []float64{0.8, 1.2, 1.3, 1.0}))

	info, err := os.Stat(filepath.Join(dir, "A_intervals.png"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Too few intervals to draw is not an error, and writes nothing.
	require.NoError(t, plotIntervals(dir, "B", []float64{1}))
	_, err = os.Stat(filepath.Join(dir, "B_intervals.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestIntSeq(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3}, intSeq(3))
	assert.Empty(t, intSeq(0))
}

func TestPlotIntervalsStaysInDirectory(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "plots")
	require.NoError(t, os.Mkdir(dir, 0o755))

	intervals := []float64{0.8, 1.2, 1.3, 1.0}
	require.NoError(t, plotIntervals(dir, "../escaped", intervals))
	require.NoError(t, plotIntervals(dir, "site/1", intervals))
	require.NoError(t, plotIntervals(dir, `site\2`, intervals))

	_, err := os.Stat(filepath.Join(root, "escaped_intervals.png"))
	assert.True(t, os.IsNotExist(err), "chart written outside the plot directory")

	for _, name := range []string{".._escaped_intervals.png", "site_1_intervals.png", "site_2_intervals.png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestPlotFileName(t *testing.T) {
	assert.Equal(t, "A_intervals.png", plotFileName("A"))
	assert.Equal(t, ".._x_intervals.png", plotFileName("../x"))
	assert.Equal(t, "a_b_c_intervals.png", plotFileName(`a/b\c`))
}
