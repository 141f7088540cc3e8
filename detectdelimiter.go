package bcgrate

import (
	"bytes"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that delimits the
// values in sample, which should be the first few lines of a CSV-like file.
// A candidate must appear in the header line to be accepted. Failing that, tab
// is chosen if the header contains one, and comma otherwise.
func DetermineDelimiter(sample []byte) rune {
	header := sample
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		header = sample[:i]
	}

	d := detector.New()
	for _, candidate := range d.DetectDelimiter(bytes.NewReader(sample), '"') {
		if len(candidate) > 0 && bytes.IndexByte(header, candidate[0]) >= 0 {
			return rune(candidate[0])
		}
	}

	if bytes.IndexByte(header, '\t') >= 0 {
		return '\t'
	}

	return ','
}
