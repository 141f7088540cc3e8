package peakfile

// Result is the heart rate estimate for one sample. HeartRate honors the
// configured gates; ScoredHeartRate and IntervalSD come from the scored
// pipeline, which never gates on dispersion. Invalid estimates are -1.
type Result struct {
	Identifier      string  `csv:"identifier"`
	Wave            string  `csv:"wave"`
	Peaks           int     `csv:"peaks"`
	HeartRate       float64 `csv:"heart_rate_bpm"`
	ScoredHeartRate float64 `csv:"scored_heart_rate_bpm"`
	IntervalSD      float64 `csv:"interval_sd_seconds"`
}
