// Package metrics provides optional post-hoc instrumentation for an Encoder
// run: per-strategy selection counts and the resulting compression ratio.
// Nothing in this package sits on the codec's hot path — an Encoder tallies
// plain counters as it runs, and callers pull a snapshot afterward.
package metrics

// StrategyCounts tallies how many input samples each strategy accounted
// for during one Encode call. RunLength counts individual repeated samples
// it absorbed, not the number of RunLength codewords emitted.
type StrategyCounts struct {
	RunLength    int64
	Differential int64
	Table        int64
	Raw15bit     int64
}

// Total returns the total number of samples tallied across all strategies.
func (c StrategyCounts) Total() int64 {
	return c.RunLength + c.Differential + c.Table + c.Raw15bit
}

// EncodeStats summarizes one Encode call: strategy selection counts plus
// the resulting input/output size, mirroring the shape of a compression
// ratio report.
type EncodeStats struct {
	Strategies StrategyCounts

	// SampleCount is the number of input samples encoded.
	SampleCount int64

	// WordCount is the number of uint16 codewords the encoder produced.
	WordCount int64
}

// CompressionRatio returns WordCount/SampleCount. Values below 1.0 indicate
// the packed stream is smaller than the raw sample count; values at or
// above 1.0 indicate little or no benefit (e.g. an all-literal worst case
// produces exactly one word per sample, a ratio of 1.0).
//
// Returns 0 if SampleCount is zero.
func (s EncodeStats) CompressionRatio() float64 {
	if s.SampleCount == 0 {
		return 0.0
	}

	return float64(s.WordCount) / float64(s.SampleCount)
}

// SpaceSavings returns the space savings as a percentage (0-100), derived
// from CompressionRatio.
func (s EncodeStats) SpaceSavings() float64 {
	ratio := s.CompressionRatio()
	if ratio >= 1.0 {
		return 0.0
	}

	return (1.0 - ratio) * 100.0
}
