package codec

import (
	"github.com/ice-github/qoi15/internal/bitshift"
	"github.com/ice-github/qoi15/internal/container"
	"github.com/ice-github/qoi15/internal/strategy"
	"github.com/ice-github/qoi15/metrics"
)

// Encoder drives strategy selection for one encode call: for every sample it
// tries, in priority order, RunLength (by accumulating a counter rather than
// emitting per-sample), Differential, Table, then Raw15bit.
//
// Encoder is not safe for concurrent use, and is not reusable after Encode
// returns. Construct a new Encoder per call.
type Encoder struct {
	cfg  Config
	diff strategy.Differential
	tbl  strategy.Table
	rl   strategy.RunLength
	raw  strategy.Raw15bit

	previous  uint16
	runLength int

	stats       metrics.StrategyCounts
	sampleCount int64
	wordCount   int64
}

// NewEncoder builds an Encoder for the given configuration.
func NewEncoder(cfg Config) *Encoder {
	return &Encoder{
		cfg:      cfg,
		diff:     strategy.NewDifferential(cfg.Layout),
		tbl:      strategy.NewTable(cfg.Layout),
		previous: initialPrevious,
	}
}

// Encode consumes a full sequence of raw 16-bit samples and returns the
// encoded codeword container stream. Output length is guaranteed to never
// exceed len(samples): the worst case (every sample emits a raw literal)
// produces exactly one container per sample.
func (e *Encoder) Encode(samples []uint16) []uint16 {
	repo := container.NewRepository(len(samples))

	for _, s := range samples {
		current := bitshift.Down(s, e.cfg.Shift)

		if current == e.previous {
			e.runLength++
			e.stats.RunLength++
			continue
		}

		if e.runLength > 0 {
			e.flushRun(repo)
		}

		if delta := e.diff.Sub(e.previous, current); e.diff.IsValid(delta) {
			repo.PushSubcode(e.diff.Encode(delta))
			e.previous = current
			e.stats.Differential++

			continue
		}

		h := e.tbl.Hash(current)
		if e.tbl.Refer(h) == current {
			repo.PushSubcode(e.tbl.Encode(h))
			e.previous = current
			e.stats.Table++

			continue
		}

		e.tbl.Insert(h, current)
		repo.PushLiteral(e.raw.Encode(current))
		e.previous = current
		e.stats.Raw15bit++
	}

	if e.runLength > 0 {
		e.flushRun(repo)
	}
	repo.Flush()

	words := repo.Words()
	e.sampleCount = int64(len(samples))
	e.wordCount = int64(len(words))

	return words
}

// Stats returns strategy-selection counts and the resulting compression
// ratio for the most recent Encode call. Safe to call only after Encode has
// returned at least once; the zero value is returned otherwise.
func (e *Encoder) Stats() metrics.EncodeStats {
	return metrics.EncodeStats{
		Strategies:  e.stats,
		SampleCount: e.sampleCount,
		WordCount:   e.wordCount,
	}
}

// flushRun emits the RunLength sub-codewords for the accumulated counter and
// resets it. previous is deliberately left untouched: the run was relative
// to the previous sample the counter accumulated against, and the sample
// that broke the run is processed against that same previous afterward.
func (e *Encoder) flushRun(repo *container.Repository) {
	for _, c := range e.rl.Encode(e.runLength) {
		repo.PushSubcode(c)
	}
	e.runLength = 0
}
