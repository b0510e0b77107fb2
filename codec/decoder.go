package codec

import (
	"github.com/ice-github/qoi15/errs"
	"github.com/ice-github/qoi15/internal/bitshift"
	"github.com/ice-github/qoi15/internal/container"
	"github.com/ice-github/qoi15/internal/strategy"
)

// Decoder is the inverse state machine of Encoder: it consumes packed
// containers, splits them into 5-bit sub-codewords, and dispatches each to
// RunLength, Differential, or Table, draining any leftover sub-codewords
// from a previously-unpacked container before reading a new input word.
//
// Decoder is not safe for concurrent use, and is not reusable after Decode
// returns.
type Decoder struct {
	cfg     Config
	diff    strategy.Differential
	tbl     strategy.Table
	rl      strategy.RunLength
	raw     strategy.Raw15bit
	chunker container.Chunker

	previous uint16
}

// NewDecoder builds a Decoder for the given configuration. cfg must match
// the Config the corresponding Encoder used — the wire format carries no
// self-describing shift or layout byte.
func NewDecoder(cfg Config) *Decoder {
	return &Decoder{
		cfg:      cfg,
		diff:     strategy.NewDifferential(cfg.Layout),
		tbl:      strategy.NewTable(cfg.Layout),
		previous: initialPrevious,
	}
}

// Decode reconstructs exactly outputSize samples from the encoded container
// stream. It returns errs.ErrPrematureEOF if the input is exhausted first,
// and errs.ErrOutputSizeMismatch if decoding produced a different count than
// requested without otherwise detecting exhaustion (an invariant violation
// that should not occur on a stream this codec produced).
func (d *Decoder) Decode(words []uint16, outputSize int) ([]uint16, error) {
	out := make([]uint16, 0, outputSize)

	var leftovers []uint8
	var pendingRun []uint8
	wordIdx := 0

	emitRun := func() {
		if len(pendingRun) == 0 {
			return
		}

		length := d.rl.Decode(pendingRun)
		pendingRun = pendingRun[:0]

		sample := bitshift.Up(d.previous, d.cfg.Shift)
		for i := 0; i < length && len(out) < outputSize; i++ {
			out = append(out, sample)
		}
	}

	for len(out) < outputSize {
		if len(leftovers) == 0 {
			if wordIdx >= len(words) {
				break
			}

			w := words[wordIdx]
			wordIdx++

			if d.raw.IsLiteral(w) {
				emitRun()

				current := d.raw.Decode(w)
				d.tbl.Insert(d.tbl.Hash(current), current)
				out = append(out, bitshift.Up(current, d.cfg.Shift))
				d.previous = current

				continue
			}

			a, b, c := d.chunker.Unpack(w)
			leftovers = append(leftovers, a, b, c)

			continue
		}

		sub := leftovers[0]
		leftovers = leftovers[1:]

		if d.rl.CheckHeader(sub) {
			pendingRun = append(pendingRun, sub)
			continue
		}

		emitRun()

		if d.diff.CheckHeader(sub) {
			current := d.diff.Add(d.previous, d.diff.Decode(sub))
			out = append(out, bitshift.Up(current, d.cfg.Shift))
			d.previous = current

			continue
		}

		current := d.tbl.Refer(d.tbl.Decode(sub))
		out = append(out, bitshift.Up(current, d.cfg.Shift))
		d.previous = current
	}

	emitRun()

	if len(out) < outputSize {
		return nil, errs.ErrPrematureEOF
	}
	if len(out) != outputSize {
		return nil, errs.ErrOutputSizeMismatch
	}

	for _, sub := range leftovers {
		if !d.rl.IsZeroPad(sub) {
			return nil, errs.ErrInvalidPadding
		}
	}
	for wordIdx < len(words) {
		if words[wordIdx] != 0 {
			return nil, errs.ErrInvalidPadding
		}
		wordIdx++
	}

	return out, nil
}
