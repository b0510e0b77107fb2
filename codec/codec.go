// Package codec implements the two composite drivers that arbitrate between
// the leaf strategies in internal/strategy and internal/container: Encoder
// and Decoder.
package codec

import (
	"github.com/ice-github/qoi15/internal/strategy"
)

// initialPrevious is the sentinel both Encoder and Decoder start from. It is
// outside the representable 15-bit sample range, so a genuine first sample
// can never be mistaken for a continuing run or spurious delta/table hit.
const initialPrevious uint16 = 0xFFFF

// Config pins the parameters both Encoder and Decoder must agree on for a
// given stream: the bit-discard shift and the sub-codeword tag layout.
type Config struct {
	Shift  uint
	Layout strategy.TagLayout
}

// DefaultConfig returns the standard shift-by-1 configuration paired with
// the DefaultLayout tag-space partition (RunLength/Table narrow, Differential wide).
func DefaultConfig() Config {
	return Config{Shift: 1, Layout: strategy.DefaultLayout}
}
