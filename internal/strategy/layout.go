// Package strategy implements the four complementary sub-codeword strategies
// that QOI15 dispatches between on every sample: RunLength, Differential,
// Table, and Raw15bit.
//
// Each strategy is stateless apart from Table's single lookup array, so
// dispatch between them is a small tag-bit match rather than an interface
// with dynamic dispatch — there is no benefit to virtualizing four arms this
// small.
package strategy

// The 5-bit sub-codeword space is partitioned into three tag slots:
//
//	00 xxx   -- always RunLength, 3-bit value (fixed, never reassigned)
//	01 xxx   -- the "narrow" slot: 2-bit tag, 3-bit value
//	1  xxxx  -- the "wide" slot: 1-bit tag, 4-bit value
//
// Differential and Table each occupy exactly one of the two non-RunLength
// slots. DefaultLayout gives Differential the wide slot (more delta
// precision); TableFirstLayout gives Table the wide slot (a bigger hash
// table, at the cost of delta precision) — see design notes §9. Both sides
// of a codec must agree on one TagLayout for the life of a stream; it is a
// compile-time/constructor-time choice, never negotiated mid-stream.
type TagLayout struct {
	// DifferentialWide is true when Differential occupies the 1-bit-tag,
	// 4-value-bit slot. When false, Table occupies it instead and
	// Differential takes the 2-bit-tag, 3-value-bit slot.
	DifferentialWide bool
}

// DefaultLayout gives Differential the wide slot (4-bit value), and Table
// the narrow slot (3-bit value, tag `01`).
var DefaultLayout = TagLayout{DifferentialWide: true}

// TableFirstLayout swaps the two: Table gets the wide slot (4-bit value, 16
// entries), Differential gets the narrow slot (3-bit value, tag `01`).
var TableFirstLayout = TagLayout{DifferentialWide: false}

const (
	narrowTag       uint8 = 0b01
	narrowValueBits uint8 = 3

	wideValueBits uint8 = 4
)

// The RunLength tag and mask constants are independent of TagLayout: RunLength always
// occupies the `00xxx` quarter of the 5-bit space regardless of how the
// remaining three quarters are split between Differential and Table.
const (
	runTag       uint8 = 0b00000
	runValueBits uint8 = 3
	runValueMask uint8 = 0b111
)

// slot describes the value bit width and mask of a single non-RunLength
// slot; its methods tag, check, and extract values for that slot.
type slot struct {
	valueBits uint8
	valueMask uint8
}

func narrowSlot() slot {
	return slot{valueBits: narrowValueBits, valueMask: 0b111}
}

func wideSlot() slot {
	return slot{valueBits: wideValueBits, valueMask: 0b1111}
}

// tag returns the tagged sub-codeword for a value occupying this slot.
func (s slot) tag(value uint8) uint8 {
	if s.valueBits == wideValueBits {
		return (1 << wideValueBits) | (value & s.valueMask)
	}

	return (narrowTag << narrowValueBits) | (value & s.valueMask)
}

// checkHeader reports whether b's tag bits match this slot, distinguishing
// it from RunLength and from the other (non-RunLength) slot.
func (s slot) checkHeader(b uint8) bool {
	if s.valueBits == wideValueBits {
		return b&(1<<wideValueBits) != 0
	}

	return b>>narrowValueBits == narrowTag
}

// value extracts the raw value field from a tagged sub-codeword known to
// belong to this slot.
func (s slot) value(b uint8) uint8 {
	return b & s.valueMask
}
