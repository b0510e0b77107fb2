package strategy

// tableSentinel marks a Table entry as never written. It is distinct from
// any representable 15-bit sample (valid samples are ≤ 0x7FFF after
// downshift), so the first lookup at any index can never spuriously hit.
const tableSentinel uint16 = 0xFFFF

// tableHashBit is the bit offset the hash is sliced from within a 15-bit
// sample.
const tableHashBit = 1

// Table is a direct-mapped cache of recently seen samples, keyed by a hash
// of the sample value. Its size (8 entries under DefaultLayout, 16 under
// TableFirstLayout) follows from how many value bits its slot carries. It is
// the only strategy in this package that carries state, since a hit/miss
// decision depends on what was previously inserted.
// maxTableSize is the largest table this package ever needs: 16 entries,
// under TableFirstLayout's 4-bit hash. DefaultLayout only uses the first 8.
// A fixed array avoids a heap allocation per encoder/decoder instance.
const maxTableSize = 16

type Table struct {
	slot    slot
	entries [maxTableSize]uint16
}

// NewTable builds a Table for the given layout, with every entry set to the
// sentinel so no sample can hit before an insert.
func NewTable(layout TagLayout) Table {
	s := narrowSlot()
	if !layout.DifferentialWide {
		s = wideSlot()
	}

	t := Table{slot: s}
	for i := 0; i <= int(s.valueMask); i++ {
		t.entries[i] = tableSentinel
	}

	return t
}

// CheckHeader reports whether b's tag bits belong to Table's slot.
func (t Table) CheckHeader(b uint8) bool {
	return t.slot.checkHeader(b)
}

// Hash derives the table index from the relevant bits of a 15-bit sample.
func (t Table) Hash(sample uint16) uint8 {
	return uint8(sample>>tableHashBit) & t.slot.valueMask
}

// Refer returns the entry at hash h (tableSentinel if never inserted).
func (t Table) Refer(h uint8) uint16 {
	return t.entries[h&t.slot.valueMask]
}

// Insert unconditionally overwrites the entry at hash h. Collisions are not
// otherwise handled — the newest raw literal at a given hash always wins.
func (t *Table) Insert(h uint8, sample uint16) {
	t.entries[h&t.slot.valueMask] = sample
}

// Encode tags a hash index as a Table sub-codeword.
func (t Table) Encode(h uint8) uint8 {
	return t.slot.tag(h)
}

// Decode extracts the hash index from a Table sub-codeword.
func (t Table) Decode(v uint8) uint8 {
	return t.slot.value(v)
}
