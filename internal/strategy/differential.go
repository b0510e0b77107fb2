package strategy

// Differential encodes a small signed delta between consecutive samples in a
// single 5-bit sub-codeword, tagged by whichever slot this TagLayout gives
// it.
//
// Differential holds no state beyond its slot assignment; previous/current
// sample bookkeeping lives in the encoder/decoder.
type Differential struct {
	slot     slot
	maxValue int32
}

// NewDifferential builds a Differential strategy for the given layout.
func NewDifferential(layout TagLayout) Differential {
	s := narrowSlot()
	if layout.DifferentialWide {
		s = wideSlot()
	}

	return Differential{
		slot:     s,
		maxValue: int32(1) << (s.valueBits - 1),
	}
}

// CheckHeader reports whether b's tag bits belong to Differential's slot.
func (d Differential) CheckHeader(b uint8) bool {
	return d.slot.checkHeader(b)
}

// Sub computes the signed delta between the current and previous sample in
// wide signed arithmetic, so no narrow-field wraparound can hide a
// representable delta.
func (Differential) Sub(previous, current uint16) int32 {
	return int32(current) - int32(previous)
}

// IsValid reports whether d fits the representable range for this layout:
// nonzero and within [-maxValue, maxValue]. Zero is excluded because an equal
// pair of samples is always absorbed by RunLength before Differential is
// ever consulted; this check is belt-and-braces against that invariant.
func (d Differential) IsValid(delta int32) bool {
	if delta == 0 {
		return false
	}

	return delta >= -d.maxValue && delta <= d.maxValue
}

// Encode biases delta into the unsigned value field and tags it.
//
// The bias is asymmetric about zero: negative deltas bias by +maxValue,
// positive deltas bias by +(maxValue-1), since zero itself is never encoded.
func (d Differential) Encode(delta int32) uint8 {
	var biased int32
	if delta < 0 {
		biased = delta + d.maxValue
	} else {
		biased = delta + d.maxValue - 1
	}

	return d.slot.tag(uint8(biased))
}

// Decode extracts the biased value field and reverses Encode's bias.
func (d Differential) Decode(v uint8) int32 {
	value := int32(d.slot.value(v))
	if value < d.maxValue {
		return value - d.maxValue
	}

	return value - (d.maxValue - 1)
}

// Add reconstructs the current sample from the previous sample and a decoded
// delta.
func (Differential) Add(previous uint16, delta int32) uint16 {
	return uint16(int32(previous) + delta)
}
