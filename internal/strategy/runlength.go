package strategy

// RunLength encodes a non-negative run count as a little-endian sequence of
// base-8 digits, each packed into a 5-bit sub-codeword tagged `00`.
//
// RunLength carries no state of its own; the run counter itself lives in the
// encoder/decoder, since it accumulates across samples rather than within a
// single Encode/Decode call.
type RunLength struct{}

// CheckHeader reports whether the high two bits of a 5-bit sub-codeword
// match the RunLength tag `00`.
func (RunLength) CheckHeader(b uint8) bool {
	return b&^runValueMask == runTag
}

// Encode produces the base-8 digit sequence for length, least-significant
// digit first. A length of 0 yields no sub-codewords — callers must not call
// Encode for a zero-length run, since a run is only ever flushed when its
// counter is positive.
func (RunLength) Encode(length int) []uint8 {
	if length <= 0 {
		return nil
	}

	var digits []uint8
	for length > 0 {
		digits = append(digits, runTag|uint8(length&int(runValueMask)))
		length >>= runValueBits
	}

	return digits
}

// IsZeroPad reports whether b is a RunLength sub-codeword with a zero value
// field — the shape produced when Repository pads a trailing partial triple
// with zeros. Such padding must be silently ignored rather than treated as
// stray invalid residue.
func (rl RunLength) IsZeroPad(b uint8) bool {
	return rl.CheckHeader(b) && b&runValueMask == 0
}

// Decode reassembles a run length from sub-codewords received in the same
// least-significant-digit-first order Encode produced them.
func (RunLength) Decode(codes []uint8) int {
	length := 0
	for i, c := range codes {
		length |= int(c&runValueMask) << (uint(i) * uint(runValueBits))
	}

	return length
}
