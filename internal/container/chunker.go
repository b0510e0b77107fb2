// Package container implements the Chunker and Repository: the component
// that fuses three 5-bit sub-codewords into a single 16-bit packed
// container, or splits a packed container back into three sub-codewords,
// and the buffering layer built on top of it.
package container

// Chunker packs and unpacks the three 5-bit sub-codeword fields of a packed
// container. It is a pure, stateless transform — the ordering and bit
// positions are fixed by the wire format, not by any runtime configuration.
type Chunker struct{}

// Pack fuses three 5-bit sub-codewords into one 16-bit packed container:
// first occupies bits 0..4, second bits 5..9, third bits 10..14. Bit 15
// stays clear, marking the word as packed rather than a literal.
func (Chunker) Pack(first, second, third uint8) uint16 {
	return uint16(first&0x1F) | uint16(second&0x1F)<<5 | uint16(third&0x1F)<<10
}

// Unpack splits a packed container back into its three 5-bit sub-codewords
// in the same first/second/third order Pack consumed them.
func (Chunker) Unpack(w uint16) (first, second, third uint8) {
	first = uint8(w & 0x1F)
	second = uint8((w >> 5) & 0x1F)
	third = uint8((w >> 10) & 0x1F)

	return first, second, third
}
