// Package bitshift implements the fixed bit-discard step that sits between a
// caller's raw 16-bit samples and the rest of the QOI15 codec.
package bitshift

// DefaultShift is the default number of low bits discarded on encode and
// reconstructed as zero on decode. Callers that configure a different shift
// on encode must configure the decoder to match, since the wire format
// carries no shift byte of its own.
const DefaultShift = 1

// Down discards the low `shift` bits of a raw sample, producing the value
// that drives every strategy decision in the encoder.
func Down(v uint16, shift uint) uint16 {
	return v >> shift
}

// Up reconstructs a 16-bit sample from a shifted value, inserting zero bits
// where Down discarded them.
func Up(v uint16, shift uint) uint16 {
	return v << shift
}
