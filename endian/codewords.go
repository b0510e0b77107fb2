package endian

import "github.com/ice-github/qoi15/errs"

// EncodeSamplesToBytes marshals a codec codeword stream to bytes using
// engine's byte order. The codec package is deliberately silent on wire
// endianness (spec'd as out of its scope); this is where a caller picks one.
func EncodeSamplesToBytes(words []uint16, engine EndianEngine) []byte {
	b := make([]byte, 0, len(words)*2)
	for _, w := range words {
		b = engine.AppendUint16(b, w)
	}

	return b
}

// DecodeSamplesFromBytes is the inverse of EncodeSamplesToBytes.
//
// It returns errs.ErrInvalidPadding if len(b) is not a multiple of 2.
func DecodeSamplesFromBytes(b []byte, engine EndianEngine) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, errs.ErrInvalidPadding
	}

	words := make([]uint16, len(b)/2)
	for i := range words {
		words[i] = engine.Uint16(b[i*2 : i*2+2])
	}

	return words, nil
}
