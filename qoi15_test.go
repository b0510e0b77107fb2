package qoi15

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func maskedSamples(samples []uint16) []uint16 {
	out := make([]uint16, len(samples))
	for i, s := range samples {
		out[i] = s &^ 1
	}

	return out
}

func TestEncodeDecodeSamplesDefaults(t *testing.T) {
	samples := []uint16{0x0100, 0x0100, 0x0100, 0x0200, 0x0300, 0x0100}

	words := EncodeSamples(samples)
	decoded, err := DecodeSamples(words, len(samples))

	require.NoError(t, err)
	require.Equal(t, maskedSamples(samples), decoded)
}

func TestEncoderDecoderWithShift(t *testing.T) {
	samples := []uint16{0x0100, 0x0104, 0x0108, 0x0100}

	enc := NewEncoder(WithShift(2))
	words := enc.Encode(samples)

	dec := NewDecoder(WithShift(2))
	decoded, err := dec.Decode(words, len(samples))

	require.NoError(t, err)
	for i, s := range samples {
		require.Equal(t, s&^0b11, decoded[i])
	}
}

func TestEncoderStats(t *testing.T) {
	samples := []uint16{0x0100, 0x0100, 0x0100, 0x0100, 0x0200}

	enc := NewEncoder()
	words := enc.Encode(samples)

	stats := enc.Stats()
	require.Equal(t, int64(len(samples)), stats.SampleCount)
	require.Equal(t, int64(len(words)), stats.WordCount)
	require.Equal(t, int64(len(samples)), stats.Strategies.Total())
}

func TestEncoderDecoderWithTableFirstLayout(t *testing.T) {
	samples := []uint16{0x0100, 0x0200, 0x0300, 0x0100, 0x0200, 0x1000}

	enc := NewEncoder(WithTableFirstLayout())
	words := enc.Encode(samples)

	dec := NewDecoder(WithTableFirstLayout())
	decoded, err := dec.Decode(words, len(samples))

	require.NoError(t, err)
	require.Equal(t, maskedSamples(samples), decoded)
}
