package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeSamplesToBytesRoundTrip(t *testing.T) {
	words := []uint16{0x5555, 0x0001, 0xFFFF, 0x0000, 0x2AAA}

	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		b := EncodeSamplesToBytes(words, engine)
		require.Len(t, b, len(words)*2)

		got, err := DecodeSamplesFromBytes(b, engine)
		require.NoError(t, err)
		require.Equal(t, words, got)
	}
}

func TestDecodeSamplesFromBytesInvalidPadding(t *testing.T) {
	_, err := DecodeSamplesFromBytes([]byte{0x01, 0x02, 0x03}, GetLittleEndianEngine())
	require.Error(t, err)
}

func TestDecodeSamplesFromBytesEmpty(t *testing.T) {
	got, err := DecodeSamplesFromBytes(nil, GetLittleEndianEngine())
	require.NoError(t, err)
	require.Empty(t, got)
}
