package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ice-github/qoi15/codec"
	"github.com/ice-github/qoi15/errs"
	"github.com/ice-github/qoi15/format"
	"github.com/ice-github/qoi15/internal/strategy"
)

func sampleImage(w, h uint32) []uint16 {
	samples := make([]uint16, int(w)*int(h))
	var v uint16
	for i := range samples {
		if i%7 == 0 {
			v += 3
		}
		samples[i] = v
	}

	return samples
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		samples := sampleImage(16, 16)
		cfg := codec.DefaultConfig()

		encoded, stats, err := Encode(samples, 16, 16, cfg, compression)
		require.NoError(t, err)
		require.Equal(t, compression, stats.Algorithm)

		decoded, header, err := Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, uint32(16), header.Width)
		require.Equal(t, uint32(16), header.Height)
		require.Equal(t, compression, header.Compression)
		require.Len(t, decoded, len(samples))
	}
}

func TestDecodeBadMagic(t *testing.T) {
	b := make([]byte, HeaderSize)
	_, _, err := Decode(b)
	require.ErrorIs(t, err, errs.ErrBadMagic)
}

func TestDecodeTruncatedHeader(t *testing.T) {
	_, _, err := Decode([]byte{'Q', 'O', 'I'})
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)
}

func TestEncodeDimensionMismatch(t *testing.T) {
	cfg := codec.DefaultConfig()
	_, _, err := Encode(make([]uint16, 10), 4, 4, cfg, format.CompressionNone)
	require.Error(t, err)
}

func TestDecodeChecksumMismatch(t *testing.T) {
	samples := sampleImage(8, 8)
	cfg := codec.DefaultConfig()

	encoded, _, err := Encode(samples, 8, 8, cfg, format.CompressionNone)
	require.NoError(t, err)

	encoded[len(encoded)-1] ^= 0xFF

	_, _, err = Decode(encoded)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestTableFirstLayoutFrame(t *testing.T) {
	samples := sampleImage(8, 8)
	cfg := codec.Config{Shift: 1, Layout: strategy.TableFirstLayout}

	encoded, _, err := Encode(samples, 8, 8, cfg, format.CompressionNone)
	require.NoError(t, err)

	decoded, header, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, LayoutTableFirst, header.Layout)
	require.Len(t, decoded, len(samples))
}
