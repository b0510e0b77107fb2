package compress

import (
	"fmt"

	"github.com/ice-github/qoi15/format"
)

// Compressor provides high-performance compression and decompression for an
// already codeword-packed QOI15 stream.
//
// The interface is applied as an optional second stage after strategy-level
// packing, where the data is:
//   - Mostly zero-run and literal padding on highly repetitive frames
//   - Already byte-aligned uint16 codewords in the configured endianness
//   - Usually a few KB to a few MB per frame
type Compressor interface {
	// Compress compresses a packed QOI15 codeword payload and returns the
	// compressed result. The input slice is never modified; the returned
	// slice may alias it (NoOpCompressor returns data itself).
	Compress(data []byte) ([]byte, error)
}

// Decompressor mirrors Compressor for the inverse direction. Kept as a
// separate interface since some implementations pool encoder/decoder state
// independently (see zstdEncoderPool/zstdDecoderPool).
type Decompressor interface {
	// Decompress reverses Compress. Returns an error if data is corrupted
	// or was not produced by the matching Compressor.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions for implementations that share state
// across compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats reports what a second-stage compressor did to an
// already strategy-packed frame payload, for logging or a CLI summary.
type CompressionStats struct {
	Algorithm           format.CompressionType
	OriginalSize        int64
	CompressedSize      int64
	Ratio               float64
	CompressionTimeNs   int64
	DecompressionTimeNs int64
}

// CompressionRatio returns CompressedSize/OriginalSize. Values below 1.0
// indicate the second stage shrank the payload; at or above 1.0 it didn't
// (possible on a payload strategy-packing already drained of redundancy).
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns (1-ratio)*100 as a percentage; higher is better.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec builds a Codec for the given compression type. target names
// the caller in the error message when compressionType is not one of the
// four format.CompressionType values.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}
