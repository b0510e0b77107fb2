package compress

// ZstdCompressor provides Zstandard compression for packed QOI15 frames.
//
// This compressor favors compression ratio over speed, making it suited for
// archival frames where storage cost dominates and decompression happens
// infrequently.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor returns a ZstdCompressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
