// Package compress provides optional second-stage byte compressors for
// already codeword-packed QOI15 frames.
//
// Strategy-level packing (internal/strategy, internal/container) already
// removes most of the redundancy a monochrome sample stream carries — runs
// collapse to a handful of bytes, repeated neighborhoods hit the table. What
// is left over is mostly literal padding and the packed-container byte
// layout itself, which still compresses further under a general-purpose
// byte compressor. The frame package applies this package as an optional
// second stage, selected per frame via format.CompressionType:
//   - None: no compression (fastest, largest)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Choosing an algorithm
//
//	codec, _ := compress.CreateCodec(format.CompressionZstd, "frame")
//	compressed, _ := codec.Compress(packedBytes)
//	original, _ := codec.Decompress(compressed)
//
// Use None when the frame is already well-packed by strategy selection (high
// run/table hit rate) and CPU matters more than a few extra bytes on disk.
// Use Zstd for archival frames where storage cost dominates. Use S2 or LZ4
// for frames written and read in a latency-sensitive pipeline.
//
// # Memory Management
//
// ZstdCompressor and LZ4Compressor pool their underlying encoder/decoder
// state in a sync.Pool to minimize allocations across repeated
// Compress/Decompress calls.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use.
package compress
