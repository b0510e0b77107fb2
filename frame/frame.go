package frame

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/ice-github/qoi15/codec"
	"github.com/ice-github/qoi15/compress"
	"github.com/ice-github/qoi15/endian"
	"github.com/ice-github/qoi15/errs"
	"github.com/ice-github/qoi15/format"
	"github.com/ice-github/qoi15/internal/pool"
	"github.com/ice-github/qoi15/internal/strategy"
)

func layoutOf(l strategy.TagLayout) Layout {
	if l.DifferentialWide {
		return LayoutDefault
	}

	return LayoutTableFirst
}

func (l Layout) tagLayout() (strategy.TagLayout, error) {
	switch l {
	case LayoutDefault:
		return strategy.DefaultLayout, nil
	case LayoutTableFirst:
		return strategy.TableFirstLayout, nil
	default:
		return strategy.TagLayout{}, fmt.Errorf("qoi15: unsupported layout %d", l)
	}
}

// Encode packs samples (row-major, width*height of them) into a
// self-describing frame: header, xxHash64 checksum, and an optionally
// compressed codeword payload.
//
// cfg controls the underlying codec.Encoder; compression selects the
// second-stage byte compressor applied to the packed codeword bytes. The
// returned compress.CompressionStats reports that second stage's effect on
// the already strategy-packed payload.
func Encode(samples []uint16, width, height uint32, cfg codec.Config, compression format.CompressionType) ([]byte, compress.CompressionStats, error) {
	if int(width)*int(height) != len(samples) {
		return nil, compress.CompressionStats{}, fmt.Errorf("qoi15: width*height (%d) does not match sample count (%d)", int(width)*int(height), len(samples))
	}

	words := codec.NewEncoder(cfg).Encode(samples)

	engine := endian.GetLittleEndianEngine()
	payload := endian.EncodeSamplesToBytes(words, engine)
	checksum := xxhash.Sum64(payload)

	codecImpl, err := compress.CreateCodec(compression, "frame")
	if err != nil {
		return nil, compress.CompressionStats{}, err
	}

	start := time.Now()
	compressed, err := codecImpl.Compress(payload)
	elapsed := time.Since(start)
	if err != nil {
		return nil, compress.CompressionStats{}, fmt.Errorf("qoi15: compressing frame payload: %w", err)
	}

	stats := compress.CompressionStats{
		Algorithm:         compression,
		OriginalSize:      int64(len(payload)),
		CompressedSize:    int64(len(compressed)),
		Ratio:             float64(len(compressed)) / float64(max(len(payload), 1)),
		CompressionTimeNs: elapsed.Nanoseconds(),
	}

	out := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(out)

	out.MustWrite(Magic[:])
	out.MustWrite(engine.AppendUint32(nil, width))
	out.MustWrite(engine.AppendUint32(nil, height))
	out.MustWrite([]byte{byte(cfg.Shift), byte(layoutOf(cfg.Layout)), byte(compression), 0})
	out.MustWrite(engine.AppendUint32(nil, uint32(len(compressed))))
	out.MustWrite(engine.AppendUint64(nil, checksum))
	out.MustWrite(compressed)

	result := make([]byte, out.Len())
	copy(result, out.Bytes())

	return result, stats, nil
}

// Decode parses a frame produced by Encode and reconstructs the original
// sample stream, verifying the payload checksum before decoding.
func Decode(b []byte) ([]uint16, Header, error) {
	if len(b) < HeaderSize {
		return nil, Header{}, errs.ErrTruncatedHeader
	}

	if [6]byte(b[:6]) != Magic {
		return nil, Header{}, errs.ErrBadMagic
	}

	engine := endian.GetLittleEndianEngine()
	off := 6

	width := engine.Uint32(b[off : off+4])
	off += 4
	height := engine.Uint32(b[off : off+4])
	off += 4

	shift := b[off]
	off++
	layout := Layout(b[off])
	off++
	compression := format.CompressionType(b[off])
	off++
	off++ // reserved

	payloadLen := engine.Uint32(b[off : off+4])
	off += 4
	checksum := engine.Uint64(b[off : off+8])
	off += 8

	if uint32(len(b)-off) != payloadLen {
		return nil, Header{}, errs.ErrTruncatedHeader
	}

	header := Header{
		Width:       width,
		Height:      height,
		Shift:       shift,
		Layout:      layout,
		Compression: compression,
		PayloadLen:  payloadLen,
		Checksum:    checksum,
	}

	codecImpl, err := compress.CreateCodec(compression, "frame")
	if err != nil {
		return nil, header, fmt.Errorf("%w: %v", errs.ErrUnsupportedCompression, err)
	}

	payload, err := codecImpl.Decompress(b[off:])
	if err != nil {
		return nil, header, fmt.Errorf("qoi15: decompressing frame payload: %w", err)
	}

	if xxhash.Sum64(payload) != checksum {
		return nil, header, errs.ErrChecksumMismatch
	}

	words, err := endian.DecodeSamplesFromBytes(payload, engine)
	if err != nil {
		return nil, header, err
	}

	tagLayout, err := layout.tagLayout()
	if err != nil {
		return nil, header, err
	}

	cfg := codec.Config{Shift: uint(shift), Layout: tagLayout}
	samples, err := codec.NewDecoder(cfg).Decode(words, header.SampleCount())
	if err != nil {
		return nil, header, err
	}

	return samples, header, nil
}
