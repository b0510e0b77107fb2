// Package qoi15 provides a lossless bit-packing codec for monochrome image
// sample streams: 16-bit samples, top 15 bits significant, packed through
// four complementary strategies (RunLength, Differential, Table, Raw15bit)
// into 5-bit sub-codewords, three of which share a 16-bit container.
//
// # Basic Usage
//
// Encoding and decoding a sample stream with the package defaults:
//
//	import "github.com/ice-github/qoi15"
//
//	words := qoi15.EncodeSamples(samples)
//	decoded, err := qoi15.DecodeSamples(words, len(samples))
//
// For non-default parameters, construct an Encoder and Decoder directly (one
// of each per stream; neither is reusable):
//
//	enc := qoi15.NewEncoder(qoi15.WithShift(2))
//	words := enc.Encode(samples)
//
//	dec := qoi15.NewDecoder(qoi15.WithShift(2))
//	decoded, err := dec.Decode(words, len(samples))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package, mirroring its Encoder/Decoder split. For file framing (a
// self-describing container with geometry, checksum, and optional
// second-stage compression) use the frame package; for raw byte marshaling
// of the codeword stream, use the endian package.
package qoi15

import (
	"github.com/ice-github/qoi15/codec"
	"github.com/ice-github/qoi15/internal/options"
	"github.com/ice-github/qoi15/internal/strategy"
	"github.com/ice-github/qoi15/metrics"
)

// Encoder drives strategy selection for one encode call.
//
// Encoder is not safe for concurrent use, and is not reusable after Encode
// returns — construct a new Encoder per call.
type Encoder struct {
	inner *codec.Encoder
}

// Option configures an Encoder or Decoder built by NewEncoder/NewDecoder.
type Option = options.Option[*codec.Config]

// WithShift overrides the bit-discard shift applied before strategy
// selection. Default 1. The wire format carries no shift byte, so a Decoder
// must be constructed with the same shift the Encoder used.
func WithShift(shift uint) Option {
	return options.NoError(func(cfg *codec.Config) {
		cfg.Shift = shift
	})
}

// WithTableFirstLayout swaps the default tag-space partition: Table gets
// the wide 4-bit-value slot (16 entries) and Differential the narrow
// 3-bit-value slot, instead of the default assignment. Both sides of a
// stream must agree on this choice.
func WithTableFirstLayout() Option {
	return options.NoError(func(cfg *codec.Config) {
		cfg.Layout = strategy.TableFirstLayout
	})
}

func buildConfig(opts []Option) codec.Config {
	cfg := codec.DefaultConfig()
	_ = options.Apply(&cfg, opts...)

	return cfg
}

// NewEncoder builds an Encoder with the given options applied over
// DefaultConfig.
func NewEncoder(opts ...Option) *Encoder {
	cfg := buildConfig(opts)

	return &Encoder{inner: codec.NewEncoder(cfg)}
}

// Encode packs samples into a codeword stream. See codec.Encoder.Encode.
func (e *Encoder) Encode(samples []uint16) []uint16 {
	return e.inner.Encode(samples)
}

// Stats returns strategy-selection counts and the resulting compression
// ratio for the most recent Encode call.
func (e *Encoder) Stats() metrics.EncodeStats {
	return e.inner.Stats()
}

// Decoder is the inverse state machine of Encoder.
//
// Decoder is not safe for concurrent use, and is not reusable after Decode
// returns.
type Decoder struct {
	inner *codec.Decoder
}

// NewDecoder builds a Decoder with the given options applied over
// DefaultConfig. opts must match what the corresponding Encoder used.
func NewDecoder(opts ...Option) *Decoder {
	cfg := buildConfig(opts)

	return &Decoder{inner: codec.NewDecoder(cfg)}
}

// Decode reconstructs exactly outputSize samples from words. See
// codec.Decoder.Decode.
func (d *Decoder) Decode(words []uint16, outputSize int) ([]uint16, error) {
	return d.inner.Decode(words, outputSize)
}

// EncodeSamples packs samples into a codeword stream using package
// defaults, constructing a fresh Encoder per call. Safe for concurrent use
// across independent calls.
func EncodeSamples(samples []uint16) []uint16 {
	return NewEncoder().Encode(samples)
}

// DecodeSamples reconstructs exactly outputSize samples from words using
// package defaults, constructing a fresh Decoder per call. Safe for
// concurrent use across independent calls.
func DecodeSamples(words []uint16, outputSize int) ([]uint16, error) {
	return NewDecoder().Decode(words, outputSize)
}
