// Package frame assembles a self-describing file container around a codec
// codeword stream: a fixed header carrying image geometry and codec
// parameters, an xxHash64 checksum over the payload, and an optional
// second-stage byte compressor applied to the packed codewords.
package frame

import (
	"github.com/ice-github/qoi15/format"
)

// Magic identifies a QOI15 frame file. The trailing byte is a format
// version, bumped whenever the header layout changes.
var Magic = [6]byte{'Q', 'O', 'I', '1', '5', 0x01}

// Layout identifies which strategy.TagLayout a frame was packed with.
type Layout uint8

const (
	LayoutDefault    Layout = 0 // Differential wide, Table narrow.
	LayoutTableFirst Layout = 1 // Table wide, Differential narrow.
)

// HeaderSize is the fixed on-disk size of Header in bytes:
//
//	6  magic
//	4  width
//	4  height
//	1  shift
//	1  layout
//	1  compression
//	1  reserved (alignment padding, always zero)
//	4  payload length (bytes, post-compression)
//	8  payload checksum (xxHash64, pre-compression)
const HeaderSize = 6 + 4 + 4 + 1 + 1 + 1 + 1 + 4 + 8

// Header is the fixed-size file header preceding the (optionally
// compressed) codeword payload.
type Header struct {
	Width       uint32
	Height      uint32
	Shift       uint8
	Layout      Layout
	Compression format.CompressionType
	PayloadLen  uint32
	Checksum    uint64
}

// SampleCount returns the number of samples a frame with this header must
// decode to, i.e. Width*Height.
func (h Header) SampleCount() int {
	return int(h.Width) * int(h.Height)
}
