// Package errs defines the small set of sentinel errors the QOI15 codec can
// return. The codec is designed for streams it produced itself, so the
// failure taxonomy is deliberately narrow — see each error's doc comment.
package errs

import "errors"

var (
	// ErrPrematureEOF is returned when the input stream is exhausted before
	// the requested number of samples has been decoded. No partial output
	// is guaranteed alongside this error.
	ErrPrematureEOF = errors.New("qoi15: premature end of encoded stream")

	// ErrInvalidPadding is returned when trailing sub-codewords remain
	// after decoding completes and they are not zero-tag RunLength padding.
	ErrInvalidPadding = errors.New("qoi15: invalid trailing sub-codeword padding")

	// ErrOutputSizeMismatch is returned when the decoder produced a
	// different number of samples than the caller-supplied output size.
	ErrOutputSizeMismatch = errors.New("qoi15: decoded sample count does not match requested output size")

	// ErrBadMagic is returned when a frame's magic bytes do not match the
	// expected file signature.
	ErrBadMagic = errors.New("qoi15: bad frame magic")

	// ErrTruncatedHeader is returned when a frame is shorter than the fixed
	// header size, or when the bytes after the header do not match the
	// payload length the header records.
	ErrTruncatedHeader = errors.New("qoi15: truncated frame header")

	// ErrChecksumMismatch is returned when a decoded payload's xxHash64
	// checksum does not match the value stored in the frame header.
	ErrChecksumMismatch = errors.New("qoi15: payload checksum mismatch")

	// ErrUnsupportedCompression is returned when a frame header names a
	// compression type this build does not recognize.
	ErrUnsupportedCompression = errors.New("qoi15: unsupported compression type")
)
