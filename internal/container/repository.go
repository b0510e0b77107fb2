package container

// Repository accumulates codeword output for one encode call: full 16-bit
// literal words go straight to the output buffer, while 5-bit sub-codewords
// from RunLength/Differential/Table are buffered until three have
// accumulated, then packed into one 16-bit container.
//
// There is exactly one Repository implementation: a single concrete struct
// rather than a base/subclass split, since PushLiteral and PushSubcode
// already express the only distinction that ever mattered at runtime.
type Repository struct {
	chunker Chunker
	out     []uint16

	pending    [2]uint8
	pendingLen int
}

// NewRepository creates a Repository with its output buffer preallocated to
// capacity, sized by the caller to the worst case (one container per input
// sample) so a single encode call never needs to grow the slice.
func NewRepository(capacity int) *Repository {
	return &Repository{
		out: make([]uint16, 0, capacity),
	}
}

// PushLiteral flushes any pending sub-codewords first, so the relative order
// between literals and packed triples on the wire is preserved, then writes
// the literal container directly.
func (r *Repository) PushLiteral(w uint16) {
	r.flushPending()
	r.out = append(r.out, w)
}

// PushSubcode buffers a 5-bit sub-codeword. Every time three have
// accumulated, they are packed into one 16-bit container and appended to the
// output.
func (r *Repository) PushSubcode(c uint8) {
	if r.pendingLen < 2 {
		r.pending[r.pendingLen] = c
		r.pendingLen++

		return
	}

	r.out = append(r.out, r.chunker.Pack(r.pending[0], r.pending[1], c))
	r.pendingLen = 0
}

// Flush pads and emits any trailing 1 or 2 buffered sub-codewords as a
// single packed container with zero padding, then clears the pending queue.
// Called once at end-of-stream and internally whenever a literal is about to
// be written.
func (r *Repository) Flush() {
	r.flushPending()
}

// flushPending packs whatever 1 or 2 sub-codewords are pending, padding the
// remaining field(s) with zero. zero-padded fields decode as a RunLength
// sub-codeword of value 0 (tag `00`, value `000`), which contributes a 0
// digit to any pending run length and never manufactures a spurious sample.
func (r *Repository) flushPending() {
	if r.pendingLen == 0 {
		return
	}

	var a, b, c uint8
	switch r.pendingLen {
	case 1:
		a, b, c = r.pending[0], 0, 0
	case 2:
		a, b, c = r.pending[0], r.pending[1], 0
	}

	r.out = append(r.out, r.chunker.Pack(a, b, c))
	r.pendingLen = 0
}

// Words returns the accumulated output containers. The returned slice is
// valid until the next call to PushLiteral, PushSubcode, or Flush.
func (r *Repository) Words() []uint16 {
	return r.out
}
