package wsframe

// maxHeaderSize is the largest a RFC 6455 frame header can be: 2 bytes
// of base header, 8 bytes of extended length, 4 bytes of mask key.
const maxHeaderSize = 14

// Buffer holds an application payload with spare capacity reserved
// before its start, so a frame header can be written directly into that
// margin instead of allocating a second buffer and concatenating.
//
// Zero-value Buffer has no head margin; NewBuffer is the usual
// constructor for callers that intend to prepend a header.
type Buffer struct {
	buf   []byte
	start int
}

// NewBuffer returns a Buffer containing payload, with maxHeaderSize
// bytes of unused capacity reserved immediately before it.
func NewBuffer(payload []byte) *Buffer {
	b := &Buffer{
		buf:   make([]byte, maxHeaderSize+len(payload)),
		start: maxHeaderSize,
	}
	copy(b.buf[maxHeaderSize:], payload)
	return b
}

// Payload returns the application payload, excluding any head margin.
func (b *Buffer) Payload() []byte {
	return b.buf[b.start:]
}

// headroom reports how many bytes are free before start.
func (b *Buffer) headroom() int {
	return b.start
}

// prepend writes header, a frame header of up to maxHeaderSize bytes,
// immediately before the payload. If there is not enough head margin
// (the Buffer was not built with NewBuffer, or the header is larger
// than anticipated), it falls back to allocating a new slice and
// concatenating; the zero-copy path is an optimization, not a
// correctness requirement.
func (b *Buffer) prepend(header []byte) []byte {
	if b.headroom() >= len(header) {
		start := b.start - len(header)
		copy(b.buf[start:b.start], header)
		return b.buf[start:]
	}

	out := make([]byte, len(header)+len(b.Payload()))
	copy(out, header)
	copy(out[len(header):], b.Payload())
	return out
}
