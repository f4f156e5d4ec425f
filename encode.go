package wsframe

import (
	"crypto/rand"
	"encoding/binary"
	"io"
)

// Encoder turns an application payload into a wire-ready RFC 6455
// frame. It holds no state across calls beyond its configuration, so
// a single Encoder is safe to reuse for many frames and is safe for
// concurrent use (each call only touches its own arguments).
type Encoder struct {
	opts Options
}

// NewEncoder returns an Encoder configured by opts.
func NewEncoder(opts Options) *Encoder {
	return &Encoder{opts: opts}
}

// Encode builds a single frame carrying payload under opcode, with the
// FIN bit set according to fin. The payload is taken from buf; when
// buf was built with NewBuffer and masking leaves room, the header is
// written into buf's head margin and the returned slice aliases buf's
// backing array instead of allocating a new one.
//
// Masking is applied in place to buf's payload bytes: callers must not
// reuse buf's contents after Encode returns if the frame was masked.
func (e *Encoder) Encode(opcode Opcode, fin bool, buf *Buffer) ([]byte, error) {
	payload := buf.Payload()

	if opcode.IsControl() && len(payload) > 125 {
		return nil, protocolError(ErrControlPayloadTooLarge)
	}

	var header [maxHeaderSize]byte
	n := 1
	header[0] = byte(opcode)
	if fin {
		header[0] |= 0x80
	}

	mask := e.opts.MaskEnabled
	maskBit := byte(0)
	if mask {
		maskBit = 0x80
	}

	switch l := len(payload); {
	case l <= 125:
		header[1] = maskBit | byte(l)
		n = 2
	case l <= 65535:
		header[1] = maskBit | 126
		binary.BigEndian.PutUint16(header[2:4], uint16(l))
		n = 4
	default:
		header[1] = maskBit | 127
		binary.BigEndian.PutUint64(header[2:10], uint64(l))
		n = 10
	}

	if mask {
		key, err := e.maskKey()
		if err != nil {
			return nil, err
		}
		copy(header[n:n+4], key[:])
		n += 4
		Mask(key, payload)
	}

	return buf.prepend(header[:n]), nil
}

func (e *Encoder) maskKey() (MaskKey, error) {
	src := e.opts.RandSource
	if src == nil {
		src = rand.Reader
	}
	var key MaskKey
	if _, err := io.ReadFull(src, key[:]); err != nil {
		return MaskKey{}, transportError(err)
	}
	return key, nil
}

// EncodeFrame is a convenience wrapper around Encode for callers that
// do not need to manage a Buffer themselves. It always allocates.
func EncodeFrame(opts Options, opcode Opcode, fin bool, payload []byte) ([]byte, error) {
	return NewEncoder(opts).Encode(opcode, fin, NewBuffer(payload))
}
