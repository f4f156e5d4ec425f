package wsframe

import "github.com/valyala/bytebufferpool"

// Message is a complete, reassembled application message: either the
// single payload of an unfragmented data frame, or the concatenation
// of a fragmented message's frames in arrival order.
type Message struct {
	Opcode  Opcode
	Payload []byte
}

// Reassembler accumulates a sequence of data frames (one TEXT or
// BINARY frame optionally followed by zero or more CONTINUATION
// frames) into complete messages. It rejects the illegal interleavings
// RFC 6455 Section 5.4 forbids: a CONTINUATION with no message in
// progress, or a new TEXT/BINARY frame while one already is.
//
// A Reassembler is not safe for concurrent use; it is meant to sit
// behind a single Decoder on a single logical stream, the same
// assumption the Decoder itself makes.
type Reassembler struct {
	opts Options

	building bool
	opcode   Opcode
	buf      *bytebufferpool.ByteBuffer
	utf8     Validator
}

// NewReassembler returns a Reassembler configured by opts.
func NewReassembler(opts Options) *Reassembler {
	return &Reassembler{opts: opts}
}

// Process feeds one data frame into the reassembler. When the frame
// completes a message (it is unfragmented, or it is the final
// fragment of a fragmented one), Process returns the assembled
// Message. Otherwise it returns (nil, nil) and retains the frame's
// payload internally until the message completes.
//
// In FireContFrame mode, Process instead returns every fragment
// individually as its own Message (Opcode set to the frame's own
// opcode, so OpContinuation for every fragment after the first) the
// moment it arrives, and
// never buffers payload or validates UTF-8 itself; the caller takes
// on that responsibility in exchange for not waiting on a full
// message before seeing any of it.
func (r *Reassembler) Process(f *Frame) (*Message, error) {
	if f.Opcode.IsControl() {
		return &Message{Opcode: f.Opcode, Payload: f.Payload}, nil
	}

	if err := r.validateSequencing(f); err != nil {
		return nil, err
	}

	if r.opts.FireContFrame {
		return r.processStreaming(f)
	}

	if !r.building {
		r.building = true
		r.opcode = f.Opcode
		r.buf = bytebufferpool.Get()
		r.utf8 = Validator{}
	}

	if _, err := r.buf.Write(f.Payload); err != nil {
		return nil, transportError(err)
	}

	if r.opcode == OpText && !r.opts.SkipUTF8Validation {
		r.utf8.Write(f.Payload)
	}

	if r.opts.MaxMessagePayload != 0 && uint64(r.buf.Len()) > r.opts.MaxMessagePayload {
		r.reset()
		return nil, protocolError(ErrMessageTooLarge)
	}

	if !f.Fin {
		return nil, nil
	}

	if r.opcode == OpText && !r.opts.SkipUTF8Validation && !r.utf8.Valid() {
		r.reset()
		return nil, payloadError(ErrInvalidUTF8)
	}

	payload := append([]byte(nil), r.buf.B...)
	opcode := r.opcode
	r.reset()

	return &Message{Opcode: opcode, Payload: payload}, nil
}

// processStreaming implements FireContFrame mode: each fragment is
// handed straight back to the caller with no buffering or validation,
// tagged with its own opcode on the wire (CONT for every fragment
// after the first), not the message's original opcode.
func (r *Reassembler) processStreaming(f *Frame) (*Message, error) {
	if !r.building {
		r.building = true
	}
	if f.Fin {
		r.building = false
	}

	return &Message{Opcode: f.Opcode, Payload: f.Payload}, nil
}

// validateSequencing enforces the fragmentation grammar: CONTINUATION
// is only legal while a message is being built, and a new TEXT/BINARY
// frame is only legal while one is not.
func (r *Reassembler) validateSequencing(f *Frame) error {
	switch {
	case f.Opcode == OpContinuation && !r.building:
		return protocolError(ErrIllegalContinuation)
	case f.Opcode != OpContinuation && r.building:
		return protocolError(ErrIllegalDataStart)
	default:
		return nil
	}
}

// reset releases the accumulation buffer back to the pool and clears
// all in-progress message state.
func (r *Reassembler) reset() {
	if r.buf != nil {
		bytebufferpool.Put(r.buf)
		r.buf = nil
	}
	r.building = false
	r.utf8 = Validator{}
}
