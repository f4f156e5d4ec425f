package wsframe

import "io"

// Options configures an Encoder, Decoder, or Reassembler. The zero
// value differs from DefaultOptions only in that it does not mask
// outgoing frames; call DefaultOptions and override fields as needed.
type Options struct {
	// IsServer records which side of the connection this endpoint is
	// on. The Decoder accepts frames with either mask bit regardless
	// (RFC 6455 Section 1 note on relaxed server-side enforcement);
	// IsServer is kept for callers that want to branch on role
	// themselves.
	IsServer bool

	// MaskEnabled controls whether the Encoder masks outgoing frames.
	// RFC 6455 Section 5.3 requires client implementations to mask by
	// default; setting this false is an opt-out performance knob
	// documented for use only over an already-encrypted transport
	// (TLS), where the mask's protection against proxy cache
	// poisoning is moot. Zero value is false, so callers must use
	// DefaultOptions or set this explicitly to get the masking
	// RFC 6455 mandates.
	MaskEnabled bool

	// MaxFramePayload caps the payload length the Decoder will accept
	// for a single frame. Zero means unlimited.
	MaxFramePayload uint64

	// MaxMessagePayload caps the total accumulated length across all
	// fragments of a reassembled message. Zero means unlimited.
	MaxMessagePayload uint64

	// FireContFrame, when true, switches the Reassembler into
	// streaming mode: each fragment is delivered to the caller as it
	// arrives instead of being buffered until the final fragment,
	// and UTF-8 validation of TEXT messages is skipped (the reader
	// is responsible for it, since no complete payload is ever held).
	FireContFrame bool

	// SkipUTF8Validation disables UTF-8 checking of TEXT message
	// payloads and CLOSE frame reasons. Intended for callers that
	// have already validated the data by other means, or trusted
	// internal links where the cost is not worth paying.
	SkipUTF8Validation bool

	// RandSource supplies mask keys when an Encoder masks outgoing
	// frames. Nil defaults to crypto/rand.Reader.
	RandSource io.Reader
}

// DefaultOptions returns the conservative default configuration: mask
// outgoing frames, no frame or message size limit, full UTF-8
// validation, buffered (not streaming) reassembly, and crypto/rand as
// the mask key source. IsServer defaults to false (client role);
// callers on the server side must set it explicitly.
func DefaultOptions() Options {
	return Options{MaskEnabled: true}
}
