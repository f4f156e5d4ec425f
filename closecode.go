package wsframe

import "encoding/binary"

// CloseCode is the 16-bit big-endian status carried in a CLOSE frame's
// payload (RFC 6455 Section 7.4).
type CloseCode uint16

// Enumerated close status codes a CLOSE frame may legally carry on the
// wire. 1004, 1005, 1006 and 1015 are reserved by the RFC for local use
// only and are rejected if seen on the wire (see CloseCode.Valid).
const (
	CloseNormal             CloseCode = 1000
	CloseGoingAway          CloseCode = 1001
	CloseProtocolError      CloseCode = 1002
	CloseUnsupportedData    CloseCode = 1003
	CloseInvalidPayload     CloseCode = 1007
	ClosePolicyViolation    CloseCode = 1008
	CloseMessageTooBig      CloseCode = 1009
	CloseMandatoryExtension CloseCode = 1010
	CloseInternalError      CloseCode = 1011
	CloseServiceRestart     CloseCode = 1012
	CloseTryAgainLater      CloseCode = 1013
	CloseBadGateway         CloseCode = 1014
)

var enumeratedCloseCodes = map[CloseCode]bool{
	CloseNormal:             true,
	CloseGoingAway:          true,
	CloseProtocolError:      true,
	CloseUnsupportedData:    true,
	CloseInvalidPayload:     true,
	ClosePolicyViolation:    true,
	CloseMessageTooBig:      true,
	CloseMandatoryExtension: true,
	CloseInternalError:      true,
	CloseServiceRestart:     true,
	CloseTryAgainLater:      true,
	CloseBadGateway:         true,
}

// Valid reports whether c is legal in a CLOSE frame on the wire: one of
// the enumerated codes above, or in the application-defined range
// [3000, 5000). 1004, 1005, 1006 and 1015 are reserved and always invalid.
func (c CloseCode) Valid() bool {
	if enumeratedCloseCodes[c] {
		return true
	}
	return c >= 3000 && c < 5000
}

// validateClosePayload enforces the shape of a CLOSE frame's payload
// (RFC 6455 Section 7.4 / 5.5.1):
//   - empty payload is always legal (no status given)
//   - a single byte is illegal: a status code cannot be truncated
//   - the first two bytes, if present, must decode to a valid CloseCode
//   - any bytes past the status code are a UTF-8 reason
func validateClosePayload(payload []byte, skipUTF8Validation bool) error {
	switch l := len(payload); {
	case l == 0:
		return nil
	case l == 1:
		return protocolError(ErrCloseShortPayload)
	case l > 125:
		return protocolError(ErrControlPayloadTooLarge)
	}

	code := CloseCode(binary.BigEndian.Uint16(payload[:2]))
	if !code.Valid() {
		return protocolError(ErrInvalidCloseCode)
	}

	if len(payload) > 2 && !skipUTF8Validation && !ValidUTF8(payload[2:]) {
		return payloadError(ErrInvalidUTF8)
	}

	return nil
}
