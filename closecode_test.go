package wsframe

import (
	"encoding/binary"
	"testing"
)

func TestCloseCodeValid(t *testing.T) {
	tests := []struct {
		code  CloseCode
		valid bool
	}{
		{1000, true},
		{1001, true},
		{1002, true},
		{1003, true},
		{1004, false}, // reserved
		{1005, false}, // reserved, never sent on the wire
		{1006, false}, // reserved, never sent on the wire
		{1007, true},
		{1008, true},
		{1009, true},
		{1010, true},
		{1011, true},
		{1012, true},
		{1013, true},
		{1014, true},
		{1015, false}, // reserved
		{999, false},
		{2999, false},
		{3000, true},
		{4999, true},
		{5000, false},
	}

	for _, tt := range tests {
		if got := tt.code.Valid(); got != tt.valid {
			t.Errorf("CloseCode(%d).Valid() = %v, want %v", tt.code, got, tt.valid)
		}
	}
}

func TestValidateClosePayload(t *testing.T) {
	encode := func(code CloseCode, reason string) []byte {
		b := make([]byte, 2+len(reason))
		binary.BigEndian.PutUint16(b, uint16(code))
		copy(b[2:], reason)
		return b
	}

	tests := []struct {
		name    string
		payload []byte
		wantErr error
	}{
		{"empty is legal", nil, nil},
		{"single byte is illegal", []byte{1}, ErrCloseShortPayload},
		{"valid code no reason", encode(CloseNormal, ""), nil},
		{"valid code with reason", encode(CloseGoingAway, "bye"), nil},
		{"invalid code", encode(1005, ""), ErrInvalidCloseCode},
		{"reason not valid utf8", encode(CloseNormal, "\xff\xfe"), ErrInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateClosePayload(tt.payload, false)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			fe, ok := err.(*FramingError)
			if !ok {
				t.Fatalf("error is not *FramingError: %v", err)
			}
			if fe.Unwrap() != tt.wantErr {
				t.Errorf("wrapped error = %v, want %v", fe.Unwrap(), tt.wantErr)
			}
		})
	}
}

func TestValidateClosePayloadOversized(t *testing.T) {
	payload := make([]byte, 126)
	binary.BigEndian.PutUint16(payload, uint16(CloseNormal))
	err := validateClosePayload(payload, false)
	if err == nil {
		t.Fatal("expected error for oversized close payload")
	}
	if !IsProtocolError(err) {
		t.Errorf("expected protocol error, got %v", err)
	}
}

func TestValidateClosePayloadSkipsUTF8WhenRequested(t *testing.T) {
	payload := make([]byte, 4)
	binary.BigEndian.PutUint16(payload, uint16(CloseNormal))
	payload[2], payload[3] = 0xff, 0xfe

	if err := validateClosePayload(payload, true); err != nil {
		t.Errorf("expected no error with skipUTF8Validation, got %v", err)
	}
}
