package pagination

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestEncodeCursor(t *testing.T) {
	tests := []struct {
		name        string
		id          uuid.UUID
		reverse     bool
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid cursor",
			id:      uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
			wantErr: false,
		},
		{
			name:    "reverse cursor",
			id:      uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
			reverse: true,
			wantErr: false,
		},
		{
			name:        "nil UUID",
			id:          uuid.Nil,
			wantErr:     true,
			errContains: "cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeCursor(tt.id, tt.reverse)
			if (err != nil) != tt.wantErr {
				t.Errorf("EncodeCursor() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil && tt.errContains != "" {
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("EncodeCursor() error = %v, should contain %v", err, tt.errContains)
				}
			}
			if !tt.wantErr && encoded == "" {
				t.Error("EncodeCursor() returned empty string for valid input")
			}
		})
	}
}

func TestDecodeCursor(t *testing.T) {
	validID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	validEncoded, _ := EncodeCursor(validID, false)

	tests := []struct {
		name        string
		encoded     string
		wantErr     bool
		errContains string
		wantNil     bool
	}{
		{
			name:    "valid cursor",
			encoded: validEncoded,
			wantErr: false,
		},
		{
			name:    "empty string returns nil",
			encoded: "",
			wantErr: false,
			wantNil: true,
		},
		{
			name:        "invalid base64",
			encoded:     "not-valid-base64!!!",
			wantErr:     true,
			errContains: "decode cursor",
		},
		{
			name:        "invalid JSON",
			encoded:     "aW52YWxpZC1qc29u", // base64 of "invalid-json"
			wantErr:     true,
			errContains: "unmarshal cursor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeCursor(tt.encoded)
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeCursor() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil && tt.errContains != "" {
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("DecodeCursor() error = %v, should contain %v", err, tt.errContains)
				}
			}
			if tt.wantNil && decoded != nil {
				t.Error("DecodeCursor() should return nil for empty string")
			}
			if !tt.wantErr && !tt.wantNil && decoded == nil {
				t.Error("DecodeCursor() returned nil for valid input")
			}
		})
	}
}

func TestCursorRoundtrip(t *testing.T) {
	tests := []struct {
		name    string
		id      uuid.UUID
		reverse bool
	}{
		{
			name: "forward",
			id:   uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		},
		{
			name:    "reverse",
			id:      uuid.MustParse("987fcdeb-51a2-43d7-b890-123456789abc"),
			reverse: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeCursor(tt.id, tt.reverse)
			if err != nil {
				t.Fatalf("EncodeCursor() failed: %v", err)
			}

			decoded, err := DecodeCursor(encoded)
			if err != nil {
				t.Fatalf("DecodeCursor() failed: %v", err)
			}

			if decoded.ID != tt.id {
				t.Errorf("ID mismatch: got %v, want %v", decoded.ID, tt.id)
			}
			if decoded.Reverse != tt.reverse {
				t.Errorf("Reverse mismatch: got %v, want %v", decoded.Reverse, tt.reverse)
			}
		})
	}
}

func TestMustEncodeCursor(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
		defer func() {
			if r := recover(); r != nil {
				t.Error("MustEncodeCursor() panicked on valid input")
			}
		}()
		result := MustEncodeCursor(id, false)
		if result == "" {
			t.Error("MustEncodeCursor() returned empty string")
		}
	})

	t.Run("nil UUID panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("MustEncodeCursor() should panic on nil UUID")
			}
		}()
		MustEncodeCursor(uuid.Nil, false)
	})
}
