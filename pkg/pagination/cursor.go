package pagination

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Cursor marks a position in an ordered collection.
// It carries the ID of the boundary record and the paging direction,
// so it stays stable under concurrent inserts and deletes.
type Cursor struct {
	ID      uuid.UUID `json:"i"`
	Reverse bool      `json:"r,omitempty"`
}

// EncodeCursor converts a Cursor to a base64-encoded opaque token
func EncodeCursor(id uuid.UUID, reverse bool) (string, error) {
	if id == uuid.Nil {
		return "", fmt.Errorf("cursor ID cannot be nil")
	}

	c := Cursor{
		ID:      id,
		Reverse: reverse,
	}

	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}

	return base64.URLEncoding.EncodeToString(b), nil
}

// DecodeCursor parses a base64-encoded cursor token
func DecodeCursor(s string) (*Cursor, error) {
	if s == "" {
		return nil, nil
	}

	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cursor: %w", err)
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cursor: %w", err)
	}

	if c.ID == uuid.Nil {
		return nil, fmt.Errorf("invalid cursor: ID cannot be nil")
	}

	return &c, nil
}

// MustEncodeCursor is like EncodeCursor but panics on error
// Use only when you're certain the inputs are valid
func MustEncodeCursor(id uuid.UUID, reverse bool) string {
	cursor, err := EncodeCursor(id, reverse)
	if err != nil {
		panic(err)
	}
	return cursor
}
