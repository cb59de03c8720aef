package uuid

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// UUID is a 16-byte RFC 4122 identifier.
type UUID [16]byte

var Nil UUID

// New returns a new UUID v4.
func New() (UUID, error) {
	var u UUID
	if _, err := io.ReadFull(rand.Reader, u[:]); err != nil {
		return UUID{}, err
	}
	u[6] = (u[6] & 0x0f) | 0x40 // version 4
	u[8] = (u[8] & 0x3f) | 0x80 // RFC 4122 variant
	return u, nil
}

// String formats the UUID as XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX
func (u UUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}

// IsZero reports whether the UUID is the zero value.
func (u UUID) IsZero() bool {
	return u == Nil
}

// Parse parses the canonical string form into a UUID
func Parse(s string) (UUID, error) {
	var u UUID
	s = strings.ToLower(s)

	parts := strings.Split(s, "-")
	if len(parts) != 5 {
		return UUID{}, errors.New("invalid uuid format")
	}
	joined := strings.Join(parts, "")
	if len(joined) != 32 {
		return UUID{}, errors.New("invalid uuid length")
	}

	b, err := hex.DecodeString(joined)
	if err != nil {
		return UUID{}, err
	}
	copy(u[:], b)
	return u, nil
}

// MarshalJSON serializes the UUID as a JSON string
func (u UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON parses a UUID from a JSON string
func (u *UUID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}
