// Package ids generates and validates the opaque record identifiers
// used across all collections.
package ids

import (
	"github.com/oklog/ulid/v2"
)

// New returns a fresh ULID string.
func New() string {
	return ulid.Make().String()
}

// Valid reports whether s parses as a record identifier.
func Valid(s string) bool {
	_, err := ulid.Parse(s)
	return err == nil
}
