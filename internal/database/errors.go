package database

import (
	"errors"
	"strings"
)

// ErrNotFound indicates a requested record does not exist.
var ErrNotFound = errors.New("database: not found")

// IsUniqueViolation reports whether err is a UNIQUE constraint failure.
// The sqlite driver does not expose a typed error for this, so the error
// text is matched.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
