package youtube

import (
	"errors"
	"fmt"
)

// NotFoundError reports that the extractor resolved the request but the
// video is gone: removed, private, or region-blocked.
type NotFoundError struct {
	ID     string
	Reason string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("video %s not found: %s", e.ID, e.Reason)
}

// TransientError reports a network-level failure that may succeed on retry.
type TransientError struct {
	ID  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient extraction failure for %s: %v", e.ID, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsTransient reports whether err is a TransientError.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
