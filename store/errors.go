package store

import (
	"errors"
	"fmt"
)

// TransportError reports a failed exchange with the remote store: the store
// was unreachable or answered with a failure status. The pipelines never
// catch or retry it; it surfaces unmodified to the caller.
type TransportError struct {
	Op     string // collection (or "connect") the exchange was for
	Status int    // HTTP status when known, zero otherwise
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("store: %s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
