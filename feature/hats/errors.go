package hats

import "errors"

// ErrNotReady marks a step whose preconditions are not met yet. It is logged and retried on the
// next tick; it never fails an attempt.
var ErrNotReady = errors.New("not ready")

func notReady(reason string) error {
	return &notReadyError{reason: reason}
}

type notReadyError struct {
	reason string
}

func (e *notReadyError) Error() string { return "not ready: " + e.reason }

func (e *notReadyError) Is(target error) bool { return target == ErrNotReady }
