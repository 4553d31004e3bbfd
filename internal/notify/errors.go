package notify

import "errors"

// RetryableError marks a failure where redelivering the event can help:
// the identity directory was unreachable, or persistence failed before any
// per-recipient isolation kicked in. The dispatcher nacks these so the
// broker redelivers.
//
// Best-effort failures are the other policy: per-recipient store errors are
// logged and swallowed inside the coordinator and never reach the dispatcher,
// so they need no type of their own.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable wraps err for redelivery. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err is marked for redelivery.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}
