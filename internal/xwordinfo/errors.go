package xwordinfo

import "errors"

var (
	// ErrUnexpectedStatus is returned when the API answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status from puzzle API")

	// ErrMalformedResponse is returned when the JSON body lacks fields the
	// puzzle build needs or carries inconsistent values.
	ErrMalformedResponse = errors.New("malformed puzzle response")

	// ErrResponseTooLarge is returned when the body exceeds the configured limit.
	ErrResponseTooLarge = errors.New("puzzle response too large")
)
