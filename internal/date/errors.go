package date

import "errors"

var (
	// ErrUnrecognizedDate is returned when a token matches none of the
	// accepted date forms. No request must be made for such a token.
	ErrUnrecognizedDate = errors.New("unrecognized date")

	// ErrInvalidDate is returned when a token has a recognized shape but
	// names a day that does not exist, such as 2/30 or 13/1.
	ErrInvalidDate = errors.New("invalid date")
)
