package puz

import "errors"

var (
	// ErrInvalidDimensions is returned for a width or height outside 1..255.
	ErrInvalidDimensions = errors.New("invalid puzzle dimensions")

	// ErrGridMismatch is returned when the solution or fill length is not
	// width*height, or the markup length differs from the grid.
	ErrGridMismatch = errors.New("grid does not match dimensions")

	// ErrTooManyClues is returned when the clue count does not fit in 16 bits.
	ErrTooManyClues = errors.New("too many clues")

	// ErrInvalidText is returned for strings containing NUL or characters
	// outside ISO-8859-1.
	ErrInvalidText = errors.New("text not representable in puzzle file")

	// ErrBadMagic is returned when the ACROSS&DOWN signature is missing.
	ErrBadMagic = errors.New("not an Across Lite puzzle file")

	// ErrTruncated is returned when a file ends before a section does.
	ErrTruncated = errors.New("puzzle file truncated")

	// ErrChecksum is returned when a stored checksum does not match the data.
	ErrChecksum = errors.New("puzzle checksum mismatch")

	// ErrScrambled is returned for files with a locked solution.
	ErrScrambled = errors.New("scrambled puzzles are not supported")
)
