package pipeline

import "errors"

var (
	// ErrNoResponse is returned by BuildStep when no response was fetched.
	ErrNoResponse = errors.New("no response to build from")

	// ErrNoPuzzle is returned by WriteStep and RecordStep when no puzzle
	// was built.
	ErrNoPuzzle = errors.New("no puzzle to write")

	// ErrOutputIsDirectory is returned when the output path is a directory.
	ErrOutputIsDirectory = errors.New("output path is a directory")

	// ErrNoFilename is returned when the job's date yields no file name.
	ErrNoFilename = errors.New("date has no file name")
)
