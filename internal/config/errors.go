package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and describe what is wrong
// with the configuration. Callers compare them with errors.Is().
var (
	// ErrNoAPIURL is returned when the puzzle API endpoint is empty.
	ErrNoAPIURL = errors.New("no API URL configured")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A timeout of zero or negative would cause every request to fail.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is not positive.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrNoOutputDir is returned when the output directory is empty.
	ErrNoOutputDir = errors.New("no output directory configured")
)
