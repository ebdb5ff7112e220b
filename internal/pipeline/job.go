package pipeline

import (
	"path/filepath"

	"github.com/nao1215/xwpuz/internal/date"
	"github.com/nao1215/xwpuz/internal/puzzle"
	"github.com/nao1215/xwpuz/internal/xwordinfo"
)

// Job carries one puzzle download through the pipeline.
type Job struct {
	// Date is the resolved puzzle date.
	Date date.Date

	// Path is the output file path derived from Date.
	Path string

	// Response is the decoded API document, set by FetchStep.
	Response *xwordinfo.Response

	// Result is the built puzzle, set by BuildStep.
	Result *puzzle.Result

	// Skipped is set when the output file already existed.
	Skipped bool

	// Written is set once the file is in place.
	Written bool

	// PerformedSteps lists the names of the steps that ran.
	PerformedSteps []string

	// Error is the error that stopped the run, if any.
	Error error
}

// NewJob creates a job that writes the puzzle for d into outputDir.
func NewJob(d date.Date, outputDir string) *Job {
	return &Job{
		Date: d,
		Path: filepath.Join(outputDir, d.Filename()),
	}
}

// Filename returns the base name of the output file.
func (j *Job) Filename() string {
	return filepath.Base(j.Path)
}
