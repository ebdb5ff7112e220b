package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/xwpuz/internal/database"
	"github.com/nao1215/xwpuz/internal/puz"
	"github.com/nao1215/xwpuz/internal/puzzle"
	"github.com/nao1215/xwpuz/internal/xwordinfo"
)

// Fetcher retrieves the puzzle document for a canonical date string.
type Fetcher = xwordinfo.Fetcher

// Recorder stores a history record for a written file.
type Recorder interface {
	SaveRecord(ctx context.Context, r *database.Record) (int64, error)
}

// SkipExistingStep marks the job skipped when its output file exists.
type SkipExistingStep struct{}

// NewSkipExistingStep creates a SkipExistingStep.
func NewSkipExistingStep() *SkipExistingStep {
	return &SkipExistingStep{}
}

// Name returns the step name.
func (s *SkipExistingStep) Name() string {
	return "skip_existing"
}

// Do checks the output path.
func (s *SkipExistingStep) Do(_ context.Context, job *Job) error {
	if job.Date.Filename() == "" {
		return ErrNoFilename
	}

	info, err := os.Stat(job.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check %s: %w", job.Path, err)
	case info.IsDir():
		return fmt.Errorf("%s: %w", job.Path, ErrOutputIsDirectory)
	}
	job.Skipped = true
	return nil
}

// FetchStep downloads the puzzle document.
type FetchStep struct {
	fetcher Fetcher
}

// NewFetchStep creates a FetchStep using fetcher.
func NewFetchStep(fetcher Fetcher) *FetchStep {
	return &FetchStep{fetcher: fetcher}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do fetches the document for the job's date.
func (s *FetchStep) Do(ctx context.Context, job *Job) error {
	resp, err := s.fetcher.Fetch(ctx, job.Date.String())
	if err != nil {
		return err
	}
	job.Response = resp
	return nil
}

// BuildStep converts the fetched document into a puzzle.
type BuildStep struct {
	logger *slog.Logger
}

// BuildStepOption configures a BuildStep.
type BuildStepOption func(*BuildStep)

// WithBuildLogger sets the logger used to report absorbed problems.
func WithBuildLogger(logger *slog.Logger) BuildStepOption {
	return func(s *BuildStep) {
		s.logger = logger
	}
}

// NewBuildStep creates a BuildStep.
func NewBuildStep(opts ...BuildStepOption) *BuildStep {
	s := &BuildStep{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *BuildStep) Name() string {
	return "build"
}

// Do builds the puzzle.
func (s *BuildStep) Do(_ context.Context, job *Job) error {
	if job.Response == nil {
		return ErrNoResponse
	}

	res, err := puzzle.Build(job.Response)
	if err != nil {
		return err
	}
	if res.MissingClues > 0 {
		s.logger.Warn("clues missing from response",
			"date", job.Date.String(),
			"count", res.MissingClues,
		)
	}
	if len(res.Rebuses) > 0 {
		s.logger.Info("rebus squares replaced",
			"date", job.Date.String(),
			"answers", res.Rebuses,
		)
	}
	job.Result = res
	return nil
}

// WriteStep writes the built puzzle to the job's path.
type WriteStep struct{}

// NewWriteStep creates a WriteStep.
func NewWriteStep() *WriteStep {
	return &WriteStep{}
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return "write"
}

// Do writes the file, creating the output directory when needed.
func (s *WriteStep) Do(_ context.Context, job *Job) error {
	if job.Result == nil || job.Result.Puzzle == nil {
		return ErrNoPuzzle
	}
	if err := os.MkdirAll(filepath.Dir(job.Path), 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := puz.WriteFile(job.Path, job.Result.Puzzle); err != nil {
		return err
	}
	job.Written = true
	return nil
}

// RecordStep saves the written file in the history. A history failure is
// logged and does not fail the run, because the puzzle file is already in
// place.
type RecordStep struct {
	recorder Recorder
	now      func() time.Time
	logger   *slog.Logger
}

// RecordStepOption configures a RecordStep.
type RecordStepOption func(*RecordStep)

// WithRecordLogger sets the logger for history failures.
func WithRecordLogger(logger *slog.Logger) RecordStepOption {
	return func(s *RecordStep) {
		s.logger = logger
	}
}

// WithRecordClock sets the clock used for the saved-at time.
func WithRecordClock(now func() time.Time) RecordStepOption {
	return func(s *RecordStep) {
		s.now = now
	}
}

// NewRecordStep creates a RecordStep storing into recorder.
func NewRecordStep(recorder Recorder, opts ...RecordStepOption) *RecordStep {
	s := &RecordStep{
		recorder: recorder,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *RecordStep) Name() string {
	return "record"
}

// Do saves the history record.
func (s *RecordStep) Do(ctx context.Context, job *Job) error {
	if job.Result == nil || job.Result.Puzzle == nil {
		return ErrNoPuzzle
	}
	p := job.Result.Puzzle

	path := job.Path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	_, err := s.recorder.SaveRecord(ctx, &database.Record{
		PuzzleDate: job.Date.Time(),
		DateText:   job.Date.String(),
		Filename:   job.Filename(),
		Path:       path,
		Title:      p.Title,
		Author:     p.Author,
		Width:      p.Width,
		Height:     p.Height,
		ClueCount:  len(p.Clues),
		SavedAt:    s.now(),
	})
	if err != nil {
		s.logger.Warn("failed to record history",
			"file", job.Path,
			"error", err,
		)
	}
	return nil
}
