package pipeline

import (
	"context"
	"log/slog"
)

// Step is one stage of a puzzle download.
type Step interface {
	// Do executes the step against job. A returned error stops the
	// pipeline.
	Do(ctx context.Context, job *Job) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes steps in the order they were added.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs the steps in sequence. It stops at the first error, which
// is recorded in job.Error and returned, and returns nil early once a
// step marks the job skipped. Cancellation is checked before each step.
func (p *Pipeline) Execute(ctx context.Context, job *Job) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"date", job.Date.String(),
				"reason", err,
			)
			job.Error = err
			return err
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"date", job.Date.String(),
		)

		if err := step.Do(ctx, job); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"date", job.Date.String(),
				"error", err,
			)
			job.Error = err
			return err
		}

		p.logger.Debug("step completed",
			"step", step.Name(),
			"date", job.Date.String(),
		)
		job.PerformedSteps = append(job.PerformedSteps, step.Name())

		if job.Skipped {
			p.logger.Info("output file exists; nothing to do",
				"file", job.Path,
			)
			return nil
		}
	}
	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}

// NewDownload assembles the standard download pipeline. A nil recorder
// leaves out the history step.
func NewDownload(fetcher Fetcher, recorder Recorder, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewSkipExistingStep(),
		NewFetchStep(fetcher),
		NewBuildStep(WithBuildLogger(p.logger)),
		NewWriteStep(),
	)
	if recorder != nil {
		p.AddStep(NewRecordStep(recorder, WithRecordLogger(p.logger)))
	}
	return p
}
