// Package pipeline runs the steps that turn a date into a puzzle file.
//
// A Job travels through the steps in order: skip if the file already
// exists, fetch the JSON document, build the puzzle, write it atomically
// and record it in the history. Any step may mark the job skipped, which
// ends the run successfully without running the remaining steps. An error
// stops the run. Steps run one after another on the calling goroutine.
package pipeline
