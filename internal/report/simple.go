package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/xwpuz/internal/database"
)

// SimpleWriter outputs human-readable text.
type SimpleWriter struct {
	baseWriter

	// clues includes the full clue list in puzzle summaries.
	clues bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithClues includes every clue in puzzle summaries.
func WithClues(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.clues = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteHistory outputs one line per record.
func (w *SimpleWriter) WriteHistory(records []database.Record) (int, error) {
	var sb strings.Builder

	if len(records) == 0 {
		sb.WriteString("No puzzles downloaded yet.\n")
		return io.WriteString(w.output, sb.String())
	}

	fmt.Fprintf(&sb, "%-10s  %-3s  %-12s  %-5s  %-5s  %s\n", "DATE", "DAY", "FILE", "SIZE", "CLUES", "TITLE")
	for _, r := range records {
		fmt.Fprintf(&sb, "%-10s  %-3s  %-12s  %-5s  %-5d  %s\n",
			r.PuzzleDate.Format(dateLayout),
			r.PuzzleDate.Format("Mon"),
			r.Filename,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.ClueCount,
			truncateString(r.Title, 40),
		)
	}
	fmt.Fprintf(&sb, "\n%d puzzle(s)\n", len(records))

	return io.WriteString(w.output, sb.String())
}

// WritePuzzle outputs a puzzle summary.
func (w *SimpleWriter) WritePuzzle(info *PuzzleInfo) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "File:      %s\n", info.Path)
	fmt.Fprintf(&sb, "Title:     %s\n", orDash(info.Title))
	fmt.Fprintf(&sb, "Author:    %s\n", orDash(info.Author))
	fmt.Fprintf(&sb, "Copyright: %s\n", orDash(info.Copyright))
	fmt.Fprintf(&sb, "Size:      %dx%d\n", info.Width, info.Height)
	fmt.Fprintf(&sb, "Clues:     %d\n", info.ClueCount)
	if info.Circled > 0 {
		fmt.Fprintf(&sb, "Circled:   %d\n", info.Circled)
	}
	if info.Rebus > 0 {
		fmt.Fprintf(&sb, "Rebus:     %d\n", info.Rebus)
	}
	if info.Notes != "" {
		sb.WriteString("Notes:\n")
		for _, line := range strings.Split(info.Notes, "\n") {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
	}

	if w.clues && len(info.Entries) > 0 {
		for _, dir := range []string{"across", "down"} {
			fmt.Fprintf(&sb, "\n%s\n", strings.ToUpper(dir))
			for _, e := range info.EntriesFor(dir) {
				fmt.Fprintf(&sb, "%4d  %s\n", e.Number, e.Text)
			}
		}
	}

	return io.WriteString(w.output, sb.String())
}
