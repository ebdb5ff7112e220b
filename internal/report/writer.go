package report

import (
	"io"
	"time"

	"github.com/nao1215/xwpuz/internal/database"
)

// Writer renders reports in one output format.
type Writer interface {
	// WriteHistory outputs history records in the order given.
	WriteHistory(records []database.Record) (int, error)

	// WritePuzzle outputs a puzzle file summary.
	WritePuzzle(info *PuzzleInfo) (int, error)
}

// Format selects a Writer implementation.
type Format int

const (
	// FormatText is the human-readable terminal format.
	FormatText Format = iota
	// FormatJSON is indented JSON.
	FormatJSON
	// FormatMarkdown is GitHub Flavored Markdown.
	FormatMarkdown
)

// NewWriter returns the Writer for format, writing to output.
func NewWriter(format Format, output io.Writer) Writer {
	switch format {
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint())
	case FormatMarkdown:
		return NewMarkdownWriter(output)
	default:
		return NewSimpleWriter(output)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// Layouts shared by the writers.
const (
	dateLayout    = "2006-01-02"
	savedAtLayout = "2006-01-02 15:04 MST"
)

func formatSavedAt(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(savedAtLayout)
}

// orDash returns "-" for empty strings so table cells never collapse.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncateString truncates a string to maxLen runes with ellipsis.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
