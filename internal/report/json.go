package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/nao1215/xwpuz/internal/database"
)

// JSONWriter outputs reports in JSON format for tool integration.
type JSONWriter struct {
	baseWriter

	indent       bool
	indentPrefix string
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint is WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// HistoryEntry is the JSON form of a history record.
type HistoryEntry struct {
	Date      string    `json:"date"`
	DateText  string    `json:"dateText"`
	Weekday   string    `json:"weekday"`
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	ClueCount int       `json:"clueCount"`
	SavedAt   time.Time `json:"savedAt"`
}

// NewHistoryEntry converts a database record.
func NewHistoryEntry(r database.Record) HistoryEntry {
	return HistoryEntry{
		Date:      r.PuzzleDate.Format(dateLayout),
		DateText:  r.DateText,
		Weekday:   r.PuzzleDate.Weekday().String(),
		Filename:  r.Filename,
		Path:      r.Path,
		Title:     r.Title,
		Author:    r.Author,
		Width:     r.Width,
		Height:    r.Height,
		ClueCount: r.ClueCount,
		SavedAt:   r.SavedAt,
	}
}

// WriteHistory outputs the records as a JSON array.
func (w *JSONWriter) WriteHistory(records []database.Record) (int, error) {
	entries := make([]HistoryEntry, len(records))
	for i, r := range records {
		entries[i] = NewHistoryEntry(r)
	}
	return w.writeJSON(entries)
}

// WritePuzzle outputs the summary as a JSON object.
func (w *JSONWriter) WritePuzzle(info *PuzzleInfo) (int, error) {
	return w.writeJSON(info)
}

// writeJSON marshals v and writes it with a trailing newline.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
