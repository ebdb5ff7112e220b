package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/xwpuz/internal/database"
)

var directionTitle = cases.Title(language.English)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// WriteHistory outputs a history table followed by a weekday breakdown.
func (w *MarkdownWriter) WriteHistory(records []database.Record) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Puzzle History")
	md.PlainText("")

	if len(records) == 0 {
		md.Note("No puzzles downloaded yet.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			r.PuzzleDate.Format(dateLayout),
			r.PuzzleDate.Weekday().String(),
			"`" + r.Filename + "`",
			truncateString(orDash(r.Title), 40),
			truncateString(orDash(r.Author), 40),
			strconv.Itoa(r.Width) + "x" + strconv.Itoa(r.Height),
			strconv.Itoa(r.ClueCount),
			formatSavedAt(r.SavedAt),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Date", "Weekday", "File", "Title", "Author", "Size", "Clues", "Saved"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeWeekdayChart(md, records)

	return len(md.String()), md.Build()
}

// writeWeekdayChart writes a mermaid pie chart of puzzles per weekday.
func (w *MarkdownWriter) writeWeekdayChart(md *markdown.Markdown, records []database.Record) {
	var counts [7]uint64
	for _, r := range records {
		counts[r.PuzzleDate.Weekday()]++
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Puzzles by Weekday"),
		piechart.WithShowData(true),
	)
	// Monday first, the way the puzzle week runs.
	for i := range 7 {
		day := time.Weekday((i + 1) % 7)
		if counts[day] > 0 {
			chart.LabelAndIntValue(day.String(), counts[day])
		}
	}

	md.H2("By Weekday")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// WritePuzzle outputs a puzzle summary with its clues.
func (w *MarkdownWriter) WritePuzzle(info *PuzzleInfo) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(orDash(info.Title))
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"File", "`" + info.Path + "`"},
			{"Author", orDash(info.Author)},
			{"Copyright", orDash(info.Copyright)},
			{"Size", strconv.Itoa(info.Width) + "x" + strconv.Itoa(info.Height)},
			{"Clues", strconv.Itoa(info.ClueCount)},
			{"Circled squares", strconv.Itoa(info.Circled)},
			{"Rebus squares", strconv.Itoa(info.Rebus)},
		},
	})
	md.PlainText("")

	if info.Notes != "" {
		md.Importantf("%s", info.Notes)
		md.PlainText("")
	}

	if len(info.Entries) == 0 {
		md.Warningf("Clue numbering could not be recovered from the grid.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	for _, dir := range []string{"across", "down"} {
		entries := info.EntriesFor(dir)
		items := make([]string, len(entries))
		for i, e := range entries {
			items[i] = "**" + strconv.Itoa(e.Number) + "** " + e.Text
		}
		md.H2(directionTitle.String(dir))
		md.PlainText("")
		md.BulletList(items...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}
