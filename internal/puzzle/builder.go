package puzzle

import (
	"strings"

	"github.com/nao1215/xwpuz/internal/puz"
	"github.com/nao1215/xwpuz/internal/xwordinfo"
)

// RebusPlaceholder stands in for a multi-character answer in both grids.
const RebusPlaceholder = 'X'

// rebusNotePrefix introduces the rebus answers appended to the notes.
const rebusNotePrefix = "Rebus squares: "

// Result is a built puzzle together with what the build had to absorb.
type Result struct {
	Puzzle *puz.Puzzle

	// Entries is the merged clue list with numbers and directions.
	Entries []Entry

	// MissingClues counts numbered slots that received MissingClue.
	MissingClues int

	// Rebuses lists the answers of rebus squares in grid order.
	Rebuses []string
}

// Build converts a response into a puzzle file model. The response must be
// well formed; a malformed response is rejected before anything is built.
func Build(resp *xwordinfo.Response) (*Result, error) {
	if err := resp.Validate(); err != nil {
		return nil, err
	}

	width, height := resp.Size.Cols, resp.Size.Rows
	cells := ParseGrid(resp.Grid)
	solution, fill, rebuses := Grids(cells)

	acrossNums, downNums := Number(cells, width)
	entries := Merge(
		Entries(acrossNums, Across, ParseClues(resp.Clues.Across)),
		Entries(downNums, Down, ParseClues(resp.Clues.Down)),
	)

	clues := make([]string, len(entries))
	missing := 0
	for i, e := range entries {
		clues[i] = e.Text
		if e.Text == MissingClue {
			missing++
		}
	}

	p := &puz.Puzzle{
		Title:     Latin1(resp.Title),
		Author:    Latin1(Byline(resp.Author, resp.Editor)),
		Copyright: Latin1(resp.Copyright),
		Notes:     Latin1(Notes(resp.Notepad, rebuses)),
		Width:     width,
		Height:    height,
		Solution:  solution,
		Fill:      fill,
		Clues:     clues,
	}
	if resp.HasCircles() {
		p.Markup = CircleMarkup(resp.Circles)
	}

	return &Result{
		Puzzle:       p,
		Entries:      entries,
		MissingClues: missing,
		Rebuses:      rebuses,
	}, nil
}

// Grids derives the solution and fill strings. Black squares are puz.Block
// in both; letters appear in the solution and as puz.Empty in the fill;
// rebus squares are RebusPlaceholder in both and their text is returned.
func Grids(cells []Cell) (solution, fill string, rebuses []string) {
	var sol, fil strings.Builder
	sol.Grow(len(cells))
	fil.Grow(len(cells))

	for _, c := range cells {
		switch c.Kind {
		case Blocked:
			sol.WriteByte(puz.Block)
			fil.WriteByte(puz.Block)
		case Letter:
			sol.WriteString(c.Text)
			fil.WriteByte(puz.Empty)
		default:
			sol.WriteByte(RebusPlaceholder)
			fil.WriteByte(RebusPlaceholder)
			rebuses = append(rebuses, c.Text)
		}
	}
	return sol.String(), fil.String(), rebuses
}

// Byline joins author and editor the way the file's single author field
// conventionally carries both.
func Byline(author, editor string) string {
	author = strings.TrimSpace(author)
	editor = strings.TrimSpace(editor)
	switch {
	case editor == "":
		return author
	case author == "":
		return editor
	default:
		return author + " / " + editor
	}
}

// Notes appends the comma-joined rebus answers to the notepad text.
func Notes(notepad string, rebuses []string) string {
	if len(rebuses) == 0 {
		return notepad
	}
	note := rebusNotePrefix + strings.Join(rebuses, ", ")
	if strings.TrimSpace(notepad) == "" {
		return note
	}
	return notepad + "\n" + note
}

// CircleMarkup turns per-cell circle flags into GEXT markup bytes.
func CircleMarkup(circles []int) []byte {
	markup := make([]byte, len(circles))
	for i, c := range circles {
		if c != 0 {
			markup[i] = puz.MarkupCircled
		}
	}
	return markup
}
