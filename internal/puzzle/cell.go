package puzzle

import (
	"unicode/utf8"

	"github.com/nao1215/xwpuz/internal/xwordinfo"
	"golang.org/x/text/encoding/charmap"
)

// Kind classifies a grid square.
type Kind int

const (
	// Blocked is a black square.
	Blocked Kind = iota
	// Letter is a white square with a single-character answer.
	Letter
	// Rebus is a white square whose answer spans several characters.
	Rebus
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Blocked:
		return "blocked"
	case Letter:
		return "letter"
	case Rebus:
		return "rebus"
	default:
		return "unknown"
	}
}

// Cell is one square of the source grid.
type Cell struct {
	Kind Kind
	// Text is the raw answer text; empty for blocked squares.
	Text string
}

// IsBlocked reports whether the square is black.
func (c Cell) IsBlocked() bool {
	return c.Kind == Blocked
}

// ParseGrid classifies raw grid strings. A single character that the
// puzzle file cannot store is treated like a rebus so that it still
// reaches the notes.
func ParseGrid(raw []string) []Cell {
	cells := make([]Cell, len(raw))
	for i, s := range raw {
		switch {
		case s == xwordinfo.BlockCell:
			cells[i] = Cell{Kind: Blocked}
		case utf8.RuneCountInString(s) == 1 && encodable(s):
			cells[i] = Cell{Kind: Letter, Text: s}
		default:
			cells[i] = Cell{Kind: Rebus, Text: s}
		}
	}
	return cells
}

func encodable(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	_, ok := charmap.ISO8859_1.EncodeRune(r)
	return ok && r != 0
}
