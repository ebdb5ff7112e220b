package report

import (
	"github.com/nao1215/xwpuz/internal/puz"
	"github.com/nao1215/xwpuz/internal/puzzle"
)

// PuzzleInfo summarizes a decoded puzzle file.
type PuzzleInfo struct {
	Path      string `json:"path"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Copyright string `json:"copyright"`
	Notes     string `json:"notes,omitempty"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ClueCount int    `json:"clueCount"`

	// Circled counts squares carrying circle markup.
	Circled int `json:"circled"`

	// Rebus counts squares pre-filled with the rebus placeholder.
	Rebus int `json:"rebus"`

	// Entries pairs each clue with its grid number and direction. It is
	// empty when the clue count does not match the grid's numbering.
	Entries []Entry `json:"entries,omitempty"`
}

// Entry is one numbered clue in a PuzzleInfo.
type Entry struct {
	Number    int    `json:"number"`
	Direction string `json:"direction"`
	Text      string `json:"text"`
}

// NewPuzzleInfo summarizes p, read from path. Clue numbers are recovered
// by numbering the solution grid again, since the file stores only the
// clue texts in their merged order.
func NewPuzzleInfo(path string, p *puz.Puzzle) *PuzzleInfo {
	info := &PuzzleInfo{
		Path:      path,
		Title:     p.Title,
		Author:    p.Author,
		Copyright: p.Copyright,
		Notes:     p.Notes,
		Width:     p.Width,
		Height:    p.Height,
		ClueCount: len(p.Clues),
	}

	for _, m := range p.Markup {
		if m&puz.MarkupCircled != 0 {
			info.Circled++
		}
	}

	for _, r := range p.Fill {
		if r == puzzle.RebusPlaceholder {
			info.Rebus++
		}
	}

	cells := make([]puzzle.Cell, 0, p.Width*p.Height)
	for _, r := range p.Solution {
		if r == puz.Block {
			cells = append(cells, puzzle.Cell{Kind: puzzle.Blocked})
			continue
		}
		cells = append(cells, puzzle.Cell{Kind: puzzle.Letter, Text: string(r)})
	}

	across, down := puzzle.Number(cells, p.Width)
	merged := puzzle.Merge(
		puzzle.Entries(across, puzzle.Across, nil),
		puzzle.Entries(down, puzzle.Down, nil),
	)
	if len(merged) != len(p.Clues) {
		return info
	}

	info.Entries = make([]Entry, len(merged))
	for i, e := range merged {
		info.Entries[i] = Entry{
			Number:    e.Number,
			Direction: e.Direction.String(),
			Text:      p.Clues[i],
		}
	}
	return info
}

// EntriesFor returns the entries in one direction ("across" or "down").
func (i *PuzzleInfo) EntriesFor(direction string) []Entry {
	var out []Entry
	for _, e := range i.Entries {
		if e.Direction == direction {
			out = append(out, e)
		}
	}
	return out
}
