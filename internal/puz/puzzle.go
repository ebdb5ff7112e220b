package puz

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Grid squares.
const (
	// Block marks a black square in both grids.
	Block = '.'

	// Empty marks an unfilled white square in the fill grid.
	Empty = '-'
)

// Markup flags stored per square in the GEXT section.
const (
	MarkupNone      byte = 0x00
	MarkupPrevious  byte = 0x10
	MarkupIncorrect byte = 0x20
	MarkupRevealed  byte = 0x40
	MarkupCircled   byte = 0x80
)

// Puzzle is the content of a .puz file.
type Puzzle struct {
	Title     string
	Author    string
	Copyright string
	Notes     string

	Width  int
	Height int

	// Solution and Fill are row-major, one character per square.
	Solution string
	Fill     string

	// Clues are ordered by clue number, across before down on ties.
	Clues []string

	// Markup has one flag byte per square, or is nil when no square
	// carries markup.
	Markup []byte
}

// Validate checks the field constraints of the file format.
func (p *Puzzle) Validate() error {
	if p.Width < 1 || p.Width > 255 || p.Height < 1 || p.Height > 255 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.Width, p.Height)
	}
	size := p.Width * p.Height
	if n := utf8.RuneCountInString(p.Solution); n != size {
		return fmt.Errorf("%w: solution has %d squares, want %d", ErrGridMismatch, n, size)
	}
	if n := utf8.RuneCountInString(p.Fill); n != size {
		return fmt.Errorf("%w: fill has %d squares, want %d", ErrGridMismatch, n, size)
	}
	if p.Markup != nil && len(p.Markup) != size {
		return fmt.Errorf("%w: markup has %d squares, want %d", ErrGridMismatch, len(p.Markup), size)
	}
	if len(p.Clues) > 0xFFFF {
		return fmt.Errorf("%w: %d", ErrTooManyClues, len(p.Clues))
	}

	fields := map[string]string{
		"title":     p.Title,
		"author":    p.Author,
		"copyright": p.Copyright,
		"notes":     p.Notes,
		"solution":  p.Solution,
		"fill":      p.Fill,
	}
	for name, s := range fields {
		if err := checkText(s); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	for i, clue := range p.Clues {
		if err := checkText(clue); err != nil {
			return fmt.Errorf("clue %d: %w", i+1, err)
		}
	}
	return nil
}

// HasMarkup reports whether any square carries a markup flag.
func (p *Puzzle) HasMarkup() bool {
	for _, m := range p.Markup {
		if m != MarkupNone {
			return true
		}
	}
	return false
}

// checkText rejects NUL bytes and runes outside ISO-8859-1.
func checkText(s string) error {
	if strings.ContainsRune(s, 0) {
		return fmt.Errorf("%w: contains NUL", ErrInvalidText)
	}
	for _, r := range s {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidText, r)
		}
	}
	return nil
}
