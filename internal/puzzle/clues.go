package puzzle

import (
	"regexp"
	"strconv"
)

// MissingClue is stored for a numbered slot that has no clue text.
const MissingClue = "NO CLUE FOUND"

var cluePrefix = regexp.MustCompile(`^(\d{1,3})\. `)

// ClueMap maps clue numbers to decoded clue text for one direction.
type ClueMap map[int]string

// ParseClues builds a ClueMap from strings formatted "<number>. <text>".
// Entries without a number prefix are ignored; a repeated number keeps the
// last text.
func ParseClues(raw []string) ClueMap {
	m := make(ClueMap, len(raw))
	for _, entry := range raw {
		loc := cluePrefix.FindStringSubmatchIndex(entry)
		if loc == nil {
			continue
		}
		n, err := strconv.Atoi(entry[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		m[n] = DecodeClue(entry[loc[1]:])
	}
	return m
}

// Lookup returns the text for number n, or MissingClue.
func (m ClueMap) Lookup(n int) string {
	if text, ok := m[n]; ok {
		return text
	}
	return MissingClue
}
