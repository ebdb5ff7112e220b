package latest

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNoPuzzles is returned when a directory holds no puzzle files.
var ErrNoPuzzles = errors.New("no puzzle files found")

// namePattern matches file names such as "Mar724.puz" and "Dec2599.puz".
// The digits are the day (one or two) followed by a two-digit year.
var namePattern = regexp.MustCompile(`^([A-Za-z]{3})(\d{3,4})\.puz$`)

// titleCase normalizes month abbreviations so "mar" and "MAR" parse.
var titleCase = cases.Title(language.English)

// Puzzle is a puzzle file found on disk.
type Puzzle struct {
	Name string
	Date time.Time
}

// ParseFilename returns the date encoded in a puzzle file name. ok is
// false for names that are not puzzle files or encode no real date.
func ParseFilename(name string) (time.Time, bool) {
	m := namePattern.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}

	month, err := time.Parse("Jan", titleCase.String(m[1]))
	if err != nil {
		return time.Time{}, false
	}

	digits := m[2]
	dayDigits := len(digits) - 2
	day, err := strconv.Atoi(digits[:dayDigits])
	if err != nil || day < 1 {
		return time.Time{}, false
	}
	yy, err := strconv.Atoi(digits[dayDigits:])
	if err != nil {
		return time.Time{}, false
	}

	t := time.Date(2000+yy, month.Month(), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month.Month() {
		return time.Time{}, false
	}
	return t, true
}

// Scan lists the puzzle files in dir, oldest first. Files whose names do
// not encode a date are ignored.
func Scan(dir string) ([]Puzzle, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var puzzles []Puzzle
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if d, ok := ParseFilename(e.Name()); ok {
			puzzles = append(puzzles, Puzzle{Name: e.Name(), Date: d})
		}
	}

	slices.SortStableFunc(puzzles, func(a, b Puzzle) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return puzzles, nil
}

// Latest returns the puzzle in dir with the most recent date.
func Latest(dir string) (Puzzle, error) {
	puzzles, err := Scan(dir)
	if err != nil {
		return Puzzle{}, err
	}
	if len(puzzles) == 0 {
		return Puzzle{}, ErrNoPuzzles
	}
	return puzzles[len(puzzles)-1], nil
}

// Message describes the most recent puzzle date, for example
// "The last puzzle you did was on March 07, which was a Thursday."
func Message(d time.Time) string {
	return fmt.Sprintf("The last puzzle you did was on %s, which was a %s.",
		d.Format("January 02"), d.Weekday())
}
