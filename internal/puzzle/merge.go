package puzzle

// Direction is the orientation of an entry.
type Direction int

const (
	// Across entries run left to right.
	Across Direction = iota
	// Down entries run top to bottom.
	Down
)

// String returns "across" or "down".
func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// Entry is a numbered clue.
type Entry struct {
	Number    int
	Direction Direction
	Text      string
}

// Entries pairs each number with its text from clues.
func Entries(numbers []int, dir Direction, clues ClueMap) []Entry {
	entries := make([]Entry, len(numbers))
	for i, n := range numbers {
		entries[i] = Entry{Number: n, Direction: dir, Text: clues.Lookup(n)}
	}
	return entries
}

// Merge interleaves two number-ordered lists into the single ordering used
// by the puzzle file: ascending by number, across before down on a tie.
// Each input keeps its internal order.
func Merge(across, down []Entry) []Entry {
	out := make([]Entry, 0, len(across)+len(down))
	a, d := 0, 0
	for a < len(across) || d < len(down) {
		if a < len(across) && (d >= len(down) || across[a].Number <= down[d].Number) {
			out = append(out, across[a])
			a++
			continue
		}
		out = append(out, down[d])
		d++
	}
	return out
}
