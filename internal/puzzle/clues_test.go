package puzzle

import "testing"

// TestParseClues tests prefix stripping and text decoding.
func TestParseClues(t *testing.T) {
	t.Parallel()

	m := ParseClues([]string{
		"1. Feline",
		"12. Tom &amp; Jerry, e.g.",
		"3. Wait…",
		"7. Café — naïve",
		"20. &quot;Quoted&quot; 2. not a prefix",
		"no number here",
		"5.missing space",
		"1234. Four digits",
		"1. Kitty",
	})

	tests := []struct {
		num  int
		want string
	}{
		{num: 1, want: "Kitty"},
		{num: 12, want: "Tom & Jerry, e.g."},
		{num: 3, want: "Wait..."},
		{num: 7, want: "Café -- naïve"},
		{num: 20, want: `"Quoted" 2. not a prefix`},
	}
	for _, tt := range tests {
		if got := m.Lookup(tt.num); got != tt.want {
			t.Errorf("Lookup(%d) = %q, want %q", tt.num, got, tt.want)
		}
	}

	if len(m) != 5 {
		t.Errorf("expected 5 clues, got %d: %v", len(m), m)
	}
	if got := m.Lookup(5); got != MissingClue {
		t.Errorf("entry without space after the dot should be ignored, got %q", got)
	}
	if got := m.Lookup(1234); got != MissingClue {
		t.Errorf("clue numbers have at most three digits, got %q", got)
	}
}

// TestClueMapLookupMissing tests the sentinel for absent numbers.
func TestClueMapLookupMissing(t *testing.T) {
	t.Parallel()

	var empty ClueMap
	if got := empty.Lookup(1); got != MissingClue {
		t.Errorf("Lookup on nil map = %q", got)
	}
	if got := ParseClues(nil).Lookup(42); got != "NO CLUE FOUND" {
		t.Errorf("Lookup = %q", got)
	}
}
