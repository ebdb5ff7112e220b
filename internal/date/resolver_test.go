package date

import (
	"errors"
	"testing"
	"time"
)

// fixedNow is Thursday, March 7, 2024.
func fixedNow() time.Time {
	return time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)
}

func newTestResolver() *Resolver {
	return NewResolver(WithNow(fixedNow))
}

// TestResolve tests every accepted token form against a fixed clock.
func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "empty token is today", token: "", want: "3/7/2024"},
		{name: "today keyword", token: "today", want: "3/7/2024"},
		{name: "today keyword is case-insensitive", token: "ToDay", want: "3/7/2024"},
		{name: "same weekday as today resolves to today", token: "thu", want: "3/7/2024"},
		{name: "sat resolves to previous Saturday", token: "sat", want: "3/2/2024"},
		{name: "full weekday name uses first three letters", token: "Saturday", want: "3/2/2024"},
		{name: "friday is six days back", token: "fri", want: "3/1/2024"},
		{name: "monday", token: "mon", want: "3/4/2024"},
		{name: "sunday", token: "sun", want: "3/3/2024"},
		{name: "themeless alias means saturday", token: "themeless", want: "3/2/2024"},
		{name: "month and day use current year", token: "3/7", want: "3/7/2024"},
		{name: "month and day keep tokens verbatim", token: "12/05", want: "12/05/2024"},
		{name: "two digit year", token: "3/7/24", want: "3/7/2024"},
		{name: "two digit year with zero padding", token: "03/07/09", want: "03/07/2009"},
		{name: "four digit year", token: "3/7/1999", want: "3/7/1999"},
		{name: "leap day", token: "2/29/24", want: "2/29/2024"},
		{name: "surrounding whitespace is ignored", token: "  3/7/24 ", want: "3/7/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := newTestResolver().Resolve(tt.token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.token, got.String(), tt.want)
			}
		})
	}
}

// TestResolveWeekdays verifies that weekday tokens land on that weekday
// and never in the future.
func TestResolveWeekdays(t *testing.T) {
	t.Parallel()

	want := map[string]time.Weekday{
		"mon":       time.Monday,
		"tue":       time.Tuesday,
		"wed":       time.Wednesday,
		"thu":       time.Thursday,
		"fri":       time.Friday,
		"sat":       time.Saturday,
		"sun":       time.Sunday,
		"themeless": time.Saturday,
	}

	r := newTestResolver()
	today := r.Today().Time()
	for token, weekday := range want {
		d, err := r.Resolve(token)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", token, err)
		}
		if d.Weekday() != weekday {
			t.Errorf("Resolve(%q) fell on %s, want %s", token, d.Weekday(), weekday)
		}
		if d.Time().After(today) {
			t.Errorf("Resolve(%q) = %s is after today", token, d)
		}
		if today.Sub(d.Time()) >= 7*24*time.Hour {
			t.Errorf("Resolve(%q) = %s is more than six days back", token, d)
		}
	}
}

// TestResolveEmptyAndTodayAgree checks that the two spellings of today match.
func TestResolveEmptyAndTodayAgree(t *testing.T) {
	t.Parallel()

	r := newTestResolver()
	a, err := r.Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Resolve("today")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("empty token resolved to %v, today to %v", a, b)
	}
}

// TestResolveErrors tests rejected tokens.
func TestResolveErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "word that is not a weekday", token: "banana", wantErr: ErrUnrecognizedDate},
		{name: "two letter token", token: "mo", wantErr: ErrUnrecognizedDate},
		{name: "three digit day", token: "3/100", wantErr: ErrUnrecognizedDate},
		{name: "three digit year", token: "3/7/202", wantErr: ErrUnrecognizedDate},
		{name: "non numeric month", token: "march/7", wantErr: ErrUnrecognizedDate},
		{name: "too many parts", token: "3/7/24/1", wantErr: ErrUnrecognizedDate},
		{name: "month out of range", token: "13/1/24", wantErr: ErrInvalidDate},
		{name: "month zero", token: "0/1/24", wantErr: ErrInvalidDate},
		{name: "day zero", token: "3/0/24", wantErr: ErrInvalidDate},
		{name: "february 30", token: "2/30", wantErr: ErrInvalidDate},
		{name: "leap day in common year", token: "2/29/23", wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := newTestResolver().Resolve(tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve(%q) error = %v, want %v", tt.token, err, tt.wantErr)
			}
			if !d.IsZero() {
				t.Errorf("expected zero Date on error, got %v", d)
			}
		})
	}
}

// TestNewResolverDefaultsToWallClock ensures the zero-option resolver works.
func TestNewResolverDefaultsToWallClock(t *testing.T) {
	t.Parallel()

	d, err := NewResolver().Resolve("today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.IsZero() {
		t.Error("expected non-zero date")
	}
}
