package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// saturdayAlias is the prefix that selects the Saturday puzzle, which is
// traditionally a themeless.
const saturdayAlias = "theme"

// weekdays lists abbreviations in resolver order (Monday=0 ... Sunday=6).
var weekdays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var (
	shortNumber = regexp.MustCompile(`^\d{1,2}$`)
	longYear    = regexp.MustCompile(`^\d{4}$`)
)

// Resolver turns user date tokens into canonical dates.
type Resolver struct {
	now func() time.Time
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithNow sets the clock the resolver uses for "today".
func WithNow(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// NewResolver creates a Resolver using the local wall clock unless
// WithNow is given.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Today returns the resolver's notion of today.
func (r *Resolver) Today() Date {
	return FromTime(r.now())
}

// Resolve resolves token. Rules are tried in order: today, weekday (or the
// Saturday alias), month/day, month/day/yy, month/day/yyyy. Anything else
// yields ErrUnrecognizedDate.
func (r *Resolver) Resolve(token string) (Date, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	today := r.Today()

	if token == "" || token == "today" {
		return today, nil
	}

	parts := strings.Split(token, "/")
	switch len(parts) {
	case 1:
		if idx, ok := weekdayIndex(token); ok {
			return r.mostRecent(today, idx), nil
		}
	case 2:
		if shortNumber.MatchString(parts[0]) && shortNumber.MatchString(parts[1]) {
			return fromTokens(parts[0], parts[1], today.t.Year(), today.t.Location())
		}
	case 3:
		if !shortNumber.MatchString(parts[0]) || !shortNumber.MatchString(parts[1]) {
			break
		}
		if shortNumber.MatchString(parts[2]) {
			yy, _ := strconv.Atoi(parts[2]) //nolint:errcheck // guaranteed digits
			return fromTokens(parts[0], parts[1], 2000+yy, today.t.Location())
		}
		if longYear.MatchString(parts[2]) {
			year, _ := strconv.Atoi(parts[2]) //nolint:errcheck // guaranteed digits
			return fromTokens(parts[0], parts[1], year, today.t.Location())
		}
	}

	return Date{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, token)
}

// mostRecent returns the latest date on or before today that falls on the
// weekday with resolver index target.
func (r *Resolver) mostRecent(today Date, target int) Date {
	delta := ((mondayIndex(today.t.Weekday())-target)%7 + 7) % 7
	return FromTime(today.t.AddDate(0, 0, -delta))
}

// weekdayIndex matches the first three characters of token against the
// weekday abbreviations, or the Saturday alias prefix.
func weekdayIndex(token string) (int, bool) {
	if strings.HasPrefix(token, saturdayAlias) {
		return 5, true
	}
	if len(token) < 3 {
		return 0, false
	}
	for i, abbrev := range weekdays {
		if token[:3] == abbrev {
			return i, true
		}
	}
	return 0, false
}

// mondayIndex converts a time.Weekday to Monday=0 ... Sunday=6.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}
