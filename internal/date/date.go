package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the time layout of computed canonical dates.
const Layout = "1/2/2006"

// monthAbbrevs indexes three-letter month names used in file names.
var monthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Date is a resolved puzzle date.
type Date struct {
	// text is the canonical month/day/yyyy form sent to the API.
	text string
	t    time.Time
}

// String returns the canonical month/day/yyyy form.
func (d Date) String() string {
	return d.text
}

// Time returns the date at midnight in the resolver's location.
func (d Date) Time() time.Time {
	return d.t
}

// Weekday returns the day of the week the date falls on.
func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.text == ""
}

// Filename returns the output file name for the date: the three-letter
// month, the day token exactly as resolved, and the two-digit year,
// followed by ".puz". "3/7/2024" yields "Mar724.puz".
func (d Date) Filename() string {
	parts := strings.Split(d.text, "/")
	if len(parts) != 3 {
		return ""
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return ""
	}
	year := parts[2]
	if len(year) > 2 {
		year = year[len(year)-2:]
	}
	return monthAbbrevs[month-1] + parts[1] + year + ".puz"
}

// FromTime builds a Date for the calendar day of t.
func FromTime(t time.Time) Date {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Date{text: day.Format(Layout), t: day}
}

// fromTokens builds a Date keeping month and day tokens verbatim.
func fromTokens(monthTok, dayTok string, year int, loc *time.Location) (Date, error) {
	month, err := strconv.Atoi(monthTok)
	if err != nil {
		return Date{}, fmt.Errorf("%w: month %q", ErrInvalidDate, monthTok)
	}
	day, err := strconv.Atoi(dayTok)
	if err != nil {
		return Date{}, fmt.Errorf("%w: day %q", ErrInvalidDate, dayTok)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if day < 1 || t.Day() != day || t.Month() != time.Month(month) {
		return Date{}, fmt.Errorf("%w: %s/%s/%04d does not exist", ErrInvalidDate, monthTok, dayTok, year)
	}

	return Date{
		text: fmt.Sprintf("%s/%s/%04d", monthTok, dayTok, year),
		t:    t,
	}, nil
}
