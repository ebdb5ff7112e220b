package puzzle

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Substitute replaces characters that have no ISO-8859-1 form and no
// usable decomposition.
const Substitute = '?'

// typography maps common punctuation outside ISO-8859-1 to ASCII.
var typography = strings.NewReplacer(
	"…", "...", // ellipsis
	"‘", "'", "’", "'", "‚", "'", "′", "'",
	"“", `"`, "”", `"`, "„", `"`, "″", `"`,
	"–", "-", "—", "--", "−", "-",
	"•", "*",
	" ", " ",
)

// DecodeClue unescapes HTML entities in s and makes it Latin-1 safe.
func DecodeClue(s string) string {
	return Latin1(html.UnescapeString(s))
}

// Latin1 returns s with every rune representable in ISO-8859-1. Known
// typographic characters become their ASCII spelling, other runes fall
// back to their compatibility decomposition without combining marks
// ("ō" becomes "o"), and anything left becomes Substitute.
func Latin1(s string) string {
	s = typography.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == 0:
			// NUL terminates strings in the file format.
		case isLatin1(r):
			b.WriteRune(r)
		default:
			b.WriteString(fold(r))
		}
	}
	return b.String()
}

// fold decomposes r and keeps the Latin-1 base characters.
func fold(r rune) string {
	var b strings.Builder
	for _, d := range norm.NFKD.String(string(r)) {
		if unicode.Is(unicode.Mn, d) {
			continue
		}
		if isLatin1(d) {
			b.WriteRune(d)
		}
	}
	if b.Len() == 0 {
		return string(Substitute)
	}
	return b.String()
}

func isLatin1(r rune) bool {
	_, ok := charmap.ISO8859_1.EncodeRune(r)
	return ok
}
