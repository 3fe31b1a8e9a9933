package colorfy

import (
	"regexp"
	"unicode/utf8"
)

// Fixed SGR style sequences. Each takes effect until Reset (or, for Bold,
// until NormalWeight).
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	NormalWeight  = "\x1b[22m"
	Underline     = "\x1b[4m"
	Reverse       = "\x1b[7m"
	Italic        = "\x1b[3m"
	Strikethrough = "\x1b[9m"
)

// SGR (Select Graphic Rendition) codes: ESC[...m
var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Strip removes all SGR escape sequences from a string, leaving the text
// this package would have colored.
func Strip(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// VisibleWidth returns the display width of a string, ignoring escape
// sequences. It counts runes, not bytes.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(Strip(s))
}

// Stylize wraps text in the given style sequence and a trailing reset.
func Stylize(style, text string) string {
	return style + text + Reset
}
