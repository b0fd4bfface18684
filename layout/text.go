package layout

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// widths measures terminal columns. East Asian ambiguous runes are counted
// as narrow regardless of the locale so that rows are stable across hosts.
var widths = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false

	return c
}()

// printable replaces control runes, which have no column width, with spaces.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}

		return r
	}, s)
}

func displayWidth(s string) int {
	return widths.StringWidth(s)
}

func padRight(s string, width int) string {
	return widths.FillRight(s, width)
}

func padLeft(s string, width int) string {
	return widths.FillLeft(s, width)
}

// center puts the odd leftover column on the right.
func center(s string, width int) string {
	spaces := width - displayWidth(s)
	if spaces <= 0 {
		return s
	}

	left := spaces / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", spaces-left)
}

// carve splits s after the longest prefix that fits in limit columns.
func carve(s string, limit int) (string, string) {
	used := 0

	for i, r := range s {
		w := widths.RuneWidth(r)
		if used+w > limit {
			return s[:i], s[i:]
		}

		used += w
	}

	return s, ""
}
