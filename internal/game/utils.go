package game

import (
	"strings"
	"unicode/utf8"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// wrap breaks text into lines of at most cols glyphs, splitting on spaces.
// Words longer than cols are hard-split so a long URL cannot push a line past
// the margin. Widths count runes, not bytes: the face draws one fixed-width
// glyph per rune, and a split must never land inside a rune.
func wrap(text string, cols int) []string {
	if cols < 1 {
		cols = 1
	}
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > cols {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			r := []rune(word)
			lines = append(lines, string(r[:cols]))
			word = string(r[cols:])
		}
		switch {
		case line == "":
			line = word
		case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= cols:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
