package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WrapLine wraps s to width display columns and returns the resulting rows.
// Continuation rows repeat the line's leading whitespace so wrapped command
// output keeps its indentation. A non-positive width yields the line as-is.
func WrapLine(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}

	indent := leadingWhitespace(s)
	indentWidth := runewidth.StringWidth(indent)
	// An indent eating the whole width leaves no room for text; wrap flat
	// instead.
	if indentWidth >= width {
		indent = ""
		indentWidth = 0
	}

	var rows []string
	row := strings.Builder{}
	rowWidth := 0
	first := true

	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if rowWidth+w > width {
			rows = append(rows, row.String())
			row.Reset()
			row.WriteString(indent)
			rowWidth = indentWidth
			first = false
		}
		row.WriteRune(r)
		rowWidth += w
	}
	if row.Len() > 0 || first {
		rows = append(rows, row.String())
	}
	return rows
}

// PanLine drops the first x display columns of s. A wide rune straddling
// the cut is dropped entirely.
func PanLine(s string, x int) string {
	if x <= 0 {
		return s
	}
	skipped := 0
	for i, r := range s {
		if skipped >= x {
			return s[i:]
		}
		skipped += runewidth.RuneWidth(r)
	}
	return ""
}

func leadingWhitespace(s string) string {
	for i, r := range s {
		if r != ' ' && r != '\t' {
			return s[:i]
		}
	}
	return s
}
