package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay word-wraps an error to at most maxErrorLines lines of
// maxWidth cells, prefixed with "Error: ", ending in "..." when cut short.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	width := max(10, maxWidth)
	var lines []string
	current := errorPrefix
	consumed := 0

	for _, word := range words {
		candidate := current + word
		if current != "" && current != errorPrefix {
			candidate = current + " " + word
		}
		if runewidth.StringWidth(candidate) > width && current != "" && current != errorPrefix {
			lines = append(lines, current)
			if len(lines) == maxErrorLines {
				break
			}
			candidate = word
		}
		current = candidate
		consumed++
	}

	if len(lines) < maxErrorLines {
		lines = append(lines, current)
		return strings.Join(lines, "\n")
	}

	if consumed < len(words) {
		last := lines[maxErrorLines-1]
		markWidth := runewidth.StringWidth(truncationMark)
		if runewidth.StringWidth(last)+markWidth > width {
			last = runewidth.Truncate(last, width-markWidth, "")
		}
		lines[maxErrorLines-1] = last + truncationMark
	}
	return strings.Join(lines, "\n")
}
