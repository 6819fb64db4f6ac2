package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	minErrorWidth  = 10
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay word-wraps an error to at most maxErrorLines lines
// of maxWidth runes. The first line carries the "Error: " prefix. Text that
// does not fit is cut and marked with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	maxWidth = max(maxWidth, minErrorWidth)
	widths := []int{
		max(maxWidth-utf8.RuneCountInString(errorPrefix), minErrorWidth),
		maxWidth,
	}

	var lines []string
	var current []string
	currentLen := 0
	truncated := false

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		limit := widths[min(len(lines), len(widths)-1)]

		if currentLen > 0 && currentLen+1+wordLen > limit {
			lines = append(lines, strings.Join(current, " "))
			current, currentLen = nil, 0
			if len(lines) == maxErrorLines {
				truncated = true
				break
			}
		}

		if currentLen > 0 {
			currentLen++
		}
		current = append(current, word)
		currentLen += wordLen
	}
	if len(current) > 0 && len(lines) < maxErrorLines {
		lines = append(lines, strings.Join(current, " "))
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := maxWidth - utf8.RuneCountInString(truncationMark)
		if len(last) > keep {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
