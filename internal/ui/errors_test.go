package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		width    int
		expected string
	}{
		{name: "nil", err: nil, width: 80, expected: ""},
		{name: "empty message", err: errors.New(""), width: 80, expected: "Error: unknown error"},
		{name: "fits", err: errors.New("clipboard unavailable"), width: 80, expected: "Error: clipboard unavailable"},
		{
			name:     "wraps to second line",
			err:      errors.New("failed to copy SUPER + T: system clipboard failed"),
			width:    30,
			expected: "Error: failed to copy SUPER +\nT: system clipboard failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorForDisplay(tt.err, tt.width))
		})
	}
}

func TestFormatErrorForDisplay_Truncates(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 40))
	got := formatErrorForDisplay(err, 20)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasPrefix(lines[0], errorPrefix))
	assert.True(t, strings.HasSuffix(lines[1], truncationMark))
	for _, line := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 20)
	}
}
