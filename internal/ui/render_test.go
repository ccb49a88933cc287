package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/services"
	"github.com/hypr-showkey/showkey/internal/theme"
)

// plainStyles renders matched text as [text] so highlights survive without colours
func plainStyles() theme.Styles {
	plain := lipgloss.NewStyle()
	return theme.Styles{
		Action:      plain,
		Category:    plain,
		Description: plain,
		Key:         plain,
		Matched:     lipgloss.NewStyle().Transform(func(s string) string { return "[" + s + "]" }),
		Selected:    plain,
	}
}

func TestRenderSpans(t *testing.T) {
	s := plainStyles()

	tests := []struct {
		name     string
		spans    []span
		matches  []domain.MatchRange
		width    int
		expected string
	}{
		{
			name:     "pads to width",
			spans:    []span{{offset: 0, style: s.Key, text: "SUPER + T"}},
			width:    12,
			expected: "SUPER + T   ",
		},
		{
			name:     "highlights matched bytes",
			spans:    []span{{offset: 0, style: s.Key, text: "SUPER + T"}, {offset: 10, style: s.Action, text: "exec kitty"}},
			matches:  []domain.MatchRange{{Start: 15, End: 20}},
			width:    19,
			expected: "SUPER + Texec [kitty]",
		},
		{
			name:     "offset -1 is never highlighted",
			spans:    []span{{offset: -1, style: s.Action, text: "> "}, {offset: 0, style: s.Key, text: "Q"}},
			matches:  []domain.MatchRange{{Start: 0, End: 1}},
			width:    3,
			expected: "> [Q]",
		},
		{
			name:     "truncates with ellipsis",
			spans:    []span{{offset: 0, style: s.Action, text: "exec kitty --single-instance"}},
			width:    10,
			expected: "exec kitt…",
		},
		{
			name:     "highlight cut by truncation",
			spans:    []span{{offset: 0, style: s.Action, text: "exec kitty --single-instance"}},
			matches:  []domain.MatchRange{{Start: 5, End: 28}},
			width:    10,
			expected: "exec [kitt]…",
		},
		{
			name:     "zero width",
			spans:    []span{{offset: 0, style: s.Key, text: "X"}},
			width:    0,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderSpans(tt.spans, tt.matches, s, tt.width, false))
		})
	}
}

func TestRenderSpans_WideRunes(t *testing.T) {
	s := plainStyles()
	line := renderSpans([]span{{offset: 0, style: s.Description, text: "音量を上げる"}}, nil, s, 7, false)
	assert.Equal(t, 7, runewidth.StringWidth(line))
	assert.True(t, strings.HasSuffix(line, "…"))
}

func TestCellLines_HighlightsSearchResult(t *testing.T) {
	store := domain.NewBindingStore([]domain.Keybinding{
		mustParse(t, "bind = SUPER, T, exec, kitty --term xterm-kitty"),
	})
	search := services.NewSearchService(services.DefaultSearchOptions())
	results := search.SearchAll("term", store)
	require.Len(t, results, 1)

	lines := cellLines(results[0], plainStyles(), 60, 1, true)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "--[term]")
	assert.True(t, strings.HasPrefix(lines[0], selectionMarker+"SUPER + T → exec"))
}

func TestCellLines_TwoLineRows(t *testing.T) {
	b := mustParse(t, "bindd = SUPER, V, Toggle floating, togglefloating,")
	b.Category = "windows"
	r := domain.SearchResult{Binding: b}

	lines := cellLines(r, plainStyles(), 40, 2, false)
	require.Len(t, lines, 2)
	assert.Equal(t, "  SUPER + V → Toggle floating", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "  windows", strings.TrimRight(lines[1], " "))
	for _, line := range lines {
		assert.Equal(t, 40, runewidth.StringWidth(line))
	}
}

func TestNewCellFields_OffsetsMatchSearchText(t *testing.T) {
	b := mustParse(t, "bind = SUPER SHIFT, S, exec, grim -g \"$(slurp)\" # Screenshot region")
	text := b.SearchText(true)
	fields := newCellFields(b, plainStyles())

	for _, f := range []span{fields.combo, fields.action, fields.description} {
		require.LessOrEqual(t, f.offset+len(f.text), len(text))
		assert.Equal(t, f.text, text[f.offset:f.offset+len(f.text)])
	}
}
