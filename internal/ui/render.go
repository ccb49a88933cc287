package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/theme"
)

const (
	ellipsis        = "…"
	selectionMarker = "> "
	arrow           = " → "
)

// span is a piece of cell text. offset is its byte position in the
// binding's search text, or -1 when the text is not searchable.
type span struct {
	offset int
	style  lipgloss.Style
	text   string
}

// cellFields locates the displayed fields inside Keybinding.SearchText so
// match ranges can be mapped back onto them.
type cellFields struct {
	action      span
	combo       span
	description span
}

func newCellFields(b domain.Keybinding, s theme.Styles) cellFields {
	combo := b.Combo()
	action := b.Dispatcher
	if b.Args != "" {
		action += " " + b.Args
	}
	actionOffset := len(combo) + 1
	return cellFields{
		combo:       span{offset: 0, style: s.Key, text: combo},
		action:      span{offset: actionOffset, style: s.Action, text: action},
		description: span{offset: actionOffset + len(action) + 1, style: s.Description, text: b.Description},
	}
}

// cellLines renders one result as rowHeight lines of exactly width cells
func cellLines(r domain.SearchResult, s theme.Styles, width, rowHeight int, selected bool) []string {
	fields := newCellFields(r.Binding, s)
	marker := span{offset: -1, style: s.Action, text: "  "}
	if selected {
		marker.text = selectionMarker
	}
	sep := span{offset: -1, style: s.Action, text: arrow}

	if rowHeight < 2 {
		return []string{renderSpans([]span{marker, fields.combo, sep, fields.action}, r.Matches, s, width, selected)}
	}

	primary := fields.description
	if primary.text == "" {
		primary = fields.action
	}
	category := span{offset: -1, style: s.Category, text: "  " + r.Binding.Category}
	return []string{
		renderSpans([]span{marker, fields.combo, sep, primary}, r.Matches, s, width, selected),
		renderSpans([]span{category}, nil, s, width, selected),
	}
}

// renderSpans styles spans, highlighting matched bytes, and truncates or pads
// the line to width cells.
func renderSpans(spans []span, matches []domain.MatchRange, s theme.Styles, width int, selected bool) string {
	if width <= 0 {
		return ""
	}

	total := 0
	for _, sp := range spans {
		total += runewidth.StringWidth(sp.text)
	}
	limit := width
	truncated := total > width
	if truncated {
		limit = width - runewidth.StringWidth(ellipsis)
	}

	styleFor := func(st lipgloss.Style) lipgloss.Style {
		if selected {
			return st.Inherit(s.Selected)
		}
		return st
	}

	var b strings.Builder
	used := 0
fill:
	for _, sp := range spans {
		var run strings.Builder
		runMatched := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := sp.style
			if runMatched {
				st = s.Matched
			}
			b.WriteString(styleFor(st).Render(run.String()))
			run.Reset()
		}

		for i, r := range sp.text {
			w := runewidth.RuneWidth(r)
			if used+w > limit {
				flush()
				break fill
			}
			matched := sp.offset >= 0 && inRanges(sp.offset+i, matches)
			if matched != runMatched {
				flush()
				runMatched = matched
			}
			run.WriteRune(r)
			used += w
		}
		flush()
	}

	if truncated {
		b.WriteString(styleFor(s.Action).Render(ellipsis))
		used += runewidth.StringWidth(ellipsis)
	}
	if used < width {
		b.WriteString(styleFor(lipgloss.NewStyle()).Render(strings.Repeat(" ", width-used)))
	}
	return b.String()
}

func inRanges(pos int, ranges []domain.MatchRange) bool {
	for _, r := range ranges {
		if pos >= r.Start && pos < r.End {
			return true
		}
	}
	return false
}
