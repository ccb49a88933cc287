package theme

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"

	"github.com/hypr-showkey/showkey/internal/domain"
)

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// DefaultThemeName is used when the config names no theme
const DefaultThemeName = "catppuccin_mocha"

// Palette holds the twelve colors the UI is drawn with
type Palette struct {
	Action      Color
	Background  Color
	Border      Color
	Category    Color
	Description Color
	Foreground  Color
	Key         Color
	Matched     Color
	SearchBg    Color
	SearchFg    Color
	SelectedBg  Color
	SelectedFg  Color
}

// Catppuccin flavours
var palettes = map[string]Palette{
	"catppuccin_mocha": {
		Action:      "#cdd6f4", // Text
		Background:  "#1e1e2e",
		Border:      "#585b70", // Surface2
		Category:    "#a6e3a1", // Green
		Description: "#bac2de", // Subtext1
		Foreground:  "#cdd6f4",
		Key:         "#89b4fa", // Blue
		Matched:     "#f9e2af", // Yellow
		SearchBg:    "#1e1e2e",
		SearchFg:    "#cdd6f4",
		SelectedBg:  "#313244",
		SelectedFg:  "#cdd6f4",
	},
	"catppuccin_latte": {
		Action:      "#4c4f69",
		Background:  "#eff1f5",
		Border:      "#9ca0b0",
		Category:    "#40a02b",
		Description: "#6c6f85",
		Foreground:  "#4c4f69",
		Key:         "#1e66f5",
		Matched:     "#df8e1d",
		SearchBg:    "#eff1f5",
		SearchFg:    "#4c4f69",
		SelectedBg:  "#bcc0cc",
		SelectedFg:  "#4c4f69",
	},
	"catppuccin_macchiato": {
		Action:      "#cad3f5",
		Background:  "#24273a",
		Border:      "#5b6078",
		Category:    "#a6da95",
		Description: "#b8c0e0",
		Foreground:  "#cad3f5",
		Key:         "#8aadf4",
		Matched:     "#eed49f",
		SearchBg:    "#24273a",
		SearchFg:    "#cad3f5",
		SelectedBg:  "#363a4f",
		SelectedFg:  "#cad3f5",
	},
	"catppuccin_frappe": {
		Action:      "#c6d0f5",
		Background:  "#303446",
		Border:      "#626880",
		Category:    "#a6d189",
		Description: "#b5bfe2",
		Foreground:  "#c6d0f5",
		Key:         "#8caaee",
		Matched:     "#e5c890",
		SearchBg:    "#303446",
		SearchFg:    "#c6d0f5",
		SelectedBg:  "#414559",
		SelectedFg:  "#c6d0f5",
	},
}

// UI semantic colors that do not change with the palette
const (
	ColorError Color = "196" // Bright red
	ColorMuted Color = "241" // Gray - secondary text
)

// Names returns the known theme names, sorted
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the palette for a theme name.
// Names are matched case-insensitively and "-" or " " count as "_".
// An unknown name returns an error wrapping domain.ErrUnknownTheme that
// suggests the closest known name.
func Lookup(name string) (Palette, error) {
	if name == "" {
		name = DefaultThemeName
	}
	normalized := normalizeName(name)
	if p, ok := palettes[normalized]; ok {
		return p, nil
	}
	if p, ok := palettes["catppuccin_"+normalized]; ok {
		return p, nil
	}
	return Palette{}, fmt.Errorf("%w: %q (did you mean %q?)",
		domain.ErrUnknownTheme, name, Suggest(normalized))
}

// Suggest returns the known theme name closest to name by edit distance
func Suggest(name string) string {
	best := DefaultThemeName
	bestDist := -1
	for _, candidate := range Names() {
		dist := levenshtein.ComputeDistance(name, candidate)
		if short, ok := strings.CutPrefix(candidate, "catppuccin_"); ok {
			dist = min(dist, levenshtein.ComputeDistance(name, short))
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}

// Override returns a copy of p with every non-empty color in overrides applied
func (p Palette) Override(overrides Palette) Palette {
	apply := func(dst *Color, src Color) {
		if src != "" {
			*dst = src
		}
	}
	apply(&p.Action, overrides.Action)
	apply(&p.Background, overrides.Background)
	apply(&p.Border, overrides.Border)
	apply(&p.Category, overrides.Category)
	apply(&p.Description, overrides.Description)
	apply(&p.Foreground, overrides.Foreground)
	apply(&p.Key, overrides.Key)
	apply(&p.Matched, overrides.Matched)
	apply(&p.SearchBg, overrides.SearchBg)
	apply(&p.SearchFg, overrides.SearchFg)
	apply(&p.SelectedBg, overrides.SelectedBg)
	apply(&p.SelectedFg, overrides.SelectedFg)
	return p
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "_", " ", "_").Replace(name)
}
