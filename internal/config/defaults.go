package config

import "github.com/hypr-showkey/showkey/internal/theme"

// ThemeColors are optional per-color overrides on top of the named theme
type ThemeColors struct {
	ActionColor      string `yaml:"action_color,omitempty"`
	Background       string `yaml:"background,omitempty"`
	BorderColor      string `yaml:"border_color,omitempty"`
	CategoryColor    string `yaml:"category_color,omitempty"`
	DescriptionColor string `yaml:"description_color,omitempty"`
	Foreground       string `yaml:"foreground,omitempty"`
	KeyColor         string `yaml:"key_color,omitempty"`
	MatchedColor     string `yaml:"matched_color,omitempty"`
	SearchBg         string `yaml:"search_bg,omitempty"`
	SearchFg         string `yaml:"search_fg,omitempty"`
	SelectedBg       string `yaml:"selected_bg,omitempty"`
	SelectedFg       string `yaml:"selected_fg,omitempty"`
}

// ThemeSettings selects a palette by name
type ThemeSettings struct {
	Colors ThemeColors `yaml:"colors,omitempty"`
	Name   string      `yaml:"name,omitempty"`
}

// Palette resolves the named theme and applies the color overrides
func (t ThemeSettings) Palette() (theme.Palette, error) {
	base, err := theme.Lookup(t.Name)
	if err != nil {
		return theme.Palette{}, err
	}
	c := t.Colors
	return base.Override(theme.Palette{
		Action:      theme.Color(c.ActionColor),
		Background:  theme.Color(c.Background),
		Border:      theme.Color(c.BorderColor),
		Category:    theme.Color(c.CategoryColor),
		Description: theme.Color(c.DescriptionColor),
		Foreground:  theme.Color(c.Foreground),
		Key:         theme.Color(c.KeyColor),
		Matched:     theme.Color(c.MatchedColor),
		SearchBg:    theme.Color(c.SearchBg),
		SearchFg:    theme.Color(c.SearchFg),
		SelectedBg:  theme.Color(c.SelectedBg),
		SelectedFg:  theme.Color(c.SelectedFg),
	}), nil
}

// DefaultHyprlandFiles are read when the config lists none
var DefaultHyprlandFiles = []string{"hyprland.conf"}

// DefaultCategories returns the starter categories written by init.
// More specific categories come first since the first match wins.
func DefaultCategories() Categories {
	return Categories{
		{
			ID:          "screenshots",
			Name:        "Screenshots",
			Description: "Screen capture tools",
			Keywords:    []string{"grim", "slurp", "hyprshot", "screenshot", "flameshot"},
		},
		{
			ID:          "media",
			Name:        "Media",
			Description: "Volume, brightness and playback",
			Keywords:    []string{"playerctl", "wpctl", "pamixer", "pactl", "brightnessctl", "volume"},
		},
		{
			ID:          "workspaces",
			Name:        "Workspaces",
			Description: "Switch and move between workspaces",
			Keywords:    []string{"workspace"},
		},
		{
			ID:          "windows",
			Name:        "Window Management",
			Description: "Focus, move and resize windows",
			Keywords: []string{
				"killactive", "togglefloating", "fullscreen", "pseudo", "togglesplit",
				"movefocus", "movewindow", "resizeactive", "swapwindow", "pin",
			},
		},
		{
			ID:          "session",
			Name:        "Session",
			Description: "Lock, logout and exit",
			Keywords:    []string{"exit", "hyprlock", "swaylock", "wlogout"},
		},
		{
			ID:          "applications",
			Name:        "Applications",
			Description: "Launch programs",
			Keywords:    []string{"exec"},
		},
	}
}

// DefaultConfig returns the configuration used by init --defaults
func DefaultConfig() *Config {
	return &Config{
		Categories: DefaultCategories(),
		HyprlandConfigs: HyprlandConfigs{
			Files: append(StringArray(nil), DefaultHyprlandFiles...),
		},
		UI: UISettings{
			MaxResults:       ptr(DefaultMaxResults),
			SearchThreshold:  ptr(DefaultSearchThreshold),
			ShowDescriptions: ptr(DefaultShowDescriptions),
			ShowRawCommand:   ptr(DefaultShowRawCommand),
			Theme:            ThemeSettings{Name: theme.DefaultThemeName},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
