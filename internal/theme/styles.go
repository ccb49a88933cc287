package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles derived from one palette
type Styles struct {
	Palette Palette

	// Grid cells
	Action      lipgloss.Style
	Category    lipgloss.Style
	Description lipgloss.Style
	Key         lipgloss.Style
	Matched     lipgloss.Style
	Selected    lipgloss.Style

	// Frame
	Border    lipgloss.Style
	NoMatches lipgloss.Style
	Search    lipgloss.Style
	Status    lipgloss.Style
	Title     lipgloss.Style

	// Help screen
	HelpDesc  lipgloss.Style
	HelpGroup lipgloss.Style
	HelpKey   lipgloss.Style
}

// NewStyles builds the styles for a palette
func NewStyles(p Palette) Styles {
	return Styles{
		Palette: p,

		Action: lipgloss.NewStyle().
			Foreground(p.Action),
		Category: lipgloss.NewStyle().
			Foreground(p.Category).
			Italic(true),
		Description: lipgloss.NewStyle().
			Foreground(p.Description),
		Key: lipgloss.NewStyle().
			Foreground(p.Key).
			Bold(true),
		Matched: lipgloss.NewStyle().
			Foreground(p.Matched).
			Bold(true).
			Underline(true),
		Selected: lipgloss.NewStyle().
			Foreground(p.SelectedFg).
			Background(p.SelectedBg),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),
		NoMatches: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Foreground(p.Description).
			Padding(1, 4),
		Search: lipgloss.NewStyle().
			Foreground(p.SearchFg).
			Background(p.SearchBg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Key),

		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Description),
		HelpGroup: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Category).
			MarginTop(1),
		HelpKey: lipgloss.NewStyle().
			Foreground(p.Key).
			Bold(true).
			Width(20),
	}
}

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
