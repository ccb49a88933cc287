package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by group
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	styles      theme.Styles
	viewport    viewport.Model
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap, styles theme.Styles, report domain.IngestReport) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys, styles, report),
		keys:     keys,
		styles:   styles,
		viewport: viewport.New(0, 0),
	}
}

func renderShortcut(styles theme.Styles, keys, description string) string {
	return styles.HelpKey.Render(keys) + styles.HelpDesc.Render(description) + "\n"
}

func renderBinding(styles theme.Styles, b key.Binding) string {
	return renderShortcut(styles, b.Help().Key, b.Help().Desc)
}

func buildHelpContent(keys *KeyMap, styles theme.Styles, report domain.IngestReport) string {
	var b strings.Builder

	b.WriteString(styles.HelpGroup.Render(groupSearch) + "\n")
	b.WriteString(renderShortcut(styles, "type", "fuzzy search combos, dispatchers, arguments and descriptions"))
	b.WriteString(renderShortcut(styles, "backspace", "delete the last character"))
	b.WriteString(renderBinding(styles, keys.Search.Copy))
	b.WriteString(renderBinding(styles, keys.Search.ClearQuery))
	b.WriteString(renderBinding(styles, keys.Search.ToggleRaw))
	b.WriteString(renderBinding(styles, keys.Search.ToggleDescriptions))

	b.WriteString(styles.HelpGroup.Render(groupNavigation) + "\n")
	b.WriteString(renderBinding(styles, keys.Navigation.Up))
	b.WriteString(renderBinding(styles, keys.Navigation.Down))
	b.WriteString(renderBinding(styles, keys.Navigation.Left))
	b.WriteString(renderBinding(styles, keys.Navigation.Right))
	b.WriteString(renderBinding(styles, keys.Navigation.PageUp))
	b.WriteString(renderBinding(styles, keys.Navigation.PageDown))

	b.WriteString(styles.HelpGroup.Render(groupApplication) + "\n")
	b.WriteString(renderBinding(styles, keys.Application.Help))
	b.WriteString(renderBinding(styles, keys.Application.ForceQuit))

	b.WriteString(styles.HelpGroup.Render("Loaded configuration") + "\n")
	b.WriteString(styles.HelpDesc.Render(report.Summary()) + "\n")
	for _, f := range report.SkippedFiles {
		b.WriteString(theme.ErrorStyle.Render("unreadable: ") + styles.HelpDesc.Render(f.Path+" ("+f.Reason+")") + "\n")
	}
	for _, issue := range report.MalformedLines {
		b.WriteString(theme.ErrorStyle.Render("malformed: ") + styles.HelpDesc.Render(issue.Source.String()+"  "+issue.Text) + "\n")
	}

	return b.String()
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys(h.keys.Navigation.Up.Keys()...)
	h.viewport.KeyMap.Down.SetKeys(h.keys.Navigation.Down.Keys()...)
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 3 lines, footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(5, msg.Height-5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Search.ClearQuery, h.keys.Application.Help) || msg.String() == "q" {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	return h.viewport.View() + "\n\n" + h.styles.Status.Render("↑/↓ scroll • esc close")
}
