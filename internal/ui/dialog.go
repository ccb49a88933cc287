package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hypr-showkey/showkey/internal/theme"
)

// Dialog wraps any tea.Model content and prepends a header with a title.
//
// Usage:
//
//	dialog := NewDialog("Help", NewHelpScreen(&keys, styles), styles)
//	dialog.Update(msg)  // Delegates to the content
//	dialog.View()       // Returns header + content.View()
type Dialog struct {
	content tea.Model
	header  string
}

// NewDialog creates a new dialog wrapper
func NewDialog(title string, content tea.Model, styles theme.Styles) *Dialog {
	return &Dialog{
		content: content,
		header:  renderDialogHeader(styles, title),
	}
}

// Init delegates to wrapped content's Init method.
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to wrapped content's Update method.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View prepends the dialog header to the wrapped content's view.
func (d *Dialog) View() string {
	return d.header + d.content.View()
}

// Content returns the wrapped content for type assertion.
func (d *Dialog) Content() tea.Model {
	return d.content
}
