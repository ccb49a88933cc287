package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/hypr-showkey/showkey/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
	Search      SearchKeys
}

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit key.Binding
	Help      key.Binding
}

// NavigationKeys defines key bindings for moving the selection
type NavigationKeys struct {
	Down     key.Binding
	Left     key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Right    key.Binding
	Up       key.Binding
}

// SearchKeys defines key bindings acting on the query and the selection
type SearchKeys struct {
	ClearQuery         key.Binding
	Copy               key.Binding
	ToggleDescriptions key.Binding
	ToggleRaw          key.Binding
}

// NewKeyMap creates a KeyMap; customKeys overrides defaults by name and may be nil
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	build := func(name string) key.Binding {
		return buildBinding(name, defaults, customKeys)
	}

	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit: build("force_quit"),
			Help:      build("help"),
		},
		Navigation: NavigationKeys{
			Down:     build("down"),
			Left:     build("left"),
			PageDown: build("page_down"),
			PageUp:   build("page_up"),
			Right:    build("right"),
			Up:       build("up"),
		},
		Search: SearchKeys{
			ClearQuery:         build("clear_query"),
			Copy:               build("copy"),
			ToggleDescriptions: build("toggle_descriptions"),
			ToggleRaw:          build("toggle_raw"),
		},
	}
}

// ShortHelp returns the bindings shown in the status bar hint
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Search.Copy,
		k.Search.ToggleRaw,
		k.Application.Help,
		k.Search.ClearQuery,
	}
}

// buildBinding creates a binding from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}
