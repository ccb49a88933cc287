package ui

import "slices"

// KeyDefinition defines the metadata for a configurable key binding.
type KeyDefinition struct {
	Defaults []string
	Group    string
	Help     string
	Name     string
}

// Help screen groups
const (
	groupApplication = "Application"
	groupNavigation  = "Navigation"
	groupSearch      = "Search"
)

// AllKeyDefinitions contains all configurable key bindings.
// Names are the keys accepted under `keys:` in showkey.yaml.
var AllKeyDefinitions = []KeyDefinition{
	// Search keys
	{Name: "clear_query", Group: groupSearch, Defaults: []string{"esc"}, Help: "clear search (quit when empty)"},
	{Name: "copy", Group: groupSearch, Defaults: []string{"enter"}, Help: "copy bind line to clipboard"},
	{Name: "toggle_descriptions", Group: groupSearch, Defaults: []string{"ctrl+t"}, Help: "toggle descriptions"},
	{Name: "toggle_raw", Group: groupSearch, Defaults: []string{"ctrl+r"}, Help: "toggle raw command in status bar"},

	// Navigation keys
	{Name: "down", Group: groupNavigation, Defaults: []string{"down", "ctrl+j"}, Help: "next keybinding"},
	{Name: "left", Group: groupNavigation, Defaults: []string{"left"}, Help: "previous column"},
	{Name: "page_down", Group: groupNavigation, Defaults: []string{"pgdown"}, Help: "scroll down one page"},
	{Name: "page_up", Group: groupNavigation, Defaults: []string{"pgup"}, Help: "scroll up one page"},
	{Name: "right", Group: groupNavigation, Defaults: []string{"right"}, Help: "next column"},
	{Name: "up", Group: groupNavigation, Defaults: []string{"up", "ctrl+k"}, Help: "previous keybinding"},

	// Application keys
	{Name: "force_quit", Group: groupApplication, Defaults: []string{"ctrl+c"}, Help: "quit"},
	{Name: "help", Group: groupApplication, Defaults: []string{"?", "f1"}, Help: "show keyboard shortcuts"},
}

// keyIndex maps names to definitions; keyNames is sorted
var (
	keyIndex = make(map[string]KeyDefinition, len(AllKeyDefinitions))
	keyNames = make([]string, 0, len(AllKeyDefinitions))
)

func init() {
	for _, def := range AllKeyDefinitions {
		keyIndex[def.Name] = def
		keyNames = append(keyNames, def.Name)
	}
	slices.Sort(keyNames)
}

// GetDefaultKeyBindings returns a fresh name -> default keys map
func GetDefaultKeyBindings() map[string][]string {
	defaults := make(map[string][]string, len(keyIndex))
	for name, def := range keyIndex {
		defaults[name] = def.Defaults
	}
	return defaults
}

// GetKeyDefinition returns the definition for a key by name, or nil.
func GetKeyDefinition(name string) *KeyDefinition {
	def, ok := keyIndex[name]
	if !ok {
		return nil
	}
	return &def
}

// GetValidKeyNames returns all valid key binding names in sorted order.
func GetValidKeyNames() []string {
	return slices.Clone(keyNames)
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	_, ok := keyIndex[name]
	return ok
}
