package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypr-showkey/showkey/internal/domain"
)

func TestBuildCheatSheet_GroupsInFirstSeenOrder(t *testing.T) {
	bindings := []domain.Keybinding{
		{Key: "T", Dispatcher: "exec", Args: "kitty", Category: "Apps"},
		{Key: "1", Dispatcher: "workspace", Args: "1", Category: "Workspaces"},
		{Key: "B", Dispatcher: "exec", Args: "firefox", Category: "Apps"},
	}

	sections := BuildCheatSheet(bindings)

	require.Len(t, sections, 2)
	assert.Equal(t, "Apps", sections[0].Category)
	require.Len(t, sections[0].Bindings, 2)
	assert.Equal(t, "kitty", sections[0].Bindings[0].Args)
	assert.Equal(t, "firefox", sections[0].Bindings[1].Args)
	assert.Equal(t, "Workspaces", sections[1].Category)
}

func TestCheatSheetMarkdown(t *testing.T) {
	sections := BuildCheatSheet([]domain.Keybinding{
		{
			Modifiers:   []string{"SUPER", "SHIFT"},
			Key:         "Q",
			Dispatcher:  "exec",
			Args:        "echo a|b",
			Description: "Pipe | test",
			Category:    "Apps",
		},
	})

	md := CheatSheetMarkdown("Hyprland keybindings", sections)

	assert.Contains(t, md, "# Hyprland keybindings\n")
	assert.Contains(t, md, "## Apps")
	assert.Contains(t, md, "| `SUPER + SHIFT + Q` | `exec, echo a\\|b` | Pipe \\| test |")
}

func TestCheatSheetMarkdown_Empty(t *testing.T) {
	md := CheatSheetMarkdown("Keys", nil)
	assert.Contains(t, md, "No keybindings found.")
}

func TestNewCheatSheetEntry(t *testing.T) {
	entry := NewCheatSheetEntry(domain.Keybinding{
		Key:        "PRINT",
		Dispatcher: "exec",
		Args:       "grim",
		Source:     domain.SourceRef{File: "hyprland.conf", Line: 12},
	})

	assert.Equal(t, "PRINT", entry.Combo)
	assert.Equal(t, []string{}, entry.Modifiers)
	assert.Equal(t, "hyprland.conf:12", entry.Source)
}
