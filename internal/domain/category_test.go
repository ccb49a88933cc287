package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRules() []CategoryRule {
	return []CategoryRule{
		NewCategoryRule("Screenshots", []string{"GRIM", " slurp "}),
		NewCategoryRule("Applications", []string{"exec"}),
		NewCategoryRule("Workspaces", []string{"workspace"}),
		NewCategoryRule("Empty", []string{"", "  "}),
	}
}

func TestNewCategoryRule_NormalizesKeywords(t *testing.T) {
	rule := NewCategoryRule("Screenshots", []string{"GRIM", " slurp ", ""})
	assert.Equal(t, []string{"grim", "slurp"}, rule.Keywords)
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		name     string
		binding  Keybinding
		expected string
	}{
		{"first rule wins", Keybinding{Dispatcher: "exec", Args: "grim -g area"}, "Screenshots"},
		{"dispatcher match", Keybinding{Dispatcher: "exec", Args: "kitty"}, "Applications"},
		{"case insensitive args", Keybinding{Dispatcher: "movetoWorkspace", Args: "2"}, "Workspaces"},
		{"no match", Keybinding{Dispatcher: "killactive"}, Uncategorized},
		{"empty rule never matches", Keybinding{Dispatcher: "pseudo"}, Uncategorized},
		{"description is ignored", Keybinding{Dispatcher: "pin", Description: "exec something"}, Uncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryFor(tt.binding, sampleRules()))
		})
	}
}

func TestCategorize_DeterministicAndPure(t *testing.T) {
	input := []Keybinding{
		{Dispatcher: "exec", Args: "kitty", Modifiers: []string{"SUPER"}, Category: Uncategorized},
		{Dispatcher: "workspace", Args: "1", Category: Uncategorized},
		{Dispatcher: "killactive", Category: Uncategorized},
	}

	first := Categorize(input, sampleRules())
	second := Categorize(input, sampleRules())
	again := Categorize(first, sampleRules())

	assert.Equal(t, first, second)
	assert.Equal(t, first, again, "idempotent")
	assert.Equal(t, []string{"Applications", "Workspaces", Uncategorized},
		[]string{first[0].Category, first[1].Category, first[2].Category})

	for _, b := range input {
		assert.Equal(t, Uncategorized, b.Category, "input is not modified")
	}

	first[0].Modifiers[0] = "ALT"
	assert.Equal(t, "SUPER", input[0].Modifiers[0], "modifiers are copied")
}

func TestCategorize_NoRules(t *testing.T) {
	got := Categorize([]Keybinding{{Dispatcher: "exec"}}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, Uncategorized, got[0].Category)
}
