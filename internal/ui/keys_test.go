package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hypr-showkey/showkey/internal/config"
)

func TestNewKeyMap_CustomKeysOverrideDefaults(t *testing.T) {
	keys := NewKeyMap(config.KeyBindingsConfig{
		"copy": config.KeyBindingValue{"ctrl+y", "enter"},
		"help": config.KeyBindingValue{},
	})

	assert.Equal(t, []string{"ctrl+y", "enter"}, keys.Search.Copy.Keys())
	assert.Equal(t, "ctrl+y/enter", keys.Search.Copy.Help().Key)
	assert.Equal(t, []string{"?", "f1"}, keys.Application.Help.Keys(), "empty override keeps defaults")
	assert.Equal(t, []string{"down", "ctrl+j"}, keys.Navigation.Down.Keys())
}

func TestGetValidKeyNames(t *testing.T) {
	names := GetValidKeyNames()

	assert.Len(t, names, len(AllKeyDefinitions))
	assert.IsNonDecreasing(t, names)
	assert.True(t, IsValidKeyName("toggle_raw"))
	assert.False(t, IsValidKeyName("quick_open"))

	cfg := config.KeyBindingsConfig{"copy": {"y"}}
	assert.NoError(t, cfg.Validate(names))
	assert.Error(t, config.KeyBindingsConfig{"detach": {"ctrl+q"}}.Validate(names))
}

func TestBuildBinding_UnknownNamePanics(t *testing.T) {
	assert.Panics(t, func() {
		buildBinding("not_a_key", GetDefaultKeyBindings(), nil)
	})
}
