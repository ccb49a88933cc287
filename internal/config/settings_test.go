package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypr-showkey/showkey/internal/domain"
)

func TestParse_CategoriesKeepMappingOrder(t *testing.T) {
	data := []byte(`
hyprland_configs:
  files: [hyprland.conf]
categories:
  zeta:
    name: Zeta
    keywords: [exec]
  alpha:
    name: Alpha
    keywords: [workspace]
  middle:
    keywords: [kill]
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	require.Len(t, cfg.Categories, 3)
	assert.Equal(t, "zeta", cfg.Categories[0].ID)
	assert.Equal(t, "alpha", cfg.Categories[1].ID)
	assert.Equal(t, "middle", cfg.Categories[2].ID)
	assert.Equal(t, "middle", cfg.Categories[2].Name, "name falls back to id")

	rules := cfg.CategoryRules()
	require.Len(t, rules, 3)
	assert.Equal(t, "Zeta", rules[0].Label)
	assert.Equal(t, "Alpha", rules[1].Label)
}

func TestParse_CategoriesSequenceForm(t *testing.T) {
	data := []byte(`
categories:
  - id: apps
    name: Applications
    keywords: [exec]
  - id: ws
    name: Workspaces
    keywords: [workspace]
`)

	cfg, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, cfg.Categories, 2)
	assert.Equal(t, "Applications", cfg.Categories[0].Name)
	assert.Equal(t, "Workspaces", cfg.Categories[1].Name)
}

func TestParse_CategoriesRejectsScalar(t *testing.T) {
	_, err := Parse([]byte("categories: nope\n"))
	require.Error(t, err)
}

func TestParse_FilesAcceptCommaSeparatedString(t *testing.T) {
	cfg, err := Parse([]byte("hyprland_configs:\n  files: \"a.conf, b.conf\"\n"))
	require.NoError(t, err)
	assert.Equal(t, StringArray{"a.conf", "b.conf"}, cfg.HyprlandConfigs.Files)
}

func TestConfig_UIDefaults(t *testing.T) {
	cfg, err := Parse([]byte("hyprland_configs:\n  files: [hyprland.conf]\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxResults, cfg.MaxResults())
	assert.InDelta(t, DefaultSearchThreshold, cfg.SearchThreshold(), 1e-9)
	assert.True(t, cfg.ShowDescriptions())
	assert.False(t, cfg.ShowRawCommand())
}

func TestConfig_SearchThresholdClamped(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want float64
	}{
		{name: "above one", yaml: "ui:\n  search_threshold: 3\n", want: 1},
		{name: "below zero", yaml: "ui:\n  search_threshold: -0.5\n", want: 0},
		{name: "in range", yaml: "ui:\n  search_threshold: 0.25\n", want: 0.25},
		{name: "explicit zero", yaml: "ui:\n  search_threshold: 0\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, cfg.SearchThreshold(), 1e-9)
		})
	}
}

func TestConfig_ResolveHyprlandPaths(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	cfg := &Config{HyprlandConfigs: HyprlandConfigs{
		Files: StringArray{"hyprland.conf", "/etc/hypr/binds.conf"},
	}}

	paths := cfg.ResolveHyprlandPaths()
	assert.Equal(t, []string{
		filepath.Join(xdg, "hypr", "hyprland.conf"),
		"/etc/hypr/binds.conf",
	}, paths)
}

func TestConfig_ResolveHyprlandPathsDefaultsWhenEmpty(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	paths := (&Config{}).ResolveHyprlandPaths()
	assert.Equal(t, []string{filepath.Join(xdg, "hypr", "hyprland.conf")}, paths)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoad_FromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "showkey.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hyprland_configs:\n  files: [x.conf]\n"), 0644))
	t.Setenv("SHOWKEY_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, StringArray{"x.conf"}, cfg.HyprlandConfigs.Files)
}

func TestSave_RoundTripKeepsCategoryOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "showkey.yaml")

	require.NoError(t, Save(DefaultConfig(), path))

	loaded, err := Load(path)
	require.NoError(t, err)

	want := DefaultCategories()
	require.Len(t, loaded.Categories, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, loaded.Categories[i].ID)
		assert.Equal(t, want[i].Keywords, loaded.Categories[i].Keywords)
	}
	assert.Equal(t, DefaultMaxResults, loaded.MaxResults())
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"quit", "help", "copy"}

	tests := []struct {
		name    string
		keys    KeyBindingsConfig
		wantErr string
	}{
		{name: "nil is valid", keys: nil},
		{name: "valid overrides", keys: KeyBindingsConfig{"quit": {"q"}, "help": {"h", "?"}}},
		{name: "unknown name", keys: KeyBindingsConfig{"launch": {"l"}}, wantErr: "unknown key binding"},
		{name: "empty key", keys: KeyBindingsConfig{"quit": {""}}, wantErr: "empty value"},
		{name: "duplicate key", keys: KeyBindingsConfig{"quit": {"x"}, "help": {"x"}}, wantErr: "assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.keys.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_KeyBindingValueScalarOrList(t *testing.T) {
	cfg, err := Parse([]byte("keys:\n  quit: q\n  help: [\"?\", f1]\n"))
	require.NoError(t, err)
	assert.Equal(t, KeyBindingValue{"q"}, cfg.Keys["quit"])
	assert.Equal(t, KeyBindingValue{"?", "f1"}, cfg.Keys["help"])
}

func TestThemeSettings_Palette(t *testing.T) {
	settings := ThemeSettings{
		Name:   "catppuccin_latte",
		Colors: ThemeColors{KeyColor: "#ff0000"},
	}

	p, err := settings.Palette()
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", string(p.Key))
	assert.Equal(t, "#eff1f5", string(p.Background))
}

func TestThemeSettings_UnknownTheme(t *testing.T) {
	_, err := ThemeSettings{Name: "catpuccin_moca"}.Palette()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownTheme)
	assert.Contains(t, err.Error(), "catppuccin_mocha")
}
