package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/logging"
)

// Defaults applied when the UI section leaves a value unset
const (
	DefaultMaxResults       = 50
	DefaultSearchThreshold  = 0.6
	DefaultShowDescriptions = true
	DefaultShowRawCommand   = false
)

// KeyBindingValue supports "a" or ["up", "k"] in YAML
type KeyBindingValue []string

// UnmarshalYAML implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalYAML(value *yaml.Node) error {
	// Try sequence format first
	var arr []string
	if value.Kind == yaml.SequenceNode {
		if err := value.Decode(&arr); err != nil {
			return err
		}
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalYAML implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalYAML() (any, error) {
	if len(kv) == 1 {
		return kv[0], nil
	}
	return []string(kv), nil
}

// KeyBindingsConfig holds custom TUI key overrides as a map.
// Keys are binding names (e.g., "quit", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)
	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// StringArray supports both YAML sequences and comma-separated strings
type StringArray []string

// UnmarshalYAML implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var arr []string
		if err := value.Decode(&arr); err != nil {
			return err
		}
		*sa = arr
		return nil
	}

	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// HyprlandConfigs lists the Hyprland files to read, in order
type HyprlandConfigs struct {
	Files StringArray `yaml:"files"`
}

// UISettings controls search and display
type UISettings struct {
	MaxResults       *int          `yaml:"max_results,omitempty"`
	SearchThreshold  *float64      `yaml:"search_threshold,omitempty"`
	ShowDescriptions *bool         `yaml:"show_descriptions,omitempty"`
	ShowRawCommand   *bool         `yaml:"show_raw_command,omitempty"`
	Theme            ThemeSettings `yaml:"theme,omitempty"`
}

// Config represents the structure of showkey.yaml
type Config struct {
	Categories      Categories        `yaml:"categories,omitempty"`
	Debug           *bool             `yaml:"debug,omitempty"`
	HyprlandConfigs HyprlandConfigs   `yaml:"hyprland_configs"`
	Keys            KeyBindingsConfig `yaml:"keys,omitempty"`
	MaxLogFiles     *int              `yaml:"max_log_files,omitempty"`
	UI              UISettings        `yaml:"ui,omitempty"`

	path string
}

// Path returns the file the config was loaded from ("" for defaults)
func (c *Config) Path() string {
	return c.path
}

// MaxResults returns the configured result cap (<= 0 means unlimited)
func (c *Config) MaxResults() int {
	if c.UI.MaxResults == nil {
		return DefaultMaxResults
	}
	return *c.UI.MaxResults
}

// SearchThreshold returns the minimum score, clamped to [0,1]
func (c *Config) SearchThreshold() float64 {
	if c.UI.SearchThreshold == nil {
		return DefaultSearchThreshold
	}
	return max(0, min(1, *c.UI.SearchThreshold))
}

// ShowDescriptions reports whether descriptions are shown under the combo
func (c *Config) ShowDescriptions() bool {
	if c.UI.ShowDescriptions == nil {
		return DefaultShowDescriptions
	}
	return *c.UI.ShowDescriptions
}

// ShowRawCommand reports whether the status bar shows the raw directive
func (c *Config) ShowRawCommand() bool {
	if c.UI.ShowRawCommand == nil {
		return DefaultShowRawCommand
	}
	return *c.UI.ShowRawCommand
}

// CategoryRules converts the configured categories into ordered rules
func (c *Config) CategoryRules() []domain.CategoryRule {
	rules := make([]domain.CategoryRule, 0, len(c.Categories))
	for _, cat := range c.Categories {
		label := cat.Name
		if label == "" {
			label = cat.ID
		}
		rules = append(rules, domain.NewCategoryRule(label, cat.Keywords))
	}
	return rules
}

// ResolveHyprlandPaths returns the configured files as absolute paths.
// Relative paths are resolved against the Hyprland config directory;
// an empty list falls back to DefaultHyprlandFiles.
func (c *Config) ResolveHyprlandPaths() []string {
	files := []string(c.HyprlandConfigs.Files)
	if len(files) == 0 {
		files = DefaultHyprlandFiles
	}

	base := GetHyprConfigDir()
	paths := make([]string, 0, len(files))
	for _, file := range files {
		file = ExpandPath(file)
		if !filepath.IsAbs(file) {
			file = filepath.Join(base, file)
		}
		paths = append(paths, file)
	}
	return paths
}

// Load reads showkey.yaml. An empty path uses FindConfigFile.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			return nil, err
		}
		path = found
	}
	path = ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.path = path

	logging.Logger.Debug("Config loaded",
		"path", path,
		"files", len(cfg.HyprlandConfigs.Files),
		"categories", len(cfg.Categories))
	return cfg, nil
}

// Parse decodes showkey.yaml content
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config as YAML, creating the directory if needed
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cfg.path = path
	return nil
}
