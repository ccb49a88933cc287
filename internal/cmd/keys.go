package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/hypr-showkey/showkey/internal/config"
	"github.com/hypr-showkey/showkey/internal/ui"
)

// KeysCmd lists the TUI key bindings, defaults and overrides
type KeysCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// keyEntry is the JSON shape of one TUI key
type keyEntry struct {
	Custom  []string `json:"custom,omitempty"`
	Default []string `json:"default"`
	Group   string   `json:"group"`
	Help    string   `json:"help"`
	Name    string   `json:"name"`
}

// Run executes the keys command
func (k *KeysCmd) Run(cli *CLI) error {
	cfg, err := cli.LoadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("invalid key bindings in showkey.yaml: %w", err)
	}

	keys := keyEntries(cfg.Keys)
	if k.Format == "json" {
		return writeJSON(cli.Out, keys)
	}
	return writeKeysTable(cli.Out, keys)
}

func keyEntries(custom config.KeyBindingsConfig) []keyEntry {
	names := ui.GetValidKeyNames()
	result := make([]keyEntry, 0, len(names))
	for _, name := range names {
		def := ui.GetKeyDefinition(name)
		entry := keyEntry{
			Default: def.Defaults,
			Group:   def.Group,
			Help:    def.Help,
			Name:    name,
		}
		if c := custom[name]; len(c) > 0 {
			entry.Custom = c
		}
		result = append(result, entry)
	}
	return result
}

func writeKeysTable(out io.Writer, keys []keyEntry) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tGroup\tDefault\tCustom\tHelp")
	fmt.Fprintln(w, "────\t─────\t───────\t──────\t────")
	for _, k := range keys {
		custom := "-"
		if len(k.Custom) > 0 {
			custom = strings.Join(k.Custom, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", k.Name, k.Group, strings.Join(k.Default, ", "), custom, k.Help)
	}
	return w.Flush()
}
