package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/logging"
	"github.com/hypr-showkey/showkey/internal/services"
)

// ListCmd prints the keybindings matching a query
type ListCmd struct {
	SearchFlags `embed:""`

	Category  string   `help:"Only show bindings in this category (case-insensitive)"`
	Format    string   `help:"Output format: table or json" enum:"table,json" default:"table"`
	Modifiers []string `help:"Only show bindings using all of these modifiers (e.g. SUPER,SHIFT)" name:"modifier" short:"m"`
	Query     string   `help:"Fuzzy search query" short:"q"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	cfg, store, _, err := cli.LoadBindings(context.Background())
	if err != nil {
		return err
	}

	results := l.searchService(cfg, cfg.ShowDescriptions()).SearchAll(l.Query, store)
	bindings := filterBindings(results, l.Category, l.Modifiers)
	logging.Logger.Debug("List results",
		"query", l.Query,
		"category", l.Category,
		"modifiers", l.Modifiers,
		"results", len(results),
		"shown", len(bindings))

	if l.Format == "json" {
		return writeJSON(cli.Out, entries(bindings))
	}
	return writeBindingTable(cli.Out, bindings)
}

// filterBindings keeps the bindings in category that use every modifier.
// An empty category keeps all categories.
func filterBindings(results []domain.SearchResult, category string, modifiers []string) []domain.Keybinding {
	bindings := make([]domain.Keybinding, 0, len(results))
	for _, r := range results {
		if category != "" && !strings.EqualFold(r.Binding.Category, category) {
			continue
		}
		if !hasModifiers(r.Binding, modifiers) {
			continue
		}
		bindings = append(bindings, r.Binding)
	}
	return bindings
}

func hasModifiers(b domain.Keybinding, modifiers []string) bool {
	for _, mod := range modifiers {
		if !b.HasModifier(mod) {
			return false
		}
	}
	return true
}

func entries(bindings []domain.Keybinding) []services.CheatSheetEntry {
	result := make([]services.CheatSheetEntry, 0, len(bindings))
	for _, b := range bindings {
		result = append(result, services.NewCheatSheetEntry(b))
	}
	return result
}

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data) + "\n", nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := marshalJSON(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, data)
	return err
}

func writeBindingTable(out io.Writer, bindings []domain.Keybinding) error {
	if len(bindings) == 0 {
		_, err := fmt.Fprintln(out, "No matches")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Keys\tAction\tCategory\tDescription")
	fmt.Fprintln(w, "────\t──────\t────────\t───────────")
	for _, b := range bindings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.Combo(), b.Action(), b.Category, b.Description)
	}
	return w.Flush()
}
