package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"

	"github.com/hypr-showkey/showkey/internal/logging"
	"github.com/hypr-showkey/showkey/internal/services"
)

// defaultRenderWidth is the word wrap used by --render
const defaultRenderWidth = 100

// ExportCmd writes a cheat sheet grouped by category
type ExportCmd struct {
	Format string `help:"Output format: markdown or json" enum:"markdown,json" default:"markdown" short:"f"`
	Output string `help:"Write to this file instead of stdout" short:"o" type:"path"`
	Render bool   `help:"Render the markdown for the terminal"`
	Title  string `help:"Document title" default:"Hyprland keybindings"`
	Width  int    `help:"Word wrap width used with --render" default:"100"`
}

// exportSection is the JSON shape of one category
type exportSection struct {
	Bindings []services.CheatSheetEntry `json:"bindings"`
	Category string                     `json:"category"`
}

// Run executes the export command
func (e *ExportCmd) Run(cli *CLI) error {
	_, store, _, err := cli.LoadBindings(context.Background())
	if err != nil {
		return err
	}

	sections := services.BuildCheatSheet(store.Bindings())
	logging.Logger.Info("Exporting cheat sheet",
		"format", e.Format,
		"sections", len(sections),
		"bindings", store.Len())

	var content string
	switch e.Format {
	case "json":
		out := make([]exportSection, 0, len(sections))
		for _, s := range sections {
			out = append(out, exportSection{Bindings: entries(s.Bindings), Category: s.Category})
		}
		data, err := marshalJSON(out)
		if err != nil {
			return err
		}
		content = data
	default:
		content = services.CheatSheetMarkdown(e.Title, sections)
		if e.Render {
			content, err = renderMarkdown(content, e.Width)
			if err != nil {
				return err
			}
		}
	}

	if e.Output == "" {
		_, err := fmt.Fprint(cli.Out, content)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(e.Output), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(e.Output, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write cheat sheet: %w", err)
	}
	fmt.Fprintf(cli.Out, "Cheat sheet written to %s\n", e.Output)
	return nil
}

// renderMarkdown styles markdown for the terminal
func renderMarkdown(markdown string, width int) (string, error) {
	if width <= 0 {
		width = defaultRenderWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
