package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/ui"
)

// CheckCmd loads everything the viewer would and reports problems
type CheckCmd struct {
	Verbose bool `help:"List every malformed line instead of the first few" short:"v"`
}

// maxListedIssues caps the malformed lines printed without --verbose
const maxListedIssues = 10

// Run executes the check command
func (c *CheckCmd) Run(cli *CLI) error {
	cfg, err := cli.LoadConfig()
	if err != nil {
		return err
	}

	out := cli.Out
	path := cfg.Path()
	if path == "" {
		path = "(built-in defaults)"
	}
	fmt.Fprintf(out, "Config: %s\n", path)

	var problems []error
	if _, err := cfg.UI.Theme.Palette(); err != nil {
		problems = append(problems, err)
	}
	if err := cfg.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		problems = append(problems, fmt.Errorf("invalid key bindings: %w", err))
	}

	fmt.Fprintln(out, "Hyprland files:")
	for _, p := range cfg.ResolveHyprlandPaths() {
		fmt.Fprintf(out, "  %s\n", p)
	}

	_, store, report, err := cli.LoadCatalog(context.Background())
	if err != nil && !errors.Is(err, domain.ErrNoConfigFiles) {
		return err
	}
	if err != nil {
		problems = append(problems, err)
	}

	writeReport(out, report, store.Categories(), c.Verbose)

	if len(problems) > 0 {
		fmt.Fprintln(out)
		for _, p := range problems {
			fmt.Fprintf(out, "Problem: %v\n", p)
		}
		return errors.Join(problems...)
	}
	fmt.Fprintln(out, "\nOK")
	return nil
}

func writeReport(out io.Writer, report domain.IngestReport, categories []string, verbose bool) {
	fmt.Fprintf(out, "\nFiles read:        %d\n", report.FilesRead)
	fmt.Fprintf(out, "Bind lines:        %d\n", report.BindLines)
	fmt.Fprintf(out, "Filtered (unbind): %d\n", report.FilteredLines)
	fmt.Fprintf(out, "Malformed:         %d\n", len(report.MalformedLines))
	fmt.Fprintf(out, "Keybindings:       %d\n", report.Retained)
	fmt.Fprintf(out, "Categories:        %d\n", len(categories))

	for _, f := range report.SkippedFiles {
		fmt.Fprintf(out, "\nUnreadable: %s (%s)", f.Path, f.Reason)
	}
	if len(report.SkippedFiles) > 0 {
		fmt.Fprintln(out)
	}

	if len(report.MalformedLines) == 0 {
		return
	}
	fmt.Fprintln(out, "\nMalformed lines:")
	for i, issue := range report.MalformedLines {
		if !verbose && i == maxListedIssues {
			fmt.Fprintf(out, "  ... and %d more (use --verbose)\n", len(report.MalformedLines)-maxListedIssues)
			break
		}
		fmt.Fprintf(out, "  %s: %s\n    %v\n", issue.Source, issue.Text, issue.Err)
	}
}
