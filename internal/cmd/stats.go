package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/hypr-showkey/showkey/internal/ports"
)

// StatsCmd shows the most copied keybindings
type StatsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Number of bindings to show" default:"10"`
}

// statEntry is the JSON shape of one usage row
type statEntry struct {
	Action   string    `json:"action"`
	Combo    string    `json:"combo"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	usage, err := cli.Container.UsageService()
	if err != nil {
		return fmt.Errorf("failed to open usage history: %w", err)
	}

	stats, err := usage.TopUsed(context.Background(), s.Limit)
	if err != nil {
		return err
	}

	if s.Format == "json" {
		out := make([]statEntry, 0, len(stats))
		for _, st := range stats {
			out = append(out, statEntry{Action: st.Action, Combo: st.Combo, Count: st.Count, LastUsed: st.LastUsed})
		}
		return writeJSON(cli.Out, out)
	}
	return renderStatsTable(cli.Out, stats, time.Now())
}

// renderStatsTable displays usage in table format
func renderStatsTable(out io.Writer, stats []ports.UsageStat, now time.Time) error {
	if len(stats) == 0 {
		_, err := fmt.Fprintln(out, "No keybindings copied yet.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Count\tKeys\tAction\tLast used")
	fmt.Fprintln(w, strings.Repeat("─", 5)+"\t────\t──────\t─────────")
	for _, st := range stats {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", st.Count, st.Combo, st.Action, formatAgo(now.Sub(st.LastUsed)))
	}
	return w.Flush()
}

// formatAgo renders a duration as a short relative time
func formatAgo(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
