package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hypr-showkey/showkey/internal/cmd"
	"github.com/hypr-showkey/showkey/internal/ui"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X main.Version=v1.0.0 -X main.Commit=abc123 ..."
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Tagline is the application's tagline used in help text
const Tagline = "Hyprland keybindings at a glance"

// versionInfo returns formatted version information for CLI display
func versionInfo() string {
	return fmt.Sprintf("showkey %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}

func main() {
	ui.SetVersionInfo(ui.VersionInfo{
		Commit:  Commit,
		Date:    Date,
		Tagline: Tagline,
		Version: Version,
	})

	// Config, logging and the container are set up in CLI.AfterApply()
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("showkey"),
		kong.Description(Tagline),
		kong.Vars{
			"version": versionInfo(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	err := ctx.Run()
	cli.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
