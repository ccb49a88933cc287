package ui

import (
	"fmt"

	"github.com/hypr-showkey/showkey/internal/theme"
)

// VersionInfo holds version information for display in the help header.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit  string
	Date    string
	Tagline string
	Version string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:  "unknown",
	Date:    "unknown",
	Tagline: "Hyprland keybindings at a glance",
	Version: "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// headerLine is the app name with version, used as the plain header text
func headerLine() string {
	commit := versionInfo.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("showkey %s (%s) - %s", versionInfo.Version, commit, versionInfo.Tagline)
}

// renderDialogHeader renders the app header followed by the dialog title
func renderDialogHeader(styles theme.Styles, title string) string {
	result := styles.Title.Render(headerLine()) + "\n"
	if title != "" {
		result += styles.Category.Render(title) + "\n"
	}
	return result + "\n"
}
