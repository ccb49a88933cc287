package hyprland

import (
	"fmt"
	"strings"
)

// GenerateDescription builds a human readable description for bindings
// that carry no comment or bindd description.
func GenerateDescription(dispatcher, args string) string {
	switch dispatcher {
	case "exec":
		switch {
		case strings.Contains(args, "terminal"):
			return "Open terminal"
		case strings.Contains(args, "browser"):
			return "Open browser"
		case strings.Contains(args, "filemanager"):
			return "Open file manager"
		}
		return fmt.Sprintf("Execute: %s", args)
	case "killactive":
		return "Kill active window"
	case "fullscreen":
		if args == "0" {
			return "Toggle fullscreen"
		}
		return "Maximize window"
	case "togglefloating":
		return "Toggle floating mode"
	case "workspace":
		return fmt.Sprintf("Switch to workspace %s", args)
	case "movetoworkspace":
		return fmt.Sprintf("Move window to workspace %s", args)
	}
	return strings.TrimSpace(dispatcher + " " + args)
}
