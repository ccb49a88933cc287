package domain

import "errors"

var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrFileUnreadable = errors.New("config file unreadable")
	ErrMalformedLine  = errors.New("malformed bind line")
	ErrNoConfigFiles  = errors.New("no valid hyprland config files found")
	ErrUnboundLine    = errors.New("unbound keybinding")
	ErrUnknownTheme   = errors.New("unknown theme")
)
