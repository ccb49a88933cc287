package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"

	"github.com/hypr-showkey/showkey/internal/logging"
	"github.com/hypr-showkey/showkey/internal/ports"
)

// Methods reported by Copy
const (
	MethodOSC52  = "terminal (OSC52)"
	MethodSystem = "system clipboard"
)

// SystemClipboard copies with the OS clipboard, falling back to OSC52 on /dev/tty
type SystemClipboard struct {
	env      func(string) string
	openTTY  func() (io.WriteCloser, error)
	writeAll func(string) error
}

// TerminalClipboard writes OSC52 sequences to a fixed writer, such as an SSH session
type TerminalClipboard struct {
	env func(string) string
	out io.Writer
}

// Verify interface compliance at compile time
var (
	_ ports.Clipboard = (*SystemClipboard)(nil)
	_ ports.Clipboard = (*TerminalClipboard)(nil)
)

// NewSystemClipboard creates a clipboard for local use
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{
		env: os.Getenv,
		openTTY: func() (io.WriteCloser, error) {
			return os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		},
		writeAll: clipboard.WriteAll,
	}
}

// NewTerminalClipboard creates a clipboard that writes to out.
// environ holds the remote TERM and TMUX values ("KEY=value" pairs).
func NewTerminalClipboard(out io.Writer, environ []string) *TerminalClipboard {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return &TerminalClipboard{
		env: func(key string) string { return vars[key] },
		out: out,
	}
}

// Copy implements ports.Clipboard
func (c *SystemClipboard) Copy(text string) (string, error) {
	err := c.writeAll(text)
	if err == nil {
		logging.Logger.Debug("Copied to system clipboard", "bytes", len(text))
		return MethodSystem, nil
	}

	oscErr := c.writeOSC52(text)
	if oscErr == nil {
		logging.Logger.Debug("Copied with OSC52", "bytes", len(text), "systemError", err)
		return MethodOSC52, nil
	}
	return MethodSystem, c.combineErrors(err, oscErr)
}

func (c *SystemClipboard) writeOSC52(text string) error {
	if !shouldAttemptOSC52(c.env) {
		return errors.New("OSC52 unavailable for this terminal")
	}
	tty, err := c.openTTY()
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()
	return writeOSC52Sequence(tty, text, c.env)
}

// Copy implements ports.Clipboard
func (c *TerminalClipboard) Copy(text string) (string, error) {
	if !shouldAttemptOSC52(c.env) {
		return MethodOSC52, errors.New("OSC52 unavailable for this terminal")
	}
	if err := writeOSC52Sequence(c.out, text, c.env); err != nil {
		return MethodOSC52, fmt.Errorf("failed to write OSC52 sequence: %w", err)
	}
	return MethodOSC52, nil
}

func writeOSC52Sequence(w io.Writer, text string, env func(string) string) error {
	termName := strings.ToLower(strings.TrimSpace(env("TERM")))
	if env("TMUX") != "" {
		// Emit both plain and tmux-wrapped OSC52 for compatibility with
		// different tmux clipboard configurations.
		if _, err := osc52.New(text).WriteTo(w); err != nil {
			return err
		}
		_, err := osc52.New(text).Tmux().WriteTo(w)
		return err
	}
	if strings.HasPrefix(termName, "screen") {
		_, err := osc52.New(text).Screen().WriteTo(w)
		return err
	}
	_, err := osc52.New(text).WriteTo(w)
	return err
}

func shouldAttemptOSC52(env func(string) string) bool {
	switch strings.ToLower(strings.TrimSpace(env("SHOWKEY_DISABLE_OSC52"))) {
	case "1", "true", "yes", "on":
		return false
	}
	termName := strings.TrimSpace(env("TERM"))
	return termName != "" && !strings.EqualFold(termName, "dumb")
}

func (c *SystemClipboard) combineErrors(systemErr, oscErr error) error {
	if c.missingDisplay() {
		return fmt.Errorf("no GUI clipboard available (DISPLAY/WAYLAND_DISPLAY unset); OSC52 fallback failed: %s",
			humanizeError(oscErr))
	}
	return fmt.Errorf("system clipboard failed: %s; OSC52 fallback failed: %s",
		humanizeError(systemErr), humanizeError(oscErr))
}

func (c *SystemClipboard) missingDisplay() bool {
	return strings.TrimSpace(c.env("DISPLAY")) == "" && strings.TrimSpace(c.env("WAYLAND_DISPLAY")) == ""
}

func humanizeError(err error) string {
	msg := strings.TrimSpace(err.Error())
	if msg == "exit status 1" {
		return "clipboard helper exited with status 1"
	}
	return msg
}
