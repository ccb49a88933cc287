package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/hypr-showkey/showkey/internal/adapters/clipboard"
	"github.com/hypr-showkey/showkey/internal/logging"
	"github.com/hypr-showkey/showkey/internal/ui"
)

// teaHandler creates a viewer for each SSH session. Copies go to the
// client's terminal with OSC52 since the server clipboard is not theirs.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	opts := s.options
	opts.Clipboard = clipboard.NewTerminalClipboard(sess, sessionEnviron(sess.Environ(), pty.Term))

	return &sessionModel{
		Model:     ui.NewModel(s.store, s.search, opts),
		sessionID: sessionID,
		startTime: time.Now(),
	}, []tea.ProgramOption{tea.WithAltScreen()}
}

// sessionEnviron adds the PTY terminal type to the client environment
func sessionEnviron(environ []string, term string) []string {
	result := append([]string(nil), environ...)
	if term != "" {
		result = append(result, "TERM="+term)
	}
	return result
}

// sessionModel wraps ui.Model to log the session lifetime
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	if cmd == nil {
		return s, nil
	}
	return s, func() tea.Msg {
		out := cmd()
		if _, ok := out.(tea.QuitMsg); ok {
			logging.Logger.Info("SSH session ended",
				"session_id", s.sessionID,
				"duration", time.Since(s.startTime).String())
		}
		return out
	}
}
