package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultNoticeDelay is how long a status notice stays visible
const DefaultNoticeDelay = 4 * time.Second

// NoticeManager holds the transient message shown in the status bar
// and clears it after a delay.
type NoticeManager struct {
	delay time.Duration
	err   error
	info  string
	seq   int
}

// NewNoticeManager creates a NoticeManager with the specified auto-clear delay.
func NewNoticeManager(delay time.Duration) *NoticeManager {
	if delay <= 0 {
		delay = DefaultNoticeDelay
	}
	return &NoticeManager{delay: delay}
}

// SetError replaces the current notice with an error
func (n *NoticeManager) SetError(err error) tea.Cmd {
	n.err, n.info = err, ""
	return n.clearAfterDelay()
}

// SetInfo replaces the current notice with an informational message
func (n *NoticeManager) SetInfo(text string) tea.Cmd {
	n.err, n.info = nil, text
	return n.clearAfterDelay()
}

// Clear removes the notice identified by seq; newer notices are kept
func (n *NoticeManager) Clear(seq int) {
	if seq != n.seq {
		return
	}
	n.err, n.info = nil, ""
}

func (n *NoticeManager) Error() error { return n.err }
func (n *NoticeManager) Info() string { return n.info }

// HasNotice returns true if there is something to show
func (n *NoticeManager) HasNotice() bool {
	return n.err != nil || n.info != ""
}

func (n *NoticeManager) clearAfterDelay() tea.Cmd {
	n.seq++
	seq := n.seq
	return tea.Tick(n.delay, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}
