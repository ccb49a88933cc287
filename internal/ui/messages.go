package ui

import "github.com/hypr-showkey/showkey/internal/domain"

// copiedMsg reports the outcome of a clipboard copy
type copiedMsg struct {
	binding domain.Keybinding
	err     error
	method  string
}

// clearNoticeMsg is sent after the notice delay; seq identifies the notice it clears
type clearNoticeMsg struct {
	seq int
}
