package domain

import "fmt"

// ConfigSource is the already-read content of one Hyprland config file.
// Err is set when the file could not be read.
type ConfigSource struct {
	Content string
	Err     error
	Path    string
}

// SkippedFile records a source that could not be ingested
type SkippedFile struct {
	Path   string
	Reason string
}

// LineIssue records a bind line that was dropped
type LineIssue struct {
	Err    error
	Source SourceRef
	Text   string
}

// IngestReport aggregates non-fatal problems found while building the store
type IngestReport struct {
	BindLines      int
	FilesRead      int
	FilteredLines  int
	MalformedLines []LineIssue
	Retained       int
	SkippedFiles   []SkippedFile
}

// HasProblems reports whether anything was skipped
func (r IngestReport) HasProblems() bool {
	return len(r.SkippedFiles) > 0 || len(r.MalformedLines) > 0
}

// Summary is a one-line description suitable for a status bar
func (r IngestReport) Summary() string {
	if !r.HasProblems() {
		return fmt.Sprintf("%d keybindings from %d files", r.Retained, r.FilesRead)
	}
	return fmt.Sprintf("%d keybindings from %d files (%d malformed lines skipped, %d files unreadable)",
		r.Retained, r.FilesRead, len(r.MalformedLines), len(r.SkippedFiles))
}
