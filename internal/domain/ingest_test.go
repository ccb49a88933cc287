package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngestReport_Summary(t *testing.T) {
	tests := []struct {
		name     string
		report   IngestReport
		expected string
	}{
		{
			name:     "clean",
			report:   IngestReport{Retained: 42, FilesRead: 2},
			expected: "42 keybindings from 2 files",
		},
		{
			name: "with problems",
			report: IngestReport{
				Retained:       10,
				FilesRead:      1,
				MalformedLines: []LineIssue{{Text: "bind = x"}, {Text: "bind = y"}},
				SkippedFiles:   []SkippedFile{{Path: "/missing"}},
			},
			expected: "10 keybindings from 1 files (2 malformed lines skipped, 1 files unreadable)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.report.Summary())
			assert.Equal(t, tt.name != "clean", tt.report.HasProblems())
		})
	}
}
