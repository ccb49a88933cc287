package services

import (
	"fmt"
	"strings"

	"github.com/hypr-showkey/showkey/internal/domain"
)

// CheatSheetSection groups the bindings of one category
type CheatSheetSection struct {
	Bindings []domain.Keybinding
	Category string
}

// CheatSheetEntry is the JSON shape of one binding
type CheatSheetEntry struct {
	Args        string   `json:"args,omitempty"`
	Category    string   `json:"category"`
	Combo       string   `json:"combo"`
	Description string   `json:"description,omitempty"`
	Dispatcher  string   `json:"dispatcher"`
	Flags       string   `json:"flags,omitempty"`
	Key         string   `json:"key"`
	Modifiers   []string `json:"modifiers"`
	Raw         string   `json:"raw"`
	Source      string   `json:"source,omitempty"`
}

// NewCheatSheetEntry converts a binding to its JSON shape
func NewCheatSheetEntry(b domain.Keybinding) CheatSheetEntry {
	modifiers := b.Modifiers
	if modifiers == nil {
		modifiers = []string{}
	}
	var source string
	if b.Source.File != "" {
		source = b.Source.String()
	}
	return CheatSheetEntry{
		Args:        b.Args,
		Category:    b.Category,
		Combo:       b.Combo(),
		Description: b.Description,
		Dispatcher:  b.Dispatcher,
		Flags:       b.Flags,
		Key:         b.Key,
		Modifiers:   modifiers,
		Raw:         b.Raw,
		Source:      source,
	}
}

// BuildCheatSheet groups bindings by category in first-seen order,
// keeping store order within each category
func BuildCheatSheet(bindings []domain.Keybinding) []CheatSheetSection {
	var sections []CheatSheetSection
	index := make(map[string]int)
	for _, b := range bindings {
		i, ok := index[b.Category]
		if !ok {
			i = len(sections)
			index[b.Category] = i
			sections = append(sections, CheatSheetSection{Category: b.Category})
		}
		sections[i].Bindings = append(sections[i].Bindings, b)
	}
	return sections
}

// CheatSheetMarkdown renders sections as a markdown document
func CheatSheetMarkdown(title string, sections []CheatSheetSection) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", title)

	if len(sections) == 0 {
		sb.WriteString("\nNo keybindings found.\n")
		return sb.String()
	}

	for _, section := range sections {
		fmt.Fprintf(&sb, "\n## %s\n\n", escapeCell(section.Category))
		sb.WriteString("| Keys | Action | Description |\n")
		sb.WriteString("| --- | --- | --- |\n")
		for _, b := range section.Bindings {
			fmt.Fprintf(&sb, "| `%s` | `%s` | %s |\n",
				escapeCode(b.Combo()),
				escapeCode(b.Action()),
				escapeCell(b.Description))
		}
	}
	return sb.String()
}

func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.ReplaceAll(text, "|", `\|`)
}

func escapeCode(text string) string {
	text = strings.ReplaceAll(text, "`", "'")
	return escapeCell(text)
}
