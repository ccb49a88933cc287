package hyprland

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/ports"
)

// bindFlagLetters are the flag suffixes Hyprland accepts after "bind"
const bindFlagLetters = "lrenmtisdpocg"

var variablePattern = regexp.MustCompile(`\$[A-Za-z_][A-Za-z0-9_]*`)

// Parser parses Hyprland config lines into keybindings.
// It remembers $variable definitions seen so far, so one Parser should be
// used for all files of a single ingestion, in order.
type Parser struct {
	vars map[string]string
}

// Verify interface compliance at compile time
var _ ports.BindingParser = (*Parser)(nil)

// NewParser creates a parser with the default $mainMod and $shiftMod variables
func NewParser() *Parser {
	return &Parser{
		vars: map[string]string{
			"mainMod":  "SUPER",
			"shiftMod": "SHIFT",
		},
	}
}

// NewBindingParser returns a fresh parser as a ports.BindingParser
func NewBindingParser() ports.BindingParser {
	return NewParser()
}

// ParseLine parses a single line with default variables.
// It returns false for anything that is not a retained bind directive.
func ParseLine(text string) (domain.Keybinding, bool) {
	binding, err := NewParser().Parse(text, domain.SourceRef{})
	if err != nil || binding == nil {
		return domain.Keybinding{}, false
	}
	return *binding, true
}

// Parse parses one line.
//
// It returns (nil, nil) for lines that are not bind directives, an error
// wrapping domain.ErrUnboundLine for unbind/empty directives, and an error
// wrapping domain.ErrMalformedLine when required fields are missing.
func (p *Parser) Parse(text string, ref domain.SourceRef) (*domain.Keybinding, error) {
	line := strings.TrimSpace(text)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	statement, comment := splitComment(line)
	keyword, value, ok := cutDirective(statement)
	if !ok {
		return nil, nil
	}
	keyword = strings.TrimSpace(keyword)
	value = strings.TrimSpace(value)

	if strings.HasPrefix(keyword, "$") {
		p.vars[keyword[1:]] = p.substitute(value)
		return nil, nil
	}

	if keyword == "unbind" {
		return nil, fmt.Errorf("%w: unbind directive", domain.ErrUnboundLine)
	}

	flags, isBind := bindFlags(keyword)
	if !isBind {
		return nil, nil
	}

	hasDescription := strings.ContainsRune(flags, 'd')
	required := 3
	if hasDescription {
		required = 4
	}

	fields := splitFields(value, required+1)
	if len(fields) < required {
		return nil, fmt.Errorf("%w: expected at least %d comma-separated fields, got %d",
			domain.ErrMalformedLine, required, len(fields))
	}

	var description string
	if hasDescription {
		description = fields[2]
		fields = append(fields[:2], fields[3:]...)
	}

	key := domain.NormalizeKey(p.substitute(fields[1]))
	dispatcher := fields[2]
	var args string
	if len(fields) > 3 {
		args = fields[3]
	}

	if key == "" || dispatcher == "" || dispatcher == "unbind" {
		return nil, fmt.Errorf("%w: key %q dispatcher %q", domain.ErrUnboundLine, key, dispatcher)
	}

	if description == "" {
		description = comment
	}
	if description == "" {
		description = GenerateDescription(dispatcher, args)
	}

	return &domain.Keybinding{
		Args:        args,
		Category:    domain.Uncategorized,
		Description: description,
		Dispatcher:  dispatcher,
		Flags:       flags,
		Key:         key,
		Modifiers:   domain.NormalizeModifiers(splitModifiers(p.substitute(fields[0]))),
		Raw:         keyword + " = " + value,
		Source:      ref,
	}, nil
}

// substitute replaces known $variables; unknown ones are left as written
func (p *Parser) substitute(text string) string {
	if !strings.Contains(text, "$") {
		return text
	}
	return variablePattern.ReplaceAllStringFunc(text, func(ref string) string {
		if value, ok := p.vars[ref[1:]]; ok {
			return value
		}
		return ref
	})
}

// cutDirective splits "keyword = value". Bind directives may omit the
// "=", as in "bind SUPER, T, exec, kitty".
func cutDirective(statement string) (keyword, value string, ok bool) {
	head, rest, found := strings.Cut(statement, "=")
	word, tail, spaced := strings.Cut(statement, " ")
	if spaced && (!found || len(word) < len(strings.TrimSpace(head))) {
		if _, isBind := bindFlags(word); isBind || word == "unbind" {
			return word, tail, true
		}
	}
	return head, rest, found
}

// bindFlags returns the flag letters of a bind keyword such as "binde" or "bindel"
func bindFlags(keyword string) (string, bool) {
	rest, ok := strings.CutPrefix(keyword, "bind")
	if !ok {
		return "", false
	}
	for _, r := range rest {
		if !strings.ContainsRune(bindFlagLetters, r) {
			return "", false
		}
	}
	return rest, true
}

// splitComment separates a trailing "# comment" outside quotes.
// "##" is Hyprland's escape for a literal '#'.
func splitComment(line string) (string, string) {
	var statement strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == '#' && !inQuotes:
			if i+1 < len(line) && line[i+1] == '#' {
				statement.WriteByte('#')
				i++
				continue
			}
			return strings.TrimSpace(statement.String()), strings.TrimSpace(line[i+1:])
		}
		statement.WriteByte(c)
	}
	return strings.TrimSpace(statement.String()), ""
}

// splitFields splits on commas outside quotes and parentheses into at most
// limit fields; the last field keeps the remaining text verbatim.
// Empty fields keep their position.
func splitFields(value string, limit int) []string {
	var fields []string
	inQuotes := false
	depth := 0
	start := 0
	for i := 0; i < len(value) && len(fields) < limit-1; i++ {
		switch value[i] {
		case '"':
			inQuotes = !inQuotes
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if inQuotes || depth > 0 {
				continue
			}
			fields = append(fields, strings.TrimSpace(value[start:i]))
			start = i + 1
		}
	}
	return append(fields, strings.TrimSpace(value[start:]))
}

// splitModifiers splits a modifier field on '+', '_' and whitespace
func splitModifiers(field string) []string {
	return strings.FieldsFunc(field, func(r rune) bool {
		return r == '+' || r == '_' || unicode.IsSpace(r)
	})
}
