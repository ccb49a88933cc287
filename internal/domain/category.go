package domain

import "strings"

// Uncategorized is the label given to bindings no category rule matched
const Uncategorized = "uncategorized"

// CategoryDefinition describes a configured category
type CategoryDefinition struct {
	Description string
	ID          string
	Keywords    []string
	Name        string
}

// CategoryRule is a keyword rule evaluated first-match-wins
type CategoryRule struct {
	Keywords []string
	Label    string
}

// NewCategoryRule builds a rule with lower-cased, non-empty keywords
func NewCategoryRule(label string, keywords []string) CategoryRule {
	rule := CategoryRule{Label: label, Keywords: make([]string, 0, len(keywords))}
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			rule.Keywords = append(rule.Keywords, kw)
		}
	}
	return rule
}

// Matches reports whether any keyword is a substring of the lower-cased text
func (r CategoryRule) Matches(lowerText string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowerText, kw) {
			return true
		}
	}
	return false
}

// CategoryFor returns the label of the first rule matching the binding's
// dispatcher and args, or Uncategorized.
func CategoryFor(binding Keybinding, rules []CategoryRule) string {
	text := strings.ToLower(binding.Dispatcher + " " + binding.Args)
	for _, rule := range rules {
		if rule.Matches(text) {
			return rule.Label
		}
	}
	return Uncategorized
}

// Categorize returns a copy of bindings with Category assigned from rules.
// The input slice is not modified.
func Categorize(bindings []Keybinding, rules []CategoryRule) []Keybinding {
	result := make([]Keybinding, len(bindings))
	for i, b := range bindings {
		b.Modifiers = append([]string(nil), b.Modifiers...)
		b.Category = CategoryFor(b, rules)
		result[i] = b
	}
	return result
}
