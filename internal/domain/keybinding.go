package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Canonical modifier names
const (
	ModSuper = "SUPER"
	ModCtrl  = "CTRL"
	ModAlt   = "ALT"
	ModShift = "SHIFT"
	ModCaps  = "CAPS"
	ModMod2  = "MOD2"
	ModMod3  = "MOD3"
	ModMod5  = "MOD5"
)

// modifierOrder is the display order of canonical modifiers
var modifierOrder = []string{ModSuper, ModCtrl, ModAlt, ModShift, ModCaps, ModMod2, ModMod3, ModMod5}

// modifierAliases maps Hyprland modifier spellings to canonical names
var modifierAliases = map[string]string{
	"SUPER":   ModSuper,
	"WIN":     ModSuper,
	"LOGO":    ModSuper,
	"MOD4":    ModSuper,
	"META":    ModSuper,
	"CTRL":    ModCtrl,
	"CONTROL": ModCtrl,
	"ALT":     ModAlt,
	"MOD1":    ModAlt,
	"SHIFT":   ModShift,
	"CAPS":    ModCaps,
	"MOD2":    ModMod2,
	"MOD3":    ModMod3,
	"MOD5":    ModMod5,
}

// SourceRef points at the file and line a binding was read from
type SourceRef struct {
	File string
	Line int
}

// String formats the reference as file:line
func (s SourceRef) String() string {
	if s.File == "" {
		return fmt.Sprintf("line %d", s.Line)
	}
	return fmt.Sprintf("%s:%d", s.File, s.Line)
}

// Keybinding is a parsed bind directive (domain entity).
// Values are never modified after parsing; Categorize returns copies.
type Keybinding struct {
	Args        string
	Category    string
	Description string
	Dispatcher  string
	Flags       string
	Key         string
	Modifiers   []string
	Raw         string
	Source      SourceRef
}

// Combo returns the display form of the key combination, e.g. "SUPER + SHIFT + Q"
func (k Keybinding) Combo() string {
	if len(k.Modifiers) == 0 {
		return k.Key
	}
	return strings.Join(k.Modifiers, " + ") + " + " + k.Key
}

// Action returns the dispatcher joined with its arguments
func (k Keybinding) Action() string {
	if k.Args == "" {
		return k.Dispatcher
	}
	return k.Dispatcher + ", " + k.Args
}

// SearchText is the text fuzzy queries are matched against
func (k Keybinding) SearchText(includeDescription bool) string {
	text := k.Combo() + " " + k.Dispatcher
	if k.Args != "" {
		text += " " + k.Args
	}
	if includeDescription && k.Description != "" {
		text += " " + k.Description
	}
	return text
}

// HasModifier reports whether the binding uses the given modifier (any spelling)
func (k Keybinding) HasModifier(mod string) bool {
	canonical, ok := CanonicalModifier(mod)
	if !ok {
		return false
	}
	return slices.Contains(k.Modifiers, canonical)
}

// CanonicalModifier folds a modifier token onto its canonical upper-case name.
// Unknown tokens are upper-cased and reported as not recognized.
func CanonicalModifier(token string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(token))
	if canonical, ok := modifierAliases[upper]; ok {
		return canonical, true
	}
	return upper, false
}

// NormalizeModifiers returns the canonical, de-duplicated and ordered modifier set
func NormalizeModifiers(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			continue
		}
		canonical, _ := CanonicalModifier(token)
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		result = append(result, canonical)
	}
	slices.SortStableFunc(result, func(a, b string) int {
		return modifierRank(a) - modifierRank(b)
	})
	return result
}

// NormalizeKey case-folds a key token
func NormalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

func modifierRank(mod string) int {
	if i := slices.Index(modifierOrder, mod); i >= 0 {
		return i
	}
	return len(modifierOrder)
}
