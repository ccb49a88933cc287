package domain

import "iter"

// BindingStore is the ordered, read-only collection of retained keybindings.
// It has no mutating methods; Categorized returns a new store.
type BindingStore struct {
	bindings []Keybinding
}

// NewBindingStore creates a store holding a copy of bindings in the given order
func NewBindingStore(bindings []Keybinding) *BindingStore {
	return &BindingStore{bindings: append([]Keybinding(nil), bindings...)}
}

// Len returns the number of bindings
func (s *BindingStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.bindings)
}

// At returns the binding at index i
func (s *BindingStore) At(i int) Keybinding {
	return s.bindings[i]
}

// All iterates bindings with their store index
func (s *BindingStore) All() iter.Seq2[int, Keybinding] {
	return func(yield func(int, Keybinding) bool) {
		if s == nil {
			return
		}
		for i, b := range s.bindings {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Bindings returns a copy of the bindings slice
func (s *BindingStore) Bindings() []Keybinding {
	if s == nil {
		return nil
	}
	return append([]Keybinding(nil), s.bindings...)
}

// Categorized returns a new store with categories assigned by rules
func (s *BindingStore) Categorized(rules []CategoryRule) *BindingStore {
	if s == nil {
		return NewBindingStore(nil)
	}
	return &BindingStore{bindings: Categorize(s.bindings, rules)}
}

// Categories returns the distinct category labels in first-seen order
func (s *BindingStore) Categories() []string {
	var labels []string
	seen := make(map[string]bool)
	for _, b := range s.All() {
		if b.Category == "" || seen[b.Category] {
			continue
		}
		seen[b.Category] = true
		labels = append(labels, b.Category)
	}
	return labels
}
