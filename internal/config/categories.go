package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hypr-showkey/showkey/internal/domain"
)

// Categories is an ordered list of category definitions.
// Declaration order is rule priority, so the YAML mapping order is kept.
type Categories []domain.CategoryDefinition

type categoryEntry struct {
	Description string   `yaml:"description,omitempty"`
	ID          string   `yaml:"id,omitempty"`
	Keywords    []string `yaml:"keywords"`
	Name        string   `yaml:"name,omitempty"`
}

// UnmarshalYAML accepts either a mapping of id -> category or a sequence
func (c *Categories) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		cats := make(Categories, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			id := value.Content[i].Value
			var entry categoryEntry
			if err := value.Content[i+1].Decode(&entry); err != nil {
				return fmt.Errorf("category %q: %w", id, err)
			}
			cats = append(cats, entry.toDefinition(id))
		}
		*c = cats
	case yaml.SequenceNode:
		var entries []categoryEntry
		if err := value.Decode(&entries); err != nil {
			return err
		}
		cats := make(Categories, 0, len(entries))
		for _, entry := range entries {
			cats = append(cats, entry.toDefinition(entry.ID))
		}
		*c = cats
	case yaml.ScalarNode:
		if value.Tag != "!!null" {
			return fmt.Errorf("line %d: categories must be a mapping or a list", value.Line)
		}
		*c = nil
	default:
		return fmt.Errorf("line %d: categories must be a mapping or a list", value.Line)
	}
	return nil
}

// MarshalYAML writes categories as an ordered mapping
func (c Categories) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, cat := range c {
		var value yaml.Node
		entry := categoryEntry{
			Description: cat.Description,
			Keywords:    cat.Keywords,
			Name:        cat.Name,
		}
		if err := value.Encode(entry); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: cat.ID},
			&value)
	}
	return node, nil
}

func (e categoryEntry) toDefinition(id string) domain.CategoryDefinition {
	name := e.Name
	if name == "" {
		name = id
	}
	return domain.CategoryDefinition{
		Description: e.Description,
		ID:          id,
		Keywords:    e.Keywords,
		Name:        name,
	}
}
