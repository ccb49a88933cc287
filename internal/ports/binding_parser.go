package ports

import "github.com/hypr-showkey/showkey/internal/domain"

// BindingParser parses config lines into keybindings
type BindingParser interface {
	// Parse returns (nil, nil) for non-bind lines, an error wrapping
	// domain.ErrUnboundLine or domain.ErrMalformedLine for dropped bind lines
	Parse(text string, ref domain.SourceRef) (*domain.Keybinding, error)
}

// BindingParserFactory creates a parser with fresh variable state
type BindingParserFactory func() BindingParser
