package ports

import (
	"context"

	"github.com/hypr-showkey/showkey/internal/domain"
)

// SourceReader resolves and reads Hyprland config files
type SourceReader interface {
	// ReadSources returns one ConfigSource per configured path, in order.
	// Unreadable files carry an Err instead of failing the whole read.
	ReadSources(ctx context.Context, paths []string) ([]domain.ConfigSource, error)
}
