package filesystem

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/logging"
	"github.com/hypr-showkey/showkey/internal/ports"
)

// maxConcurrentReads bounds the number of files read at once
const maxConcurrentReads = 8

// Reader reads Hyprland config files from disk
type Reader struct{}

// Verify interface compliance at compile time
var _ ports.SourceReader = (*Reader)(nil)

// NewReader creates a new filesystem reader
func NewReader() *Reader {
	return &Reader{}
}

// ReadSources reads all paths concurrently and returns them in the given order.
// A file that cannot be read carries an error wrapping domain.ErrFileUnreadable.
// When no file at all could be read it returns domain.ErrNoConfigFiles along
// with the per-file results.
func (r *Reader) ReadSources(ctx context.Context, paths []string) ([]domain.ConfigSource, error) {
	logging.Logger.Debug("Reading config sources", "count", len(paths))

	sources := make([]domain.ConfigSource, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sources[i] = readSource(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to read config sources: %w", err)
	}

	readable := 0
	for _, src := range sources {
		if src.Err != nil {
			logging.Logger.Warn("Hyprland config file unreadable", "path", src.Path, "error", src.Err)
			continue
		}
		readable++
	}

	logging.Logger.Debug("Config sources read", "readable", readable, "total", len(sources))

	if readable == 0 {
		return sources, domain.ErrNoConfigFiles
	}
	return sources, nil
}

func readSource(path string) domain.ConfigSource {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigSource{
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrFileUnreadable, err),
		}
	}
	return domain.ConfigSource{
		Content: string(data),
		Path:    path,
	}
}
