package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypr-showkey/showkey/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadSources_KeepsConfiguredOrder(t *testing.T) {
	dir := t.TempDir()

	var paths []string
	for i := range 20 {
		paths = append(paths, writeFile(t, dir, fmt.Sprintf("f%02d.conf", i), fmt.Sprintf("content %d", i)))
	}

	sources, err := NewReader().ReadSources(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, sources, len(paths))

	for i, src := range sources {
		assert.Equal(t, paths[i], src.Path)
		assert.Equal(t, fmt.Sprintf("content %d", i), src.Content)
		assert.NoError(t, src.Err)
	}
}

func TestReadSources_UnreadableFileIsReported(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "hyprland.conf", "bind = SUPER, T, exec, kitty\n")
	missing := filepath.Join(dir, "missing.conf")

	sources, err := NewReader().ReadSources(context.Background(), []string{missing, good})
	require.NoError(t, err)
	require.Len(t, sources, 2)

	assert.Equal(t, missing, sources[0].Path)
	assert.ErrorIs(t, sources[0].Err, domain.ErrFileUnreadable)
	assert.ErrorIs(t, sources[0].Err, os.ErrNotExist)

	assert.NoError(t, sources[1].Err)
	assert.Contains(t, sources[1].Content, "kitty")
}

func TestReadSources_NoReadableFiles(t *testing.T) {
	dir := t.TempDir()

	sources, err := NewReader().ReadSources(context.Background(), []string{
		filepath.Join(dir, "a.conf"),
		filepath.Join(dir, "b.conf"),
	})

	assert.ErrorIs(t, err, domain.ErrNoConfigFiles)
	assert.Len(t, sources, 2)
}

func TestReadSources_NoPaths(t *testing.T) {
	_, err := NewReader().ReadSources(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoConfigFiles)
}

func TestReadSources_CancelledContext(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hyprland.conf", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReader().ReadSources(ctx, []string{path})
	assert.ErrorIs(t, err, context.Canceled)
}
