package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearLogEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDebug, EnvDebugFile, EnvMaxLogFiles} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Cleanup(func() { Logger = discardLogger() })
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		file     bool
		env      map[string]string
		wantPath bool
	}{
		{name: "disabled", wantPath: false},
		{name: "custom file", file: true, wantPath: true},
		{name: "debug in state dir", debug: true, wantPath: true},
		{name: "inherited from parent", env: map[string]string{EnvDebug: "1"}, wantPath: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearLogEnv(t)
			state := t.TempDir()
			t.Setenv("XDG_STATE_HOME", state)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var custom string
			if tt.file {
				custom = filepath.Join(t.TempDir(), "nested", "debug.log")
			}

			path, err := Initialize(tt.debug, custom, DefaultMaxLogFiles)
			require.NoError(t, err)

			if !tt.wantPath {
				assert.Empty(t, path)
				return
			}
			require.NotEmpty(t, path)
			if custom != "" {
				assert.Equal(t, custom, path)
			} else {
				assert.Equal(t, ".log", filepath.Ext(path))
			}

			Logger.Info("hello", "key", "value")
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"msg":"hello"`)
		})
	}
}

func TestRotateLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	names := []string{"a.log", "b.log", "c.log", "d.log"}
	for i, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, nil, 0644))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, mod, mod))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var remaining []string
	for _, e := range entries {
		remaining = append(remaining, e.Name())
	}
	assert.ElementsMatch(t, []string{"c.log", "d.log", "notes.txt"}, remaining)
}
