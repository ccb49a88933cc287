package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newPublicKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newPublicKey(t)
	other := newPublicKey(t)

	path := filepath.Join(t.TempDir(), "authorized_keys")
	content := "# comment line\n\nnot a key\n" + string(gossh.MarshalAuthorizedKey(allowed))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	tests := []struct {
		name     string
		key      gossh.PublicKey
		path     string
		expected bool
	}{
		{name: "listed key", key: allowed, path: path, expected: true},
		{name: "unlisted key", key: other, path: path, expected: false},
		{name: "missing file", key: allowed, path: filepath.Join(t.TempDir(), "nope"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isKeyAuthorized(tt.key, tt.path))
		})
	}
}

func TestSessionEnviron(t *testing.T) {
	env := []string{"LANG=C"}

	assert.Equal(t, []string{"LANG=C", "TERM=xterm-kitty"}, sessionEnviron(env, "xterm-kitty"))
	assert.Equal(t, []string{"LANG=C"}, sessionEnviron(env, ""))
	assert.Equal(t, []string{"LANG=C"}, env, "input is not modified")
}
