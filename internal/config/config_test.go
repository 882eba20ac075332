package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp isolates both scopes: cwd (local) and HOME (global).
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, cfg.Scope())
	assert.True(t, cfg.LogEnabled())
	assert.Equal(t, DefaultLogLimit, cfg.LogLimit())
	assert.True(t, cfg.Colour())
	assert.Empty(t, cfg.AuthorName())
}

func TestSaveAndLoad(t *testing.T) {
	dir := chdirTemp(t)

	cfg, err := LoadScope(ScopeLocal)
	require.NoError(t, err)
	require.NoError(t, cfg.Set("author.name", "Ana"))
	require.NoError(t, cfg.Set("log.enabled", "false"))
	require.NoError(t, cfg.Set("log.limit", "5"))
	require.NoError(t, cfg.Save())

	assert.FileExists(t, filepath.Join(dir, ".cafeval", "config.yaml"))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, loaded.Scope())
	assert.Equal(t, "Ana", loaded.AuthorName())
	assert.False(t, loaded.LogEnabled())
	assert.Equal(t, 5, loaded.LogLimit())
	assert.True(t, loaded.IsSet("log.limit"))
	assert.False(t, loaded.IsSet("output.colour"))
}

func TestEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CAFEVAL_AUTHOR", "from-env")
	t.Setenv("CAFEVAL_LOG_ENABLED", "false")
	t.Setenv("CAFEVAL_COLOUR", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Set("author.name", "from-file"))

	assert.Equal(t, "from-env", cfg.AuthorName())
	assert.False(t, cfg.LogEnabled())
	assert.False(t, cfg.Colour())

	all := cfg.All()
	assert.Equal(t, "from-env", all["author.name"])
	assert.Equal(t, "false", all["log.enabled"])
}

func TestSet_Errors(t *testing.T) {
	cfg := &Config{}

	tests := []struct {
		name  string
		key   string
		value string
		want  error
	}{
		{"unknown key", "nope", "x", ErrUnknownKey},
		{"bad bool", "log.enabled", "yes", ErrInvalidValue},
		{"limit not a number", "log.limit", "many", ErrInvalidValue},
		{"limit too large", "log.limit", "5000", ErrInvalidValue},
		{"limit zero", "log.limit", "0", ErrInvalidValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, cfg.Set(tc.key, tc.value), tc.want)
		})
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".cafeval"), 0755))

	t.Run("malformed yaml", func(t *testing.T) {
		require.NoError(t, os.WriteFile(LocalPath(), []byte("log: [oops"), 0644))
		_, err := Load()
		assert.ErrorContains(t, err, "malformed config file")
	})

	t.Run("limit out of bounds", func(t *testing.T) {
		require.NoError(t, os.WriteFile(LocalPath(), []byte("log:\n  limit: 0\n"), 0644))
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := (&Config{}).Get("author.email")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.False(t, IsValidKey("author.email"))
	assert.True(t, IsValidKey("log.enabled"))
}
