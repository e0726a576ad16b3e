package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfigHome points XDG_CONFIG_HOME at a scratch directory so the tests
// never see a developer's real override file.
func withConfigHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	old, had := os.LookupEnv("XDG_CONFIG_HOME")
	_ = os.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()
	t.Cleanup(func() {
		if had {
			_ = os.Setenv("XDG_CONFIG_HOME", old)
		} else {
			_ = os.Unsetenv("XDG_CONFIG_HOME")
		}
		xdg.Reload()
	})
	return home
}

func TestEnsureConfigDefaults(t *testing.T) {
	withConfigHome(t)

	c, err := ensureConfig()
	require.NoError(t, err)

	assert.Equal(t, "\n", c.Delimiter)
	assert.Equal(t, 0, c.MaxEntries)
	assert.False(t, c.Humanize)
	assert.Equal(t, "table", c.Output)
	assert.False(t, c.Cache.Enabled)
	assert.Equal(t, 30, c.Cache.TTLSeconds)
}

func TestEnsureConfigUserOverride(t *testing.T) {
	home := withConfigHome(t)

	dir := filepath.Join(home, "clipfiles")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	override := "delimiter: \";\"\ncache:\n  enabled: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clipfiles.yaml"), []byte(override), 0o644))

	c, err := ensureConfig()
	require.NoError(t, err)

	assert.Equal(t, ";", c.Delimiter)
	assert.True(t, c.Cache.Enabled)
	// untouched keys keep their embedded defaults
	assert.Equal(t, "table", c.Output)
	assert.Equal(t, 30, c.Cache.TTLSeconds)
}
