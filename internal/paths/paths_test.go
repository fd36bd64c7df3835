package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileProbes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doom1.wad")

	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("IWAD"), 0o644))
	assert.True(t, FileExists(path))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(dir))
	assert.DirExists(t, dir)
	require.NoError(t, EnsureDir(dir))
}

func TestConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ConfigFileName), ConfigFile())
}

func TestExeDir(t *testing.T) {
	dir, err := ExeDir()
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
