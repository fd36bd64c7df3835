package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFlagKeepsCommas(t *testing.T) {
	t.Cleanup(func() { files = nil })

	flags := rootCmd.PersistentFlags()
	require.NoError(t, flags.Parse([]string{
		"--file", "mods/a,b.wad",
		"-f", "~dev/texture1.lmp",
	}))

	assert.Equal(t, []string{"mods/a,b.wad", "~dev/texture1.lmp"}, files)
}
