package wad

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLumpReloadSeesNewBytes(t *testing.T) {
	dir := t.TempDir()
	path := writeArchive(t, dir, "test.wad", KindIWAD, lump("DATA", "old bytes"))

	c := newTestCatalog(t, ReloadPrefix+path)

	got, err := c.ResolveAndRead("DATA")
	require.NoError(t, err)
	assert.Equal(t, "old bytes", string(got))

	writeArchive(t, dir, "test.wad", KindIWAD, lump("DATA", "new bytes"))

	got, err = c.ResolveAndRead("DATA")
	require.NoError(t, err)
	assert.Equal(t, "new bytes", string(got))
}

func TestReadLumpReloadReplacesHandle(t *testing.T) {
	path := writeArchive(t, t.TempDir(), "test.wad", KindIWAD, lump("DATA", "payload"))

	a, err := OpenArchive(ReloadPrefix + path)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	original := a.file
	l := a.Lumps()[0]

	_, err = a.ReadLump(l)
	require.NoError(t, err)
	first := a.file
	assert.NotSame(t, original, first)

	// the replaced handle has been closed
	_, err = original.Stat()
	assert.ErrorIs(t, err, os.ErrClosed)

	_, err = a.ReadLump(l)
	require.NoError(t, err)
	assert.NotSame(t, first, a.file)
}

func TestReadLumpCachedHandleIsReused(t *testing.T) {
	path := writeArchive(t, t.TempDir(), "test.wad", KindIWAD, lump("DATA", "payload"), lump("MORE", "more"))

	a, err := OpenArchive(path)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	handle := a.file
	for _, l := range a.Lumps() {
		_, err := a.ReadLump(l)
		require.NoError(t, err)
		assert.Same(t, handle, a.file)
	}
}

func TestReadLumpReloadReopenFailureIsFatal(t *testing.T) {
	path := writeArchive(t, t.TempDir(), "test.wad", KindIWAD, lump("DATA", "payload"))

	c := newTestCatalog(t, ReloadPrefix+path)
	require.NoError(t, os.Remove(path))

	_, err := c.ResolveAndRead("DATA")
	require.Error(t, err)
	assert.True(t, IsFatal(err))
	assert.ErrorIs(t, err, ErrReopen)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "DATA")
	assert.Contains(t, err.Error(), path)
}

func TestReadLumpShortFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := writeArchive(t, dir, "test.wad", KindIWAD, lump("DATA", "payload that will shrink"))

	c := newTestCatalog(t, ReloadPrefix+path)
	writeFile(t, dir, "test.wad", []byte("IWAD"))

	_, err := c.ResolveAndRead("DATA")
	require.Error(t, err)
	assert.True(t, IsFatal(err))
}

func TestReadLumpRejectsForeignLump(t *testing.T) {
	dir := t.TempDir()
	c := newTestCatalog(t,
		writeArchive(t, dir, "a.wad", KindIWAD, lump("ONE", "1")),
		writeArchive(t, dir, "b.wad", KindPWAD, lump("TWO", "2")),
	)

	archives := c.Archives()
	two, err := c.Resolve("TWO")
	require.NoError(t, err)

	_, err = archives[0].ReadLump(two)
	assert.Error(t, err)
}

func TestReadEmptyLump(t *testing.T) {
	c := newTestCatalog(t, writeArchive(t, t.TempDir(), "m.wad", KindPWAD, lump("E1M1", "")))

	got, err := c.ResolveAndRead("E1M1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
