package wad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHeader(t *testing.T) {
	h, err := DecodeHeader(rawHeader("PWAD", 3, 0x01020304))
	require.NoError(t, err)

	assert.Equal(t, KindPWAD, h.Kind)
	assert.Equal(t, uint32(3), h.NumLumps)
	assert.Equal(t, uint32(0x01020304), h.DirOffset)
}

func TestDecodeHeaderRejectsUnknownIdentification(t *testing.T) {
	for _, ident := range []string{"JWAD", "iwad", "PACK", "\x00\x00\x00\x00"} {
		_, err := DecodeHeader(rawHeader(ident, 1, 12))
		assert.ErrorIs(t, err, ErrInvalidIdentification, ident)
	}
}

func TestDecodeHeaderShortInput(t *testing.T) {
	_, err := DecodeHeader([]byte("IWAD\x01\x00"))
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = DecodeDirEntry(make([]byte, DirEntrySize-1))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestHeaderRoundTrip(t *testing.T) {
	for _, raw := range [][]byte{
		rawHeader("IWAD", 0, 12),
		rawHeader("PWAD", 2306, 4175796),
		rawHeader("IWAD", 0xffffffff, 0xfffffff0),
	} {
		h, err := DecodeHeader(raw)
		require.NoError(t, err)

		encoded, err := EncodeHeader(h)
		require.NoError(t, err)
		assert.Equal(t, raw, encoded)
	}
}

func TestDirEntryRoundTrip(t *testing.T) {
	entries := [][]byte{
		append(append(le32(12), le32(13)...), "DATA\x00\x00\x00\x00"...),
		append(append(le32(67500), le32(10752)...), "E1M1MAPS"...),
		append(append(le32(0), le32(0)...), "S_\x00TART\x00"...),
	}

	for _, raw := range entries {
		e, err := DecodeDirEntry(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, EncodeDirEntry(e))
	}
}

func TestDirEntryNameString(t *testing.T) {
	e, err := DecodeDirEntry(append(append(le32(0), le32(0)...), "S_\x00TART\x00"...))
	require.NoError(t, err)

	// only trailing padding is removed
	assert.Equal(t, "S_\x00TART", e.NameString())

	e, err = DecodeDirEntry(append(append(le32(0), le32(0)...), "PLAYPAL\x00"...))
	require.NoError(t, err)
	assert.Equal(t, "PLAYPAL", e.NameString())
}

func TestEncodeHeaderRejectsStandaloneKind(t *testing.T) {
	_, err := EncodeHeader(Header{Kind: KindLump})
	assert.ErrorIs(t, err, ErrInvalidIdentification)
}

func TestPadName(t *testing.T) {
	n, err := PadName("DATA")
	require.NoError(t, err)
	assert.Equal(t, [MaxNameLength]byte{'D', 'A', 'T', 'A'}, n)

	n, err = PadName("TEXTURE1")
	require.NoError(t, err)
	assert.Equal(t, "TEXTURE1", string(n[:]))

	_, err = PadName("TEXTURE12")
	assert.ErrorIs(t, err, ErrNameTooLong)
}
