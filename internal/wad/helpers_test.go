package wad

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeArchive builds an archive with WriteArchive and stores it under dir
func writeArchive(tb testing.TB, dir, name string, kind Kind, lumps ...LumpData) string {
	tb.Helper()

	var buf bytes.Buffer
	require.NoError(tb, WriteArchive(&buf, kind, lumps))

	return writeFile(tb, dir, name, buf.Bytes())
}

func writeFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	require.NoError(tb, os.WriteFile(path, data, 0o644))
	return path
}

func lump(name, data string) LumpData {
	return LumpData{Name: name, Data: []byte(data)}
}

// rawHeader encodes a header without validating the identification
func rawHeader(ident string, numLumps, dirOffset uint32) []byte {
	b := make([]byte, 0, HeaderSize)
	b = append(b, ident...)
	b = append(b, le32(numLumps)...)
	b = append(b, le32(dirOffset)...)
	return b
}

func le32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}
