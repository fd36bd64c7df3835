package wad

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// DecodeKind converts a 4 byte identification tag into the archive kind
func DecodeKind(b []byte) (Kind, error) {
	if len(b) < 4 {
		return 0, fmt.Errorf("identification needs 4 bytes, have %d: %w", len(b), ErrTruncated)
	}

	switch {
	case bytes.Equal(b[:4], identIWAD[:]):
		return KindIWAD, nil
	case bytes.Equal(b[:4], identPWAD[:]):
		return KindPWAD, nil
	default:
		return 0, fmt.Errorf("%q: %w", b[:4], ErrInvalidIdentification)
	}
}

// DecodeHeader decodes the fixed 12 byte archive header
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("header needs %d bytes, have %d: %w", HeaderSize, len(b), ErrTruncated)
	}

	kind, err := DecodeKind(b[0:4])
	if err != nil {
		return Header{}, err
	}

	return Header{
		Kind:      kind,
		NumLumps:  binary.LittleEndian.Uint32(b[4:]),
		DirOffset: binary.LittleEndian.Uint32(b[8:]),
	}, nil
}

// DecodeDirEntry decodes one 16 byte directory record
func DecodeDirEntry(b []byte) (DirEntry, error) {
	if len(b) < DirEntrySize {
		return DirEntry{}, fmt.Errorf("directory entry needs %d bytes, have %d: %w", DirEntrySize, len(b), ErrTruncated)
	}

	var e DirEntry
	e.FilePos = binary.LittleEndian.Uint32(b[0:])
	e.Size = binary.LittleEndian.Uint32(b[4:])
	copy(e.Name[:], b[8:16])
	return e, nil
}

// EncodeHeader is the inverse of DecodeHeader
func EncodeHeader(h Header) ([]byte, error) {
	b := make([]byte, HeaderSize)

	switch h.Kind {
	case KindIWAD:
		copy(b[0:4], identIWAD[:])
	case KindPWAD:
		copy(b[0:4], identPWAD[:])
	default:
		return nil, fmt.Errorf("encoding %s header: %w", h.Kind, ErrInvalidIdentification)
	}

	binary.LittleEndian.PutUint32(b[4:], h.NumLumps)
	binary.LittleEndian.PutUint32(b[8:], h.DirOffset)
	return b, nil
}

// EncodeDirEntry is the inverse of DecodeDirEntry
func EncodeDirEntry(e DirEntry) []byte {
	b := make([]byte, DirEntrySize)
	binary.LittleEndian.PutUint32(b[0:], e.FilePos)
	binary.LittleEndian.PutUint32(b[4:], e.Size)
	copy(b[8:16], e.Name[:])
	return b
}

// PadName converts a lump name into its null padded on-disk form
func PadName(name string) ([MaxNameLength]byte, error) {
	var n [MaxNameLength]byte
	if len(name) > MaxNameLength {
		return n, fmt.Errorf("%q is %d bytes: %w", name, len(name), ErrNameTooLong)
	}
	copy(n[:], name)
	return n, nil
}

// TrimName strips the trailing null padding from a lump name. Nulls before
// the last non-null byte are kept.
func TrimName(name string) string {
	return string(bytes.TrimRight([]byte(name), "\x00"))
}

// NameString returns the directory record name without its padding
func (e DirEntry) NameString() string {
	return TrimName(string(e.Name[:]))
}
