package wad

import (
	"fmt"
	"io"
	"math"
)

// WriteArchive writes a new archive of the given kind: header, lump data in
// order, then the directory.
func WriteArchive(w io.Writer, kind Kind, lumps []LumpData) error {
	entries := make([]DirEntry, len(lumps))
	offset := int64(HeaderSize)

	for i, l := range lumps {
		name, err := PadName(l.Name)
		if err != nil {
			return fmt.Errorf("lump %d: %w", i, err)
		}

		entries[i] = DirEntry{
			FilePos: uint32(offset),
			Size:    uint32(len(l.Data)),
			Name:    name,
		}
		offset += int64(len(l.Data))

		if offset > math.MaxUint32 {
			return fmt.Errorf("archive exceeds %d bytes at lump %d (%s)", uint32(math.MaxUint32), i, l.Name)
		}
	}

	header, err := EncodeHeader(Header{
		Kind:      kind,
		NumLumps:  uint32(len(lumps)),
		DirOffset: uint32(offset),
	})
	if err != nil {
		return err
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, l := range lumps {
		if _, err := w.Write(l.Data); err != nil {
			return fmt.Errorf("writing lump %s: %w", l.Name, err)
		}
	}

	for _, e := range entries {
		if _, err := w.Write(EncodeDirEntry(e)); err != nil {
			return fmt.Errorf("writing directory entry %s: %w", e.NameString(), err)
		}
	}

	return nil
}
