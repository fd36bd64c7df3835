package wad

import (
	"fmt"
	"io"
	"log/slog"
)

// directoryContext carries the ingestion details copied into every lump
type directoryContext struct {
	path     string
	reload   bool
	fileSize int64
	archive  *Archive
}

// readDirectory seeks to the directory and decodes h.NumLumps records in
// on-disk order. Any short read fails the whole directory.
func readDirectory(rs io.ReadSeeker, h Header, dc directoryContext) ([]*Lump, error) {
	if _, err := rs.Seek(int64(h.DirOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to directory at %d: %w", h.DirOffset, err)
	}

	// NumLumps comes straight from the file, so only preallocate what could fit
	capacity := int64(h.NumLumps)
	if remaining := (dc.fileSize - int64(h.DirOffset)) / DirEntrySize; remaining < capacity {
		capacity = max(remaining, 0)
	}
	lumps := make([]*Lump, 0, capacity)

	buf := make([]byte, DirEntrySize)
	for i := uint32(0); i < h.NumLumps; i++ {
		if _, err := io.ReadFull(rs, buf); err != nil {
			return nil, fmt.Errorf("reading directory entry %d of %d: %w: %w", i, h.NumLumps, ErrTruncated, err)
		}

		entry, err := DecodeDirEntry(buf)
		if err != nil {
			return nil, fmt.Errorf("decoding directory entry %d: %w", i, err)
		}

		end := int64(entry.FilePos) + int64(entry.Size)
		if end > dc.fileSize {
			return nil, fmt.Errorf("entry %d %q (offset=%d, size=%d, file size=%d): %w",
				i, entry.NameString(), entry.FilePos, entry.Size, dc.fileSize, ErrLumpOutOfBounds)
		}

		lumps = append(lumps, &Lump{
			Name:    entry.NameString(),
			Path:    dc.path,
			Offset:  int64(entry.FilePos),
			Size:    int64(entry.Size),
			Reload:  dc.reload,
			archive: dc.archive,
		})
	}

	slog.Debug("Directory loaded", "path", dc.path, "lumps", len(lumps), "offset", h.DirOffset)

	return lumps, nil
}
