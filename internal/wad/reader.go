package wad

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ReadLump returns exactly l.Size bytes of the lump. Reload lumps are read
// through a freshly opened handle which then replaces the cached one, so an
// archive never holds more than one open file.
func (a *Archive) ReadLump(l *Lump) ([]byte, error) {
	if l.archive != a {
		return nil, fmt.Errorf("lump %s belongs to %s, not %s", l.Name, l.Path, a.path)
	}

	if a.closed {
		return nil, fatal("read", l.Path, l.Name, ErrClosed)
	}

	if l.Reload {
		return a.reloadLump(l)
	}

	data, err := readRange(a.file, l.Offset, l.Size)
	if err != nil {
		return nil, fatal("read", l.Path, l.Name, err)
	}

	return data, nil
}

func (a *Archive) reloadLump(l *Lump) ([]byte, error) {
	file, err := os.Open(l.Path)
	if err != nil {
		return nil, fatal("reload", l.Path, l.Name, fmt.Errorf("%w: %w", ErrReopen, err))
	}

	data, err := readRange(file, l.Offset, l.Size)
	if err != nil {
		file.Close()
		return nil, fatal("reload", l.Path, l.Name, err)
	}

	previous := a.file
	a.file = file
	if previous != nil {
		if err := previous.Close(); err != nil {
			slog.Warn("Failed to close replaced handle", "path", a.path, "error", err)
		}
	}

	slog.Debug("Lump reloaded", "lump", l.Name, "path", l.Path, "size", l.Size)

	return data, nil
}

// readRange seeks to offset and reads exactly size bytes
func readRange(rs io.ReadSeeker, offset, size int64) ([]byte, error) {
	if _, err := rs.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to %d: %w", offset, err)
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(rs, data); err != nil {
		return nil, fmt.Errorf("reading %d bytes at %d: %w", size, offset, err)
	}

	return data, nil
}
