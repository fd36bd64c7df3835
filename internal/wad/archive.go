package wad

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Archive is one ingested file together with the handle used to read its lumps
type Archive struct {
	path   string
	kind   Kind
	reload bool
	file   *os.File
	lumps  []*Lump
	closed bool
}

// OpenArchive ingests a single path. A leading ReloadPrefix is stripped and
// marks every lump of the file for reload reads. Files ending in .wad are
// parsed as multi-lump archives, files ending in .lmp become a single lump
// named after the file. Unsupported extensions and unreadable files return a
// plain error; corrupt input returns a *FatalError.
func OpenArchive(path string) (*Archive, error) {
	realPath, reload := strings.CutPrefix(path, ReloadPrefix)

	base := filepath.Base(realPath)
	ext := filepath.Ext(base)
	if (ext != archiveExt && ext != lumpExt) || ext == base {
		return nil, fmt.Errorf("classifying %s (extension %q): %w", path, ext, ErrUnsupportedFileType)
	}

	file, err := os.Open(realPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", realPath, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("reading metadata for %s: %w", realPath, err)
	}

	a := &Archive{
		path:   realPath,
		reload: reload,
		file:   file,
	}

	if ext == lumpExt {
		err = a.loadStandalone(info.Size())
	} else {
		err = a.loadDirectory(info.Size())
	}
	if err != nil {
		file.Close()
		return nil, err
	}

	slog.Debug("Archive ingested", "path", realPath, "kind", a.kind, "lumps", len(a.lumps), "reload", reload)

	return a, nil
}

// loadStandalone synthesizes the single lump covering a whole .lmp file
func (a *Archive) loadStandalone(size int64) error {
	name := strings.TrimSuffix(filepath.Base(a.path), lumpExt)
	if len(name) > MaxNameLength {
		return fatal("ingest", a.path, name, fmt.Errorf("%d bytes, limit is %d: %w", len(name), MaxNameLength, ErrNameTooLong))
	}

	a.kind = KindLump
	a.lumps = []*Lump{{
		Name:    name,
		Path:    a.path,
		Offset:  0,
		Size:    size,
		Reload:  a.reload,
		archive: a,
	}}
	return nil
}

// loadDirectory parses the header and directory of a .wad file
func (a *Archive) loadDirectory(size int64) error {
	h, err := readHeader(a.file)
	if err != nil {
		return fatal("ingest", a.path, "", err)
	}

	lumps, err := readDirectory(a.file, h, directoryContext{
		path:     a.path,
		reload:   a.reload,
		fileSize: size,
		archive:  a,
	})
	if err != nil {
		return fatal("ingest", a.path, "", err)
	}

	a.kind = h.Kind
	a.lumps = lumps
	return nil
}

// Path returns the file path without the reload prefix
func (a *Archive) Path() string {
	return a.path
}

// Kind returns what kind of file the archive was ingested from
func (a *Archive) Kind() Kind {
	return a.kind
}

// Reload reports whether the archive was ingested with the reload prefix
func (a *Archive) Reload() bool {
	return a.reload
}

// Lumps returns the archive's lumps in directory order
func (a *Archive) Lumps() []*Lump {
	lumps := make([]*Lump, len(a.lumps))
	copy(lumps, a.lumps)
	return lumps
}

// Close releases the archive's file handle. Later reads fail with ErrClosed.
func (a *Archive) Close() error {
	a.closed = true
	if a.file == nil {
		return nil
	}

	err := a.file.Close()
	a.file = nil

	if err != nil {
		return fmt.Errorf("closing %s: %w", a.path, err)
	}

	return nil
}

// find scans the directory from the last entry to the first
func (a *Archive) find(name string) *Lump {
	for i := len(a.lumps) - 1; i >= 0; i-- {
		if a.lumps[i].Name == name {
			return a.lumps[i]
		}
	}
	return nil
}
