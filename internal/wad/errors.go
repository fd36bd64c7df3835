package wad

import (
	"errors"
	"fmt"
)

// Errors returned while ingesting archives and reading lumps.
var (
	// ErrUnsupportedFileType is returned for paths without a .wad or .lmp extension.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrInvalidIdentification is returned when a header is neither IWAD nor PWAD.
	ErrInvalidIdentification = errors.New("invalid wad identification")

	// ErrTruncated is returned when the header or directory ends early.
	ErrTruncated = errors.New("truncated archive")

	// ErrNameTooLong is returned when a lump name exceeds MaxNameLength bytes.
	ErrNameTooLong = errors.New("lump name too long")

	// ErrLumpOutOfBounds is returned when a directory record points past the end of the file.
	ErrLumpOutOfBounds = errors.New("lump extends past end of file")

	// ErrLumpNotFound is returned when no ingested archive contains a lump name.
	ErrLumpNotFound = errors.New("lump not found")

	// ErrReopen is returned when a reload lump's file cannot be opened again.
	ErrReopen = errors.New("unable to reopen file")

	// ErrClosed is returned when reading from a closed archive.
	ErrClosed = errors.New("archive is closed")
)

// FatalError wraps failures that leave the caller unable to continue: corrupt
// input or a request for a lump that must exist. Anything not wrapped in a
// FatalError is limited to the single input that produced it.
type FatalError struct {
	Op   string
	Path string
	Lump string
	Err  error
}

func (e *FatalError) Error() string {
	switch {
	case e.Lump != "" && e.Path != "":
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Lump, e.Path, e.Err)
	case e.Lump != "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Lump, e.Err)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err must abort the ingestion or lookup that produced it
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

func fatal(op, path, lump string, err error) error {
	return &FatalError{Op: op, Path: path, Lump: lump, Err: err}
}
