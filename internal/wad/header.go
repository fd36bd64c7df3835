package wad

import (
	"fmt"
	"io"
)

// readHeader reads and decodes the archive header from the current position of r
func readHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, fmt.Errorf("reading header: %w: %w", ErrTruncated, err)
	}

	h, err := DecodeHeader(buf)
	if err != nil {
		return Header{}, fmt.Errorf("decoding header: %w", err)
	}

	return h, nil
}
