package wad

import (
	"errors"
	"fmt"
	"log/slog"
)

// Catalog resolves lump names across archives in ingestion order. Later
// archives override earlier ones, and within an archive later directory
// entries override earlier ones.
//
// A Catalog is not safe for concurrent use: reload reads replace the owning
// archive's handle.
type Catalog struct {
	archives []*Archive
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Ingest opens path and appends it to the catalog
func (c *Catalog) Ingest(path string) error {
	archive, err := OpenArchive(path)
	if err != nil {
		return err
	}

	c.archives = append(c.archives, archive)
	return nil
}

// IngestAll ingests paths in order. Inputs failing with a recoverable error
// are logged and skipped; the first fatal error stops ingestion and is
// returned. It returns the number of paths ingested.
func (c *Catalog) IngestAll(paths []string) (int, error) {
	ingested := 0
	for _, path := range paths {
		if err := c.Ingest(path); err != nil {
			if IsFatal(err) {
				return ingested, err
			}
			slog.Warn("Skipping file", "path", path, "error", err)
			continue
		}
		ingested++
	}

	slog.Debug("Catalog loaded", "requested", len(paths), "ingested", ingested)

	return ingested, nil
}

// Lookup finds the lump that currently answers to name
func (c *Catalog) Lookup(name string) (*Lump, bool) {
	name = TrimName(name)
	for i := len(c.archives) - 1; i >= 0; i-- {
		if l := c.archives[i].find(name); l != nil {
			return l, true
		}
	}
	return nil, false
}

// Resolve is Lookup for lumps that must exist; a miss is fatal
func (c *Catalog) Resolve(name string) (*Lump, error) {
	l, ok := c.Lookup(name)
	if !ok {
		return nil, fatal("resolve", "", TrimName(name), ErrLumpNotFound)
	}
	return l, nil
}

// Read returns the bytes of a lump previously returned by the catalog
func (c *Catalog) Read(l *Lump) ([]byte, error) {
	if l == nil || l.archive == nil {
		return nil, errors.New("lump has no owning archive")
	}
	return l.archive.ReadLump(l)
}

// ResolveAndRead resolves name and reads its bytes
func (c *Catalog) ResolveAndRead(name string) ([]byte, error) {
	l, err := c.Resolve(name)
	if err != nil {
		return nil, err
	}
	return c.Read(l)
}

// Has reports whether any archive contains name
func (c *Catalog) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Archives returns the ingested archives in ingestion order
func (c *Catalog) Archives() []*Archive {
	archives := make([]*Archive, len(c.archives))
	copy(archives, c.archives)
	return archives
}

// Lumps returns every lump, archive by archive, in directory order
func (c *Catalog) Lumps() []*Lump {
	var lumps []*Lump
	for _, a := range c.archives {
		lumps = append(lumps, a.lumps...)
	}
	return lumps
}

// Close closes every archive and empties the catalog
func (c *Catalog) Close() error {
	var errs []error
	for _, a := range c.archives {
		if err := a.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.archives = nil

	if len(errs) > 0 {
		return fmt.Errorf("closing catalog: %w", errors.Join(errs...))
	}
	return nil
}
