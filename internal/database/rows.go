package database

import (
	"github.com/jchantrell/wadload/internal/iwad"
	"github.com/jchantrell/wadload/internal/wad"
)

// ArchiveRow is one ingested file in the archives table
type ArchiveRow struct {
	ID        int
	Path      string
	Kind      string
	Reload    bool
	Game      string
	Language  string
	LumpCount int
}

// LumpRow is one directory entry in the lumps table
type LumpRow struct {
	ArchiveID int
	Position  int
	Name      string
	Offset    int64
	Size      int64
	// Resolved marks the entry a lookup by Name returns
	Resolved bool
}

// RowsFromCatalog flattens a catalog into table rows. Archive IDs follow
// ingestion order starting at 1.
func RowsFromCatalog(c *wad.Catalog) ([]ArchiveRow, []LumpRow) {
	var archives []ArchiveRow
	var lumps []LumpRow

	for i, a := range c.Archives() {
		id := i + 1
		entries := a.Lumps()

		row := ArchiveRow{
			ID:        id,
			Path:      a.Path(),
			Kind:      a.Kind().String(),
			Reload:    a.Reload(),
			LumpCount: len(entries),
		}
		if info, ok := iwad.Lookup(a.Path()); ok && a.Kind() == wad.KindIWAD {
			row.Game = info.GameType.String()
			row.Language = info.Language.String()
		}
		archives = append(archives, row)

		for pos, l := range entries {
			winner, _ := c.Lookup(l.Name)
			lumps = append(lumps, LumpRow{
				ArchiveID: id,
				Position:  pos,
				Name:      l.Name,
				Offset:    l.Offset,
				Size:      l.Size,
				Resolved:  winner == l,
			})
		}
	}

	return archives, lumps
}
