package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jchantrell/wadload/internal/wad"
)

func openTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(DefaultDatabaseOptions(filepath.Join(t.TempDir(), "nested", "index.db")))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, NewDDLManager(db).CreateSchemas(context.Background()))
	return db
}

func writeWAD(t *testing.T, dir, name string, kind wad.Kind, lumps ...wad.LumpData) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, wad.WriteArchive(f, kind, lumps))
	return path
}

func TestNewDatabaseRejectsEmptyOptions(t *testing.T) {
	_, err := NewDatabase(nil)
	assert.Error(t, err)

	_, err = NewDatabase(&DatabaseOptions{})
	assert.Error(t, err)
}

func TestCreateSchemas(t *testing.T) {
	ctx := context.Background()
	db := openTestDatabase(t)

	tables, err := db.ListTables(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"archives", "lumps"}, tables)

	has, err := db.HasUserTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	// idempotent
	require.NoError(t, NewDDLManager(db).CreateSchemas(ctx))
}

func TestRowsFromCatalogAndInsert(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	iwadPath := writeWAD(t, dir, "doom1.wad", wad.KindIWAD,
		wad.LumpData{Name: "PLAYPAL", Data: []byte("palette")},
		wad.LumpData{Name: "PNAMES", Data: []byte("names")},
	)
	pwadPath := writeWAD(t, dir, "fix.wad", wad.KindPWAD,
		wad.LumpData{Name: "PNAMES", Data: []byte("fixed names")},
	)

	c := wad.NewCatalog()
	t.Cleanup(func() { c.Close() })
	require.NoError(t, c.Ingest(iwadPath))
	require.NoError(t, c.Ingest(pwadPath))

	archives, lumps := RowsFromCatalog(c)
	require.Len(t, archives, 2)
	require.Len(t, lumps, 3)

	assert.Equal(t, ArchiveRow{ID: 1, Path: iwadPath, Kind: "IWAD", Game: "Doom I (shareware)", Language: "English", LumpCount: 2}, archives[0])
	assert.Equal(t, ArchiveRow{ID: 2, Path: pwadPath, Kind: "PWAD", LumpCount: 1}, archives[1])

	assert.True(t, lumps[0].Resolved)  // PLAYPAL
	assert.False(t, lumps[1].Resolved) // PNAMES overridden
	assert.True(t, lumps[2].Resolved)  // PNAMES from fix.wad

	db := openTestDatabase(t)
	inserter := NewBulkInserter(db, &BulkInsertOptions{BatchSize: 2})
	require.NoError(t, inserter.InsertArchives(ctx, archives))

	var progress []int
	require.NoError(t, inserter.InsertLumps(ctx, lumps, func(n int) { progress = append(progress, n) }))
	assert.Equal(t, []int{2, 3}, progress)

	l, err := db.ResolvedLump(ctx, "PNAMES")
	require.NoError(t, err)
	assert.Equal(t, 2, l.ArchiveID)
	assert.Equal(t, int64(len("fixed names")), l.Size)

	_, err = db.ResolvedLump(ctx, "MISSING")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestInsertLumpsRequiresArchive(t *testing.T) {
	db := openTestDatabase(t)
	inserter := NewBulkInserter(db, nil)

	err := inserter.InsertLumps(context.Background(), []LumpRow{{ArchiveID: 99, Name: "ORPHAN"}}, nil)
	assert.Error(t, err)
}

func TestClosedDatabase(t *testing.T) {
	db, err := NewDatabase(DefaultDatabaseOptions(filepath.Join(t.TempDir(), "index.db")))
	require.NoError(t, err)
	require.NoError(t, db.Close())
	require.NoError(t, db.Close())

	_, err = db.ListTables(context.Background())
	assert.Error(t, err)
}

func TestTableInfo(t *testing.T) {
	db := openTestDatabase(t)

	columns, err := db.TableInfo(context.Background(), "lumps")
	require.NoError(t, err)

	var names []string
	for _, c := range columns {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"archive_id", "position", "name", "offset", "size", "resolved"}, names)
	assert.True(t, columns[0].PrimaryKey)
	assert.True(t, columns[2].NotNull)
	assert.False(t, columns[2].PrimaryKey)

	_, err = db.TableInfo(context.Background(), "nope")
	assert.Error(t, err)
}
