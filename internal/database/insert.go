package database

import (
	"context"
	"fmt"
	"log/slog"
)

// BulkInserter handles efficient batch insertion of catalog rows
type BulkInserter struct {
	db        *Database
	batchSize int
}

// BulkInsertOptions configures bulk insertion behavior
type BulkInsertOptions struct {
	// BatchSize determines how many rows to insert per transaction
	BatchSize int
}

// DefaultBulkInsertOptions returns sensible defaults for bulk insertion
func DefaultBulkInsertOptions() *BulkInsertOptions {
	return &BulkInsertOptions{
		BatchSize: 1000,
	}
}

// NewBulkInserter creates a new bulk inserter with the given database and options
func NewBulkInserter(db *Database, options *BulkInsertOptions) *BulkInserter {
	if options == nil || options.BatchSize <= 0 {
		options = DefaultBulkInsertOptions()
	}

	return &BulkInserter{
		db:        db,
		batchSize: options.BatchSize,
	}
}

const (
	insertArchiveSQL = `INSERT INTO "archives" ("id", "path", "kind", "reload", "game", "language", "lump_count") VALUES (?, ?, ?, ?, ?, ?, ?)`
	insertLumpSQL    = `INSERT INTO "lumps" ("archive_id", "position", "name", "offset", "size", "resolved") VALUES (?, ?, ?, ?, ?, ?)`
)

// InsertArchives inserts archive rows in a single transaction
func (bi *BulkInserter) InsertArchives(ctx context.Context, rows []ArchiveRow) error {
	values := make([][]any, len(rows))
	for i, r := range rows {
		values[i] = []any{r.ID, r.Path, r.Kind, r.Reload, nullString(r.Game), nullString(r.Language), r.LumpCount}
	}

	if err := bi.insertBatch(ctx, insertArchiveSQL, values); err != nil {
		return fmt.Errorf("inserting archives: %w", err)
	}
	return nil
}

// InsertLumps inserts lump rows in transactions of BatchSize rows
func (bi *BulkInserter) InsertLumps(ctx context.Context, rows []LumpRow, progress func(inserted int)) error {
	if len(rows) == 0 {
		slog.Debug("No lumps to insert")
		return nil
	}

	for i := 0; i < len(rows); i += bi.batchSize {
		end := min(i+bi.batchSize, len(rows))

		batch := make([][]any, 0, end-i)
		for _, r := range rows[i:end] {
			batch = append(batch, []any{r.ArchiveID, r.Position, r.Name, r.Offset, r.Size, r.Resolved})
		}

		if err := bi.insertBatch(ctx, insertLumpSQL, batch); err != nil {
			return fmt.Errorf("inserting lump batch %d-%d: %w", i, end-1, err)
		}

		if progress != nil {
			progress(end)
		}
	}

	return nil
}

// insertBatch executes one prepared statement per row within a transaction
func (bi *BulkInserter) insertBatch(ctx context.Context, insertSQL string, batch [][]any) error {
	tx, err := bi.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback() // Safe to call even after commit

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert statement: %w", err)
	}
	defer stmt.Close()

	for i, values := range batch {
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
