package database

import (
	"context"
	"fmt"
)

// DDLRequest is one statement executed while creating the index schema
type DDLRequest struct {
	TableName string
	DDL       string
}

// DDLManager handles schema creation for the lump index
type DDLManager struct {
	db *Database
}

// NewDDLManager creates a new DDL manager
func NewDDLManager(db *Database) *DDLManager {
	return &DDLManager{db: db}
}

// schemaRequests lists the statements that make up the index schema
func schemaRequests() []DDLRequest {
	return []DDLRequest{
		{
			TableName: "archives",
			DDL: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    "id" INTEGER PRIMARY KEY,
    "path" TEXT NOT NULL,
    "kind" TEXT NOT NULL,
    "reload" INTEGER NOT NULL,
    "game" TEXT,
    "language" TEXT,
    "lump_count" INTEGER NOT NULL
)`, quoteSQLIdentifier("archives")),
		},
		{
			TableName: "lumps",
			DDL: fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    "archive_id" INTEGER NOT NULL,
    "position" INTEGER NOT NULL,
    "name" TEXT NOT NULL,
    "offset" INTEGER NOT NULL,
    "size" INTEGER NOT NULL,
    "resolved" INTEGER NOT NULL,
    PRIMARY KEY (archive_id, position),
    FOREIGN KEY (archive_id) REFERENCES %s(id)
)`, quoteSQLIdentifier("lumps"), quoteSQLIdentifier("archives")),
		},
		{
			TableName: "lumps",
			DDL:       `CREATE INDEX IF NOT EXISTS "lumps_name" ON "lumps" ("name")`,
		},
	}
}

// CreateSchemas creates the archives and lumps tables in a single transaction
func (dm *DDLManager) CreateSchemas(ctx context.Context) error {
	if dm.db == nil {
		return fmt.Errorf("database cannot be nil")
	}

	return dm.executeDDLTransaction(ctx, schemaRequests())
}

// executeDDLTransaction executes DDL statements in a single transaction
func (dm *DDLManager) executeDDLTransaction(ctx context.Context, ddlRequests []DDLRequest) error {
	if len(ddlRequests) == 0 {
		return nil
	}

	tx, err := dm.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning schema transaction: %w", err)
	}
	defer tx.Rollback() // Safe to call even after commit

	for _, req := range ddlRequests {
		if _, err := tx.ExecContext(ctx, req.DDL); err != nil {
			return fmt.Errorf("executing DDL for %s: %w", req.TableName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}

	return nil
}

// quoteSQLIdentifier quotes SQL identifiers to prevent conflicts with reserved words
func quoteSQLIdentifier(identifier string) string {
	// In SQLite, identifiers can be quoted with double quotes
	return fmt.Sprintf(`"%s"`, identifier)
}
