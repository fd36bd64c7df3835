package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jchantrell/wadload/internal/database"
	"github.com/jchantrell/wadload/internal/utils"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Write the loaded archive directories into a SQLite database",
	Long: `Index records every loaded archive and directory entry in the database given
by --database. Each lump row is flagged resolved when a lookup by its name
returns that entry. Query the result with 'wadload query'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		start := time.Now()

		catalog, err := openCatalog()
		if err != nil {
			return err
		}
		defer catalog.Close()

		db, err := database.NewDatabase(database.DefaultDatabaseOptions(cfg.Database))
		if err != nil {
			return fmt.Errorf("creating database: %w", err)
		}
		defer db.Close()

		hasTables, err := db.HasUserTables(ctx)
		if err != nil {
			return fmt.Errorf("checking database tables: %w", err)
		}
		if hasTables {
			return fmt.Errorf("database %s already contains tables", cfg.Database)
		}

		if err := database.NewDDLManager(db).CreateSchemas(ctx); err != nil {
			return fmt.Errorf("creating schemas: %w", err)
		}

		archives, lumps := database.RowsFromCatalog(catalog)

		inserter := database.NewBulkInserter(db, database.DefaultBulkInsertOptions())
		if err := inserter.InsertArchives(ctx, archives); err != nil {
			return err
		}

		slog.Info("Indexing lumps", "count", len(lumps), "database", cfg.Database)

		progress := utils.NewProgress(len(lumps), "index", progressEnabled())
		err = inserter.InsertLumps(ctx, lumps, func(inserted int) {
			progress.Update(inserted, "lumps")
		})
		progress.Finish()
		if err != nil {
			return err
		}

		fmt.Printf("Archives indexed: %d\n", len(archives))
		fmt.Printf("Lumps indexed: %s\n", utils.Number(int64(len(lumps))))
		fmt.Printf("Total duration: %s\n", utils.Duration(time.Since(start)))
		fmt.Println("Try running: wadload query --tables")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
