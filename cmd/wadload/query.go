package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jchantrell/wadload/internal/database"
	"github.com/jchantrell/wadload/internal/utils"
)

var (
	queryTables bool
	querySchema string
	queryLump   string
)

var queryCmd = &cobra.Command{
	Use:   "query [SQL]",
	Short: "Query the lump index database",
	Long: `Query runs SQL against the lump index written by 'wadload index', lists its
tables, shows a table schema, or reports which archive a lump resolves to.

Example:
  wadload query 'SELECT name, size FROM lumps WHERE resolved = 1 ORDER BY size DESC LIMIT 10'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		slog.Debug("Query parameters",
			"database", cfg.Database,
			"tables", queryTables,
			"schema", querySchema,
			"lump", queryLump)

		db, err := database.NewDatabase(database.DefaultDatabaseOptions(cfg.Database))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

		switch {
		case queryTables:
			tables, err := db.ListTables(ctx)
			if err != nil {
				return err
			}

			fmt.Println("Available tables:")
			for _, tableName := range tables {
				fmt.Printf("  %s\n", tableName)
			}
			return nil

		case querySchema != "":
			columns, err := db.TableInfo(ctx, querySchema)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "Column\tType\tNotNull\tDefault\tPrimary\n")
			for _, c := range columns {
				def := "NULL"
				if c.Default.Valid {
					def = c.Default.String
				}
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%t\n", c.Name, c.Type, c.NotNull, def, c.PrimaryKey)
			}
			return w.Flush()

		case queryLump != "":
			l, err := db.ResolvedLump(ctx, queryLump)
			if err != nil {
				return err
			}

			fmt.Printf("%s resolves to archive %d entry %d (offset %d, %s)\n",
				l.Name, l.ArchiveID, l.Position, l.Offset, utils.Bytes(l.Size))
			return nil

		case len(args) > 0:
			return runQuery(ctx, db, w, args[0])
		}

		return fmt.Errorf("no query provided, use --tables, --schema <table> or --lump <name>")
	},
}

// runQuery prints the result of an arbitrary SQL statement as a table
func runQuery(ctx context.Context, db *database.Database, w *tabwriter.Writer, query string) error {
	slog.Debug("Executing SQL query", "query", query)

	rows, err := db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("getting column names: %w", err)
	}

	fmt.Fprintln(w, strings.Join(columns, "\t"))

	values := make([]any, len(columns))
	valuePtrs := make([]any, len(columns))
	for i := range values {
		valuePtrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(valuePtrs...); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}

		cells := make([]string, len(values))
		for i, val := range values {
			switch v := val.(type) {
			case nil:
				cells[i] = "NULL"
			case []byte:
				cells[i] = string(v)
			default:
				cells[i] = fmt.Sprint(v)
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	return w.Flush()
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().BoolVar(&queryTables, "tables", false, "list available tables")
	queryCmd.Flags().StringVar(&querySchema, "schema", "", "show schema for specified table")
	queryCmd.Flags().StringVar(&queryLump, "lump", "", "show which archive a lump name resolves to")
}
