package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jchantrell/wadload/internal/export"
	"github.com/jchantrell/wadload/internal/utils"
)

var outputDir string

var extractCmd = &cobra.Command{
	Use:   "extract [NAMES...]",
	Short: "Write resolved lumps to disk as .lmp files",
	Long: `Extract resolves each named lump and writes it to the output directory as
NAME.lmp. Without names every distinct lump name in the loaded archives is
extracted. Overridden lumps are written in their winning version, so the
output can be fed back with --file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		catalog, err := openCatalog()
		if err != nil {
			return err
		}
		defer catalog.Close()

		names := args
		if len(names) == 0 {
			seen := make(map[string]bool)
			for _, l := range catalog.Lumps() {
				if !seen[l.Name] {
					seen[l.Name] = true
					names = append(names, l.Name)
				}
			}
		}

		if len(names) == 0 {
			slog.Info("No lumps to extract")
			return nil
		}

		slog.Info("Extracting lumps", "count", len(names), "output", outputDir)

		progress := utils.NewProgress(len(names), "extract", progressEnabled())
		exporter := export.NewExporter(catalog, outputDir)

		written, err := exporter.ExportLumps(names, func(current, total int, description string) {
			progress.Update(current, description)
		})
		progress.Finish()
		if err != nil {
			return fmt.Errorf("extracting lumps: %w", err)
		}

		fmt.Printf("Lumps written: %s\n", utils.Number(int64(len(written))))
		fmt.Printf("Output directory: %s\n", outputDir)
		fmt.Printf("Total duration: %s\n", utils.Duration(time.Since(start)))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&outputDir, "output", "o", "lumps", "directory the lumps are written to")
}
