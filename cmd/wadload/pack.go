package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jchantrell/wadload/internal/wad"
)

var packPWAD bool

var packCmd = &cobra.Command{
	Use:   "pack OUTPUT.wad FILES...",
	Short: "Build a new WAD from standalone lump files",
	Long: `Pack writes a new archive holding each input file as one lump, in the order
given. Lump names are the file names without extension and must be at most 8
characters. The archive is an IWAD unless --pwad is set.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, inputs := args[0], args[1:]

		lumps := make([]wad.LumpData, 0, len(inputs))
		for _, input := range inputs {
			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("reading %s: %w", input, err)
			}

			base := filepath.Base(input)
			lumps = append(lumps, wad.LumpData{
				Name: strings.TrimSuffix(base, filepath.Ext(base)),
				Data: data,
			})
		}

		kind := wad.KindIWAD
		if packPWAD {
			kind = wad.KindPWAD
		}

		if err := writeArchiveFile(output, kind, lumps); err != nil {
			return err
		}

		slog.Info("Archive written", "path", output, "kind", kind, "lumps", len(lumps))
		return nil
	},
}

// writeArchiveFile writes to a temporary file and renames it over path
func writeArchiveFile(path string, kind wad.Kind, lumps []wad.LumpData) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "wad_*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := wad.WriteArchive(tmp, kind, lumps); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming to %s: %w", path, err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(packCmd)
	packCmd.Flags().BoolVar(&packPWAD, "pwad", false, "write a PWAD instead of an IWAD")
}
