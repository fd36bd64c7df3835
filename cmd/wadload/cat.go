package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat NAME",
	Short: "Write the bytes of a lump to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := openCatalog()
		if err != nil {
			return err
		}
		defer catalog.Close()

		data, err := catalog.ResolveAndRead(args[0])
		if err != nil {
			return err
		}

		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing lump %s: %w", args[0], err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
}
