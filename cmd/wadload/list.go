package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jchantrell/wadload/internal/iwad"
	"github.com/jchantrell/wadload/internal/utils"
	"github.com/jchantrell/wadload/internal/wad"
)

var listResolved bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the loaded archives and their lumps",
	Long: `List prints every loaded archive followed by its directory. With --resolved
only the entries a lookup by name would return are printed; overridden entries
are hidden.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := openCatalog()
		if err != nil {
			return err
		}
		defer catalog.Close()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

		for i, a := range catalog.Archives() {
			desc := a.Kind().String()
			if info, ok := iwad.Lookup(a.Path()); ok && a.Kind() == wad.KindIWAD {
				desc = fmt.Sprintf("%s, %s, %s", desc, info.GameType, info.Language)
			}
			if a.Reload() {
				desc += ", reload"
			}
			fmt.Fprintf(w, "# %d %s (%s)\n", i+1, a.Path(), desc)

			for pos, l := range a.Lumps() {
				winner, _ := catalog.Lookup(l.Name)
				if listResolved && winner != l {
					continue
				}

				mark := ""
				if winner != l {
					mark = "overridden"
				}
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", pos, l.Name, l.Offset, utils.Bytes(l.Size), mark)
			}
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listResolved, "resolved", false, "only show entries that win name lookups")
}
