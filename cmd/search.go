package cmd

import (
	"cliphist/pkg/errors"

	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search clipboard history",
	Long: `Search clipboard history for entries containing the query as a
case-sensitive substring. Wildcard characters in the query match literally.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Search(args[0], searchLimit)
		if err != nil {
			return errors.StorageError(err)
		}

		return NewOutputWriter(outputFormat).WriteEntries(entries)
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "Maximum number of entries to show")
}
