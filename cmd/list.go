package cmd

import (
	"cliphist/pkg/errors"

	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List clipboard history entries",
	Long:  "List clipboard history entries, most recent first.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Fetch(listLimit)
		if err != nil {
			return errors.StorageError(err)
		}

		return NewOutputWriter(outputFormat).WriteEntries(entries)
	},
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "Maximum number of entries to show")
}
