package cmd

import (
	"fmt"
	"strconv"

	"cliphist/pkg/clipboard"
	"cliphist/pkg/errors"

	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy a history entry back to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.ValidationError(fmt.Sprintf("invalid entry id %q", args[0]))
		}

		_, store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		entry, err := store.Get(id)
		if err != nil {
			return errors.StorageError(err)
		}
		if entry == nil {
			return errors.EntryNotFoundError(id)
		}

		if err := clipboard.WriteString(entry.Content); err != nil {
			return errors.ClipboardError(err)
		}

		fmt.Printf("Copied entry %d to clipboard (%d chars)\n", entry.ID, entry.CharCount)
		return nil
	},
}
