package cmd

import (
	"fmt"
	"strconv"

	"cliphist/pkg/errors"

	"github.com/spf13/cobra"
)

var trimKeep int

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a single history entry",
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

		if err := store.Delete(id); err != nil {
			return errors.StorageError(err)
		}

		fmt.Printf("Deleted entry %d\n", id)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all clipboard history",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		count, err := store.Count()
		if err != nil {
			return errors.StorageError(err)
		}

		confirmed, err := ConfirmDestructive("delete all clipboard history", map[string]string{
			"Entries": strconv.FormatInt(count, 10),
		})
		if err != nil {
			return err
		}
		if !confirmed {
			if IsDryRun() {
				return nil
			}
			return errors.CancelledError("clear clipboard history")
		}

		if err := store.Clear(); err != nil {
			return errors.StorageError(err)
		}

		fmt.Printf("Cleared %d entries\n", count)
		return nil
	},
}

var trimCmd = &cobra.Command{
	Use:   "trim",
	Short: "Delete all but the most recent entries",
	Long:  "Delete all but the N most recent entries. N defaults to the configured retention cap.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		keep := trimKeep
		if !cmd.Flags().Changed("keep") {
			keep = cfg.History.MaxEntries
		}
		if keep < 1 {
			return errors.ValidationError("--keep must be at least 1")
		}

		if IsDryRun() {
			count, err := store.Count()
			if err != nil {
				return errors.StorageError(err)
			}
			removed := count - int64(keep)
			if removed < 0 {
				removed = 0
			}
			PrintDryRun("Would remove %d of %d entries, keeping the %d most recent", removed, count, keep)
			return nil
		}

		removed, err := store.Trim(keep)
		if err != nil {
			return errors.StorageError(err)
		}

		fmt.Printf("Removed %d entries, kept the %d most recent\n", removed, keep)
		return nil
	},
}

func init() {
	trimCmd.Flags().IntVar(&trimKeep, "keep", 0, "Number of most recent entries to keep")
}
