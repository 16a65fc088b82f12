package cmd

import "github.com/spf13/cobra"

func RegisterCommands(root *cobra.Command) {
	root.AddCommand(versionCmd)

	root.AddCommand(listCmd)
	root.AddCommand(searchCmd)
	root.AddCommand(copyCmd)
	root.AddCommand(deleteCmd)
	root.AddCommand(clearCmd)
	root.AddCommand(trimCmd)
	root.AddCommand(watchCmd)
	root.AddCommand(configCmd)
}
