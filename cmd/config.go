package cmd

import (
	"fmt"

	"cliphist/pkg/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		writer := NewOutputWriter(outputFormat)
		if writer.IsStructured() {
			return writer.Write(cfg)
		}

		path, err := config.GetConfigPath()
		if err == nil {
			fmt.Printf("Config file: %s\n\n", path)
		}
		fmt.Printf("history.db_path:       %s\n", cfg.History.DBPath)
		fmt.Printf("history.max_entries:   %d\n", cfg.History.MaxEntries)
		fmt.Printf("monitor.poll_interval: %s\n", cfg.Monitor.PollInterval)
		fmt.Printf("log.level:             %s\n", cfg.Log.Level)
		return nil
	},
}
