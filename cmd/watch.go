package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cliphist/pkg/clipboard"
	"cliphist/pkg/logger"
	"cliphist/pkg/monitor"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the clipboard and record changes",
	Long: `Poll the system clipboard and persist every change to the history
database. Consecutive duplicates are suppressed and the history is trimmed
to the configured retention cap after each capture. Runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		log := logger.GetLogger()
		m := monitor.New(clipboard.NewSystemReader(), monitor.WithInterval(cfg.Monitor.PollInterval))

		// The monitor callback is the single writer to the store, so the
		// check-then-insert inside Insert cannot race with itself.
		m.Start(func(content string) {
			id, ok, err := store.Insert(content, "")
			if err != nil {
				log.Error().Err(err).Msg("failed to record clipboard change")
				return
			}
			if !ok {
				log.Debug().Msg("skipped duplicate or empty clipboard content")
				return
			}
			log.Info().Int64("id", id).Int("chars", len([]rune(content))).Msg("recorded clipboard entry")

			if removed, err := store.Trim(cfg.History.MaxEntries); err != nil {
				log.Error().Err(err).Msg("failed to trim history")
			} else if removed > 0 {
				log.Debug().Int64("removed", removed).Msg("trimmed history to retention cap")
			}
		})

		fmt.Printf("Watching clipboard (interval %s). Press Ctrl+C to stop.\n", cfg.Monitor.PollInterval)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		// Stop is cooperative; the loop exits within one poll interval.
		m.Stop()

		return nil
	},
}
