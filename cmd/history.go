// This file implements the history command: show past dispatches.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/str8zero/str8zero/core/agents"
	"github.com/str8zero/str8zero/core/history"
	"github.com/str8zero/str8zero/core/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent agent dispatches",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(*cobra.Command, []string) error {
	logger := newLogger()
	defer logger.Sync()

	entries := history.NewLog(storage.HistoryLogPath(), logger).Tail(historyLimit)
	if len(entries) == 0 {
		fmt.Println("\n📜 No history yet.")
		return nil
	}

	fmt.Println("\n📜 Recent Requests:")
	for _, entry := range entries {
		fmt.Printf("  %s  %s %s [%s] $%.2f\n",
			entry.Timestamp.Local().Format("2006-01-02 15:04"),
			entry.Agent, agents.Emoji(entry.Agent), entry.Task, entry.Cost)
		fmt.Printf("    '%s'\n", entry.Prompt)
	}
	return nil
}
