// This file implements the agents command: list available agents.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/str8zero/str8zero/core/agents"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List all available agents",
	RunE:  runAgents,
}

func init() {
	rootCmd.AddCommand(agentsCmd)
}

func runAgents(*cobra.Command, []string) error {
	logger := newLogger()
	defer logger.Sync()

	fmt.Println("\n🤖 Available Agents:")
	fmt.Println("  • Built-in Agents:")
	for _, name := range []string{"Aider", "Gemini CLI", "Codex CLI", "Claude Code"} {
		fmt.Printf("    - %s %s\n", name, agents.Emoji(name))
	}

	registry := newCustomRegistry(logger)
	if names := registry.Names(); len(names) > 0 {
		fmt.Println("\n  • Custom Agents:")
		for _, name := range names {
			fmt.Printf("    - %s %s\n", name, agents.Emoji(name))
		}
	}
	return nil
}
