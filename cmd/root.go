// Package cmd provides the CLI commands for Str8ZeRO.
// This file implements the root command: route a prompt to an agent and run it.
package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/str8zero/str8zero/core/agents"
	"github.com/str8zero/str8zero/core/history"
	"github.com/str8zero/str8zero/core/logging"
	"github.com/str8zero/str8zero/core/mood"
	"github.com/str8zero/str8zero/core/routing"
	"github.com/str8zero/str8zero/core/storage"
)

var (
	rootTask     string
	rootPlatform string
	rootOverride string
	rootAPIKey   string
	rootExplain  bool
	rootDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "str8zero <prompt>",
	Short: "Str8ZeRO - transform symbolic intention into reality",
	Long: `Str8ZeRO routes a natural-language prompt to the best-suited AI agent,
using the prompt's mood and structure, then runs the task with that agent.

Examples:
  str8zero "I need a rebellious, freedom-driven UI sketch" --task vibe-gen
  str8zero "refactor this codebase" --task app-gen
  str8zero "ship it" --task deploy --platform web --override "Claude Code"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoot,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&rootTask, "task", "app-gen", "Task to perform: app-gen, deploy, monetize, vibe-gen")
	rootCmd.Flags().StringVar(&rootPlatform, "platform", "all", "Target platform: android, ios, web, all")
	rootCmd.Flags().BoolVar(&rootExplain, "explain", false, "Show detailed explanation")
	rootCmd.Flags().StringVar(&rootOverride, "override", "", "Override agent selection")
	rootCmd.Flags().StringVar(&rootAPIKey, "api-key", "", "API key for the selected agent")
}

// newLogger builds the shared file logger. Logging must never block the CLI,
// so failures degrade to a no-op logger.
func newLogger() *zap.Logger {
	if err := storage.EnsureAll(); err != nil {
		return zap.NewNop()
	}
	logger, err := logging.New(filepath.Join(storage.StateDir(), "str8zero.log"), rootDebug)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func newDetector(logger *zap.Logger) *mood.Detector {
	cache, err := mood.NewCache(nil)
	if err != nil {
		logger.Warn("classification cache unavailable", zap.Error(err))
		cache = nil
	}
	return mood.NewDetector(mood.DetectorConfig{
		Lexicon:  mood.LoadLexicon(storage.LexiconPath(), logger),
		Patterns: mood.LoadPatterns(storage.PatternsPath(), logger),
		Cache:    cache,
		Logger:   logger,
	})
}

func newCustomRegistry(logger *zap.Logger) *agents.Registry {
	registry := agents.NewRegistry()
	if err := registry.Register(agents.NewMusicAgent(nil)); err != nil {
		logger.Warn("register custom agent", zap.Error(err))
	}
	return registry
}

func runRoot(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	prompt := strings.Join(args, " ")
	logger := newLogger()
	defer logger.Sync()

	fmt.Printf("\n🚀 Str8ZeRO Agent - Processing: '%s'\n", prompt)

	engine := routing.NewEngine(routing.EngineConfig{
		Config:   routing.Load(storage.RoutingConfigPath(), logger),
		Detector: newDetector(logger),
		Logger:   logger,
	})
	decision := engine.Route(prompt, rootTask, rootOverride)

	fmt.Printf("\n🔀 Agent Selected: %s %s\n", decision.Agent, agents.Emoji(decision.Agent))
	fmt.Printf("🧠 Reason: %s\n", decision.Reasoning)
	fmt.Printf("💸 Estimated Cost: $%.2f\n", decision.Cost)

	if rootExplain {
		explainDecision(decision)
	}

	dispatcher := agents.NewDispatcher(agents.DispatcherConfig{
		Registry:  newCustomRegistry(logger),
		Builtins:  agents.NewBuiltinAgents(rootAPIKey, storage.GeneratedAppsDir()),
		Simulator: agents.NewSimulator(nil, storage.GeneratedAppsDir()),
		Logger:    logger,
	})

	result := dispatcher.Dispatch(cmd.Context(), decision.Agent, agents.Request{
		Prompt:   prompt,
		Task:     rootTask,
		Platform: rootPlatform,
		Explain:  rootExplain,
	})
	printResult(result)

	log := history.NewLog(storage.HistoryLogPath(), logger)
	if err := log.Append(history.Entry{
		Prompt:    prompt,
		Task:      rootTask,
		Platform:  rootPlatform,
		Agent:     result.Agent,
		Reasoning: decision.Reasoning,
		Cost:      decision.Cost,
	}); err != nil {
		logger.Warn("log request", zap.Error(err))
	}
	return nil
}

func explainDecision(decision routing.Decision) {
	if len(decision.Emotions) > 0 {
		fmt.Println("\n📊 Mood Analysis:")
		emotions := make([]string, 0, len(decision.Emotions))
		for emotion := range decision.Emotions {
			emotions = append(emotions, emotion)
		}
		sort.Strings(emotions)
		for _, emotion := range emotions {
			fmt.Printf("  • %s: %.2f\n", emotion, decision.Emotions[emotion])
		}
	}
	var matched []string
	for category, set := range decision.Syntax {
		if set {
			matched = append(matched, category)
		}
	}
	sort.Strings(matched)
	if len(matched) > 0 {
		fmt.Printf("\n🧩 Syntax Matches: %s\n", strings.Join(matched, ", "))
	}
}

func printResult(result agents.Result) {
	if !result.Success {
		fmt.Printf("\n❌ Error: %s\n", result.Error)
		return
	}
	if result.Simulated {
		fmt.Println("\n⚠️ Agent integration not available, using simulation")
	}

	switch rootTask {
	case agents.TaskAppGen:
		fmt.Println("\n📱 Generating app...")
		fmt.Println("\n✅ App generated successfully!")
		if result.Output != "" {
			fmt.Println(result.Output)
		}
		if result.Dir != "" {
			fmt.Printf("\n💾 Files saved to: %s\n", result.Dir)
		}
	case agents.TaskVibeGen:
		fmt.Println("\n✨ Generating vibe...")
		fmt.Printf("\n🎵 %s\n", result.Output)
	default:
		fmt.Printf("\n✅ %s\n", result.Output)
	}
}
