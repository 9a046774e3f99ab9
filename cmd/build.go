// This file implements the build command: run the full app pipeline.
package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/str8zero/str8zero/core/pipeline"
	"github.com/str8zero/str8zero/core/profile"
	"github.com/str8zero/str8zero/core/storage"
)

var (
	buildUser string
	buildJSON bool
)

var buildCmd = &cobra.Command{
	Use:   "build <prompt>",
	Short: "Build a complete app blueprint from a prompt",
	Long: `Build runs the full pipeline: interpret the prompt, generate app logic
and UI, configure monetization, create a marketing plan, and prepare
deployment. The result is recorded in the user's profile history.

Examples:
  str8zero build "I'm tired of checking my utility bills"
  str8zero build --user alice --json "remind me about my appointments"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildUser, "user", "default", "Profile to record the build against")
	buildCmd.Flags().BoolVar(&buildJSON, "json", false, "Emit the full result as JSON")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	prompt := strings.Join(args, " ")
	logger := newLogger()
	defer logger.Sync()

	orchestrator := pipeline.New(pipeline.Config{
		Detector: newDetector(logger),
		Profiles: profile.NewStore(storage.ProfilesDir(), logger),
		Logger:   logger,
	})

	result, err := orchestrator.Build(cmd.Context(), buildUser, prompt)
	if err != nil {
		return err
	}

	if buildJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("\n🏗️  Build %s\n", result.ID)
	fmt.Printf("\n🎯 Intent: %s (%s, %s)\n", result.Intent.Goal, result.Intent.Domain, result.Intent.Emotion)
	fmt.Printf("📱 App: %s\n", result.Logic.AppType)
	for _, feature := range result.Logic.Features {
		fmt.Printf("  • %s\n", feature)
	}
	fmt.Printf("🎨 UI: %s theme, %s colors, %s layout\n", result.UI.Theme, result.UI.ColorScheme, result.UI.Layout)
	fmt.Printf("💰 Monetization: %s (%d tiers), est. $%.2f/month\n",
		result.Monetization.Model, len(result.Monetization.Pricing), result.Monetization.Revenue.MonthlyRevenue)
	fmt.Printf("📣 Marketing: %d channels, est. CAC $%.2f, est. ROI %.2fx\n",
		len(result.Marketing.Channels), result.Marketing.EstimatedCAC, result.Marketing.EstimatedROI)
	fmt.Printf("🚀 Deployment: %s (%s)\n", strings.Join(result.Deployment.Targets, ", "), result.Deployment.Status)
	return nil
}
