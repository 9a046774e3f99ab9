// This file implements the profile command group: named preference documents.
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/str8zero/str8zero/core/profile"
	"github.com/str8zero/str8zero/core/storage"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named preference profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all preference profiles",
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show one preference profile",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProfileShow,
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new preference profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileCreate,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <name> <key> <value>",
	Short: "Set a preference on an existing profile",
	Args:  cobra.ExactArgs(3),
	RunE:  runProfileSet,
}

func init() {
	profileCmd.AddCommand(profileListCmd, profileShowCmd, profileCreateCmd, profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func newPrefs() *profile.Prefs {
	logger := newLogger()
	return profile.NewPrefs(storage.ProfilesDir(), logger)
}

func runProfileList(*cobra.Command, []string) error {
	fmt.Println("\n👤 Profiles:")
	for _, doc := range newPrefs().List() {
		fmt.Printf("  • %s - %s\n", doc.Name, doc.Description)
	}
	return nil
}

func runProfileShow(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	doc := newPrefs().Get(name)

	fmt.Printf("\n👤 %s\n", doc.Name)
	if doc.Description != "" {
		fmt.Printf("  %s\n", doc.Description)
	}
	keys := make([]string, 0, len(doc.Preferences))
	for key := range doc.Preferences {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("  • %s: %v\n", key, doc.Preferences[key])
	}
	return nil
}

func runProfileCreate(_ *cobra.Command, args []string) error {
	if err := newPrefs().Create(args[0], nil); err != nil {
		return err
	}
	fmt.Printf("✅ Profile '%s' created\n", args[0])
	return nil
}

func runProfileSet(_ *cobra.Command, args []string) error {
	if err := newPrefs().Update(args[0], map[string]any{args[1]: args[2]}); err != nil {
		return err
	}
	fmt.Printf("✅ Profile '%s' updated\n", args[0])
	return nil
}
