package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Annoyingpheonix/Axiom/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "ax",
	Short:         "Axiom — gamified self-improvement with verified progress",
	Long:          "Axiom is a local-first CLI/TUI habit tracker with RPG progression: XP, gold, social rank, and AI-verified completions.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newAddCmd(),
		newListCmd(),
		newDoneCmd(),
		newResetCmd(),
		newVerifyCmd(),
		newLogCmd(),
		newQuestCmd(),
		newMarketCmd(),
		newBuyCmd(),
		newTrialCmd(),
		newGuildCmd(),
		newClassCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
