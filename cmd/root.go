package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "readquest",
	Short: "Gamified reading tracker",
	Long: "ReadQuest turns reading plans into quests: read a batch of sections, " +
		"pass a short quiz, and earn EXP, RP and titles.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides READQUEST_DB)")

	rootCmd.AddCommand(booksCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(questCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
