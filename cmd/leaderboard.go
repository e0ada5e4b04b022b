package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dohyeon0608/ReadQuest/internal/leaderboard"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the season ranking",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("filter")
		filter, err := leaderboard.ParseFilter(name)
		if err != nil {
			return err
		}

		rt, err := openRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		rows, err := rt.session.Leaderboard(cmd.Context(), filter)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%4s  %-18s  %5s  %8s  %s\n", "Rank", "Name", "Level", "RP", "Major")
		fmt.Fprintln(out, strings.Repeat("─", 64))
		for _, r := range rows {
			marker := " "
			if r.CurrentUser {
				marker = "▸"
			}
			fmt.Fprintf(out, "%s%3d  %-18s  %5d  %8d  %s\n", marker, r.Rank, r.Name, r.Level, r.Rp, r.Major)
		}
		if pos, ok := leaderboard.Position(rows); ok {
			fmt.Fprintf(out, "\nYou are #%d of %d (top %d%%).\n", pos.Rank, len(rows), pos.Percentile)
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().StringP("filter", "f", string(leaderboard.FilterAll), "all, major or friends")
}
