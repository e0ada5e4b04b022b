package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dohyeon0608/ReadQuest/internal/store"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List resolved quests from the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		book, _ := cmd.Flags().GetString("book")

		rt, err := openRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		events, err := rt.store.EventRepo().QueryQuestEvents(cmd.Context(), store.QueryOpts{Limit: limit, Book: book})
		if err != nil {
			return fmt.Errorf("query quest events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No quests resolved yet.")
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-32s  %-20s  %5s  %6s  %6s\n", "When", "Book", "Sections", "Quiz", "EXP", "RP")
		fmt.Fprintln(out, strings.Repeat("─", 96))
		for _, e := range events {
			sections := strings.Join(e.Sections, ",")
			if len(sections) > 20 {
				sections = sections[:19] + "…"
			}
			title := e.BookTitle
			if len(title) > 32 {
				title = title[:31] + "…"
			}
			marker := ""
			if e.StreakBonus {
				marker = " 🔥"
			}
			if e.LeveledUp {
				marker += fmt.Sprintf(" ↑Lv.%d", e.LevelAfter)
			}
			fmt.Fprintf(out, "%-16s  %-32s  %-20s  %2d/%-2d  %6d  %6d%s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04"), title, sections,
				e.QuizCorrect, e.QuizTotal, e.EarnedExp, e.EarnedRp, marker)
		}
		return nil
	},
}

func init() {
	journalCmd.Flags().IntP("limit", "n", 20, "Number of entries to show")
	journalCmd.Flags().StringP("book", "b", "", "Only show quests for this book")
}
