package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dohyeon0608/ReadQuest/internal/progression"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show level, EXP, RP, streak, titles and reading progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		st, err := rt.session.Stats(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Title:     %s\n", st.CurrentTitle())
		fmt.Fprintf(out, "Level:     %d\n", st.Level)
		fmt.Fprintf(out, "EXP:       %d / %d\n", st.Exp, st.ExpToNextLevel)
		fmt.Fprintf(out, "RP:        %d\n", st.Rp)
		fmt.Fprintf(out, "Streak:    %d day(s)\n", st.Streak)
		if st.LastQuestDate != nil {
			fmt.Fprintf(out, "Last quest: %s\n", st.LastQuestDate.Local().Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(out, "Titles:    %s\n", strings.Join(st.Titles, ", "))
		if next, lv, ok := progression.NextTitle(st.Level); ok {
			fmt.Fprintf(out, "Next:      %s at level %d\n", next, lv)
		}

		if len(st.Progress) == 0 {
			return nil
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Progress")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, b := range rt.session.Catalog().Books() {
			done := st.Completed(b.Title)
			if len(done) == 0 {
				continue
			}
			fmt.Fprintf(out, "%-40s  %3d/%-3d sections\n", b.Title, len(done), b.SectionCount())
		}
		return nil
	},
}
