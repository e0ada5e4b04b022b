package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dohyeon0608/ReadQuest/internal/catalog"
	"github.com/dohyeon0608/ReadQuest/internal/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage reading plans",
}

var planSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or replace the reading plan for a book",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("book")
		paceName, _ := cmd.Flags().GetString("pace")
		custom, _ := cmd.Flags().GetInt("sections")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		minutes, _ := cmd.Flags().GetInt("minutes")

		pace, err := plan.ParsePace(paceName)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("sections") && pace != plan.PaceCustom {
			pace = plan.PaceCustom
		}

		rt, err := openRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		book, err := rt.session.Book(title)
		if err != nil {
			return err
		}
		p := plan.New(book, pace, custom, start, end, minutes)
		if err := rt.session.SavePlan(cmd.Context(), book.Title, p); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Plan saved for %s.\n", book.Title)
		printSummary(out, book, p)
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active reading plans with progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		plans, err := rt.session.ActivePlans(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(plans) == 0 {
			fmt.Fprintln(out, "No reading plans. Create one with `readquest plan set --book <title>`.")
			return nil
		}

		fmt.Fprintf(out, "%-40s  %-8s  %9s  %s\n", "Book", "Pace", "Progress", "Next")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, ap := range plans {
			next := "complete"
			if ap.Next != nil {
				next = strings.Join(ap.Next.Sections, ", ")
			}
			fmt.Fprintf(out, "%-40s  %-8s  %3d/%-3d %s  %s\n",
				ap.Book.Title, ap.Plan.Pace.DisplayName(),
				ap.Progress.Completed, ap.Progress.Total, fmt.Sprintf("%3.0f%%", ap.Progress.Percent), next)
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <book>",
	Short: "Show a plan and its preview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		book, p, err := rt.session.Plan(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  [%s]\n", book.Title, book.Category.DisplayName())
		fmt.Fprintf(out, "Pace:      %s (%d sections per quest)\n", p.Pace.DisplayName(), p.SectionsPerQuest)
		fmt.Fprintf(out, "Range:     %s .. %s\n", p.StartSection, p.EndSection)
		fmt.Fprintf(out, "Focus:     %d min per section\n", p.MinutesPerSection)
		printSummary(out, book, p)
		return nil
	},
}

var planRemoveCmd = &cobra.Command{
	Use:   "remove <book>",
	Short: "Remove a reading plan (reading progress is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := rt.session.RemovePlan(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed plan for %s.\n", args[0])
		return nil
	},
}

func printSummary(out io.Writer, book catalog.Book, p plan.ReadingPlan) {
	s := plan.Summarize(book, p)
	if s.SectionCount == 0 {
		fmt.Fprintln(out, "The range does not cover any section.")
		return
	}
	fmt.Fprintf(out, "Sections:  %d in about %d quest(s)\n", s.SectionCount, s.EstimatedQuestCount)
	fmt.Fprintf(out, "Reward:    up to %d EXP / %d RP per quest\n", s.RewardPerQuest.Exp, s.RewardPerQuest.Rp)
}

func init() {
	planSetCmd.Flags().StringP("book", "b", "", "Book title")
	planSetCmd.Flags().StringP("pace", "p", string(plan.PaceNormal), "Pace: slow, normal, fast or custom")
	planSetCmd.Flags().IntP("sections", "s", 0, "Sections per quest (implies --pace custom)")
	planSetCmd.Flags().String("start", "", "First section (default: first in book)")
	planSetCmd.Flags().String("end", "", "Last section (default: last in book)")
	planSetCmd.Flags().IntP("minutes", "m", plan.DefaultMinutesPerSection, "Focus minutes per section")
	_ = planSetCmd.MarkFlagRequired("book")

	planCmd.AddCommand(planSetCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planRemoveCmd)
}
