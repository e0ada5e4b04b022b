package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dohyeon0608/ReadQuest/internal/focus"
	"github.com/dohyeon0608/ReadQuest/internal/game"
	"github.com/dohyeon0608/ReadQuest/internal/progression"
	"github.com/dohyeon0608/ReadQuest/internal/quest"
	"github.com/dohyeon0608/ReadQuest/internal/quiz"
	"github.com/dohyeon0608/ReadQuest/internal/reward"
)

var questCmd = &cobra.Command{
	Use:   "quest",
	Short: "Run reading quests from the command line",
}

var questNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next batch of sections for a book",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("book")

		rt, err := openRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		q, err := rt.session.NextQuest(cmd.Context(), title)
		if errors.Is(err, game.ErrPlanComplete) {
			fmt.Fprintf(cmd.OutOrStdout(), "Every section of %s in the plan has been read.\n", title)
			return nil
		}
		if err != nil {
			return err
		}
		printQuest(cmd.OutOrStdout(), q)
		return nil
	},
}

var questFocusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Run the focus timer for the next batch, then take the quiz",
	Long: "Runs the focus countdown in the terminal. Press Ctrl+C to end the " +
		"focus session early. Afterwards the quiz is asked on stdin; answer " +
		"with the option letter.",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("book")

		rt, err := openRuntime(cmd, true)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		q, err := rt.session.NextQuest(ctx, title)
		if err != nil {
			return err
		}
		printQuest(out, q)

		lc := quest.Start(q)
		if err := lc.Confirm(); err != nil {
			return err
		}

		cd := runFocus(ctx, out, q.GoalMinutes)
		if err := lc.FinishFocus(); err != nil {
			return err
		}
		if cd.EndedEarly() {
			fmt.Fprintf(out, "\nFocus ended early after %s.\n", cd.Elapsed().Round(time.Second))
		} else {
			fmt.Fprintln(out, "\nFocus complete.")
		}

		tally, err := askQuiz(ctx, rt.session, q, cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		if err := lc.Resolve(); err != nil {
			return err
		}
		outcome, err := rt.session.Resolve(ctx, q, tally)
		if err != nil {
			return fmt.Errorf("resolve quest: %w", err)
		}
		printOutcome(out, outcome)
		return nil
	},
}

var questCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Resolve the next batch with a quiz score taken elsewhere",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("book")
		correct, _ := cmd.Flags().GetInt("correct")
		total, _ := cmd.Flags().GetInt("total")
		if correct < 0 || total < 0 || correct > total {
			return fmt.Errorf("need 0 <= correct <= total, got %d/%d", correct, total)
		}

		rt, err := openRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		q, err := rt.session.NextQuest(cmd.Context(), title)
		if err != nil {
			return err
		}

		lc := quest.Start(q)
		for _, step := range []func() error{lc.Confirm, lc.FinishFocus, lc.Resolve} {
			if err := step(); err != nil {
				return err
			}
		}

		outcome, err := rt.session.Resolve(cmd.Context(), q, reward.Tally{Correct: correct, Total: total})
		if err != nil {
			return fmt.Errorf("resolve quest: %w", err)
		}
		printQuest(cmd.OutOrStdout(), q)
		printOutcome(cmd.OutOrStdout(), outcome)
		return nil
	},
}

// runFocus blocks until the countdown ends or the user interrupts.
func runFocus(ctx context.Context, out io.Writer, minutes int) focus.Countdown {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	timer := focus.NewTimer(minutes)
	go func() {
		<-ctx.Done()
		timer.Stop()
	}()

	fmt.Fprintf(out, "Focus: %s remaining (Ctrl+C to end early)", timer.Countdown().Format())
	return timer.Run(ctx, func(c focus.Countdown) {
		fmt.Fprintf(out, "\rFocus: %s remaining (Ctrl+C to end early)", c.Format())
	})
}

// askQuiz reads one answer letter per question. A quiz that cannot be
// generated resolves as skipped.
func askQuiz(ctx context.Context, s *game.Session, q quest.Quest, in io.Reader, out io.Writer) (reward.Tally, error) {
	questions, err := s.GenerateQuiz(ctx, q)
	if err != nil {
		fmt.Fprintf(out, "Quiz unavailable (%v). The quest resolves without reward.\n", err)
		return reward.Tally{}, nil
	}

	sc := bufio.NewScanner(in)
	answers := make([]string, 0, len(questions))
	for i, qu := range questions {
		fmt.Fprintf(out, "\nQ%d. %s\n", i+1, qu.Text)
		for j, opt := range qu.Options {
			fmt.Fprintf(out, "  %c) %s\n", 'A'+j, opt)
		}
		answers = append(answers, readChoice(sc, out, qu.Options))
	}
	return quiz.Grade(questions, answers), nil
}

func readChoice(sc *bufio.Scanner, out io.Writer, options []string) string {
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			return ""
		}
		in := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if len(in) == 1 {
			if i := int(in[0] - 'A'); i >= 0 && i < len(options) {
				return options[i]
			}
		}
		fmt.Fprintf(out, "Answer with a letter between A and %c.\n", 'A'+len(options)-1)
	}
}

func printQuest(out io.Writer, q quest.Quest) {
	fmt.Fprintf(out, "%s  [%s]\n", q.BookTitle, q.Category.DisplayName())
	fmt.Fprintf(out, "Sections:  %s\n", strings.Join(q.Sections, ", "))
	fmt.Fprintf(out, "Focus:     %d min\n", q.GoalMinutes)
	fmt.Fprintf(out, "Reward:    up to %d EXP / %d RP\n", q.PotentialExp, q.PotentialRp)
}

func printOutcome(out io.Writer, o progression.Outcome) {
	r := o.Result
	fmt.Fprintln(out)
	if r.Passed() {
		fmt.Fprintf(out, "Quiz passed: %d/%d correct\n", r.CorrectAnswers, r.TotalQuestions)
	} else {
		fmt.Fprintf(out, "Quiz not passed: %d/%d correct. No reward; the sections stay in your plan.\n",
			r.CorrectAnswers, r.TotalQuestions)
	}
	fmt.Fprintf(out, "+%d EXP  +%d RP", r.EarnedExp, r.EarnedRp)
	if r.IsStreakBonus {
		fmt.Fprintf(out, "  (streak bonus +%d RP)", r.BonusRp)
	}
	fmt.Fprintln(out)
	if o.LeveledUp {
		fmt.Fprintf(out, "LEVEL UP! Now level %d.\n", o.Stats.Level)
	}
	for _, t := range o.NewTitles {
		fmt.Fprintf(out, "New title: %s\n", t)
	}
	fmt.Fprintf(out, "Level %d  %d/%d EXP  %d RP  %d-day streak\n",
		o.Stats.Level, o.Stats.Exp, o.Stats.ExpToNextLevel, o.Stats.Rp, o.Stats.Streak)
}

func init() {
	for _, c := range []*cobra.Command{questNextCmd, questFocusCmd, questCompleteCmd} {
		c.Flags().StringP("book", "b", "", "Book title")
		_ = c.MarkFlagRequired("book")
	}
	questCompleteCmd.Flags().Int("correct", 0, "Correct answers")
	questCompleteCmd.Flags().Int("total", 0, "Questions asked (0 resolves as skipped)")

	questCmd.AddCommand(questNextCmd)
	questCmd.AddCommand(questFocusCmd)
	questCmd.AddCommand(questCompleteCmd)
}
