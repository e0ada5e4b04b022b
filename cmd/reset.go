package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear stats, plans and the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		statsOnly, _ := cmd.Flags().GetBool("stats-only")
		if !yes {
			return errors.New("this deletes your progress; re-run with --yes to confirm")
		}

		rt, err := openRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		out := cmd.OutOrStdout()
		if statsOnly {
			if err := rt.session.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("reset stats: %w", err)
			}
			fmt.Fprintln(out, "Stats reset. Reading plans were kept.")
			return nil
		}

		if err := rt.store.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset database: %w", err)
		}
		rt.log.Info("database reset")
		fmt.Fprintln(out, "All progress, plans and events were deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
	resetCmd.Flags().Bool("stats-only", false, "Only reset statistics; keep reading plans and events")
}
