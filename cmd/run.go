package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dohyeon0608/ReadQuest/internal/app"
)

// runApp opens the store, builds the session and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := openRuntime(cmd, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	return app.Run(app.Options{Session: rt.session, Log: rt.log})
}
