package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dohyeon0608/ReadQuest/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer is implemented by screens that reload their data when they
// become the top of the stack again.
type Resumer interface {
	Resume() tea.Cmd
}

// StatsMsg carries the reader's headline numbers to the header bar.
type StatsMsg struct {
	Level  int
	Rp     int
	Streak int
}

// Stats wraps a StatsMsg as a command.
func Stats(level, rp, streak int) tea.Cmd {
	return func() tea.Msg { return StatsMsg{Level: level, Rp: rp, Streak: streak} }
}
