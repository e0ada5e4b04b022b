package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBook = "The Days My Soul Was Warm"

// resetFlags restores every flag to its default so commands can be run
// repeatedly against the shared command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type harness struct {
	t  *testing.T
	db string
}

func newHarness(t *testing.T) *harness {
	t.Setenv("READQUEST_LOG_MODE", "prod")
	return &harness{t: t, db: filepath.Join(t.TempDir(), "readquest.db")}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--db", h.db))
	err := rootCmd.Execute()
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, out)
	return out
}

func TestBooksCommand(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.mustRun("books"), "Linear Algebra")
	assert.Contains(t, h.mustRun("books", testBook), "Chapter 9")

	_, err := h.run("books", "No Such Book")
	assert.Error(t, err)
}

func TestQuestLoopFromCommandLine(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("plan", "set", "--book", testBook, "--pace", "slow", "--minutes", "1")
	assert.Contains(t, out, "Plan saved")
	assert.Contains(t, out, "9 in about 5 quest(s)")

	assert.Contains(t, h.mustRun("quest", "next", "--book", testBook), "Chapter 1, Chapter 2")

	out = h.mustRun("quest", "complete", "--book", testBook, "--correct", "2", "--total", "2")
	assert.Contains(t, out, "Quiz passed: 2/2")
	assert.Contains(t, out, "+100 EXP")

	assert.Contains(t, h.mustRun("quest", "next", "--book", testBook), "Chapter 3, Chapter 4")

	out = h.mustRun("stats")
	assert.Contains(t, out, "RP:        100")
	assert.Contains(t, out, "2/9")

	assert.Contains(t, h.mustRun("plan", "list"), "2/9")
	assert.Contains(t, h.mustRun("journal"), "Chapter 1,Chapter 2")
	assert.Contains(t, h.mustRun("plan", "show", testBook), "Slow (2 sections per quest)")
}

func TestQuestCompleteFailedQuiz(t *testing.T) {
	h := newHarness(t)
	h.mustRun("plan", "set", "--book", testBook, "--sections", "3")

	out := h.mustRun("quest", "complete", "--book", testBook, "--correct", "0", "--total", "3")
	assert.Contains(t, out, "not passed")

	// nothing was read, so the same batch comes back
	assert.Contains(t, h.mustRun("quest", "next", "--book", testBook), "Chapter 1, Chapter 2, Chapter 3")

	_, err := h.run("quest", "complete", "--book", testBook, "--correct", "4", "--total", "3")
	assert.Error(t, err)
}

func TestQuestWithoutPlan(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("quest", "next", "--book", testBook)
	assert.Error(t, err)
}

func TestLeaderboardCommand(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("leaderboard")
	assert.Contains(t, out, "You are #12 of 12")

	out = h.mustRun("leaderboard", "--filter", "friends")
	assert.Contains(t, out, "CAUCSE")
	assert.NotContains(t, out, "BooksBooksBooks")

	_, err := h.run("leaderboard", "--filter", "rivals")
	assert.Error(t, err)
}

func TestResetCommand(t *testing.T) {
	h := newHarness(t)
	h.mustRun("plan", "set", "--book", testBook)

	_, err := h.run("reset")
	require.Error(t, err)

	h.mustRun("reset", "--yes", "--stats-only")
	assert.Contains(t, h.mustRun("plan", "list"), testBook)

	assert.Contains(t, h.mustRun("reset", "--yes"), "deleted")
	assert.Contains(t, h.mustRun("plan", "list"), "No reading plans")
}

func TestVersionCommand(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.mustRun("version"), "readquest (devel)")
}
