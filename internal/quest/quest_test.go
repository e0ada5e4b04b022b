package quest

import (
	"errors"
	"testing"

	"github.com/dohyeon0608/ReadQuest/internal/catalog"
	"github.com/dohyeon0608/ReadQuest/internal/reward"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBook() catalog.Book {
	return catalog.Book{
		Title:    "Linear Algebra",
		Category: catalog.CategoryAcademic,
		Chapters: []catalog.Chapter{{Title: "Ch. 1", Sections: []string{"1.1", "1.2", "1.3", "1.4"}}},
	}
}

func TestNew(t *testing.T) {
	sections := []string{"1.1", "1.2", "1.3", "1.4"}
	q := New(testBook(), sections, 5)

	assert.NotEmpty(t, q.ID)
	assert.Equal(t, "Linear Algebra", q.BookTitle)
	assert.Equal(t, catalog.CategoryAcademic, q.Category)
	assert.Equal(t, 20, q.GoalMinutes)
	assert.Equal(t, 300, q.PotentialExp)
	assert.Equal(t, 300, q.PotentialRp)

	sections[0] = "changed"
	assert.Equal(t, "1.1", q.Sections[0], "quest must own its section slice")
}

func TestScore(t *testing.T) {
	q := New(testBook(), []string{"1.1", "1.2"}, 5)
	res := q.Score(reward.Tally{Correct: 2, Total: 2}, false)
	assert.Equal(t, 150, res.EarnedExp)
}

func TestLifecycleHappyPath(t *testing.T) {
	l := Start(New(testBook(), []string{"1.1"}, 5))
	assert.Equal(t, PhasePlanned, l.Phase())

	require.NoError(t, l.Confirm())
	assert.Equal(t, PhaseFocus, l.Phase())

	require.NoError(t, l.FinishFocus())
	assert.Equal(t, PhaseQuizPending, l.Phase())

	require.NoError(t, l.Resolve())
	assert.Equal(t, PhaseResolved, l.Phase())
}

func TestLifecycleRejectsOutOfOrder(t *testing.T) {
	l := Start(New(testBook(), []string{"1.1"}, 5))

	err := l.Resolve()
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, PhasePlanned, l.Phase())

	require.NoError(t, l.Confirm())
	assert.ErrorIs(t, l.Confirm(), ErrInvalidTransition)

	require.NoError(t, l.FinishFocus())
	require.NoError(t, l.Resolve())

	// A resolved quest cannot be resolved again.
	assert.ErrorIs(t, l.Resolve(), ErrInvalidTransition)
}
