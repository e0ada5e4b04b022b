// Package quest defines a single reading quest and its phase machine.
package quest

import (
	"github.com/dohyeon0608/ReadQuest/internal/catalog"
	"github.com/dohyeon0608/ReadQuest/internal/reward"
	"github.com/google/uuid"
)

// Quest is one batch of sections to read, focus on, and be quizzed about.
// Quests are ephemeral; only the journal entry of a resolved quest survives.
type Quest struct {
	ID           string
	BookTitle    string
	Category     catalog.Category
	Sections     []string
	GoalMinutes  int
	PotentialExp int
	PotentialRp  int
}

// New builds a quest for sections of book with the reward estimate and goal
// time filled in.
func New(book catalog.Book, sections []string, minutesPerSection int) Quest {
	est := reward.EstimateFor(len(sections), book.Category)
	secs := make([]string, len(sections))
	copy(secs, sections)
	return Quest{
		ID:           uuid.NewString(),
		BookTitle:    book.Title,
		Category:     book.Category,
		Sections:     secs,
		GoalMinutes:  len(sections) * minutesPerSection,
		PotentialExp: est.Exp,
		PotentialRp:  est.Rp,
	}
}

// Score applies a quiz tally to the quest's potential reward.
func (q Quest) Score(tally reward.Tally, streakEligible bool) reward.Result {
	return reward.Score(q.PotentialExp, q.PotentialRp, tally, streakEligible)
}
