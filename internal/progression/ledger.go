package progression

import (
	"math"
	"slices"
	"time"

	"github.com/dohyeon0608/ReadQuest/internal/quest"
	"github.com/dohyeon0608/ReadQuest/internal/reward"
	"github.com/dohyeon0608/ReadQuest/internal/streak"
)

// Outcome is the result of committing one quest.
type Outcome struct {
	Stats     UserStats
	Result    reward.Result
	Streak    streak.Evaluation
	LeveledUp bool
	NewTitles []string
}

// Commit folds a finished quest into stats and returns the new statistics.
// The input is not modified.
func Commit(stats UserStats, q quest.Quest, tally reward.Tally, now time.Time) Outcome {
	next := stats.Clone()
	if next.ExpToNextLevel <= 0 {
		next.ExpToNextLevel = InitialExpToNextLevel
	}
	if next.Progress == nil {
		next.Progress = map[string]SectionSet{}
	}

	eval := streak.Evaluate(stats.LastQuestDate, now)
	result := q.Score(tally, eval.EligibleForBonus)

	out := Outcome{Result: result, Streak: eval}

	next.Exp += result.EarnedExp
	for next.Exp >= next.ExpToNextLevel {
		next.Exp -= next.ExpToNextLevel
		next.Level++
		next.ExpToNextLevel = int(math.Floor(float64(next.ExpToNextLevel) * LevelGrowth))
		out.LeveledUp = true
		if title, ok := TitleForLevel(next.Level); ok && !slices.Contains(next.Titles, title) {
			next.Titles = append(next.Titles, title)
			out.NewTitles = append(out.NewTitles, title)
		}
	}

	next.Streak = eval.NextStreak(stats.Streak)

	if result.EarnedExp > 0 && len(q.Sections) > 0 {
		set := next.Progress[q.BookTitle]
		if set == nil {
			set = SectionSet{}
			next.Progress[q.BookTitle] = set
		}
		set.Add(q.Sections...)
	}

	entry := JournalEntry{
		Date:        now,
		BookTitle:   q.BookTitle,
		Sections:    slices.Clone(q.Sections),
		GoalMinutes: q.GoalMinutes,
		EarnedExp:   result.EarnedExp,
		EarnedRp:    result.EarnedRp,
		QuizCorrect: result.CorrectAnswers,
		QuizTotal:   result.TotalQuestions,
	}
	next.Journal = append([]JournalEntry{entry}, next.Journal...)

	d := now
	next.LastQuestDate = &d
	next.Rp += result.EarnedRp

	out.Stats = next
	return out
}
