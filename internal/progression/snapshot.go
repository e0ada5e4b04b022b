package progression

import (
	"slices"

	"github.com/dohyeon0608/ReadQuest/internal/store"
)

// snapshotVersion is bumped when StatsSnapshotData changes shape.
const snapshotVersion = 1

// SnapshotData converts stats into their persisted form.
func (s UserStats) SnapshotData() *store.StatsSnapshotData {
	data := &store.StatsSnapshotData{
		Level:          s.Level,
		Exp:            s.Exp,
		ExpToNextLevel: s.ExpToNextLevel,
		Rp:             s.Rp,
		Streak:         s.Streak,
		Titles:         slices.Clone(s.Titles),
		Progress:       make(map[string][]string, len(s.Progress)),
	}
	if s.LastQuestDate != nil {
		d := *s.LastQuestDate
		data.LastQuestDate = &d
	}
	for book, set := range s.Progress {
		data.Progress[book] = set.Sorted()
	}
	for _, e := range s.Journal {
		data.Journal = append(data.Journal, store.JournalEntryData{
			Date:        e.Date,
			BookTitle:   e.BookTitle,
			Sections:    slices.Clone(e.Sections),
			GoalMinutes: e.GoalMinutes,
			EarnedExp:   e.EarnedExp,
			EarnedRp:    e.EarnedRp,
			QuizCorrect: e.QuizCorrect,
			QuizTotal:   e.QuizTotal,
		})
	}
	return data
}

// StatsFromSnapshot restores stats from a snapshot. A nil snapshot yields
// NewUserStats.
func StatsFromSnapshot(data *store.StatsSnapshotData) UserStats {
	if data == nil {
		return NewUserStats()
	}
	s := UserStats{
		Level:          data.Level,
		Exp:            data.Exp,
		ExpToNextLevel: data.ExpToNextLevel,
		Rp:             data.Rp,
		Streak:         data.Streak,
		Titles:         slices.Clone(data.Titles),
		Progress:       make(map[string]SectionSet, len(data.Progress)),
	}
	if s.Level < 1 {
		s.Level = 1
	}
	if s.ExpToNextLevel <= 0 {
		s.ExpToNextLevel = InitialExpToNextLevel
	}
	if len(s.Titles) == 0 {
		s.Titles = []string{DefaultTitle}
	}
	if data.LastQuestDate != nil {
		d := *data.LastQuestDate
		s.LastQuestDate = &d
	}
	for book, secs := range data.Progress {
		set := SectionSet{}
		set.Add(secs...)
		s.Progress[book] = set
	}
	for _, e := range data.Journal {
		s.Journal = append(s.Journal, JournalEntry{
			Date:        e.Date,
			BookTitle:   e.BookTitle,
			Sections:    slices.Clone(e.Sections),
			GoalMinutes: e.GoalMinutes,
			EarnedExp:   e.EarnedExp,
			EarnedRp:    e.EarnedRp,
			QuizCorrect: e.QuizCorrect,
			QuizTotal:   e.QuizTotal,
		})
	}
	return s
}
