// Package progression folds quest outcomes into the reader's persistent
// statistics: leveling, streaks, per-book progress and the journal.
package progression

import (
	"slices"
	"sort"
	"time"
)

const (
	// InitialExpToNextLevel is the EXP needed to leave level 1.
	InitialExpToNextLevel = 100

	// LevelGrowth scales the EXP requirement after each level-up.
	LevelGrowth = 1.5
)

// SectionSet is the set of completed section names for one book.
type SectionSet map[string]struct{}

// Contains reports whether section is in the set.
func (s SectionSet) Contains(section string) bool {
	_, ok := s[section]
	return ok
}

// Add inserts sections into the set.
func (s SectionSet) Add(sections ...string) {
	for _, sec := range sections {
		s[sec] = struct{}{}
	}
}

// Sorted returns the members in lexical order.
func (s SectionSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for sec := range s {
		out = append(out, sec)
	}
	sort.Strings(out)
	return out
}

// JournalEntry records one resolved quest, won or lost.
type JournalEntry struct {
	Date        time.Time
	BookTitle   string
	Sections    []string
	GoalMinutes int
	EarnedExp   int
	EarnedRp    int // includes any streak bonus
	QuizCorrect int
	QuizTotal   int
}

// UserStats is the reader's cumulative progression.
type UserStats struct {
	Level          int
	Exp            int
	ExpToNextLevel int
	Rp             int
	Streak         int
	LastQuestDate  *time.Time
	Titles         []string
	Progress       map[string]SectionSet
	Journal        []JournalEntry // newest first
}

// NewUserStats returns the starting statistics for a new reader.
func NewUserStats() UserStats {
	return UserStats{
		Level:          1,
		ExpToNextLevel: InitialExpToNextLevel,
		Titles:         []string{DefaultTitle},
		Progress:       map[string]SectionSet{},
	}
}

// Completed returns the completed sections for a book. The result may be
// nil and must not be modified.
func (s UserStats) Completed(bookTitle string) SectionSet {
	return s.Progress[bookTitle]
}

// CurrentTitle returns the most recently earned title.
func (s UserStats) CurrentTitle() string {
	if len(s.Titles) == 0 {
		return DefaultTitle
	}
	return s.Titles[len(s.Titles)-1]
}

// Clone returns a deep copy.
func (s UserStats) Clone() UserStats {
	out := s
	if s.LastQuestDate != nil {
		d := *s.LastQuestDate
		out.LastQuestDate = &d
	}
	out.Titles = slices.Clone(s.Titles)
	out.Progress = make(map[string]SectionSet, len(s.Progress))
	for book, set := range s.Progress {
		cp := make(SectionSet, len(set))
		for sec := range set {
			cp[sec] = struct{}{}
		}
		out.Progress[book] = cp
	}
	out.Journal = make([]JournalEntry, len(s.Journal))
	for i, e := range s.Journal {
		e.Sections = slices.Clone(e.Sections)
		out.Journal[i] = e
	}
	return out
}
