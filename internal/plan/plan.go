// Package plan segments a book into quest-sized batches according to a
// reading pace.
package plan

import (
	"github.com/dohyeon0608/ReadQuest/internal/catalog"
)

// DefaultMinutesPerSection is the focus time per section when none is given.
const DefaultMinutesPerSection = 5

// ReadingPlan is a user's pace and section range for one book.
type ReadingPlan struct {
	Pace              Pace
	SectionsPerQuest  int
	StartSection      string
	EndSection        string
	MinutesPerSection int
}

// New builds a plan for book. Empty start or end default to the first or
// last section. Plans never fail to build; a range that does not resolve
// only shows up as an empty batch or summary.
func New(book catalog.Book, pace Pace, custom int, start, end string, minutesPerSection int) ReadingPlan {
	sections := book.Sections()
	if start == "" && len(sections) > 0 {
		start = sections[0]
	}
	if end == "" && len(sections) > 0 {
		end = sections[len(sections)-1]
	}
	return ReadingPlan{
		Pace:              pace,
		SectionsPerQuest:  SectionsPerQuest(pace, custom),
		StartSection:      start,
		EndSection:        end,
		MinutesPerSection: max(minutesPerSection, 1),
	}
}

// Sections returns the inclusive range of the plan in reading order, or nil
// when either endpoint is unknown or start comes after end.
func (p ReadingPlan) Sections(book catalog.Book) []string {
	sections := book.Sections()
	start := indexOf(sections, p.StartSection)
	end := indexOf(sections, p.EndSection)
	if start < 0 || end < 0 || start > end {
		return nil
	}
	out := make([]string, end-start+1)
	copy(out, sections[start:end+1])
	return out
}

// Valid reports whether the plan's range resolves to at least one section.
func (p ReadingPlan) Valid(book catalog.Book) bool {
	return len(p.Sections(book)) > 0
}

func (p ReadingPlan) batchSize() int {
	return max(p.SectionsPerQuest, 1)
}

func indexOf(sections []string, name string) int {
	for i, s := range sections {
		if s == name {
			return i
		}
	}
	return -1
}
