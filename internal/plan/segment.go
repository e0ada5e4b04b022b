package plan

import (
	"github.com/dohyeon0608/ReadQuest/internal/catalog"
	"github.com/dohyeon0608/ReadQuest/internal/quest"
	"github.com/dohyeon0608/ReadQuest/internal/reward"
)

// Completed reports whether a section has already been read.
type Completed interface {
	Contains(section string) bool
}

// ActiveBatch returns the next quest for the plan: the first SectionsPerQuest
// sections of the range not yet completed, in plan order. It returns false
// when the range is invalid or fully read.
func ActiveBatch(book catalog.Book, p ReadingPlan, completed Completed) (*quest.Quest, bool) {
	remaining := Remaining(book, p, completed)
	if len(remaining) == 0 {
		return nil, false
	}
	n := min(p.batchSize(), len(remaining))
	q := quest.New(book, remaining[:n], p.MinutesPerSection)
	return &q, true
}

// Remaining returns the plan's sections that are not completed, in order.
func Remaining(book catalog.Book, p ReadingPlan, completed Completed) []string {
	var out []string
	for _, s := range p.Sections(book) {
		if completed != nil && completed.Contains(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Summary is the preview of a plan shown before it is saved.
type Summary struct {
	SectionCount        int
	SectionsPerQuest    int
	EstimatedQuestCount int
	RewardPerQuest      reward.Estimate
}

// Summarize computes the plan preview. SectionCount and EstimatedQuestCount
// are zero when the range is invalid.
func Summarize(book catalog.Book, p ReadingPlan) Summary {
	size := p.batchSize()
	count := len(p.Sections(book))
	return Summary{
		SectionCount:        count,
		SectionsPerQuest:    size,
		EstimatedQuestCount: (count + size - 1) / size,
		RewardPerQuest:      reward.EstimateFor(size, book.Category),
	}
}
