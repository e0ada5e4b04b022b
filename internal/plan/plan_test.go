package plan

import (
	"fmt"
	"testing"

	"github.com/dohyeon0608/ReadQuest/internal/catalog"
	"github.com/dohyeon0608/ReadQuest/internal/reward"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type set map[string]bool

func (s set) Contains(x string) bool { return s[x] }

// tenSectionBook has sections s01..s10 split over two chapters.
func tenSectionBook(c catalog.Category) catalog.Book {
	var a, b []string
	for i := 1; i <= 10; i++ {
		name := fmt.Sprintf("s%02d", i)
		if i <= 5 {
			a = append(a, name)
		} else {
			b = append(b, name)
		}
	}
	return catalog.Book{
		Title:    "Ten",
		Category: c,
		Chapters: []catalog.Chapter{{Title: "A", Sections: a}, {Title: "B", Sections: b}},
	}
}

func TestSectionsPerQuest(t *testing.T) {
	tests := []struct {
		pace   Pace
		custom int
		want   int
	}{
		{PaceSlow, 0, 2},
		{PaceNormal, 0, 4},
		{PaceFast, 9, 6},
		{PaceCustom, 3, 3},
		{PaceCustom, 0, 1},
		{PaceCustom, -4, 1},
		{Pace("sprint"), 0, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SectionsPerQuest(tt.pace, tt.custom), "%s/%d", tt.pace, tt.custom)
	}
}

func TestParsePace(t *testing.T) {
	p, err := ParsePace(" Fast ")
	require.NoError(t, err)
	assert.Equal(t, PaceFast, p)

	_, err = ParsePace("sprint")
	assert.Error(t, err)
}

func TestNewDefaults(t *testing.T) {
	book := tenSectionBook(catalog.CategoryFiction)
	p := New(book, PaceNormal, 0, "", "", 0)
	assert.Equal(t, "s01", p.StartSection)
	assert.Equal(t, "s10", p.EndSection)
	assert.Equal(t, 1, p.MinutesPerSection)
	assert.Equal(t, 4, p.SectionsPerQuest)
}

func TestActiveBatchSkipsCompleted(t *testing.T) {
	book := tenSectionBook(catalog.CategoryAcademic)
	p := New(book, PaceNormal, 0, "s01", "s10", 5)
	done := set{"s01": true, "s02": true, "s03": true, "s04": true}

	q, ok := ActiveBatch(book, p, done)
	require.True(t, ok)
	assert.Equal(t, []string{"s05", "s06", "s07", "s08"}, q.Sections)
	assert.Equal(t, 20, q.GoalMinutes)
	assert.Equal(t, 300, q.PotentialExp)
	assert.Equal(t, 300, q.PotentialRp)
	assert.Equal(t, "Ten", q.BookTitle)
}

func TestActiveBatchKeepsPlanOrderAroundGaps(t *testing.T) {
	book := tenSectionBook(catalog.CategoryFiction)
	p := New(book, PaceSlow, 0, "s03", "s08", 10)
	done := set{"s03": true, "s05": true, "s01": true}

	q, ok := ActiveBatch(book, p, done)
	require.True(t, ok)
	assert.Equal(t, []string{"s04", "s06"}, q.Sections)
	assert.Equal(t, 20, q.GoalMinutes)
	assert.Equal(t, 100, q.PotentialExp)
}

func TestActiveBatchShortTail(t *testing.T) {
	book := tenSectionBook(catalog.CategoryTechnical)
	p := New(book, PaceFast, 0, "s01", "s10", 5)
	done := set{}
	for i := 1; i <= 8; i++ {
		done[fmt.Sprintf("s%02d", i)] = true
	}

	q, ok := ActiveBatch(book, p, done)
	require.True(t, ok)
	assert.Equal(t, []string{"s09", "s10"}, q.Sections)
	assert.Equal(t, 200, q.PotentialExp)
}

func TestActiveBatchNone(t *testing.T) {
	book := tenSectionBook(catalog.CategoryFiction)

	t.Run("inverted range", func(t *testing.T) {
		p := New(book, PaceNormal, 0, "s08", "s02", 5)
		_, ok := ActiveBatch(book, p, nil)
		assert.False(t, ok)
	})

	t.Run("unknown section", func(t *testing.T) {
		p := New(book, PaceNormal, 0, "s01", "s99", 5)
		_, ok := ActiveBatch(book, p, nil)
		assert.False(t, ok)
	})

	t.Run("all complete", func(t *testing.T) {
		p := New(book, PaceNormal, 0, "s01", "s02", 5)
		_, ok := ActiveBatch(book, p, set{"s01": true, "s02": true})
		assert.False(t, ok)
	})
}

func TestSummarize(t *testing.T) {
	book := tenSectionBook(catalog.CategoryAcademic)

	got := Summarize(book, New(book, PaceNormal, 0, "s01", "s10", 5))
	assert.Equal(t, Summary{
		SectionCount:        10,
		SectionsPerQuest:    4,
		EstimatedQuestCount: 3,
		RewardPerQuest:      reward.Estimate{Exp: 300, Rp: 300},
	}, got)

	got = Summarize(book, New(book, PaceSlow, 0, "s09", "s01", 5))
	assert.Zero(t, got.SectionCount)
	assert.Zero(t, got.EstimatedQuestCount)

	got = Summarize(book, New(book, PaceCustom, 5, "s06", "s10", 5))
	assert.Equal(t, 1, got.EstimatedQuestCount)
}

func TestPlanProgress(t *testing.T) {
	book := tenSectionBook(catalog.CategoryFiction)
	p := New(book, PaceNormal, 0, "s01", "s04", 5)

	prog := PlanProgress(book, p, set{"s01": true, "s09": true})
	assert.Equal(t, 1, prog.Completed)
	assert.Equal(t, 4, prog.Total)
	assert.InDelta(t, 25.0, prog.Percent, 0.001)
	assert.False(t, prog.Done)

	prog = PlanProgress(book, p, set{"s01": true, "s02": true, "s03": true, "s04": true})
	assert.True(t, prog.Done)

	prog = PlanProgress(book, New(book, PaceNormal, 0, "s04", "s01", 5), nil)
	assert.Zero(t, prog.Total)
	assert.False(t, prog.Done)
}
