// Package leaderboard ranks the reader against the season's seeded field.
package leaderboard

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Filter narrows the board.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterMajor   Filter = "major"
	FilterFriends Filter = "friends"
)

// AllFilters returns the filters in tab order.
func AllFilters() []Filter {
	return []Filter{FilterAll, FilterMajor, FilterFriends}
}

// ParseFilter accepts a filter name as typed on the command line.
func ParseFilter(s string) (Filter, error) {
	for _, f := range AllFilters() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown leaderboard filter %q (want all, major or friends)", s)
}

// DisplayName returns the tab label.
func (f Filter) DisplayName() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterMajor:
		return "Major"
	case FilterFriends:
		return "Friends"
	default:
		return string(f)
	}
}

// Entry is one participant.
type Entry struct {
	Name        string
	Rp          int
	Level       int
	Major       string
	Friend      bool
	CurrentUser bool
}

// Row is an entry placed on the board.
type Row struct {
	Entry
	Rank       int
	Percentile int
}

// DefaultMajor is used when the seed has no current-user row.
const DefaultMajor = "Software"

var season = []Entry{
	{Name: "BooksBooksBooks", Rp: 15200, Level: 42, Major: "Library Science"},
	{Name: "CAUCSE", Rp: 12500, Level: 35, Major: "Software", Friend: true},
	{Name: "Backtracking", Rp: 11000, Level: 31, Major: "Software"},
	{Name: "You", Rp: 0, Level: 1, Major: "Software", CurrentUser: true},
	{Name: "WaSans", Rp: 9800, Level: 28, Major: "Software", Friend: true},
	{Name: "WellRead", Rp: 8500, Level: 25, Major: "Business"},
	{Name: "PasserBy", Rp: 7200, Level: 22, Major: "Mechanical Engineering"},
	{Name: "ThesisAntithesis", Rp: 6100, Level: 20, Major: "Philosophy", Friend: true},
	{Name: "HelloWorld", Rp: 2400, Level: 8, Major: "Software"},
	{Name: "DeliveryHero", Rp: 14500, Level: 38, Major: "History"},
	{Name: "WhipGPT", Rp: 5500, Level: 16, Major: "AI"},
	{Name: "Kiddo", Rp: 300, Level: 4, Major: "AI", Friend: true},
}

// Season returns a copy of the seeded entries.
func Season() []Entry {
	return slices.Clone(season)
}

// Board is a fixed field of entries with one current-user row.
type Board struct {
	entries []Entry
}

// New builds a board over entries. The slice is copied.
func New(entries []Entry) *Board {
	return &Board{entries: slices.Clone(entries)}
}

// Default is the season board.
func Default() *Board {
	return New(season)
}

// UserMajor is the current user's major, used by FilterMajor.
func (b *Board) UserMajor() string {
	for _, e := range b.entries {
		if e.CurrentUser {
			return e.Major
		}
	}
	return DefaultMajor
}

// Rank overlays the live rp and level on the current user's row, applies
// the filter and orders rows by rp, highest first. Ties keep seed order.
func (b *Board) Rank(filter Filter, rp, level int) []Row {
	major := b.UserMajor()

	var kept []Entry
	for _, e := range b.entries {
		if e.CurrentUser {
			e.Rp, e.Level = rp, level
		}
		switch filter {
		case FilterMajor:
			if e.Major != major {
				continue
			}
		case FilterFriends:
			if !e.Friend && !e.CurrentUser {
				continue
			}
		}
		kept = append(kept, e)
	}

	slices.SortStableFunc(kept, func(a, b Entry) int {
		return cmp.Compare(b.Rp, a.Rp)
	})

	rows := make([]Row, len(kept))
	for i, e := range kept {
		rank := i + 1
		rows[i] = Row{
			Entry:      e,
			Rank:       rank,
			Percentile: int(math.Ceil(float64(rank) / float64(len(kept)) * 100)),
		}
	}
	return rows
}

// Position returns the current user's row, if it survived the filter.
func Position(rows []Row) (Row, bool) {
	for _, r := range rows {
		if r.CurrentUser {
			return r, true
		}
	}
	return Row{}, false
}
