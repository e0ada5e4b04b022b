// Package gametest builds throwaway game sessions for screen and command
// tests.
package gametest

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/dohyeon0608/ReadQuest/internal/catalog"
	"github.com/dohyeon0608/ReadQuest/internal/game"
	"github.com/dohyeon0608/ReadQuest/internal/llm"
	"github.com/dohyeon0608/ReadQuest/internal/logger"
	"github.com/dohyeon0608/ReadQuest/internal/plan"
	"github.com/dohyeon0608/ReadQuest/internal/progression"
	"github.com/dohyeon0608/ReadQuest/internal/quiz"
	"github.com/dohyeon0608/ReadQuest/internal/store"
)

// Novel is the only book in the test catalog: five sections in two chapters.
const Novel = "Short Novel"

// TwoQuestionQuiz is a valid quiz response whose answers are "a" then "d".
var TwoQuestionQuiz = json.RawMessage(`{"questions":[
	{"question":"Who narrates the opening?","options":["a","b","c","d"],"correct_answer":"a"},
	{"question":"Where does part one end?","options":["a","b","c","d"],"correct_answer":"d"}
]}`)

// Fixture is a session over a temp database.
type Fixture struct {
	Session *game.Session
	Store   *store.Store
	Mock    *llm.MockProvider
	Clock   time.Time
}

// Catalog returns the one-book test catalog.
func Catalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Book{{
		Title:    Novel,
		Category: catalog.CategoryFiction,
		Chapters: []catalog.Chapter{
			{Title: "Part 1", Sections: []string{"c1", "c2", "c3"}},
			{Title: "Part 2", Sections: []string{"c4", "c5"}},
		},
	}})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

// New opens a fresh store and session. With withQuiz false the session has
// no quiz generator.
func New(t testing.TB, withQuiz bool) *Fixture {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "readquest.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	f := &Fixture{
		Store: st,
		Mock:  llm.NewMockProvider(),
		Clock: time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC),
	}
	var gen quiz.Generator
	if withQuiz {
		gen = quiz.New(f.Mock, quiz.DefaultConfig())
	}
	f.Session = game.New(game.Options{
		Catalog:     Catalog(t),
		Plans:       st.PlanRepo(),
		Progression: progression.NewService(st.SnapshotRepo(), st.EventRepo(), st, logger.Nop()),
		Quiz:        gen,
		Log:         logger.Nop(),
		Now:         func() time.Time { return f.Clock },
	})
	return f
}

// SavePlan stores a whole-book plan for Novel at pace.
func (f *Fixture) SavePlan(t testing.TB, pace plan.Pace, custom int) plan.ReadingPlan {
	t.Helper()
	book, err := f.Session.Book(Novel)
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	p := plan.New(book, pace, custom, "", "", 1)
	if err := f.Session.SavePlan(context.Background(), Novel, p); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	return p
}
