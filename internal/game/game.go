// Package game ties the catalog, reading plans, quizzes and progression
// together for the TUI and the command line.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dohyeon0608/ReadQuest/internal/catalog"
	"github.com/dohyeon0608/ReadQuest/internal/leaderboard"
	"github.com/dohyeon0608/ReadQuest/internal/logger"
	"github.com/dohyeon0608/ReadQuest/internal/progression"
	"github.com/dohyeon0608/ReadQuest/internal/quest"
	"github.com/dohyeon0608/ReadQuest/internal/quiz"
	"github.com/dohyeon0608/ReadQuest/internal/reward"
	"github.com/dohyeon0608/ReadQuest/internal/store"
)

var (
	ErrUnknownBook     = errors.New("unknown book")
	ErrNoPlan          = errors.New("no reading plan for this book")
	ErrInvalidRange    = errors.New("plan range does not resolve to any section")
	ErrPlanComplete    = errors.New("every section in the plan has been read")
	ErrQuizUnavailable = errors.New("quiz generation is not configured")
)

// DefaultQuizTimeout bounds one quiz generation when Options leaves it unset.
const DefaultQuizTimeout = 30 * time.Second

// Options wires a Session.
type Options struct {
	Catalog     *catalog.Catalog
	Plans       store.PlanRepo
	Progression *progression.Service
	Quiz        quiz.Generator // nil disables quizzes
	Board       *leaderboard.Board
	QuizTimeout time.Duration
	Log         *logger.Logger
	Now         func() time.Time
}

// Session is the reader's game state backed by the store.
type Session struct {
	catalog     *catalog.Catalog
	plans       store.PlanRepo
	progression *progression.Service
	quiz        quiz.Generator
	board       *leaderboard.Board
	quizTimeout time.Duration
	log         *logger.Logger
	now         func() time.Time
}

// New creates a Session. Missing catalog, board, clock and timeout get
// their defaults.
func New(opts Options) *Session {
	s := &Session{
		catalog:     opts.Catalog,
		plans:       opts.Plans,
		progression: opts.Progression,
		quiz:        opts.Quiz,
		board:       opts.Board,
		quizTimeout: opts.QuizTimeout,
		log:         opts.Log,
		now:         opts.Now,
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.board == nil {
		s.board = leaderboard.Default()
	}
	if s.quizTimeout <= 0 {
		s.quizTimeout = DefaultQuizTimeout
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Catalog returns the book catalog.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Now returns the session clock.
func (s *Session) Now() time.Time { return s.now() }

// QuizEnabled reports whether a quiz generator is configured.
func (s *Session) QuizEnabled() bool { return s.quiz != nil }

// Book looks a title up in the catalog.
func (s *Session) Book(title string) (catalog.Book, error) {
	b, ok := s.catalog.Lookup(title)
	if !ok {
		return catalog.Book{}, fmt.Errorf("%w: %q", ErrUnknownBook, title)
	}
	return b, nil
}

// Stats loads the reader's current statistics.
func (s *Session) Stats(ctx context.Context) (progression.UserStats, error) {
	return s.progression.Load(ctx)
}

// GenerateQuiz asks the generator for questions about the quest's sections.
func (s *Session) GenerateQuiz(ctx context.Context, q quest.Quest) ([]quiz.Question, error) {
	if s.quiz == nil {
		return nil, ErrQuizUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.quizTimeout)
	defer cancel()

	questions, err := s.quiz.Generate(ctx, quiz.Input{
		Topics:   q.Sections,
		Category: q.Category,
		Count:    quiz.QuestionCount(len(q.Sections)),
	})
	if err != nil {
		s.log.Warn("quiz generation failed", "quest", q.ID, "book", q.BookTitle, "error", err)
		return nil, err
	}
	return questions, nil
}

// Resolve commits a finished quest. A skipped quiz resolves with a zero
// tally and earns nothing.
func (s *Session) Resolve(ctx context.Context, q quest.Quest, tally reward.Tally) (progression.Outcome, error) {
	return s.progression.Resolve(ctx, q, tally, s.now())
}

// Reset wipes the reader's statistics.
func (s *Session) Reset(ctx context.Context) error {
	return s.progression.Reset(ctx, s.now())
}

// Leaderboard ranks the reader's live RP and level against the season.
func (s *Session) Leaderboard(ctx context.Context, filter leaderboard.Filter) ([]leaderboard.Row, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return s.board.Rank(filter, stats.Rp, stats.Level), nil
}

// UserMajor is the major shown on the leaderboard's major tab.
func (s *Session) UserMajor() string { return s.board.UserMajor() }
