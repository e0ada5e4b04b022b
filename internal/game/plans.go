package game

import (
	"context"
	"fmt"

	"github.com/dohyeon0608/ReadQuest/internal/catalog"
	"github.com/dohyeon0608/ReadQuest/internal/plan"
	"github.com/dohyeon0608/ReadQuest/internal/progression"
	"github.com/dohyeon0608/ReadQuest/internal/quest"
	"github.com/dohyeon0608/ReadQuest/internal/store"
)

// ActivePlan is a saved plan with its live progress.
type ActivePlan struct {
	Book     catalog.Book
	Plan     plan.ReadingPlan
	Progress plan.Progress
	Next     *quest.Quest // nil once the plan is done
}

func planFromRecord(rec store.PlanRecord) plan.ReadingPlan {
	return plan.ReadingPlan{
		Pace:              plan.Pace(rec.Pace),
		SectionsPerQuest:  rec.SectionsPerQuest,
		StartSection:      rec.StartSection,
		EndSection:        rec.EndSection,
		MinutesPerSection: rec.MinutesPerSection,
	}
}

func recordFromPlan(title string, p plan.ReadingPlan) store.PlanRecord {
	return store.PlanRecord{
		BookTitle:         title,
		Pace:              string(p.Pace),
		SectionsPerQuest:  p.SectionsPerQuest,
		StartSection:      p.StartSection,
		EndSection:        p.EndSection,
		MinutesPerSection: p.MinutesPerSection,
	}
}

// SavePlan stores p for the book, replacing any earlier plan.
func (s *Session) SavePlan(ctx context.Context, title string, p plan.ReadingPlan) error {
	book, err := s.Book(title)
	if err != nil {
		return err
	}
	if !p.Valid(book) {
		return fmt.Errorf("%w: %s..%s", ErrInvalidRange, p.StartSection, p.EndSection)
	}
	if err := s.plans.Save(ctx, recordFromPlan(book.Title, p)); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	s.log.Info("plan saved", "book", book.Title, "pace", p.Pace, "sections_per_quest", p.SectionsPerQuest)
	return nil
}

// Plan returns the saved plan for a book.
func (s *Session) Plan(ctx context.Context, title string) (catalog.Book, plan.ReadingPlan, error) {
	book, err := s.Book(title)
	if err != nil {
		return catalog.Book{}, plan.ReadingPlan{}, err
	}
	rec, err := s.plans.Get(ctx, book.Title)
	if err != nil {
		return catalog.Book{}, plan.ReadingPlan{}, fmt.Errorf("load plan: %w", err)
	}
	if rec == nil {
		return catalog.Book{}, plan.ReadingPlan{}, fmt.Errorf("%w: %q", ErrNoPlan, book.Title)
	}
	return book, planFromRecord(*rec), nil
}

// RemovePlan deletes the plan for a book. Reading progress is kept.
func (s *Session) RemovePlan(ctx context.Context, title string) error {
	book, err := s.Book(title)
	if err != nil {
		return err
	}
	if err := s.plans.Delete(ctx, book.Title); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

// ActivePlans lists saved plans with their progress and next quest. Plans
// for books no longer in the catalog are skipped.
func (s *Session) ActivePlans(ctx context.Context) ([]ActivePlan, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	recs, err := s.plans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return s.activePlans(stats, recs), nil
}

func (s *Session) activePlans(stats progression.UserStats, recs []store.PlanRecord) []ActivePlan {
	var out []ActivePlan
	for _, rec := range recs {
		book, ok := s.catalog.Lookup(rec.BookTitle)
		if !ok {
			s.log.Warn("plan for unknown book", "book", rec.BookTitle)
			continue
		}
		p := planFromRecord(rec)
		done := stats.Completed(book.Title)
		ap := ActivePlan{
			Book:     book,
			Plan:     p,
			Progress: plan.PlanProgress(book, p, done),
		}
		if q, ok := plan.ActiveBatch(book, p, done); ok {
			ap.Next = q
		}
		out = append(out, ap)
	}
	return out
}

// NextQuest builds the next quest for a book's plan.
func (s *Session) NextQuest(ctx context.Context, title string) (quest.Quest, error) {
	book, p, err := s.Plan(ctx, title)
	if err != nil {
		return quest.Quest{}, err
	}
	if !p.Valid(book) {
		return quest.Quest{}, fmt.Errorf("%w: %s..%s", ErrInvalidRange, p.StartSection, p.EndSection)
	}
	stats, err := s.Stats(ctx)
	if err != nil {
		return quest.Quest{}, err
	}
	q, ok := plan.ActiveBatch(book, p, stats.Completed(book.Title))
	if !ok {
		return quest.Quest{}, fmt.Errorf("%w: %q", ErrPlanComplete, book.Title)
	}
	return *q, nil
}
