package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/dohyeon0608/ReadQuest/internal/logger"
	"github.com/dohyeon0608/ReadQuest/internal/quest"
	"github.com/dohyeon0608/ReadQuest/internal/reward"
	"github.com/dohyeon0608/ReadQuest/internal/store"
)

// DefaultKeepSnapshots is how many stats snapshots survive a prune.
const DefaultKeepSnapshots = 10

// SequenceSource reports the last event sequence, for stamping snapshots.
type SequenceSource interface {
	CurrentSequence(ctx context.Context) (int64, error)
}

// Service persists progression: it loads the latest stats snapshot, commits
// quests through Commit, and records each outcome as an event.
type Service struct {
	snapshots store.SnapshotRepo
	events    store.EventRepo
	sequence  SequenceSource
	log       *logger.Logger
	keep      int
}

// NewService creates a progression service. events and sequence may be nil.
func NewService(snapshots store.SnapshotRepo, events store.EventRepo, sequence SequenceSource, log *logger.Logger) *Service {
	return &Service{
		snapshots: snapshots,
		events:    events,
		sequence:  sequence,
		log:       log,
		keep:      DefaultKeepSnapshots,
	}
}

// Load returns the latest stats, or NewUserStats when nothing is stored.
func (s *Service) Load(ctx context.Context) (UserStats, error) {
	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		return UserStats{}, fmt.Errorf("load stats: %w", err)
	}
	if snap == nil {
		return NewUserStats(), nil
	}
	return StatsFromSnapshot(snap.Data.Stats), nil
}

// Resolve commits a finished quest against the stored stats and persists
// the result. Each call commits once, so callers must resolve a quest only
// once. The quest event is recorded only after the snapshot is saved, so it
// carries the sequence following the snapshot's.
func (s *Service) Resolve(ctx context.Context, q quest.Quest, tally reward.Tally, now time.Time) (Outcome, error) {
	stats, err := s.Load(ctx)
	if err != nil {
		return Outcome{}, err
	}

	out := Commit(stats, q, tally, now)
	if err := s.save(ctx, out.Stats, now); err != nil {
		return Outcome{}, err
	}
	s.persist(ctx, q, out)

	s.log.Info("quest resolved",
		"book", q.BookTitle,
		"sections", len(q.Sections),
		"correct", tally.Correct,
		"total", tally.Total,
		"exp", out.Result.EarnedExp,
		"rp", out.Result.EarnedRp,
		"streak_bonus", out.Result.IsStreakBonus,
		"level", out.Stats.Level,
		"streak", out.Stats.Streak,
	)
	if out.LeveledUp {
		s.log.Info("level up", "level", out.Stats.Level, "titles", out.NewTitles)
	}
	return out, nil
}

// Reset stores fresh statistics. Older snapshots are pruned.
func (s *Service) Reset(ctx context.Context, now time.Time) error {
	if err := s.save(ctx, NewUserStats(), now); err != nil {
		return err
	}
	s.log.Info("stats reset")
	return nil
}

func (s *Service) save(ctx context.Context, stats UserStats, now time.Time) error {
	var seq int64
	if s.sequence != nil {
		cur, err := s.sequence.CurrentSequence(ctx)
		if err != nil {
			s.log.Warn("read event sequence", "error", err)
		}
		seq = cur
	}

	snap := &store.Snapshot{
		Sequence:  seq,
		Timestamp: now.UTC(),
		Data: store.SnapshotData{
			Version: snapshotVersion,
			Stats:   stats.SnapshotData(),
		},
	}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("save stats snapshot: %w", err)
	}
	if err := s.snapshots.Prune(ctx, s.keep); err != nil {
		s.log.Warn("prune snapshots", "error", err)
	}
	return nil
}

// persist records the outcome as a quest event. Failures are logged, not
// returned; the snapshot is the source of truth.
func (s *Service) persist(ctx context.Context, q quest.Quest, out Outcome) {
	if s.events == nil {
		return
	}
	err := s.events.AppendQuestEvent(ctx, store.QuestEventData{
		QuestID:     q.ID,
		BookTitle:   q.BookTitle,
		Category:    string(q.Category),
		Sections:    q.Sections,
		GoalMinutes: q.GoalMinutes,
		QuizCorrect: out.Result.CorrectAnswers,
		QuizTotal:   out.Result.TotalQuestions,
		EarnedExp:   out.Result.EarnedExp,
		EarnedRp:    out.Result.EarnedRp,
		BonusRp:     out.Result.BonusRp,
		StreakBonus: out.Result.IsStreakBonus,
		LevelAfter:  out.Stats.Level,
		LeveledUp:   out.LeveledUp,
	})
	if err != nil {
		s.log.Warn("record quest event", "quest", q.ID, "error", err)
	}
}
