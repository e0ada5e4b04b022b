package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Book   string    // quest events only: exact book title
}

// SnapshotData captures the full reader state at a point in time.
type SnapshotData struct {
	Version int                `json:"version"`
	Stats   *StatsSnapshotData `json:"stats,omitempty"`
}

// StatsSnapshotData is the persisted form of the reader's progression.
type StatsSnapshotData struct {
	Level          int                 `json:"level"`
	Exp            int                 `json:"exp"`
	ExpToNextLevel int                 `json:"exp_to_next_level"`
	Rp             int                 `json:"rp"`
	Streak         int                 `json:"streak"`
	LastQuestDate  *time.Time          `json:"last_quest_date,omitempty"`
	Titles         []string            `json:"titles"`
	Progress       map[string][]string `json:"progress,omitempty"`
	Journal        []JournalEntryData  `json:"journal,omitempty"`
}

// JournalEntryData is one persisted journal line.
type JournalEntryData struct {
	Date        time.Time `json:"date"`
	BookTitle   string    `json:"book_title"`
	Sections    []string  `json:"sections"`
	GoalMinutes int       `json:"goal_minutes"`
	EarnedExp   int       `json:"earned_exp"`
	EarnedRp    int       `json:"earned_rp"`
	QuizCorrect int       `json:"quiz_correct"`
	QuizTotal   int       `json:"quiz_total"`
}

// Snapshot represents a point-in-time capture of reader state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages reader state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// PlanRecord is the persisted form of one book's reading plan.
type PlanRecord struct {
	BookTitle         string
	Pace              string
	SectionsPerQuest  int
	StartSection      string
	EndSection        string
	MinutesPerSection int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PlanRepo stores at most one reading plan per book.
type PlanRepo interface {
	// Save inserts the plan, replacing any existing plan for the same book.
	Save(ctx context.Context, rec PlanRecord) error

	// Get returns the plan for a book, or nil if there is none.
	Get(ctx context.Context, bookTitle string) (*PlanRecord, error)

	// List returns all plans ordered by creation time.
	List(ctx context.Context) ([]PlanRecord, error)

	// Delete removes the plan for a book. Missing plans are not an error.
	Delete(ctx context.Context, bookTitle string) error
}

// QuestEventData captures a resolved quest.
type QuestEventData struct {
	QuestID     string
	BookTitle   string
	Category    string
	Sections    []string
	GoalMinutes int
	QuizCorrect int
	QuizTotal   int
	EarnedExp   int
	EarnedRp    int
	BonusRp     int
	StreakBonus bool
	LevelAfter  int
	LeveledUp   bool
}

// QuestEventRecord is a stored quest event.
type QuestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	QuestEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendQuestEvent records a resolved quest.
	AppendQuestEvent(ctx context.Context, data QuestEventData) error

	// QueryQuestEvents returns quest events, newest first.
	QueryQuestEvents(ctx context.Context, opts QueryOpts) ([]QuestEventRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
