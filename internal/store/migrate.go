package store

import (
	"context"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
	}

	// ReadingPlansColumns holds the columns for the "reading_plans" table.
	ReadingPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "book_title", Type: field.TypeString, Unique: true},
		{Name: "pace", Type: field.TypeString},
		{Name: "sections_per_quest", Type: field.TypeInt},
		{Name: "start_section", Type: field.TypeString},
		{Name: "end_section", Type: field.TypeString},
		{Name: "minutes_per_section", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReadingPlansTable holds the schema information for the "reading_plans" table.
	ReadingPlansTable = &schema.Table{
		Name:       "reading_plans",
		Columns:    ReadingPlansColumns,
		PrimaryKey: []*schema.Column{ReadingPlansColumns[0]},
	}

	// QuestEventsColumns holds the columns for the "quest_events" table.
	QuestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "quest_id", Type: field.TypeString},
		{Name: "book_title", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "sections", Type: field.TypeJSON},
		{Name: "goal_minutes", Type: field.TypeInt},
		{Name: "quiz_correct", Type: field.TypeInt},
		{Name: "quiz_total", Type: field.TypeInt},
		{Name: "earned_exp", Type: field.TypeInt},
		{Name: "earned_rp", Type: field.TypeInt},
		{Name: "bonus_rp", Type: field.TypeInt},
		{Name: "streak_bonus", Type: field.TypeBool},
		{Name: "level_after", Type: field.TypeInt},
		{Name: "leveled_up", Type: field.TypeBool},
	}
	// QuestEventsTable holds the schema information for the "quest_events" table.
	QuestEventsTable = &schema.Table{
		Name:       "quest_events",
		Columns:    QuestEventsColumns,
		PrimaryKey: []*schema.Column{QuestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuestEventsColumns[2]},
			},
			{
				Name:    "questevent_book_title",
				Unique:  false,
				Columns: []*schema.Column{QuestEventsColumns[4]},
			},
		},
	}

	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SnapshotsTable,
		ReadingPlansTable,
		QuestEventsTable,
		LlmRequestEventsTable,
	}
)

// migrate creates or upgrades every table in Tables.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, Tables...)
}
