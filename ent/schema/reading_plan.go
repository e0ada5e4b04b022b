package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ReadingPlan is the user's schedule for one book. At most one per title.
type ReadingPlan struct {
	ent.Schema
}

func (ReadingPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("book_title").
			Unique(),
		field.String("pace").
			Comment("slow, normal, fast or custom"),
		field.Int("sections_per_quest"),
		field.String("start_section"),
		field.String("end_section"),
		field.Int("minutes_per_section"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
