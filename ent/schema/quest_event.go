package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestEvent is one journal entry, written when a quest resolves.
type QuestEvent struct {
	ent.Schema
}

func (QuestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("quest_id"),
		field.String("book_title"),
		field.String("category"),
		field.JSON("sections", []string{}).
			Comment("Section ids covered by the quest, in reading order"),
		field.Int("goal_minutes"),
		field.Int("quiz_correct"),
		field.Int("quiz_total"),
		field.Int("earned_exp"),
		field.Int("earned_rp"),
		field.Int("bonus_rp").
			Comment("Part of earned_rp that came from the streak bonus"),
		field.Bool("streak_bonus"),
		field.Int("level_after"),
		field.Bool("leveled_up"),
	}
}

func (QuestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("book_title"),
	}
}
