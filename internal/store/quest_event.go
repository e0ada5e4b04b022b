package store

import (
	"context"
	"encoding/json"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var questEventColumns = []string{
	"id", "sequence", "timestamp", "quest_id", "book_title", "category", "sections",
	"goal_minutes", "quiz_correct", "quiz_total", "earned_exp", "earned_rp",
	"bonus_rp", "streak_bonus", "level_after", "leveled_up",
}

func (r *eventRepo) AppendQuestEvent(ctx context.Context, data QuestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	sections, err := json.Marshal(data.Sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}

	query, args := builder().Insert(QuestEventsTable.Name).
		Columns(questEventColumns[1:]...).
		Values(seqNum, nowUTC(), data.QuestID, data.BookTitle, data.Category, string(sections),
			data.GoalMinutes, data.QuizCorrect, data.QuizTotal, data.EarnedExp, data.EarnedRp,
			data.BonusRp, data.StreakBonus, data.LevelAfter, data.LeveledUp).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save quest event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuestEvents(ctx context.Context, opts QueryOpts) ([]QuestEventRecord, error) {
	var extra []*entsql.Predicate
	if opts.Book != "" {
		extra = append(extra, entsql.EQ("book_title", opts.Book))
	}
	sel := builder().Select(questEventColumns...).From(entsql.Table(QuestEventsTable.Name))
	query, args := applyQueryOpts(sel, opts, extra...).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quest events: %w", err)
	}
	defer rows.Close()

	var out []QuestEventRecord
	for rows.Next() {
		var (
			e        QuestEventRecord
			sections string
		)
		if err := rows.Scan(
			&e.ID, &e.Sequence, &e.Timestamp, &e.QuestID, &e.BookTitle, &e.Category, &sections,
			&e.GoalMinutes, &e.QuizCorrect, &e.QuizTotal, &e.EarnedExp, &e.EarnedRp,
			&e.BonusRp, &e.StreakBonus, &e.LevelAfter, &e.LeveledUp,
		); err != nil {
			return nil, fmt.Errorf("scan quest event: %w", err)
		}
		if err := json.Unmarshal([]byte(sections), &e.Sections); err != nil {
			return nil, fmt.Errorf("unmarshal sections for event %d: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
