package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var planColumns = []string{
	"book_title", "pace", "sections_per_quest", "start_section",
	"end_section", "minutes_per_section", "created_at", "updated_at",
}

// planRepo implements PlanRepo over the reading_plans table.
type planRepo struct {
	db *sql.DB
}

func (r *planRepo) Save(ctx context.Context, rec PlanRecord) error {
	now := nowUTC()
	query, args := builder().Insert(ReadingPlansTable.Name).
		Columns(planColumns...).
		Values(rec.BookTitle, rec.Pace, rec.SectionsPerQuest, rec.StartSection,
			rec.EndSection, rec.MinutesPerSection, now, now).
		OnConflict(
			entsql.ConflictColumns("book_title"),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.SetExcluded("pace")
				u.SetExcluded("sections_per_quest")
				u.SetExcluded("start_section")
				u.SetExcluded("end_section")
				u.SetExcluded("minutes_per_section")
				u.SetExcluded("updated_at")
			}),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save plan for %q: %w", rec.BookTitle, err)
	}
	return nil
}

func (r *planRepo) Get(ctx context.Context, bookTitle string) (*PlanRecord, error) {
	query, args := builder().Select(planColumns...).
		From(entsql.Table(ReadingPlansTable.Name)).
		Where(entsql.EQ("book_title", bookTitle)).
		Query()

	var rec PlanRecord
	err := r.db.QueryRowContext(ctx, query, args...).Scan(planDest(&rec)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan for %q: %w", bookTitle, err)
	}
	return &rec, nil
}

func (r *planRepo) List(ctx context.Context) ([]PlanRecord, error) {
	query, args := builder().Select(planColumns...).
		From(entsql.Table(ReadingPlansTable.Name)).
		OrderBy("created_at", "id").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var out []PlanRecord
	for rows.Next() {
		var rec PlanRecord
		if err := rows.Scan(planDest(&rec)...); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *planRepo) Delete(ctx context.Context, bookTitle string) error {
	query, args := builder().Delete(ReadingPlansTable.Name).
		Where(entsql.EQ("book_title", bookTitle)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete plan for %q: %w", bookTitle, err)
	}
	return nil
}

func planDest(rec *PlanRecord) []any {
	return []any{
		&rec.BookTitle, &rec.Pace, &rec.SectionsPerQuest, &rec.StartSection,
		&rec.EndSection, &rec.MinutesPerSection, &rec.CreatedAt, &rec.UpdatedAt,
	}
}
