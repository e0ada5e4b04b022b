package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event types. Quest and LLM events live in separate tables, so per-table
// auto-increment IDs can't order them against each other. Snapshots record
// the sequence they were taken at, so events after a snapshot can be found
// with sequence > snapshot.sequence.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// Current returns the last sequence number handed out, or 0.
func (sc *sequenceCounter) Current(ctx context.Context) (int64, error) {
	var next int64
	err := sc.db.QueryRowContext(ctx, `SELECT next_val FROM global_sequence WHERE id = 1`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("read sequence: %w", err)
	}
	return next - 1, nil
}

// CurrentSequence returns the last event sequence number, for stamping
// snapshots.
func (s *Store) CurrentSequence(ctx context.Context) (int64, error) {
	return s.seq.Current(ctx)
}

// eventRepo implements EventRepo with the global sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

// eventPredicates turns QueryOpts into WHERE predicates shared by all
// event tables.
func eventPredicates(opts QueryOpts) []*entsql.Predicate {
	var ps []*entsql.Predicate
	if opts.After > 0 {
		ps = append(ps, entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		ps = append(ps, entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		ps = append(ps, entsql.GTE("timestamp", opts.From))
	}
	if !opts.To.IsZero() {
		ps = append(ps, entsql.LTE("timestamp", opts.To))
	}
	return ps
}

// applyQueryOpts adds filters, newest-first ordering, and the limit.
func applyQueryOpts(sel *entsql.Selector, opts QueryOpts, extra ...*entsql.Predicate) *entsql.Selector {
	ps := append(eventPredicates(opts), extra...)
	if len(ps) > 0 {
		sel.Where(entsql.And(ps...))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return sel
}
