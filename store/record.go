package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvltrace/playback"
)

// Record is one archived Operation.
type Record struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	Summary    string          `json:"summary"`
	EventCount int             `json:"event_count"`
	Result     json.RawMessage `json:"result"`
	Final      json.RawMessage `json:"final"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewRecord converts op into a Record stamped with at.
// Final is the Snapshot of op's last Event, or JSON null for an empty trace.
func NewRecord[S any](op *playback.Operation[S], at time.Time) (Record, error) {
	if op == nil {
		return Record{}, errors.New("store: nil operation")
	}

	result, err := json.Marshal(op.Result)
	if err != nil {
		return Record{}, fmt.Errorf("store: marshal result of %s: %w", op.ID, err)
	}

	final := json.RawMessage("null")
	if last, ok := op.Last(); ok {
		if final, err = json.Marshal(last.Snapshot); err != nil {
			return Record{}, fmt.Errorf("store: marshal final snapshot of %s: %w", op.ID, err)
		}
	}

	return Record{
		ID:         op.ID,
		Kind:       op.Kind,
		Summary:    op.Summary,
		EventCount: op.Len(),
		Result:     result,
		Final:      final,
		CreatedAt:  at.UTC(),
	}, nil
}

// SaveOperation inserts rec. Saving an ID twice keeps the first Record.
func (s *Store) SaveOperation(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		return errors.New("store: record ID is empty")
	}
	result, final := rawOrNull(rec.Result), rawOrNull(rec.Final)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO operations
		(id, kind, summary, event_count, result, final, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.Kind,
		rec.Summary,
		rec.EventCount,
		string(result),
		string(final),
		rec.CreatedAt.UTC().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("store: save operation %s: %w", rec.ID, err)
	}

	return nil
}

// ListOperations returns the newest Records first. A limit ≤ 0 returns all.
// Records saved at the same instant are ordered by insertion, newest first.
//
// Returns an empty slice (not nil) if the archive is empty.
func (s *Store) ListOperations(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, summary, event_count, result, final, created_at
		FROM operations
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: query operations: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate operations: %w", err)
	}

	return records, nil
}

// GetOperation returns the Record with the given ID, or ErrNotFound.
func (s *Store) GetOperation(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, kind, summary, event_count, result, final, created_at
		FROM operations
		WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return rec, err
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec           Record
		result, final string
		created       int64
	)
	if err := sc.Scan(&rec.ID, &rec.Kind, &rec.Summary, &rec.EventCount, &result, &final, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("store: scan operation: %w", err)
	}
	rec.Result = json.RawMessage(result)
	rec.Final = json.RawMessage(final)
	rec.CreatedAt = time.Unix(0, created).UTC()

	return rec, nil
}

func rawOrNull(m json.RawMessage) json.RawMessage {
	if len(m) == 0 {
		return json.RawMessage("null")
	}
	return m
}
