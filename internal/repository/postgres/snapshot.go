package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"talktrack/internal/domain"
)

type snapshotReader struct {
	DB *sql.DB
}

// NewSnapshotReader reads all three tables inside one read-only repeatable-read transaction.
func NewSnapshotReader(db *sql.DB) domain.SnapshotReader {
	return &snapshotReader{
		DB: db,
	}
}

func (r *snapshotReader) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	events, err := listEvents(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	sessions, err := listSessions(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	subs, err := listSubmissions(ctx, tx, domain.SubmissionFilter{})
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}
	return &domain.Snapshot{Events: events, Sessions: sessions, Submissions: subs}, nil
}
