package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// schema creates the tables on first start. Submissions cascade with both endpoints.
const schema = `
CREATE TABLE IF NOT EXISTS events (
	id                         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	name                       TEXT NOT NULL,
	country                    TEXT NOT NULL DEFAULT '',
	city                       TEXT NOT NULL DEFAULT '',
	remote                     BOOLEAN NOT NULL DEFAULT FALSE,
	date_start                 TEXT NOT NULL DEFAULT '',
	date_end                   TEXT NOT NULL DEFAULT '',
	call_for_content_url       TEXT NOT NULL DEFAULT '',
	call_for_content_last_date TEXT NOT NULL DEFAULT '',
	login_tool                 TEXT NOT NULL DEFAULT '',
	travel                     JSONB NOT NULL DEFAULT '[]',
	hotels                     JSONB NOT NULL DEFAULT '[]',
	travel_handled             BOOLEAN NOT NULL DEFAULT FALSE,
	hotel_handled              BOOLEAN NOT NULL DEFAULT FALSE,
	mvp_submission             BOOLEAN NOT NULL DEFAULT FALSE,
	notes                      TEXT NOT NULL DEFAULT '',
	created_at                 TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS talk_sessions (
	id                    TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	name                  TEXT NOT NULL,
	alternate_names       TEXT[] NOT NULL DEFAULT '{}',
	level                 TEXT NOT NULL DEFAULT '',
	session_type          TEXT NOT NULL DEFAULT '',
	abstract              TEXT NOT NULL DEFAULT '',
	summary               TEXT NOT NULL DEFAULT '',
	goals                 TEXT NOT NULL DEFAULT '',
	elevator_pitch        TEXT NOT NULL DEFAULT '',
	retired               BOOLEAN NOT NULL DEFAULT FALSE,
	materials_url         TEXT NOT NULL DEFAULT '',
	target_audience       TEXT[] NOT NULL DEFAULT '{}',
	primary_technology    TEXT NOT NULL DEFAULT '',
	additional_technology TEXT NOT NULL DEFAULT '',
	equipment_notes       TEXT NOT NULL DEFAULT '',
	created_at            TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS submissions (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	session_id TEXT NOT NULL REFERENCES talk_sessions(id) ON DELETE CASCADE,
	event_id   TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
	state      TEXT NOT NULL DEFAULT 'submitted',
	name_used  TEXT NOT NULL DEFAULT '',
	notes      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (session_id, event_id)
);

CREATE TABLE IF NOT EXISTS settings (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	data JSONB NOT NULL
);
`

// Open connects to PostgreSQL with lib/pq and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Migrate creates any missing tables.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
