// Package repository opens the configured storage backend.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"talktrack/internal/domain"
	"talktrack/internal/repository/jsonfile"
	"talktrack/internal/repository/postgres"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

type Options struct {
	Driver       string
	DataFile     string
	SettingsFile string
	DatabaseURL  string
}

// Repositories bundles the repositories of whichever driver is configured.
type Repositories struct {
	Events      domain.EventRepository
	Sessions    domain.SessionRepository
	Submissions domain.SubmissionRepository
	Settings    domain.SettingsRepository
	Snapshots   domain.SnapshotReader
	db          *sql.DB
}

// Close releases the database pool, if any.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Open connects to the backend named by opts.Driver. The postgres schema is migrated on open.
func Open(ctx context.Context, opts Options, logger *slog.Logger) (*Repositories, error) {
	switch opts.Driver {
	case DriverPostgres:
		db, err := postgres.Open(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("using postgres store")
		return &Repositories{
			Events:      postgres.NewEventRepository(db),
			Sessions:    postgres.NewSessionRepository(db),
			Submissions: postgres.NewSubmissionRepository(db),
			Settings:    postgres.NewSettingsRepository(db),
			Snapshots:   postgres.NewSnapshotReader(db),
			db:          db,
		}, nil
	case DriverFile, "":
		store := jsonfile.NewStore(opts.DataFile, opts.SettingsFile)
		logger.Info("using file store", "path", store.Path())
		return &Repositories{
			Events:      jsonfile.NewEventRepository(store),
			Sessions:    jsonfile.NewSessionRepository(store),
			Submissions: jsonfile.NewSubmissionRepository(store),
			Settings:    jsonfile.NewSettingsRepository(store),
			Snapshots:   store,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
