// Command import loads the legacy Access XML export into the configured store.
//
//	import -dir ./export
//
// reads Sessions.xml, tblEvents.xml and tblSessionEvents.xml from dir. Missing files are
// treated as empty tables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"talktrack/config"
	"talktrack/internal/legacy"
	"talktrack/internal/repository"
)

func main() {
	dir := flag.String("dir", ".", "directory holding the XML export")
	sessionsFile := flag.String("sessions", "Sessions.xml", "sessions table file name")
	eventsFile := flag.String("events", "tblEvents.xml", "events table file name")
	submissionsFile := flag.String("submissions", "tblSessionEvents.xml", "session-event table file name")
	flag.Parse()

	logger := config.NewLogger()
	if err := run(logger, *dir, *sessionsFile, *eventsFile, *submissionsFile); err != nil {
		logger.Error("import failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, dir, sessionsFile, eventsFile, submissionsFile string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var tables legacy.Tables
	if tables.Sessions, err = readTable(dir, sessionsFile, legacy.ParseSessions); err != nil {
		return err
	}
	if tables.Events, err = readTable(dir, eventsFile, legacy.ParseEvents); err != nil {
		return err
	}
	if tables.SessionEvents, err = readTable(dir, submissionsFile, legacy.ParseSessionEvents); err != nil {
		return err
	}
	logger.Info("legacy export read",
		"sessions", len(tables.Sessions),
		"events", len(tables.Events),
		"submissions", len(tables.SessionEvents),
	)

	ctx := context.Background()
	repos, err := repository.Open(ctx, repository.Options{
		Driver:       cfg.StoreDriver,
		DataFile:     cfg.DataFile,
		SettingsFile: cfg.SettingsFile,
		DatabaseURL:  cfg.DBUrl,
	}, logger)
	if err != nil {
		return err
	}
	defer repos.Close()

	im := &legacy.Importer{
		Events:      repos.Events,
		Sessions:    repos.Sessions,
		Submissions: repos.Submissions,
		Logger:      logger,
	}
	rep, err := im.Import(ctx, tables)
	if err != nil {
		return err
	}
	logger.Info("import complete",
		"sessions_imported", rep.SessionsImported,
		"sessions_skipped", rep.SessionsSkipped,
		"events_imported", rep.EventsImported,
		"events_skipped", rep.EventsSkipped,
		"submissions_imported", rep.SubmissionsImported,
		"submissions_skipped", rep.SubmissionsSkipped,
		"missing_sessions", rep.MissingSessions,
		"missing_events", rep.MissingEvents,
	)
	return nil
}

func readTable[T any](dir, name string, parse func(r io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	return parse(f)
}
