package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"talktrack/internal/domain"

	"github.com/robfig/cron/v3"
)

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "err", err)...)
}

// scheduleDigest registers the deadline digest under a standard five-field cron expression.
// Runs that overlap a still-running digest are skipped.
func scheduleDigest(expr string, digest domain.DigestService, logger *slog.Logger) (*cron.Cron, error) {
	cl := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	_, err := c.AddFunc(expr, func() {
		n, err := digest.SendDeadlineDigest(context.Background(), time.Now())
		if err != nil {
			logger.Error("deadline digest failed", "err", err)
			return
		}
		logger.Info("deadline digest run", "events", n)
	})
	if err != nil {
		return nil, fmt.Errorf("DIGEST_CRON %q: %w", expr, err)
	}
	return c, nil
}
