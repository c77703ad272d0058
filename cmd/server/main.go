// @title TalkTrack API
// @version 1.0
// @description Tracks conference talk proposals (sessions), the events they are submitted to, and the outcome of each submission.
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talktrack/config"
	_ "talktrack/docs"
	"talktrack/internal/adapters/email"
	"talktrack/internal/adapters/sessionize"
	httpdelivery "talktrack/internal/delivery/http"
	"talktrack/internal/delivery/http/controllers"
	"talktrack/internal/repository"
	"talktrack/internal/services"
)

func main() {
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, repository.Options{
		Driver:       cfg.StoreDriver,
		DataFile:     cfg.DataFile,
		SettingsFile: cfg.SettingsFile,
		DatabaseURL:  cfg.DBUrl,
	}, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailerProvider,
		FromAddress: cfg.MailerFromAddress,
		FromName:    cfg.MailerFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return err
	}

	timeout := cfg.RequestTimeout
	eventService := services.NewEventService(store.Events, store.Submissions, store.Snapshots, timeout)
	sessionService := services.NewSessionService(store.Sessions, store.Submissions, timeout)
	submissionService := services.NewSubmissionService(store.Submissions, store.Sessions, store.Events, timeout)
	settingsService := services.NewSettingsService(store.Settings, timeout)
	calendarService := services.NewCalendarService(store.Snapshots, store.Settings, timeout)
	statisticsService := services.NewStatisticsService(store.Snapshots, timeout)
	exportService := services.NewExportService(store.Snapshots, store.Settings, timeout)
	fetcher := sessionize.NewHTTPFetcher(&http.Client{Timeout: cfg.ImportTimeout})
	importService := services.NewImportService(fetcher, cfg.ImportTimeout)
	digestService := services.NewDigestService(store.Snapshots, store.Settings, mailer, email.NewTemplateRenderer(),
		services.DigestConfig{To: cfg.DigestTo, WindowDays: cfg.DigestWindowDays}, logger, timeout)

	router := httpdelivery.NewRouter(httpdelivery.Controllers{
		Events:      controllers.NewEventController(logger, eventService),
		Sessions:    controllers.NewSessionController(logger, sessionService),
		Submissions: controllers.NewSubmissionController(logger, submissionService),
		Settings:    controllers.NewSettingsController(logger, settingsService),
		Insights:    controllers.NewInsightController(logger, calendarService, statisticsService),
		Integration: controllers.NewIntegrationController(logger, importService, digestService),
		Export:      controllers.NewExportController(logger, exportService),
	}, httpdelivery.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
	}, logger)

	if cfg.DigestCron != "" {
		scheduler, err := scheduleDigest(cfg.DigestCron, digestService, logger)
		if err != nil {
			return err
		}
		scheduler.Start()
		defer func() { <-scheduler.Stop().Done() }()
		logger.Info("deadline digest scheduled", "cron", cfg.DigestCron, "to", cfg.DigestTo)
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "store", cfg.StoreDriver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("signal received, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
