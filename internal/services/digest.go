package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"talktrack/internal/datefmt"
	"talktrack/internal/domain"
)

const deadlineDigestTemplate = "deadline_digest"

// DigestConfig controls who receives the deadline digest and how far ahead it looks.
type DigestConfig struct {
	To         []string
	WindowDays int
}

type digestService struct {
	snapshots      domain.SnapshotReader
	settingsRepo   domain.SettingsRepository
	mailer         domain.Mailer
	renderer       domain.EmailTemplateRenderer
	config         DigestConfig
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewDigestService returns a DigestService that renders the "deadline_digest" template and sends it through mailer.
func NewDigestService(snapshots domain.SnapshotReader,
	settingsRepo domain.SettingsRepository,
	mailer domain.Mailer,
	renderer domain.EmailTemplateRenderer,
	config DigestConfig,
	logger *slog.Logger,
	timeout time.Duration,
) domain.DigestService {
	if config.WindowDays <= 0 {
		config.WindowDays = 14
	}
	return &digestService{
		snapshots:      snapshots,
		settingsRepo:   settingsRepo,
		mailer:         mailer,
		renderer:       renderer,
		config:         config,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// SendDeadlineDigest lists events whose call for content closes within the window
// and that have no submission yet.
func (s *digestService) SendDeadlineDigest(ctx context.Context, now time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if len(s.config.To) == 0 {
		return 0, fmt.Errorf("%w: digest recipient is not configured", domain.ErrInvalidInput)
	}
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("load snapshot: %w", err)
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("get settings: %w", err)
	}

	items := DeadlineItems(snap, now, s.config.WindowDays, settings.DateFormat)
	if len(items) == 0 {
		s.logger.InfoContext(ctx, "no upcoming call for content deadlines")
		return 0, nil
	}

	data := &domain.DeadlineDigestEmailData{
		GeneratedOn: datefmt.Format(domain.FormatDay(now), settings.DateFormat),
		WindowDays:  s.config.WindowDays,
		Items:       items,
	}
	subject, htmlBody, textBody, err := s.renderer.Render(deadlineDigestTemplate, data)
	if err != nil {
		return 0, fmt.Errorf("failed to render deadline digest template: %w", err)
	}
	msg := domain.EmailMessage{To: s.config.To, Subject: subject, HTML: htmlBody, Text: textBody}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return 0, fmt.Errorf("failed to send deadline digest: %w", err)
	}
	s.logger.InfoContext(ctx, "deadline digest sent", "to", s.config.To, "events", len(items))
	return len(items), nil
}

// DeadlineItems selects unsubmitted events whose deadline falls between today and today+windowDays, soonest first.
func DeadlineItems(snap *domain.Snapshot, now time.Time, windowDays int, format domain.DateFormat) []domain.DeadlineDigestItem {
	today, _ := domain.ParseDay(domain.FormatDay(now.UTC()))
	limit := today.AddDate(0, 0, windowDays)

	submitted := make(map[string]bool)
	for _, sub := range snap.Submissions {
		submitted[sub.EventID] = true
	}

	items := make([]domain.DeadlineDigestItem, 0)
	for _, e := range snap.Events {
		if submitted[e.ID] {
			continue
		}
		deadline, ok := domain.ParseDay(e.CallForContentLastDate)
		if !ok || deadline.Before(today) || deadline.After(limit) {
			continue
		}
		items = append(items, domain.DeadlineDigestItem{
			EventID:   e.ID,
			EventName: e.Name,
			Location:  eventLocation(e),
			Deadline:  datefmt.Format(e.CallForContentLastDate, format),
			DaysLeft:  int(deadline.Sub(today).Hours() / 24),
			URL:       e.CallForContentURL,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysLeft < items[j].DaysLeft
	})
	return items
}
