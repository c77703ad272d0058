package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"talktrack/internal/domain"
)

var calendarMonthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type calendarService struct {
	snapshots      domain.SnapshotReader
	settingsRepo   domain.SettingsRepository
	contextTimeout time.Duration
}

func NewCalendarService(snapshots domain.SnapshotReader, settingsRepo domain.SettingsRepository, timeout time.Duration) domain.CalendarService {
	return &calendarService{
		snapshots:      snapshots,
		settingsRepo:   settingsRepo,
		contextTimeout: timeout,
	}
}

// GetYear buckets the events starting in year by month. Capacity flags compare the number of
// events in the selected state against the limits in settings; a zero limit disables the flag.
func (s *calendarService) GetYear(ctx context.Context, year int) (*domain.CalendarYear, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	out := &domain.CalendarYear{Year: year, Months: make([]domain.CalendarMonth, 12)}
	for i := range out.Months {
		out.Months[i] = domain.CalendarMonth{
			Month:  i + 1,
			Label:  calendarMonthLabels[i],
			Events: []domain.CalendarEntry{},
		}
	}

	for _, e := range snap.Events {
		start, ok := domain.ParseDay(e.DateStart)
		if !ok || start.Year() != year {
			continue
		}
		entry := calendarEntry(e, snap.Submissions)
		m := &out.Months[start.Month()-1]
		m.Events = append(m.Events, entry)
		m.Count++
		out.Count++
		if entry.State == domain.EventSelected {
			m.Selected++
			out.Selected++
		}
	}

	for i := range out.Months {
		m := &out.Months[i]
		sortEntries(m.Events)
		m.OverCapacity = settings.MaxEventsPerMonth > 0 && m.Selected > settings.MaxEventsPerMonth
	}
	out.OverCapacity = settings.MaxEventsPerYear > 0 && out.Selected > settings.MaxEventsPerYear
	return out, nil
}

// GetWeeks buckets the events starting in year by Sunday-based week, soonest first within a week.
func (s *calendarService) GetWeeks(ctx context.Context, year int) (*domain.CalendarWeeks, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	out := &domain.CalendarWeeks{Year: year, Weeks: make([]domain.CalendarWeek, domain.WeeksIn(year))}
	for i := range out.Weeks {
		out.Weeks[i] = domain.CalendarWeek{
			Week:   i + 1,
			Start:  domain.FormatDay(domain.WeekStart(year, i+1)),
			Events: []domain.CalendarEntry{},
		}
	}

	for _, e := range snap.Events {
		start, ok := domain.ParseDay(e.DateStart)
		if !ok || start.Year() != year {
			continue
		}
		w := &out.Weeks[domain.WeekOfYear(start)-1]
		w.Events = append(w.Events, calendarEntry(e, snap.Submissions))
		w.Count++
		out.Count++
	}
	for i := range out.Weeks {
		sortEntries(out.Weeks[i].Events)
	}
	return out, nil
}

func calendarEntry(e *domain.Event, subs []*domain.Submission) domain.CalendarEntry {
	return domain.CalendarEntry{
		ID:        e.ID,
		Name:      e.Name,
		DateStart: e.DateStart,
		City:      e.City,
		State:     domain.ComputeEventState(e.ID, subs),
	}
}

func sortEntries(entries []domain.CalendarEntry) {
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].DateStart < entries[b].DateStart
	})
}
