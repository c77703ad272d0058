package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"talktrack/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	submissionRepo domain.SubmissionRepository
	snapshots      domain.SnapshotReader
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	submissionRepo domain.SubmissionRepository,
	snapshots domain.SnapshotReader,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		submissionRepo: submissionRepo,
		snapshots:      snapshots,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := domain.InvalidInput(domain.EventProblems(event)); err != nil {
		return err
	}
	event.ID = uuid.NewString()
	normalizeEvent(event)
	return s.eventRepo.Create(ctx, event)
}

func normalizeEvent(e *domain.Event) {
	if e.Travel == nil {
		e.Travel = []domain.TravelBooking{}
	}
	if e.Hotels == nil {
		e.Hotels = []domain.HotelBooking{}
	}
	for i := range e.Travel {
		if e.Travel[i].ID == "" {
			e.Travel[i].ID = uuid.NewString()
		}
	}
	for i := range e.Hotels {
		if e.Hotels[i].ID == "" {
			e.Hotels[i].ID = uuid.NewString()
		}
	}
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// ListEventViews decorates every event with its derived state and overlaps,
// applies the filter and sorts newest first by start date.
func (s *eventService) ListEventViews(ctx context.Context, filter domain.EventFilter) ([]*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	today := filter.Today
	if today.IsZero() {
		today = time.Now()
	}
	// the calendar date where Today was taken, so "past" flips at local midnight
	todayDay, _ := domain.ParseDay(domain.FormatDay(today))

	views := make([]*domain.EventView, 0, len(snap.Events))
	for _, e := range snap.Events {
		state := domain.ComputeEventState(e.ID, snap.Submissions)
		if len(filter.States) > 0 && !slices.Contains(filter.States, state) {
			continue
		}
		if filter.FutureOnly && isPast(e, todayDay) && !(state == domain.EventSelected && !e.MVPSubmission) {
			continue
		}
		views = append(views, &domain.EventView{
			Event:    e,
			State:    state,
			Overlaps: domain.OverlappingEvents(e, snap.Events),
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].DateStart > views[j].DateStart
	})
	return views, nil
}

// isPast reports whether the event ended before today. Events without a usable date are never past.
func isPast(e *domain.Event, today time.Time) bool {
	end, ok := domain.ParseDay(e.EffectiveEnd())
	if !ok {
		return false
	}
	return end.Before(today)
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	patch.Apply(event)
	if err := domain.InvalidInput(domain.EventProblems(event)); err != nil {
		return nil, err
	}
	normalizeEvent(event)
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// DeclineEvent moves every submission of the event to declined and returns them.
func (s *eventService) DeclineEvent(ctx context.Context, id string) ([]*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	subs, err := s.submissionRepo.List(ctx, domain.SubmissionFilter{EventID: id})
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	for _, sub := range subs {
		if sub.State == domain.StateDeclined {
			continue
		}
		sub.State = domain.StateDeclined
		if err := s.submissionRepo.Update(ctx, sub); err != nil {
			return nil, fmt.Errorf("decline submission %s: %w", sub.ID, err)
		}
	}
	if subs == nil {
		subs = []*domain.Submission{}
	}
	return subs, nil
}

// FindOverlaps checks a draft, saved or not, against every stored event.
func (s *eventService) FindOverlaps(ctx context.Context, draft *domain.Event) ([]domain.OverlappingEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return domain.OverlappingEvents(draft, events), nil
}
