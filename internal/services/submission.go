package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"talktrack/internal/domain"
)

type submissionService struct {
	submissionRepo domain.SubmissionRepository
	sessionRepo    domain.SessionRepository
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewSubmissionService(submissionRepo domain.SubmissionRepository,
	sessionRepo domain.SessionRepository,
	eventRepo domain.EventRepository,
	timeout time.Duration,
) domain.SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		sessionRepo:    sessionRepo,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *submissionService) CreateSubmission(ctx context.Context, sessionID, eventID, nameUsed string) (*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	existing, err := s.submissionRepo.List(ctx, domain.SubmissionFilter{SessionID: sessionID, EventID: eventID})
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: session already submitted to this event", domain.ErrConflict)
	}

	if nameUsed == "" {
		nameUsed = session.Name
	}
	sub := domain.NewSubmission(sessionID, eventID, nameUsed)
	sub.ID = uuid.NewString()
	if err := s.submissionRepo.Create(ctx, sub); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return sub, nil
}

func (s *submissionService) ListSubmissions(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	subs, err := s.submissionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	if subs == nil {
		subs = []*domain.Submission{}
	}
	return subs, nil
}

func (s *submissionService) UpdateSubmission(ctx context.Context, id string, state *domain.SubmissionState, notes *string) (*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if state != nil && !state.Valid() {
		return nil, fmt.Errorf("%w: unknown state %q", domain.ErrInvalidInput, *state)
	}
	sub, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	if state != nil {
		sub.State = *state
	}
	if notes != nil {
		sub.Notes = *notes
	}
	if err := s.submissionRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("update submission: %w", err)
	}
	return sub, nil
}

func (s *submissionService) DeleteSubmission(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.submissionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete submission: %w", err)
	}
	return nil
}
