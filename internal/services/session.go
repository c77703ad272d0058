package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"talktrack/internal/domain"
)

type sessionService struct {
	sessionRepo    domain.SessionRepository
	submissionRepo domain.SubmissionRepository
	contextTimeout time.Duration
}

func NewSessionService(sessionRepo domain.SessionRepository, submissionRepo domain.SubmissionRepository, timeout time.Duration) domain.SessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		submissionRepo: submissionRepo,
		contextTimeout: timeout,
	}
}

func normalizeSession(s *domain.Session) {
	if s.SessionType == "" {
		s.SessionType = domain.DefaultSessionType
	}
	if s.AlternateNames == nil {
		s.AlternateNames = []string{}
	}
	if s.TargetAudience == nil {
		s.TargetAudience = []string{}
	}
}

func (s *sessionService) CreateSession(ctx context.Context, session *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := domain.InvalidInput(domain.SessionProblems(session)); err != nil {
		return err
	}
	session.ID = uuid.NewString()
	normalizeSession(session)
	return s.sessionRepo.Create(ctx, session)
}

func (s *sessionService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

func (s *sessionService) ListSessions(ctx context.Context) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, id string, patch domain.SessionPatch) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	patch.Apply(session)
	if err := domain.InvalidInput(domain.SessionProblems(session)); err != nil {
		return nil, err
	}
	normalizeSession(session)
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return session, nil
}

func (s *sessionService) ToggleRetired(ctx context.Context, id string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	session.Retired = !session.Retired
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return session, nil
}

// DeleteSession refuses to orphan submissions unless force is set, in which case they are removed too.
func (s *sessionService) DeleteSession(ctx context.Context, id string, force bool) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !force {
		subs, err := s.submissionRepo.List(ctx, domain.SubmissionFilter{SessionID: id})
		if err != nil {
			return fmt.Errorf("list submissions: %w", err)
		}
		if len(subs) > 0 {
			return fmt.Errorf("%w: session has %d submission(s)", domain.ErrConflict, len(subs))
		}
	}
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
