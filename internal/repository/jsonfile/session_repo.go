package jsonfile

import (
	"context"

	"github.com/google/uuid"

	"talktrack/internal/domain"
)

type sessionRepository struct {
	store *Store
}

func NewSessionRepository(store *Store) domain.SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	return r.store.update(ctx, func(d *fileData) error {
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		d.Sessions = append(d.Sessions, s)
		return nil
	})
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	var found *domain.Session
	err := r.store.view(ctx, func(d *fileData) error {
		for _, s := range d.Sessions {
			if s.ID == id {
				found = s
				return nil
			}
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *sessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	var out []*domain.Session
	err := r.store.view(ctx, func(d *fileData) error {
		out = d.Sessions
		return nil
	})
	return out, err
}

func (r *sessionRepository) Update(ctx context.Context, s *domain.Session) error {
	return r.store.update(ctx, func(d *fileData) error {
		for i, existing := range d.Sessions {
			if existing.ID == s.ID {
				d.Sessions[i] = s
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.store.update(ctx, func(d *fileData) error {
		idx := -1
		for i, s := range d.Sessions {
			if s.ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrNotFound
		}
		d.Sessions = append(d.Sessions[:idx], d.Sessions[idx+1:]...)
		d.Submissions = removeSubmissions(d.Submissions, func(s *domain.Submission) bool { return s.SessionID == id })
		return nil
	})
}
