package jsonfile

import (
	"context"

	"github.com/google/uuid"

	"talktrack/internal/domain"
)

type submissionRepository struct {
	store *Store
}

func NewSubmissionRepository(store *Store) domain.SubmissionRepository {
	return &submissionRepository{store: store}
}

// Create returns domain.ErrConflict when the session is already submitted to the event.
func (r *submissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	return r.store.update(ctx, func(d *fileData) error {
		for _, existing := range d.Submissions {
			if existing.SessionID == s.SessionID && existing.EventID == s.EventID {
				return domain.ErrConflict
			}
		}
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		d.Submissions = append(d.Submissions, s)
		return nil
	})
}

func (r *submissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	var found *domain.Submission
	err := r.store.view(ctx, func(d *fileData) error {
		for _, s := range d.Submissions {
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

func (r *submissionRepository) List(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error) {
	out := make([]*domain.Submission, 0)
	err := r.store.view(ctx, func(d *fileData) error {
		for _, s := range d.Submissions {
			if filter.Matches(s) {
				out = append(out, s)
			}
		}
		return nil
	})
	return out, err
}

func (r *submissionRepository) Update(ctx context.Context, s *domain.Submission) error {
	return r.store.update(ctx, func(d *fileData) error {
		for i, existing := range d.Submissions {
			if existing.ID == s.ID {
				d.Submissions[i] = s
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (r *submissionRepository) Delete(ctx context.Context, id string) error {
	return r.store.update(ctx, func(d *fileData) error {
		before := len(d.Submissions)
		d.Submissions = removeSubmissions(d.Submissions, func(s *domain.Submission) bool { return s.ID == id })
		if len(d.Submissions) == before {
			return domain.ErrNotFound
		}
		return nil
	})
}
