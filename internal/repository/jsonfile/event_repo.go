package jsonfile

import (
	"context"

	"github.com/google/uuid"

	"talktrack/internal/domain"
)

type eventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) domain.EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	return r.store.update(ctx, func(d *fileData) error {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		d.Events = append(d.Events, e)
		return nil
	})
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var found *domain.Event
	err := r.store.view(ctx, func(d *fileData) error {
		for _, e := range d.Events {
			if e.ID == id {
				found = e
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

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	var out []*domain.Event
	err := r.store.view(ctx, func(d *fileData) error {
		out = d.Events
		return nil
	})
	return out, err
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	return r.store.update(ctx, func(d *fileData) error {
		for i, existing := range d.Events {
			if existing.ID == e.ID {
				d.Events[i] = e
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	return r.store.update(ctx, func(d *fileData) error {
		idx := -1
		for i, e := range d.Events {
			if e.ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrNotFound
		}
		d.Events = append(d.Events[:idx], d.Events[idx+1:]...)
		d.Submissions = removeSubmissions(d.Submissions, func(s *domain.Submission) bool { return s.EventID == id })
		return nil
	})
}

func removeSubmissions(subs []*domain.Submission, drop func(*domain.Submission) bool) []*domain.Submission {
	kept := make([]*domain.Submission, 0, len(subs))
	for _, s := range subs {
		if !drop(s) {
			kept = append(kept, s)
		}
	}
	return kept
}
