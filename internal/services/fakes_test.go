package services

import (
	"context"
	"errors"
	"fmt"

	"talktrack/internal/domain"
)

// memStore backs every fake repository so the snapshot reader sees one consistent world.
type memStore struct {
	events      []*domain.Event
	sessions    []*domain.Session
	submissions []*domain.Submission
	settings    *domain.Settings
	nextID      int
	err         error // if set, every call returns this error
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (m *memStore) id(prefix string) string {
	id := fmt.Sprintf("%s-%d", prefix, m.nextID)
	m.nextID++
	return id
}

func (m *memStore) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Snapshot{Events: m.events, Sessions: m.sessions, Submissions: m.submissions}, nil
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct{ *memStore }

func (f fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	if e.ID == "" {
		e.ID = f.id("ev")
	}
	f.events = append(f.events, e)
	return nil
}

func (f fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	for i, existing := range f.events {
		if existing.ID == e.ID {
			f.events[i] = e
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f fakeEventRepo) Delete(ctx context.Context, id string) error {
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			f.dropSubmissions(func(s *domain.Submission) bool { return s.EventID == id })
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memStore) dropSubmissions(match func(*domain.Submission) bool) {
	kept := m.submissions[:0]
	for _, s := range m.submissions {
		if !match(s) {
			kept = append(kept, s)
		}
	}
	m.submissions = kept
}

// fakeSessionRepo is an in-memory SessionRepository for tests.
type fakeSessionRepo struct{ *memStore }

func (f fakeSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if f.err != nil {
		return f.err
	}
	if s.ID == "" {
		s.ID = f.id("sess")
	}
	f.sessions = append(f.sessions, s)
	return nil
}

func (f fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	for _, s := range f.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f fakeSessionRepo) List(ctx context.Context) ([]*domain.Session, error) {
	return f.sessions, nil
}

func (f fakeSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	for i, existing := range f.sessions {
		if existing.ID == s.ID {
			f.sessions[i] = s
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f fakeSessionRepo) Delete(ctx context.Context, id string) error {
	for i, s := range f.sessions {
		if s.ID == id {
			f.sessions = append(f.sessions[:i], f.sessions[i+1:]...)
			f.dropSubmissions(func(sub *domain.Submission) bool { return sub.SessionID == id })
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeSubmissionRepo is an in-memory SubmissionRepository for tests.
type fakeSubmissionRepo struct{ *memStore }

func (f fakeSubmissionRepo) Create(ctx context.Context, s *domain.Submission) error {
	for _, existing := range f.submissions {
		if existing.SessionID == s.SessionID && existing.EventID == s.EventID {
			return domain.ErrConflict
		}
	}
	if s.ID == "" {
		s.ID = f.id("sub")
	}
	f.submissions = append(f.submissions, s)
	return nil
}

func (f fakeSubmissionRepo) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	for _, s := range f.submissions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f fakeSubmissionRepo) List(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Submission
	for _, s := range f.submissions {
		if filter.Matches(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f fakeSubmissionRepo) Update(ctx context.Context, s *domain.Submission) error {
	for i, existing := range f.submissions {
		if existing.ID == s.ID {
			f.submissions[i] = s
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f fakeSubmissionRepo) Delete(ctx context.Context, id string) error {
	for i, s := range f.submissions {
		if s.ID == id {
			f.submissions = append(f.submissions[:i], f.submissions[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeSettingsRepo is an in-memory SettingsRepository for tests.
type fakeSettingsRepo struct{ *memStore }

func (f fakeSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	if f.settings == nil {
		return domain.DefaultSettings(), nil
	}
	return *f.settings, nil
}

func (f fakeSettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	f.settings = &s
	return nil
}

// seed helpers

func (m *memStore) addEvent(id, name, start, end string) *domain.Event {
	e := domain.NewEvent(name, start, end)
	e.ID = id
	m.events = append(m.events, e)
	return e
}

func (m *memStore) addSession(id, name string) *domain.Session {
	s := domain.NewSession(name, "300")
	s.ID = id
	m.sessions = append(m.sessions, s)
	return s
}

func (m *memStore) addSubmission(id, sessionID, eventID string, state domain.SubmissionState) *domain.Submission {
	s := domain.NewSubmission(sessionID, eventID, "")
	s.ID = id
	s.State = state
	m.submissions = append(m.submissions, s)
	return s
}

var errBoom = errors.New("boom")

// fakeMailer records every message it is asked to send.
type fakeMailer struct {
	sent []domain.EmailMessage
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg domain.EmailMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

// fakeRenderer renders a fixed subject and exposes the data it received.
type fakeRenderer struct {
	name string
	data any
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.name = templateName
	f.data = data
	return "subject", "<p>html</p>", "text", nil
}

// fakeFetcher returns a canned page.
type fakeFetcher struct {
	page string
	err  error
	url  string
}

func (f *fakeFetcher) FetchPage(ctx context.Context, url string) (string, error) {
	f.url = url
	return f.page, f.err
}
