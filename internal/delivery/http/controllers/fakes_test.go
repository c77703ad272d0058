package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"talktrack/internal/delivery/http/helpers"
	"talktrack/internal/domain"
	"talktrack/internal/stats"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var fixedNow = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

// decodeEnvelope decodes the response envelope and, when out is non-nil, re-decodes data into it.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, out any) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	if out != nil {
		require.Nil(t, envelope.Error, "success response must have error nil")
		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(dataBytes, out))
	}
	return envelope
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	err             error
	events          []*domain.Event
	views           []*domain.EventView
	event           *domain.Event
	declined        []*domain.Submission
	overlaps        []domain.OverlappingEvent
	lastCreateEvent *domain.Event
	lastFilter      domain.EventFilter
	lastID          string
	lastPatch       domain.EventPatch
	lastDraft       *domain.Event
	rawCalled       bool
}

func (f *fakeEventService) CreateEvent(_ context.Context, event *domain.Event) error {
	f.lastCreateEvent = event
	if f.err != nil {
		return f.err
	}
	event.ID = "ev-created"
	return nil
}

func (f *fakeEventService) GetEvent(_ context.Context, id string) (*domain.Event, error) {
	f.lastID = id
	return f.event, f.err
}

func (f *fakeEventService) ListEvents(context.Context) ([]*domain.Event, error) {
	f.rawCalled = true
	return f.events, f.err
}

func (f *fakeEventService) ListEventViews(_ context.Context, filter domain.EventFilter) ([]*domain.EventView, error) {
	f.lastFilter = filter
	return f.views, f.err
}

func (f *fakeEventService) UpdateEvent(_ context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	f.lastID = id
	f.lastPatch = patch
	return f.event, f.err
}

func (f *fakeEventService) DeleteEvent(_ context.Context, id string) error {
	f.lastID = id
	return f.err
}

func (f *fakeEventService) DeclineEvent(_ context.Context, id string) ([]*domain.Submission, error) {
	f.lastID = id
	return f.declined, f.err
}

func (f *fakeEventService) FindOverlaps(_ context.Context, draft *domain.Event) ([]domain.OverlappingEvent, error) {
	f.lastDraft = draft
	return f.overlaps, f.err
}

// fakeSessionService implements domain.SessionService for handler tests.
type fakeSessionService struct {
	err       error
	sessions  []*domain.Session
	session   *domain.Session
	lastID    string
	lastForce bool
	lastPatch domain.SessionPatch
	created   *domain.Session
}

func (f *fakeSessionService) CreateSession(_ context.Context, s *domain.Session) error {
	f.created = s
	if f.err != nil {
		return f.err
	}
	s.ID = "sess-created"
	return nil
}

func (f *fakeSessionService) GetSession(_ context.Context, id string) (*domain.Session, error) {
	f.lastID = id
	return f.session, f.err
}

func (f *fakeSessionService) ListSessions(context.Context) ([]*domain.Session, error) {
	return f.sessions, f.err
}

func (f *fakeSessionService) UpdateSession(_ context.Context, id string, patch domain.SessionPatch) (*domain.Session, error) {
	f.lastID = id
	f.lastPatch = patch
	return f.session, f.err
}

func (f *fakeSessionService) ToggleRetired(_ context.Context, id string) (*domain.Session, error) {
	f.lastID = id
	return f.session, f.err
}

func (f *fakeSessionService) DeleteSession(_ context.Context, id string, force bool) error {
	f.lastID = id
	f.lastForce = force
	return f.err
}

// fakeSubmissionService implements domain.SubmissionService for handler tests.
type fakeSubmissionService struct {
	err           error
	submissions   []*domain.Submission
	submission    *domain.Submission
	lastFilter    domain.SubmissionFilter
	lastSessionID string
	lastEventID   string
	lastNameUsed  string
	lastID        string
	lastState     *domain.SubmissionState
	lastNotes     *string
}

func (f *fakeSubmissionService) CreateSubmission(_ context.Context, sessionID, eventID, nameUsed string) (*domain.Submission, error) {
	f.lastSessionID, f.lastEventID, f.lastNameUsed = sessionID, eventID, nameUsed
	return f.submission, f.err
}

func (f *fakeSubmissionService) ListSubmissions(_ context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error) {
	f.lastFilter = filter
	return f.submissions, f.err
}

func (f *fakeSubmissionService) UpdateSubmission(_ context.Context, id string, state *domain.SubmissionState, notes *string) (*domain.Submission, error) {
	f.lastID, f.lastState, f.lastNotes = id, state, notes
	return f.submission, f.err
}

func (f *fakeSubmissionService) DeleteSubmission(_ context.Context, id string) error {
	f.lastID = id
	return f.err
}

// fakeSettingsService implements domain.SettingsService for handler tests.
type fakeSettingsService struct {
	err      error
	settings domain.Settings
	saved    *domain.Settings
}

func (f *fakeSettingsService) GetSettings(context.Context) (domain.Settings, error) {
	return f.settings, f.err
}

func (f *fakeSettingsService) UpdateSettings(_ context.Context, s domain.Settings) (domain.Settings, error) {
	f.saved = &s
	return s, f.err
}

type fakeCalendarService struct {
	err      error
	lastYear int
}

func (f *fakeCalendarService) GetYear(_ context.Context, year int) (*domain.CalendarYear, error) {
	f.lastYear = year
	if f.err != nil {
		return nil, f.err
	}
	return &domain.CalendarYear{Year: year, Months: []domain.CalendarMonth{}}, nil
}

func (f *fakeCalendarService) GetWeeks(_ context.Context, year int) (*domain.CalendarWeeks, error) {
	f.lastYear = year
	if f.err != nil {
		return nil, f.err
	}
	return &domain.CalendarWeeks{Year: year, Weeks: []domain.CalendarWeek{}}, nil
}

type fakeStatisticsService struct {
	err      error
	lastOpts stats.Options
}

func (f *fakeStatisticsService) GetStatistics(_ context.Context, opts stats.Options) (*stats.Statistics, error) {
	f.lastOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return &stats.Statistics{Year: opts.Year, TotalEvents: 3}, nil
}

type fakeImportService struct {
	err     error
	lastURL string
}

func (f *fakeImportService) ImportSessionize(_ context.Context, url string) (*domain.Event, error) {
	f.lastURL = url
	if f.err != nil {
		return nil, f.err
	}
	e := domain.NewEvent("Imported Conf", "2026-06-01", "2026-06-02")
	e.CallForContentURL = url
	return e, nil
}

type fakeDigestService struct {
	err     error
	count   int
	lastNow time.Time
}

func (f *fakeDigestService) SendDeadlineDigest(_ context.Context, now time.Time) (int, error) {
	f.lastNow = now
	return f.count, f.err
}

// fakeExportService implements domain.ExportService for handler tests.
type fakeExportService struct {
	err          error
	lastSelected bool
	lastID       string
}

func (f *fakeExportService) Backup(context.Context) (*domain.Backup, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Backup{Version: 1, Settings: domain.DefaultSettings()}, nil
}

func (f *fakeExportService) EventsCSV(context.Context) ([]byte, error) {
	return []byte("ID,Name\r\n"), f.err
}

func (f *fakeExportService) SessionsCSV(context.Context) ([]byte, error) {
	return []byte("ID,Name\r\n"), f.err
}

func (f *fakeExportService) SubmissionsCSV(context.Context) ([]byte, error) {
	return []byte("ID,Session\r\n"), f.err
}

func (f *fakeExportService) EventsICS(_ context.Context, selectedOnly bool) ([]byte, error) {
	f.lastSelected = selectedOnly
	return []byte("BEGIN:VCALENDAR\r\n"), f.err
}

func (f *fakeExportService) EventICS(_ context.Context, id string) ([]byte, error) {
	f.lastID = id
	return []byte("BEGIN:VCALENDAR\r\n"), f.err
}
