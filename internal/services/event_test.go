package services

import (
	"context"
	"testing"
	"time"

	"talktrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEventService(m *memStore) domain.EventService {
	return NewEventService(fakeEventRepo{m}, fakeSubmissionRepo{m}, m, 2*time.Second)
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		event   *domain.Event
		wantErr error
	}{
		{
			name:  "valid event gets id and empty lists",
			event: &domain.Event{Name: "GopherCon EU", DateStart: "2026-06-15", DateEnd: "2026-06-18"},
		},
		{
			name:    "missing name",
			event:   &domain.Event{DateStart: "2026-06-15"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "end before start",
			event:   &domain.Event{Name: "Conf", DateStart: "2026-06-15", DateEnd: "2026-06-14"},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMemStore()
			svc := newTestEventService(m)
			err := svc.CreateEvent(ctx, tt.event)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, m.events)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, tt.event.ID)
			assert.NotNil(t, tt.event.Travel)
			assert.NotNil(t, tt.event.Hotels)
			assert.Len(t, m.events, 1)
		})
	}
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	m.addEvent("ev-1", "Conf", "2026-05-01", "2026-05-02")
	svc := newTestEventService(m)

	city := "Oslo"
	got, err := svc.UpdateEvent(ctx, "ev-1", domain.EventPatch{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Oslo", got.City)
	assert.Equal(t, "Conf", got.Name)

	badEnd := "2026-04-01"
	_, err = svc.UpdateEvent(ctx, "ev-1", domain.EventPatch{DateEnd: &badEnd})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.UpdateEvent(ctx, "missing", domain.EventPatch{City: &city})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_DeleteEventCascades(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	m.addEvent("ev-1", "Conf", "2026-05-01", "")
	m.addEvent("ev-2", "Other", "2026-07-01", "")
	m.addSession("s-1", "Talk")
	m.addSubmission("sub-1", "s-1", "ev-1", domain.StateSubmitted)
	m.addSubmission("sub-2", "s-1", "ev-2", domain.StateSubmitted)
	svc := newTestEventService(m)

	require.NoError(t, svc.DeleteEvent(ctx, "ev-1"))
	require.Len(t, m.submissions, 1)
	assert.Equal(t, "sub-2", m.submissions[0].ID)
	require.ErrorIs(t, svc.DeleteEvent(ctx, "ev-1"), domain.ErrNotFound)
}

func TestEventService_DeclineEvent(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	m.addEvent("ev-1", "Conf", "2026-05-01", "")
	m.addSession("s-1", "Talk A")
	m.addSession("s-2", "Talk B")
	m.addSubmission("sub-1", "s-1", "ev-1", domain.StateSubmitted)
	m.addSubmission("sub-2", "s-2", "ev-1", domain.StateSelected)
	svc := newTestEventService(m)

	subs, err := svc.DeclineEvent(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, subs, 2)
	for _, s := range m.submissions {
		assert.Equal(t, domain.StateDeclined, s.State)
	}
	assert.Equal(t, domain.EventDeclined, domain.ComputeEventState("ev-1", m.submissions))

	_, err = svc.DeclineEvent(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_ListEventViews(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC)

	m := newMemStore()
	m.addEvent("past", "Past", "2026-03-01", "2026-03-02")
	pastSelected := m.addEvent("past-selected", "Past selected", "2026-04-10", "")
	m.addEvent("future-a", "Future A", "2026-07-01", "2026-07-03")
	m.addEvent("future-b", "Future B", "2026-07-03", "")
	m.addEvent("ends-today", "Ends today", "2026-05-30", "2026-06-01")
	m.addSession("s-1", "Talk")
	m.addSubmission("sub-1", "s-1", "past-selected", domain.StateSelected)
	m.addSubmission("sub-2", "s-1", "future-a", domain.StateRejected)
	svc := newTestEventService(m)

	t.Run("all sorted by start desc with state and overlaps", func(t *testing.T) {
		views, err := svc.ListEventViews(ctx, domain.EventFilter{Today: today})
		require.NoError(t, err)
		require.Len(t, views, 5)
		assert.Equal(t, "future-b", views[0].ID)
		assert.Equal(t, "future-a", views[1].ID)
		assert.Equal(t, "past", views[4].ID)
		assert.Equal(t, domain.EventRejected, views[1].State)
		require.Len(t, views[1].Overlaps, 1)
		assert.Equal(t, "future-b", views[1].Overlaps[0].ID)
		assert.Equal(t, domain.EventNone, views[4].State)
		assert.NotNil(t, views[4].Overlaps)
	})

	t.Run("future only keeps selected past events without MVP submission", func(t *testing.T) {
		views, err := svc.ListEventViews(ctx, domain.EventFilter{FutureOnly: true, Today: today})
		require.NoError(t, err)
		ids := make([]string, 0, len(views))
		for _, v := range views {
			ids = append(ids, v.ID)
		}
		assert.ElementsMatch(t, []string{"future-a", "future-b", "ends-today", "past-selected"}, ids)

		pastSelected.MVPSubmission = true
		views, err = svc.ListEventViews(ctx, domain.EventFilter{FutureOnly: true, Today: today})
		require.NoError(t, err)
		assert.Len(t, views, 3)
		pastSelected.MVPSubmission = false
	})

	t.Run("state filter", func(t *testing.T) {
		views, err := svc.ListEventViews(ctx, domain.EventFilter{States: []domain.EventState{domain.EventSelected, domain.EventRejected}, Today: today})
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "future-a", views[0].ID)
		assert.Equal(t, "past-selected", views[1].ID)
	})

	t.Run("snapshot error", func(t *testing.T) {
		m.err = errBoom
		defer func() { m.err = nil }()
		_, err := svc.ListEventViews(ctx, domain.EventFilter{})
		require.ErrorIs(t, err, errBoom)
	})
}

func TestEventService_ListEventViews_FutureUsesLocalDate(t *testing.T) {
	m := newMemStore()
	m.addEvent("ended-yesterday", "Ended yesterday", "2026-03-08", "2026-03-09")
	m.addEvent("ends-today", "Ends today", "2026-03-10", "")
	svc := newTestEventService(m)

	tests := []struct {
		name    string
		today   time.Time
		wantIDs []string
	}{
		// 01:00 on the 10th east of UTC is still the 9th in UTC
		{"east of UTC after midnight", time.Date(2026, 3, 10, 1, 0, 0, 0, time.FixedZone("UTC+5", 5*3600)), []string{"ends-today"}},
		// 22:00 on the 9th west of UTC is already the 10th in UTC
		{"west of UTC before midnight", time.Date(2026, 3, 9, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)), []string{"ends-today", "ended-yesterday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := svc.ListEventViews(context.Background(), domain.EventFilter{FutureOnly: true, Today: tt.today})
			require.NoError(t, err)
			ids := make([]string, 0, len(views))
			for _, v := range views {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestEventService_FindOverlaps(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	m.addEvent("ev-1", "DevDays", "2026-03-10", "2026-03-12")
	m.addEvent("ev-2", "LaterConf", "2026-04-01", "")
	svc := newTestEventService(m)

	got, err := svc.FindOverlaps(ctx, &domain.Event{Name: "Draft", DateStart: "2026-03-12"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ev-1", got[0].ID)

	got, err = svc.FindOverlaps(ctx, &domain.Event{ID: "ev-1", DateStart: "2026-03-10", DateEnd: "2026-03-12"})
	require.NoError(t, err)
	assert.Empty(t, got)
}
