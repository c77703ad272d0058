package services

import (
	"context"
	"testing"
	"time"

	"talktrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSubmissionService(m *memStore) domain.SubmissionService {
	return NewSubmissionService(fakeSubmissionRepo{m}, fakeSessionRepo{m}, fakeEventRepo{m}, 2*time.Second)
}

func TestSubmissionService_CreateSubmission(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		sessionID string
		eventID   string
		nameUsed  string
		seedDup   bool
		wantErr   error
		wantName  string
	}{
		{name: "defaults name to session name", sessionID: "s-1", eventID: "ev-1", wantName: "Talk"},
		{name: "keeps explicit name", sessionID: "s-1", eventID: "ev-1", nameUsed: "Talk (short)", wantName: "Talk (short)"},
		{name: "duplicate pair", sessionID: "s-1", eventID: "ev-1", seedDup: true, wantErr: domain.ErrConflict},
		{name: "unknown session", sessionID: "s-9", eventID: "ev-1", wantErr: domain.ErrNotFound},
		{name: "unknown event", sessionID: "s-1", eventID: "ev-9", wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMemStore()
			m.addEvent("ev-1", "Conf", "2026-05-01", "")
			m.addSession("s-1", "Talk")
			if tt.seedDup {
				m.addSubmission("sub-0", "s-1", "ev-1", domain.StateRejected)
			}
			got, err := newTestSubmissionService(m).CreateSubmission(ctx, tt.sessionID, tt.eventID, tt.nameUsed)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, domain.StateSubmitted, got.State)
			assert.Equal(t, tt.wantName, got.NameUsed)
		})
	}
}

func TestSubmissionService_UpdateSubmission(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	m.addSubmission("sub-1", "s-1", "ev-1", domain.StateSubmitted)
	svc := newTestSubmissionService(m)

	selected := domain.StateSelected
	notes := "Room 4"
	got, err := svc.UpdateSubmission(ctx, "sub-1", &selected, &notes)
	require.NoError(t, err)
	assert.Equal(t, domain.StateSelected, got.State)
	assert.Equal(t, "Room 4", got.Notes)

	got, err = svc.UpdateSubmission(ctx, "sub-1", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StateSelected, got.State)

	bogus := domain.SubmissionState("accepted")
	_, err = svc.UpdateSubmission(ctx, "sub-1", &bogus, nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.UpdateSubmission(ctx, "missing", &selected, nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmissionService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	m.addSubmission("sub-1", "s-1", "ev-1", domain.StateSubmitted)
	m.addSubmission("sub-2", "s-2", "ev-1", domain.StateSubmitted)
	m.addSubmission("sub-3", "s-1", "ev-2", domain.StateSubmitted)
	svc := newTestSubmissionService(m)

	subs, err := svc.ListSubmissions(ctx, domain.SubmissionFilter{EventID: "ev-1"})
	require.NoError(t, err)
	assert.Len(t, subs, 2)

	subs, err = svc.ListSubmissions(ctx, domain.SubmissionFilter{EventID: "ev-3"})
	require.NoError(t, err)
	assert.NotNil(t, subs)
	assert.Empty(t, subs)

	require.NoError(t, svc.DeleteSubmission(ctx, "sub-2"))
	require.ErrorIs(t, svc.DeleteSubmission(ctx, "sub-2"), domain.ErrNotFound)
}

func TestSettingsService(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	svc := NewSettingsService(fakeSettingsRepo{m}, time.Second)

	got, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)

	want := domain.DefaultSettings()
	want.DateFormat = domain.DateFormatDotDMY
	want.MaxEventsPerMonth = 3
	saved, err := svc.UpdateSettings(ctx, want)
	require.NoError(t, err)
	assert.Equal(t, want, saved)

	got, err = svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	want.DateFormat = "DD/MM/YY"
	_, err = svc.UpdateSettings(ctx, want)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
