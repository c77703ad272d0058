package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"talktrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionController_CreateSession(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"name":"Go in Production","level":"300","targetAudience":["developers"]}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "bad level",
			body:           `{"name":"Go in Production","level":"250"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "level must be one of",
		},
		{
			name:           "unknown audience",
			body:           `{"name":"Go","level":"100","targetAudience":["aliens"]}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "aliens",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSessionService{}
			ctrl := NewSessionController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.CreateSession(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				var s domain.Session
				decodeEnvelope(t, rr, &s)
				assert.Equal(t, "sess-created", s.ID)
				assert.Equal(t, domain.DefaultSessionType, s.SessionType)
				assert.Equal(t, []string{"developers"}, s.TargetAudience)
				return
			}
			envelope := decodeEnvelope(t, rr, nil)
			require.NotNil(t, envelope.Error)
			assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			assert.Nil(t, fake.created, "service must not be called")
		})
	}
}

func TestSessionController_UpdateSession(t *testing.T) {
	fake := &fakeSessionService{session: &domain.Session{ID: "s-1", Name: "New"}}
	ctrl := NewSessionController(testLogger, fake)
	req := httptest.NewRequest(http.MethodPut, "/api/sessions/s-1", bytes.NewBufferString(`{"name":"New"}`))
	req.SetPathValue("id", "s-1")
	rr := httptest.NewRecorder()

	ctrl.UpdateSession(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "s-1", fake.lastID)
	require.NotNil(t, fake.lastPatch.Name)
	assert.Equal(t, "New", *fake.lastPatch.Name)
	assert.Nil(t, fake.lastPatch.Level)
}

func TestSessionController_ToggleRetired(t *testing.T) {
	fake := &fakeSessionService{session: &domain.Session{ID: "s-1", Retired: true}}
	ctrl := NewSessionController(testLogger, fake)
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/s-1/retire", nil)
	req.SetPathValue("id", "s-1")
	rr := httptest.NewRecorder()

	ctrl.ToggleRetired(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var s domain.Session
	decodeEnvelope(t, rr, &s)
	assert.True(t, s.Retired)
}

func TestSessionController_DeleteSession(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		fakeErr    error
		wantStatus int
		wantForce  bool
	}{
		{name: "deleted", url: "/api/sessions/s-1", wantStatus: http.StatusNoContent},
		{name: "forced", url: "/api/sessions/s-1?force=true", wantStatus: http.StatusNoContent, wantForce: true},
		{
			name:       "referenced",
			url:        "/api/sessions/s-1",
			fakeErr:    fmt.Errorf("session s-1 has 2 submissions: %w", domain.ErrConflict),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing",
			url:        "/api/sessions/s-1",
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSessionService{err: tt.fakeErr}
			ctrl := NewSessionController(testLogger, fake)
			req := httptest.NewRequest(http.MethodDelete, tt.url, nil)
			req.SetPathValue("id", "s-1")
			rr := httptest.NewRecorder()

			ctrl.DeleteSession(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantForce, fake.lastForce)
		})
	}
}

func TestSessionController_ListSessions(t *testing.T) {
	fake := &fakeSessionService{sessions: []*domain.Session{{ID: "s-1"}, {ID: "s-2"}}}
	ctrl := NewSessionController(testLogger, fake)
	rr := httptest.NewRecorder()

	ctrl.ListSessions(rr, httptest.NewRequest(http.MethodGet, "/api/sessions", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var sessions []domain.Session
	decodeEnvelope(t, rr, &sessions)
	assert.Len(t, sessions, 2)
}
