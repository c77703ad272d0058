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

func TestIntegrationController_ImportSessionize(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "draft returned", body: `{"url":"https://sessionize.com/gophercon"}`, wantStatus: http.StatusOK},
		{name: "missing url", body: `{}`, wantStatus: http.StatusBadRequest, wantCode: "bad_request"},
		{
			name:       "not a sessionize url",
			body:       `{"url":"https://example.com"}`,
			fakeErr:    fmt.Errorf("%w: not a Sessionize URL", domain.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantCode:   "bad_request",
		},
		{
			name:       "page unavailable",
			body:       `{"url":"https://sessionize.com/gone"}`,
			fakeErr:    fmt.Errorf("fetch: status 404: %w", domain.ErrUpstream),
			wantStatus: http.StatusBadGateway,
			wantCode:   "bad_gateway",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp := &fakeImportService{err: tt.fakeErr}
			ctrl := NewIntegrationController(testLogger, imp, &fakeDigestService{})
			req := httptest.NewRequest(http.MethodPost, "/api/import/sessionize", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.ImportSessionize(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				envelope := decodeEnvelope(t, rr, nil)
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			var draft domain.Event
			decodeEnvelope(t, rr, &draft)
			assert.Equal(t, "Imported Conf", draft.Name)
			assert.Equal(t, "https://sessionize.com/gophercon", draft.CallForContentURL)
			assert.Empty(t, draft.ID, "drafts are not saved")
		})
	}
}

func TestIntegrationController_SendDeadlineDigest(t *testing.T) {
	t.Run("sent", func(t *testing.T) {
		dig := &fakeDigestService{count: 2}
		ctrl := NewIntegrationController(testLogger, &fakeImportService{}, dig)
		ctrl.Now = fixedNow
		rr := httptest.NewRecorder()

		ctrl.SendDeadlineDigest(rr, httptest.NewRequest(http.MethodPost, "/api/digest/deadlines", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, fixedNow(), dig.lastNow)
		var got DigestResult
		decodeEnvelope(t, rr, &got)
		assert.Equal(t, 2, got.Events)
	})

	t.Run("no recipient configured", func(t *testing.T) {
		dig := &fakeDigestService{err: fmt.Errorf("%w: no digest recipient configured", domain.ErrInvalidInput)}
		ctrl := NewIntegrationController(testLogger, &fakeImportService{}, dig)
		rr := httptest.NewRecorder()

		ctrl.SendDeadlineDigest(rr, httptest.NewRequest(http.MethodPost, "/api/digest/deadlines", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
