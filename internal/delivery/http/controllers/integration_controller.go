package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"talktrack/internal/delivery/http/helpers"
	"talktrack/internal/domain"
)

// ImportSessionizeRequest is the request body for POST /api/import/sessionize.
type ImportSessionizeRequest struct {
	URL string `json:"url"`
}

// Validate implements Validator.
func (c ImportSessionizeRequest) Validate() []string {
	if c.URL == "" {
		return []string{"url is required"}
	}
	return nil
}

// DigestResult is the response body for POST /api/digest/deadlines.
type DigestResult struct {
	Events int `json:"events"`
}

// IntegrationController exposes the third-party integrations: Sessionize import and the deadline digest.
type IntegrationController struct {
	Logger   *slog.Logger
	Importer domain.ImportService
	Digest   domain.DigestService
	Now      func() time.Time
}

func NewIntegrationController(logger *slog.Logger, importer domain.ImportService, digest domain.DigestService) *IntegrationController {
	return &IntegrationController{
		Logger:   logger,
		Importer: importer,
		Digest:   digest,
		Now:      time.Now,
	}
}

// ImportSessionize godoc
// @Summary Draft an event from a Sessionize page
// @Description Scrapes a public Sessionize call-for-speakers page. The draft is not saved.
// @Tags import
// @Accept json
// @Produce json
// @Param request body ImportSessionizeRequest true "Sessionize URL"
// @Success 200 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /api/import/sessionize [post]
func (c *IntegrationController) ImportSessionize(w http.ResponseWriter, r *http.Request) {
	var req ImportSessionizeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draft, err := c.Importer.ImportSessionize(r.Context(), req.URL)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, draft)
}

// SendDeadlineDigest godoc
// @Summary Email the call-for-content deadline digest now
// @Description Sends one email listing unsubmitted events whose call for content closes soon. Nothing is sent when the list is empty.
// @Tags digest
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=controllers.DigestResult}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/digest/deadlines [post]
func (c *IntegrationController) SendDeadlineDigest(w http.ResponseWriter, r *http.Request) {
	n, err := c.Digest.SendDeadlineDigest(r.Context(), c.Now())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DigestResult{Events: n})
}
