package controllers

import (
	"log/slog"
	"net/http"

	"talktrack/internal/delivery/http/helpers"
	"talktrack/internal/domain"
)

// CreateSubmissionRequest is the request body for POST /api/submissions.
// nameUsed defaults to the session's name.
type CreateSubmissionRequest struct {
	SessionID string `json:"sessionId"`
	EventID   string `json:"eventId"`
	NameUsed  string `json:"nameUsed"`
}

// Validate implements Validator.
func (c CreateSubmissionRequest) Validate() []string {
	var errs []string
	if c.SessionID == "" {
		errs = append(errs, "sessionId is required")
	}
	if c.EventID == "" {
		errs = append(errs, "eventId is required")
	}
	return errs
}

// UpdateSubmissionRequest is the request body for PUT /api/submissions/{id}.
type UpdateSubmissionRequest struct {
	State *domain.SubmissionState `json:"state"`
	Notes *string                 `json:"notes"`
}

// Validate implements Validator.
func (c UpdateSubmissionRequest) Validate() []string {
	if c.State != nil && !c.State.Valid() {
		return []string{"state must be one of submitted, selected, rejected, declined"}
	}
	return nil
}

type SubmissionController struct {
	Logger  *slog.Logger
	Service domain.SubmissionService
}

func NewSubmissionController(logger *slog.Logger, svc domain.SubmissionService) *SubmissionController {
	return &SubmissionController{Logger: logger, Service: svc}
}

// ListSubmissions godoc
// @Summary List submissions
// @Tags submissions
// @Produce json
// @Param eventId query string false "Only submissions to this event"
// @Param sessionId query string false "Only submissions of this session"
// @Success 200 {object} helpers.APIResponse{data=[]domain.Submission}
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/submissions [get]
func (c *SubmissionController) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	filter := domain.SubmissionFilter{
		EventID:   r.URL.Query().Get("eventId"),
		SessionID: r.URL.Query().Get("sessionId"),
	}
	subs, err := c.Service.ListSubmissions(r.Context(), filter)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, subs)
}

// CreateSubmission godoc
// @Summary Submit a session to an event
// @Description Creates a submission in the submitted state. A session can be submitted to an event only once.
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body CreateSubmissionRequest true "Session and event"
// @Success 201 {object} helpers.APIResponse{data=domain.Submission}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /api/submissions [post]
func (c *SubmissionController) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	var req CreateSubmissionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, err := c.Service.CreateSubmission(r.Context(), req.SessionID, req.EventID, req.NameUsed)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sub)
}

// UpdateSubmission godoc
// @Summary Change a submission's state or notes
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param submission body UpdateSubmissionRequest true "New state and/or notes"
// @Success 200 {object} helpers.APIResponse{data=domain.Submission}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/submissions/{id} [put]
func (c *SubmissionController) UpdateSubmission(w http.ResponseWriter, r *http.Request) {
	var req UpdateSubmissionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, err := c.Service.UpdateSubmission(r.Context(), r.PathValue("id"), req.State, req.Notes)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sub)
}

// DeleteSubmission godoc
// @Summary Delete a submission
// @Tags submissions
// @Param id path string true "Submission ID"
// @Success 204 "No Content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/submissions/{id} [delete]
func (c *SubmissionController) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteSubmission(r.Context(), r.PathValue("id")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
