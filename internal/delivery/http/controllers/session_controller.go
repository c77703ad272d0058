package controllers

import (
	"log/slog"
	"net/http"

	"talktrack/internal/delivery/http/helpers"
	"talktrack/internal/domain"
)

// CreateSessionRequest is the request body for POST /api/sessions.
type CreateSessionRequest struct {
	Name                 string   `json:"name"`
	AlternateNames       []string `json:"alternateNames"`
	Level                string   `json:"level"`
	SessionType          string   `json:"sessionType"`
	Abstract             string   `json:"abstract"`
	Summary              string   `json:"summary"`
	Goals                string   `json:"goals"`
	ElevatorPitch        string   `json:"elevatorPitch"`
	Retired              bool     `json:"retired"`
	MaterialsURL         string   `json:"materialsUrl"`
	TargetAudience       []string `json:"targetAudience"`
	PrimaryTechnology    string   `json:"primaryTechnology"`
	AdditionalTechnology string   `json:"additionalTechnology"`
	EquipmentNotes       string   `json:"equipmentNotes"`
}

func (c CreateSessionRequest) toSession() *domain.Session {
	s := domain.NewSession(c.Name, c.Level)
	if c.AlternateNames != nil {
		s.AlternateNames = c.AlternateNames
	}
	if c.SessionType != "" {
		s.SessionType = c.SessionType
	}
	s.Abstract = c.Abstract
	s.Summary = c.Summary
	s.Goals = c.Goals
	s.ElevatorPitch = c.ElevatorPitch
	s.Retired = c.Retired
	s.MaterialsURL = c.MaterialsURL
	if c.TargetAudience != nil {
		s.TargetAudience = c.TargetAudience
	}
	s.PrimaryTechnology = c.PrimaryTechnology
	s.AdditionalTechnology = c.AdditionalTechnology
	s.EquipmentNotes = c.EquipmentNotes
	return s
}

// Validate implements Validator.
func (c CreateSessionRequest) Validate() []string {
	return domain.SessionProblems(c.toSession())
}

// UpdateSessionRequest is the request body for PUT /api/sessions/{id}. Omitted fields are unchanged.
type UpdateSessionRequest struct {
	domain.SessionPatch
}

// Validate implements Validator.
func (c UpdateSessionRequest) Validate() []string {
	var errs []string
	if c.Name != nil && *c.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if c.Level != nil && !domain.IsSessionLevel(*c.Level) {
		errs = append(errs, "unknown level: "+*c.Level)
	}
	if c.SessionType != nil && *c.SessionType != "" && !domain.IsSessionType(*c.SessionType) {
		errs = append(errs, "unknown sessionType: "+*c.SessionType)
	}
	if c.TargetAudience != nil {
		for _, a := range *c.TargetAudience {
			if !domain.IsTargetAudience(a) {
				errs = append(errs, "unknown targetAudience: "+a)
			}
		}
	}
	return errs
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{Logger: logger, Service: svc}
}

// ListSessions godoc
// @Summary List sessions
// @Tags sessions
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.Session}
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/sessions [get]
func (c *SessionController) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.ListSessions(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// CreateSession godoc
// @Summary Create a session
// @Description Creates a reusable talk proposal. sessionType defaults to "Session (45-60 min)".
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body CreateSessionRequest true "Session data"
// @Success 201 {object} helpers.APIResponse{data=domain.Session}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session := req.toSession()
	if err := c.Service.CreateSession(r.Context(), session); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, session)
}

// GetSession godoc
// @Summary Get a session by ID
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} helpers.APIResponse{data=domain.Session}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/sessions/{id} [get]
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := c.Service.GetSession(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// UpdateSession godoc
// @Summary Update a session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param session body UpdateSessionRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse{data=domain.Session}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/sessions/{id} [put]
func (c *SessionController) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var req UpdateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.UpdateSession(r.Context(), r.PathValue("id"), req.SessionPatch)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// ToggleRetired godoc
// @Summary Retire or reinstate a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} helpers.APIResponse{data=domain.Session}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/sessions/{id}/retire [post]
func (c *SessionController) ToggleRetired(w http.ResponseWriter, r *http.Request) {
	session, err := c.Service.ToggleRetired(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// DeleteSession godoc
// @Summary Delete a session
// @Description Refuses with 409 while submissions reference the session, unless force=true, which deletes them too.
// @Tags sessions
// @Param id path string true "Session ID"
// @Param force query bool false "Also delete the session's submissions"
// @Success 204 "No Content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /api/sessions/{id} [delete]
func (c *SessionController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	force := helpers.QueryBool(r, "force", false)
	if err := c.Service.DeleteSession(r.Context(), r.PathValue("id"), force); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
