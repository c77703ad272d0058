package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"talktrack/internal/delivery/http/helpers"
	"talktrack/internal/domain"
)

// CreateEventRequest is the request body for POST /api/events.
type CreateEventRequest struct {
	Name                   string                 `json:"name"`
	Country                string                 `json:"country"`
	City                   string                 `json:"city"`
	Remote                 bool                   `json:"remote"`
	DateStart              string                 `json:"dateStart"`
	DateEnd                string                 `json:"dateEnd"`
	CallForContentURL      string                 `json:"callForContentUrl"`
	CallForContentLastDate string                 `json:"callForContentLastDate"`
	LoginTool              string                 `json:"loginTool"`
	Travel                 []domain.TravelBooking `json:"travel"`
	Hotels                 []domain.HotelBooking  `json:"hotels"`
	TravelHandled          bool                   `json:"travelHandled"`
	HotelHandled           bool                   `json:"hotelHandled"`
	MVPSubmission          bool                   `json:"mvpSubmission"`
	Notes                  string                 `json:"notes"`
}

func (c CreateEventRequest) toEvent() *domain.Event {
	e := domain.NewEvent(c.Name, c.DateStart, c.DateEnd)
	e.Country = c.Country
	e.City = c.City
	e.Remote = c.Remote
	e.CallForContentURL = c.CallForContentURL
	e.CallForContentLastDate = c.CallForContentLastDate
	e.LoginTool = c.LoginTool
	if c.Travel != nil {
		e.Travel = c.Travel
	}
	if c.Hotels != nil {
		e.Hotels = c.Hotels
	}
	e.TravelHandled = c.TravelHandled
	e.HotelHandled = c.HotelHandled
	e.MVPSubmission = c.MVPSubmission
	e.Notes = c.Notes
	return e
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	return domain.EventProblems(c.toEvent())
}

// UpdateEventRequest is the request body for PUT /api/events/{id}. Omitted fields are unchanged.
type UpdateEventRequest struct {
	domain.EventPatch
}

// Validate implements Validator. Cross-field date rules are checked after the patch is applied.
func (c UpdateEventRequest) Validate() []string {
	var errs []string
	if c.Name != nil && *c.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	dates := []struct {
		field string
		value *string
	}{
		{"dateStart", c.DateStart},
		{"dateEnd", c.DateEnd},
		{"callForContentLastDate", c.CallForContentLastDate},
	}
	for _, d := range dates {
		if d.value == nil || *d.value == "" {
			continue
		}
		if _, ok := domain.ParseDay(*d.value); !ok {
			errs = append(errs, d.field+" must be a valid YYYY-MM-DD date")
		}
	}
	return errs
}

// OverlapRequest is the request body for POST /api/events/overlaps.
// ID is the event being edited, if it is already saved, so it is not reported against itself.
type OverlapRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DateStart string `json:"dateStart"`
	DateEnd   string `json:"dateEnd"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Now     func() time.Time
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Now:     time.Now,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns every event decorated with its derived state and the events it overlaps, newest first. Use raw=true for the undecorated records in storage order.
// @Tags events
// @Produce json
// @Param state query string false "Comma separated event states (none, pending, selected, rejected, declined)"
// @Param future query bool false "Hide events that have ended, except selected events still missing their MVP submission"
// @Param raw query bool false "Return stored events without derived fields"
// @Success 200 {object} helpers.APIResponse{data=[]domain.EventView}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	if helpers.QueryBool(r, "raw", false) {
		events, err := c.Service.ListEvents(r.Context())
		if err != nil {
			helpers.WriteServiceError(w, r, c.Logger, err)
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, events)
		return
	}

	filter := domain.EventFilter{
		FutureOnly: helpers.QueryBool(r, "future", false),
		Today:      c.Now(),
	}
	for _, s := range helpers.QueryList(r, "state") {
		state := domain.EventState(s)
		if !state.Valid() {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unknown event state: "+s)
			return
		}
		filter.States = append(filter.States, state)
	}

	views, err := c.Service.ListEventViews(r.Context(), filter)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, views)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates a conference. The id and booking ids are server-generated.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := req.toEvent()
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse{data=domain.Event}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partial update: only the fields present in the body change.
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), r.PathValue("id"), req.EventPatch)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event and every submission made to it.
// @Tags events
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteEvent(r.Context(), r.PathValue("id")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeclineEvent godoc
// @Summary Decline an event
// @Description Sets every submission of the event to declined.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse{data=[]domain.Submission}
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id}/decline [post]
func (c *EventController) DeclineEvent(w http.ResponseWriter, r *http.Request) {
	subs, err := c.Service.DeclineEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, subs)
}

// CheckOverlaps godoc
// @Summary Check a draft for overlapping events
// @Description Returns the stored events whose dates overlap the draft. Drafts without a valid start date overlap nothing.
// @Tags events
// @Accept json
// @Produce json
// @Param draft body OverlapRequest true "Draft dates"
// @Success 200 {object} helpers.APIResponse{data=[]domain.OverlappingEvent}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/overlaps [post]
func (c *EventController) CheckOverlaps(w http.ResponseWriter, r *http.Request) {
	var req OverlapRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	draft := domain.NewEvent(req.Name, req.DateStart, req.DateEnd)
	draft.ID = req.ID
	overlaps, err := c.Service.FindOverlaps(r.Context(), draft)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, overlaps)
}
