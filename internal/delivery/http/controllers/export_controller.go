package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"talktrack/internal/delivery/http/helpers"
	"talktrack/internal/domain"
)

const (
	contentTypeJSON = "application/json"
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

type ExportController struct {
	Logger  *slog.Logger
	Service domain.ExportService
}

func NewExportController(logger *slog.Logger, svc domain.ExportService) *ExportController {
	return &ExportController{Logger: logger, Service: svc}
}

// ExportJSON godoc
// @Summary Full JSON backup
// @Description Every event, session and submission plus the settings, in one document.
// @Tags export
// @Produce json
// @Success 200 {object} domain.Backup
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/export/json [get]
func (c *ExportController) ExportJSON(w http.ResponseWriter, r *http.Request) {
	backup, err := c.Service.Backup(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteFile(w, contentTypeJSON, "talktrack-backup.json", data)
}

// ExportEventsCSV godoc
// @Summary Events as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {file} file
// @Router /api/export/events.csv [get]
func (c *ExportController) ExportEventsCSV(w http.ResponseWriter, r *http.Request) {
	data, err := c.Service.EventsCSV(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteFile(w, contentTypeCSV, "events.csv", data)
}

// ExportSessionsCSV godoc
// @Summary Sessions as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {file} file
// @Router /api/export/sessions.csv [get]
func (c *ExportController) ExportSessionsCSV(w http.ResponseWriter, r *http.Request) {
	data, err := c.Service.SessionsCSV(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteFile(w, contentTypeCSV, "sessions.csv", data)
}

// ExportSubmissionsCSV godoc
// @Summary Submissions as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {file} file
// @Router /api/export/submissions.csv [get]
func (c *ExportController) ExportSubmissionsCSV(w http.ResponseWriter, r *http.Request) {
	data, err := c.Service.SubmissionsCSV(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteFile(w, contentTypeCSV, "submissions.csv", data)
}

// ExportEventsICS godoc
// @Summary Events as an iCalendar feed
// @Tags export
// @Produce text/calendar
// @Param selected query bool false "Only events with at least one selected submission"
// @Success 200 {file} file
// @Router /api/export/events.ics [get]
func (c *ExportController) ExportEventsICS(w http.ResponseWriter, r *http.Request) {
	data, err := c.Service.EventsICS(r.Context(), helpers.QueryBool(r, "selected", false))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteFile(w, contentTypeICS, "events.ics", data)
}

// ExportEventICS godoc
// @Summary One event as iCalendar
// @Tags export
// @Produce text/calendar
// @Param file path string true "Event ID followed by .ics"
// @Success 200 {file} file
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/export/events/{file} [get]
func (c *ExportController) ExportEventICS(w http.ResponseWriter, r *http.Request) {
	id, ok := strings.CutSuffix(r.PathValue("file"), ".ics")
	if !ok || id == "" {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
		return
	}
	data, err := c.Service.EventICS(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteFile(w, contentTypeICS, id+".ics", data)
}
