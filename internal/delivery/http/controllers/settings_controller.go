package controllers

import (
	"log/slog"
	"net/http"

	"talktrack/internal/datefmt"
	"talktrack/internal/delivery/http/helpers"
	"talktrack/internal/domain"
)

// UpdateSettingsRequest is the request body for PUT /api/settings. It replaces the stored settings.
type UpdateSettingsRequest struct {
	domain.Settings
}

// Validate implements Validator.
func (c UpdateSettingsRequest) Validate() []string {
	return domain.SettingsProblems(c.Settings)
}

type SettingsController struct {
	Logger  *slog.Logger
	Service domain.SettingsService
}

func NewSettingsController(logger *slog.Logger, svc domain.SettingsService) *SettingsController {
	return &SettingsController{Logger: logger, Service: svc}
}

// GetSettings godoc
// @Summary Get UI settings
// @Tags settings
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=domain.Settings}
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/settings [get]
func (c *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := c.Service.GetSettings(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Replace UI settings
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body UpdateSettingsRequest true "Complete settings"
// @Success 200 {object} helpers.APIResponse{data=domain.Settings}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/settings [put]
func (c *SettingsController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	req := UpdateSettingsRequest{Settings: domain.DefaultSettings()}
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	settings, err := c.Service.UpdateSettings(r.Context(), req.Settings)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, settings)
}

// ListDateFormats godoc
// @Summary List supported date display formats
// @Tags settings
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]datefmt.Option}
// @Router /api/date-formats [get]
func (c *SettingsController) ListDateFormats(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, datefmt.Options())
}
