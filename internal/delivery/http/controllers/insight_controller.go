package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"talktrack/internal/delivery/http/helpers"
	"talktrack/internal/domain"
	"talktrack/internal/stats"
)

// StatisticsService computes the speaking dashboard.
type StatisticsService interface {
	GetStatistics(ctx context.Context, opts stats.Options) (*stats.Statistics, error)
}

// InsightController serves the read-only derived views: the month and week calendars and statistics.
type InsightController struct {
	Logger     *slog.Logger
	Calendar   domain.CalendarService
	Statistics StatisticsService
	Now        func() time.Time
}

func NewInsightController(logger *slog.Logger, calendar domain.CalendarService, statistics StatisticsService) *InsightController {
	return &InsightController{
		Logger:     logger,
		Calendar:   calendar,
		Statistics: statistics,
		Now:        time.Now,
	}
}

// GetCalendar godoc
// @Summary Month-by-month calendar for a year
// @Description Events bucketed by start month with their derived state. overCapacity is set when selected events exceed the configured monthly or yearly limit.
// @Tags calendar
// @Produce json
// @Param year query int false "Year (defaults to the current year)"
// @Success 200 {object} helpers.APIResponse{data=domain.CalendarYear}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/calendar [get]
func (c *InsightController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	year, ok := helpers.QueryInt(r, "year", c.Now().Year())
	if !ok || year < 1 || year > 9999 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "year must be a four digit number")
		return
	}
	cal, err := c.Calendar.GetYear(r.Context(), year)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, cal)
}

// GetCalendarWeeks godoc
// @Summary Week-by-week calendar for a year
// @Description Events bucketed by Sunday-based week (week 1 holds January 1st) with their derived state. currentWeek is set only for the current year.
// @Tags calendar
// @Produce json
// @Param year query int false "Year (defaults to the current year)"
// @Success 200 {object} helpers.APIResponse{data=domain.CalendarWeeks}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/calendar/weeks [get]
func (c *InsightController) GetCalendarWeeks(w http.ResponseWriter, r *http.Request) {
	now := c.Now()
	year, ok := helpers.QueryInt(r, "year", now.Year())
	if !ok || year < 1 || year > 9999 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "year must be a four digit number")
		return
	}
	weeks, err := c.Calendar.GetWeeks(r.Context(), year)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if year == now.Year() {
		weeks.CurrentWeek = domain.WeekOfYear(now)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, weeks)
}

// GetStatistics godoc
// @Summary Speaking statistics
// @Tags statistics
// @Produce json
// @Param year query int false "Limit to events starting in this year"
// @Param includeRetired query bool false "Include retired sessions in the session tables"
// @Success 200 {object} helpers.APIResponse{data=stats.Statistics}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/statistics [get]
func (c *InsightController) GetStatistics(w http.ResponseWriter, r *http.Request) {
	year, ok := helpers.QueryInt(r, "year", 0)
	if !ok || year < 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "year must be a number")
		return
	}
	opts := stats.Options{
		Year:           year,
		IncludeRetired: helpers.QueryBool(r, "includeRetired", false),
	}
	out, err := c.Statistics.GetStatistics(r.Context(), opts)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, out)
}
