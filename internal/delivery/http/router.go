package http

import (
	"log/slog"
	"net/http"

	"talktrack/internal/delivery/http/controllers"
	"talktrack/internal/delivery/http/helpers"
	"talktrack/internal/delivery/http/middleware"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Events      *controllers.EventController
	Sessions    *controllers.SessionController
	Submissions *controllers.SubmissionController
	Settings    *controllers.SettingsController
	Insights    *controllers.InsightController
	Integration *controllers.IntegrationController
	Export      *controllers.ExportController
}

// RouterConfig holds the options that shape the outer handler chain.
type RouterConfig struct {
	AllowedOrigins []string
	// StaticDir, when set, is served at / for the single-page UI.
	StaticDir string
}

// NewRouter initializes the HTTP router with all application routes and wraps
// it with CORS and request logging.
func NewRouter(c Controllers, cfg RouterConfig, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /api/events", c.Events.ListEvents)
	mux.HandleFunc("POST /api/events", c.Events.CreateEvent)
	mux.HandleFunc("POST /api/events/overlaps", c.Events.CheckOverlaps)
	mux.HandleFunc("GET /api/events/{id}", c.Events.GetEvent)
	mux.HandleFunc("PUT /api/events/{id}", c.Events.UpdateEvent)
	mux.HandleFunc("DELETE /api/events/{id}", c.Events.DeleteEvent)
	mux.HandleFunc("POST /api/events/{id}/decline", c.Events.DeclineEvent)

	// Sessions
	mux.HandleFunc("GET /api/sessions", c.Sessions.ListSessions)
	mux.HandleFunc("POST /api/sessions", c.Sessions.CreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", c.Sessions.GetSession)
	mux.HandleFunc("PUT /api/sessions/{id}", c.Sessions.UpdateSession)
	mux.HandleFunc("DELETE /api/sessions/{id}", c.Sessions.DeleteSession)
	mux.HandleFunc("POST /api/sessions/{id}/retire", c.Sessions.ToggleRetired)

	// Submissions
	mux.HandleFunc("GET /api/submissions", c.Submissions.ListSubmissions)
	mux.HandleFunc("POST /api/submissions", c.Submissions.CreateSubmission)
	mux.HandleFunc("PUT /api/submissions/{id}", c.Submissions.UpdateSubmission)
	mux.HandleFunc("DELETE /api/submissions/{id}", c.Submissions.DeleteSubmission)

	// Settings
	mux.HandleFunc("GET /api/settings", c.Settings.GetSettings)
	mux.HandleFunc("PUT /api/settings", c.Settings.UpdateSettings)
	mux.HandleFunc("GET /api/date-formats", c.Settings.ListDateFormats)

	// Derived views
	mux.HandleFunc("GET /api/calendar", c.Insights.GetCalendar)
	mux.HandleFunc("GET /api/calendar/weeks", c.Insights.GetCalendarWeeks)
	mux.HandleFunc("GET /api/statistics", c.Insights.GetStatistics)

	// Integrations
	mux.HandleFunc("POST /api/import/sessionize", c.Integration.ImportSessionize)
	mux.HandleFunc("POST /api/digest/deadlines", c.Integration.SendDeadlineDigest)

	// Exports
	mux.HandleFunc("GET /api/export/json", c.Export.ExportJSON)
	mux.HandleFunc("GET /api/export/events.csv", c.Export.ExportEventsCSV)
	mux.HandleFunc("GET /api/export/sessions.csv", c.Export.ExportSessionsCSV)
	mux.HandleFunc("GET /api/export/submissions.csv", c.Export.ExportSubmissionsCSV)
	mux.HandleFunc("GET /api/export/events.ics", c.Export.ExportEventsICS)
	mux.HandleFunc("GET /api/export/events/{file}", c.Export.ExportEventICS)

	// Unknown API paths get the JSON envelope rather than the UI.
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no route for "+r.Method+" "+r.URL.Path)
	})

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux))
}
