package domain

import "context"

// DateFormat is a user-selectable display format for dates.
type DateFormat string

const (
	DateFormatISO      DateFormat = "YYYY-MM-DD"
	DateFormatUS       DateFormat = "MM/DD/YYYY"
	DateFormatSlashDMY DateFormat = "DD/MM/YYYY"
	DateFormatDotDMY   DateFormat = "DD.MM.YYYY"
	DateFormatDashDMY  DateFormat = "DD-MM-YYYY"
	DateFormatSlashYMD DateFormat = "YYYY/MM/DD"
)

// DateFormats lists every supported display format in menu order.
var DateFormats = []DateFormat{
	DateFormatISO,
	DateFormatUS,
	DateFormatSlashDMY,
	DateFormatDotDMY,
	DateFormatDashDMY,
	DateFormatSlashYMD,
}

// Valid reports whether f is one of DateFormats.
func (f DateFormat) Valid() bool {
	for _, v := range DateFormats {
		if v == f {
			return true
		}
	}
	return false
}

// Settings holds UI preferences, stored beside the data file.
// swagger:model Settings
type Settings struct {
	ShowMonthView     bool       `json:"showMonthView"` // GET /api/calendar
	ShowWeekView      bool       `json:"showWeekView"`  // GET /api/calendar/weeks
	ShowMVPFeatures   bool       `json:"showMvpFeatures"`
	MaxEventsPerMonth int        `json:"maxEventsPerMonth"`
	MaxEventsPerYear  int        `json:"maxEventsPerYear"`
	DateFormat        DateFormat `json:"dateFormat"`
}

// DefaultSettings returns the settings used when nothing has been saved yet.
func DefaultSettings() Settings {
	return Settings{
		ShowMonthView:     true,
		ShowWeekView:      true,
		ShowMVPFeatures:   false,
		MaxEventsPerMonth: 0,
		MaxEventsPerYear:  0,
		DateFormat:        DateFormatISO,
	}
}

// SettingsRepository defines the interface for settings storage.
type SettingsRepository interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, settings Settings) error
}

// SettingsService defines the business logic for settings.
type SettingsService interface {
	GetSettings(ctx context.Context) (Settings, error)
	UpdateSettings(ctx context.Context, settings Settings) (Settings, error)
}
