package domain

import (
	"context"
	"time"
)

// CalendarEntry is a compact event row inside a calendar bucket.
// swagger:model CalendarEntry
type CalendarEntry struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	DateStart string     `json:"dateStart"`
	City      string     `json:"city"`
	State     EventState `json:"state"`
}

// CalendarMonth groups the events starting in one month.
// swagger:model CalendarMonth
type CalendarMonth struct {
	Month        int             `json:"month"` // 1-12
	Label        string          `json:"label"`
	Count        int             `json:"count"`
	Selected     int             `json:"selected"`
	OverCapacity bool            `json:"overCapacity"`
	Events       []CalendarEntry `json:"events"`
}

// CalendarYear is the month-by-month view of one year.
// swagger:model CalendarYear
type CalendarYear struct {
	Year         int             `json:"year"`
	Count        int             `json:"count"`
	Selected     int             `json:"selected"`
	OverCapacity bool            `json:"overCapacity"`
	Months       []CalendarMonth `json:"months"`
}

// CalendarWeek groups the events starting in one week. Weeks run Sunday to Saturday;
// week 1 is the one containing January 1st.
// swagger:model CalendarWeek
type CalendarWeek struct {
	Week   int             `json:"week"`
	Start  string          `json:"start"` // Sunday, may fall in the previous year
	Count  int             `json:"count"`
	Events []CalendarEntry `json:"events"`
}

// CalendarWeeks is the week-by-week view of one year. CurrentWeek is 0 unless the
// year is the current one.
// swagger:model CalendarWeeks
type CalendarWeeks struct {
	Year        int            `json:"year"`
	Count       int            `json:"count"`
	CurrentWeek int            `json:"currentWeek"`
	Weeks       []CalendarWeek `json:"weeks"`
}

// WeekOfYear returns the Sunday-based week number of t within its year.
func WeekOfYear(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return (t.YearDay() - 1 + int(jan1.Weekday()) + 7) / 7
}

// WeekStart returns the Sunday opening week of year.
func WeekStart(year, week int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return jan1.AddDate(0, 0, (week-1)*7-int(jan1.Weekday()))
}

// WeeksIn returns how many weeks year spans: 53, or 54 for a leap year opening on a Saturday.
func WeeksIn(year int) int {
	return WeekOfYear(time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))
}

// CalendarService builds calendar views over the stored events.
type CalendarService interface {
	GetYear(ctx context.Context, year int) (*CalendarYear, error)
	GetWeeks(ctx context.Context, year int) (*CalendarWeeks, error)
}
