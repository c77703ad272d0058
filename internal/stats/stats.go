// Package stats computes the speaking statistics dashboard from a snapshot of the tracker.
//
// An event counts as "spoken at" when at least one of its submissions is selected;
// this is a submission-level rule and deliberately does not go through
// domain.ComputeEventState.
package stats

import (
	"math"
	"sort"
	"time"

	"talktrack/internal/domain"
	"talktrack/internal/geo"
)

const (
	onlineCountry   = "Online"
	topCountryLimit = 10

	highPerformingRate    = 50
	highPerformingDecided = 2
	needsReworkRate       = 30
	needsReworkDecided    = 3
)

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Seasons in display order.
var Seasons = []string{"Spring", "Summer", "Fall", "Winter"}

// Options narrows the dashboard.
type Options struct {
	// Year limits everything except Years to events starting that year. Zero means all years.
	Year int
	// IncludeRetired adds retired sessions to the session and level tables.
	IncludeRetired bool
}

// Bucket is a named counter.
type Bucket struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// YearCount is the number of spoken-at events in one year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// EventRef is a short reference to an event used in tooltips.
type EventRef struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// CountryBucket groups spoken-at events by country.
type CountryBucket struct {
	Country string     `json:"country"`
	Flag    string     `json:"flag"`
	Count   int        `json:"count"`
	Events  []EventRef `json:"events"`
}

// MonthBucket groups spoken-at events by calendar month.
type MonthBucket struct {
	Month  int        `json:"month"` // 1-12
	Label  string     `json:"label"`
	Count  int        `json:"count"`
	Events []EventRef `json:"events"`
}

// CityVisit is an in-person spoken-at event.
type CityVisit struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Name    string `json:"name"`
	Date    string `json:"date"`
}

// SessionStats summarises how one session fared.
type SessionStats struct {
	SessionID     string   `json:"sessionId"`
	Name          string   `json:"name"`
	Level         string   `json:"level"`
	Retired       bool     `json:"retired"`
	Submitted     int      `json:"submitted"`
	Selected      int      `json:"selected"`
	Rejected      int      `json:"rejected"`
	Declined      int      `json:"declined"`
	Pending       int      `json:"pending"`
	PendingEvents []string `json:"pendingEvents"`
	Decided       int      `json:"decided"`
	// AcceptanceRate is selected/(selected+rejected) in percent, nil until a decision exists.
	AcceptanceRate *int `json:"acceptanceRate"`
}

// LevelStats aggregates submissions per session level.
type LevelStats struct {
	Level     string `json:"level"`
	Submitted int    `json:"submitted"`
	Selected  int    `json:"selected"`
	Rejected  int    `json:"rejected"`
	Declined  int    `json:"declined"`
}

// Statistics is the whole dashboard.
// swagger:model Statistics
type Statistics struct {
	Year             int             `json:"year,omitempty"`
	Years            []YearCount     `json:"years"`
	TotalEvents      int             `json:"totalEvents"`
	EventsSubmitted  int             `json:"eventsSubmitted"`
	EventsAccepted   int             `json:"eventsAccepted"`
	AcceptanceRate   int             `json:"acceptanceRate"`
	UniqueCountries  int             `json:"uniqueCountries"`
	UniqueCities     int             `json:"uniqueCities"`
	RemoteEvents     int             `json:"remoteEvents"`
	InPersonEvents   int             `json:"inPersonEvents"`
	ByRegion         []Bucket        `json:"byRegion"`
	BySeason         []Bucket        `json:"bySeason"`
	TopCountries     []CountryBucket `json:"topCountries"`
	ByMonth          []MonthBucket   `json:"byMonth"`
	CountriesVisited []string        `json:"countriesVisited"`
	Cities           []CityVisit     `json:"cities"`
	Sessions         []SessionStats  `json:"sessions"`
	Levels           []LevelStats    `json:"levels"`
	HighPerforming   []SessionStats  `json:"highPerforming"`
	NeedsRework      []SessionStats  `json:"needsRework"`
}

func eventYear(e *domain.Event) int {
	d, ok := domain.ParseDay(e.DateStart)
	if !ok {
		return 0
	}
	return d.Year()
}

func season(m time.Month) string {
	switch {
	case m >= time.March && m <= time.May:
		return "Spring"
	case m >= time.June && m <= time.August:
		return "Summer"
	case m >= time.September && m <= time.November:
		return "Fall"
	}
	return "Winter"
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}

// Compute builds the dashboard for snap.
func Compute(snap *domain.Snapshot, opts Options) *Statistics {
	out := &Statistics{Year: opts.Year}

	selectedEvents := make(map[string]bool)
	for _, s := range snap.Submissions {
		if s.State == domain.StateSelected {
			selectedEvents[s.EventID] = true
		}
	}

	inYear := func(e *domain.Event) bool {
		return opts.Year == 0 || eventYear(e) == opts.Year
	}

	// Years always cover every spoken-at event, regardless of opts.Year.
	byYear := make(map[int]int)
	var spoken []*domain.Event
	for _, e := range snap.Events {
		if !selectedEvents[e.ID] {
			continue
		}
		if y := eventYear(e); y != 0 {
			byYear[y]++
		}
		if inYear(e) {
			spoken = append(spoken, e)
		}
	}
	out.Years = make([]YearCount, 0, len(byYear))
	for y, n := range byYear {
		out.Years = append(out.Years, YearCount{Year: y, Count: n})
	}
	sort.Slice(out.Years, func(i, j int) bool { return out.Years[i].Year > out.Years[j].Year })

	// Submissions are scoped to events of the selected year.
	var scoped []*domain.Submission
	for _, s := range snap.Submissions {
		if opts.Year == 0 {
			scoped = append(scoped, s)
			continue
		}
		if e := snap.EventByID(s.EventID); e != nil && inYear(e) {
			scoped = append(scoped, s)
		}
	}

	out.TotalEvents = len(spoken)
	submittedTo := make(map[string]bool)
	acceptedAt := make(map[string]bool)
	for _, s := range scoped {
		submittedTo[s.EventID] = true
		if s.State == domain.StateSelected {
			acceptedAt[s.EventID] = true
		}
	}
	out.EventsSubmitted = len(submittedTo)
	out.EventsAccepted = len(acceptedAt)
	out.AcceptanceRate = percent(out.EventsAccepted, out.EventsSubmitted)

	computeGeography(out, spoken)
	computeCalendar(out, spoken)
	computeSessions(out, snap, scoped, opts.IncludeRetired)
	return out
}

func computeGeography(out *Statistics, spoken []*domain.Event) {
	regions := make(map[string]int)
	countries := make(map[string]*CountryBucket)
	visited := make(map[string]bool)
	cities := make(map[string]bool)
	out.Cities = []CityVisit{}

	for _, e := range spoken {
		regions[geo.Region(e.Country)]++

		country := e.Country
		if e.Remote {
			country = onlineCountry
			out.RemoteEvents++
		}
		if country != "" {
			b, ok := countries[country]
			if !ok {
				b = &CountryBucket{Country: country, Flag: geo.Flag(country)}
				countries[country] = b
			}
			b.Count++
			b.Events = append(b.Events, EventRef{Name: e.Name, Date: e.DateStart})
		}
		if e.Remote {
			continue
		}
		if e.Country != "" {
			visited[e.Country] = true
		}
		if e.City != "" {
			cities[e.City] = true
			out.Cities = append(out.Cities, CityVisit{City: e.City, Country: e.Country, Name: e.Name, Date: e.DateStart})
		}
	}
	out.InPersonEvents = len(spoken) - out.RemoteEvents
	out.UniqueCountries = len(visited)
	out.UniqueCities = len(cities)

	out.ByRegion = make([]Bucket, 0, len(regions))
	for name, n := range regions {
		out.ByRegion = append(out.ByRegion, Bucket{Name: name, Count: n})
	}
	sort.Slice(out.ByRegion, func(i, j int) bool {
		if out.ByRegion[i].Count != out.ByRegion[j].Count {
			return out.ByRegion[i].Count > out.ByRegion[j].Count
		}
		return out.ByRegion[i].Name < out.ByRegion[j].Name
	})

	out.TopCountries = make([]CountryBucket, 0, len(countries))
	for _, b := range countries {
		sortRefsDesc(b.Events)
		out.TopCountries = append(out.TopCountries, *b)
	}
	sort.Slice(out.TopCountries, func(i, j int) bool {
		a, b := out.TopCountries[i], out.TopCountries[j]
		if (a.Country == onlineCountry) != (b.Country == onlineCountry) {
			return b.Country == onlineCountry
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Country < b.Country
	})
	if len(out.TopCountries) > topCountryLimit {
		out.TopCountries = out.TopCountries[:topCountryLimit]
	}

	out.CountriesVisited = make([]string, 0, len(visited))
	for c := range visited {
		out.CountriesVisited = append(out.CountriesVisited, c)
	}
	sort.Strings(out.CountriesVisited)
}

func computeCalendar(out *Statistics, spoken []*domain.Event) {
	seasons := make(map[string]int)
	out.ByMonth = make([]MonthBucket, 12)
	for i := range out.ByMonth {
		out.ByMonth[i] = MonthBucket{Month: i + 1, Label: monthLabels[i], Events: []EventRef{}}
	}
	for _, e := range spoken {
		d, ok := domain.ParseDay(e.DateStart)
		if !ok {
			continue
		}
		seasons[season(d.Month())]++
		m := &out.ByMonth[d.Month()-1]
		m.Count++
		m.Events = append(m.Events, EventRef{Name: e.Name, Date: e.DateStart})
	}
	for i := range out.ByMonth {
		sortRefsDesc(out.ByMonth[i].Events)
	}
	out.BySeason = make([]Bucket, 0, len(Seasons))
	for _, s := range Seasons {
		out.BySeason = append(out.BySeason, Bucket{Name: s, Count: seasons[s]})
	}
}

func computeSessions(out *Statistics, snap *domain.Snapshot, scoped []*domain.Submission, includeRetired bool) {
	levels := make(map[string]*LevelStats, len(domain.SessionLevels))
	for _, l := range domain.SessionLevels {
		levels[l] = &LevelStats{Level: l}
	}

	out.Sessions = []SessionStats{}
	for _, sess := range snap.Sessions {
		if sess.Retired && !includeRetired {
			continue
		}
		st := SessionStats{
			SessionID:     sess.ID,
			Name:          sess.Name,
			Level:         sess.Level,
			Retired:       sess.Retired,
			PendingEvents: []string{},
		}
		for _, sub := range scoped {
			if sub.SessionID != sess.ID {
				continue
			}
			st.Submitted++
			switch sub.State {
			case domain.StateSelected:
				st.Selected++
			case domain.StateRejected:
				st.Rejected++
			case domain.StateDeclined:
				st.Declined++
			case domain.StateSubmitted:
				st.Pending++
				if e := snap.EventByID(sub.EventID); e != nil && e.Name != "" {
					st.PendingEvents = append(st.PendingEvents, e.Name)
				}
			}
		}
		if l, ok := levels[sess.Level]; ok {
			l.Submitted += st.Submitted
			l.Selected += st.Selected
			l.Rejected += st.Rejected
			l.Declined += st.Declined
		}
		if st.Submitted == 0 {
			continue
		}
		st.Decided = st.Selected + st.Rejected
		if st.Decided > 0 {
			rate := percent(st.Selected, st.Decided)
			st.AcceptanceRate = &rate
		}
		out.Sessions = append(out.Sessions, st)
	}

	sort.SliceStable(out.Sessions, func(i, j int) bool {
		a, b := out.Sessions[i], out.Sessions[j]
		switch {
		case a.AcceptanceRate == nil && b.AcceptanceRate == nil:
			return a.Selected > b.Selected
		case a.AcceptanceRate == nil:
			return false
		case b.AcceptanceRate == nil:
			return true
		case *a.AcceptanceRate != *b.AcceptanceRate:
			return *a.AcceptanceRate > *b.AcceptanceRate
		}
		return a.Selected > b.Selected
	})

	out.Levels = make([]LevelStats, 0, len(domain.SessionLevels))
	for _, l := range domain.SessionLevels {
		out.Levels = append(out.Levels, *levels[l])
	}

	out.HighPerforming = []SessionStats{}
	out.NeedsRework = []SessionStats{}
	for _, st := range out.Sessions {
		if st.AcceptanceRate == nil {
			continue
		}
		if *st.AcceptanceRate >= highPerformingRate && st.Decided >= highPerformingDecided {
			out.HighPerforming = append(out.HighPerforming, st)
		}
		if *st.AcceptanceRate < needsReworkRate && st.Decided >= needsReworkDecided {
			out.NeedsRework = append(out.NeedsRework, st)
		}
	}
}

func sortRefsDesc(refs []EventRef) {
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].Date > refs[j].Date })
}
