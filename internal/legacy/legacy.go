// Package legacy imports the XML tables exported from the old Access database.
package legacy

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"talktrack/internal/domain"

	"github.com/google/uuid"
)

// Session is one row of Sessions.xml.
type Session struct {
	ID            string `xml:"SessionID"`
	Name          string `xml:"SessionName"`
	Abstract      string `xml:"SessionAbstract"`
	Level         string `xml:"SessionLevel"`
	Goals         string `xml:"Goals"`
	ElevatorPitch string `xml:"Elevator_x0020_pitch"`
	Summary       string `xml:"Summary"`
	Retired       string `xml:"Retired"`
}

// Event is one row of tblEvents.xml.
type Event struct {
	ID        string `xml:"EventID"`
	Name      string `xml:"EventName"`
	City      string `xml:"City"`
	Country   string `xml:"Country"`
	DateStart string `xml:"DateStart"`
	DateEnd   string `xml:"DateEnd"`
	IsRemote  string `xml:"IsRemote"`
}

// SessionEvent is one row of tblSessionEvents.xml.
type SessionEvent struct {
	EventID   string `xml:"EventID"`
	SessionID string `xml:"SessionID"`
	Status    string `xml:"Status"`
}

func decode[T any](r io.Reader, table string) ([]T, error) {
	dec := xml.NewDecoder(r)
	var rows []T
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", table, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != table {
			continue
		}
		var row T
		if err := dec.DecodeElement(&row, &start); err != nil {
			return nil, fmt.Errorf("parse %s row %d: %w", table, len(rows)+1, err)
		}
		rows = append(rows, row)
	}
}

// ParseSessions reads the <Sessions> rows of a dataroot document.
func ParseSessions(r io.Reader) ([]Session, error) { return decode[Session](r, "Sessions") }

// ParseEvents reads the <tblEvents> rows of a dataroot document.
func ParseEvents(r io.Reader) ([]Event, error) { return decode[Event](r, "tblEvents") }

// ParseSessionEvents reads the <tblSessionEvents> rows of a dataroot document.
func ParseSessionEvents(r io.Reader) ([]SessionEvent, error) {
	return decode[SessionEvent](r, "tblSessionEvents")
}

// Tables is the parsed export. Any table may be empty.
type Tables struct {
	Sessions      []Session
	Events        []Event
	SessionEvents []SessionEvent
}

// Report counts what an import did.
type Report struct {
	SessionsImported    int `json:"sessionsImported"`
	SessionsSkipped     int `json:"sessionsSkipped"`
	EventsImported      int `json:"eventsImported"`
	EventsSkipped       int `json:"eventsSkipped"`
	SubmissionsImported int `json:"submissionsImported"`
	SubmissionsSkipped  int `json:"submissionsSkipped"`
	MissingSessions     int `json:"missingSessions"`
	MissingEvents       int `json:"missingEvents"`
}

// Importer writes legacy rows through the repositories. Rows that already exist
// (sessions and events by name, submissions by session and event) are skipped,
// so running it twice is harmless.
type Importer struct {
	Events      domain.EventRepository
	Sessions    domain.SessionRepository
	Submissions domain.SubmissionRepository
	Logger      *slog.Logger
}

func (im *Importer) Import(ctx context.Context, t Tables) (*Report, error) {
	var rep Report

	sessionIDs, err := im.importSessions(ctx, t.Sessions, &rep)
	if err != nil {
		return nil, err
	}
	eventIDs, err := im.importEvents(ctx, t.Events, &rep)
	if err != nil {
		return nil, err
	}
	if err := im.importSubmissions(ctx, t.SessionEvents, sessionIDs, eventIDs, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// importSessions returns legacy SessionID -> stored session.
func (im *Importer) importSessions(ctx context.Context, rows []Session, rep *Report) (map[string]*domain.Session, error) {
	existing, err := im.Sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	byName := make(map[string]*domain.Session, len(existing))
	for _, s := range existing {
		byName[s.Name] = s
	}

	ids := make(map[string]*domain.Session, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			rep.SessionsSkipped++
			continue
		}
		if s, ok := byName[name]; ok {
			if row.ID != "" {
				ids[row.ID] = s
			}
			rep.SessionsSkipped++
			continue
		}
		level := strings.TrimSpace(row.Level)
		if !domain.IsSessionLevel(level) {
			level = domain.SessionLevels[0]
		}
		s := domain.NewSession(name, level)
		s.ID = uuid.NewString()
		s.Abstract = strings.TrimSpace(row.Abstract)
		s.Summary = strings.TrimSpace(row.Summary)
		s.Goals = strings.TrimSpace(row.Goals)
		s.ElevatorPitch = strings.TrimSpace(row.ElevatorPitch)
		s.Retired = isTrue(row.Retired)
		if err := im.Sessions.Create(ctx, s); err != nil {
			return nil, fmt.Errorf("create session %q: %w", name, err)
		}
		byName[name] = s
		if row.ID != "" {
			ids[row.ID] = s
		}
		rep.SessionsImported++
	}
	return ids, nil
}

// importEvents returns legacy EventID -> stored event ID.
func (im *Importer) importEvents(ctx context.Context, rows []Event, rep *Report) (map[string]string, error) {
	existing, err := im.Events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	byName := make(map[string]string, len(existing))
	for _, e := range existing {
		byName[e.Name] = e.ID
	}

	ids := make(map[string]string, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" || row.ID == "" {
			rep.EventsSkipped++
			continue
		}
		if id, ok := byName[name]; ok {
			ids[row.ID] = id
			rep.EventsSkipped++
			continue
		}
		e := domain.NewEvent(name, datePart(row.DateStart), datePart(row.DateEnd))
		e.ID = uuid.NewString()
		e.City = strings.TrimSpace(row.City)
		e.Country = strings.TrimSpace(row.Country)
		e.Remote = isTrue(row.IsRemote)
		if problems := domain.EventProblems(e); len(problems) > 0 {
			im.Logger.Warn("skipping legacy event", "event", name, "problems", strings.Join(problems, "; "))
			rep.EventsSkipped++
			continue
		}
		if err := im.Events.Create(ctx, e); err != nil {
			return nil, fmt.Errorf("create event %q: %w", name, err)
		}
		byName[name] = e.ID
		ids[row.ID] = e.ID
		rep.EventsImported++
	}
	return ids, nil
}

func (im *Importer) importSubmissions(ctx context.Context, rows []SessionEvent, sessions map[string]*domain.Session, events map[string]string, rep *Report) error {
	existing, err := im.Submissions.List(ctx, domain.SubmissionFilter{})
	if err != nil {
		return fmt.Errorf("list submissions: %w", err)
	}
	seen := make(map[[2]string]bool, len(existing))
	for _, s := range existing {
		seen[[2]string{s.SessionID, s.EventID}] = true
	}

	for _, row := range rows {
		if row.EventID == "" || row.SessionID == "" {
			rep.SubmissionsSkipped++
			continue
		}
		eventID, ok := events[row.EventID]
		if !ok {
			rep.MissingEvents++
			continue
		}
		session, ok := sessions[row.SessionID]
		if !ok {
			rep.MissingSessions++
			continue
		}
		key := [2]string{session.ID, eventID}
		if seen[key] {
			rep.SubmissionsSkipped++
			continue
		}
		sub := domain.NewSubmission(session.ID, eventID, session.Name)
		sub.ID = uuid.NewString()
		sub.State = domain.ParseSubmissionState(row.Status)
		if err := im.Submissions.Create(ctx, sub); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				rep.SubmissionsSkipped++
				continue
			}
			return fmt.Errorf("create submission: %w", err)
		}
		seen[key] = true
		rep.SubmissionsImported++
	}
	return nil
}

// datePart truncates an Access datetime ("2016-08-27T00:00:00") to its date.
func datePart(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	return s
}

func isTrue(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "-1", "true", "yes":
		return true
	}
	return false
}
