package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"talktrack/internal/domain"
)

const (
	listSeparator = "; "
	icsProductID  = "-//talktrack//Speaking Events//EN"
)

type exportService struct {
	snapshots      domain.SnapshotReader
	settingsRepo   domain.SettingsRepository
	now            func() time.Time
	contextTimeout time.Duration
}

func NewExportService(snapshots domain.SnapshotReader, settingsRepo domain.SettingsRepository, timeout time.Duration) domain.ExportService {
	return &exportService{
		snapshots:      snapshots,
		settingsRepo:   settingsRepo,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *exportService) snapshot(ctx context.Context) (*domain.Snapshot, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return snap, nil
}

func (s *exportService) Backup(ctx context.Context) (*domain.Backup, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &domain.Backup{
		Version:     domain.SchemaVersion,
		Events:      snap.Events,
		Sessions:    snap.Sessions,
		Submissions: snap.Submissions,
		Settings:    settings,
	}, nil
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *exportService) EventsCSV(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	header := []string{"id", "name", "country", "city", "remote", "dateStart", "dateEnd", "state",
		"callForContentUrl", "callForContentLastDate", "loginTool", "travel", "hotels",
		"travelHandled", "hotelHandled", "mvpSubmission", "notes"}
	rows := make([][]string, 0, len(snap.Events))
	for _, e := range snap.Events {
		travel := make([]string, 0, len(e.Travel))
		for _, t := range e.Travel {
			travel = append(travel, strings.TrimSpace(string(t.Type)+" "+t.Reference))
		}
		hotels := make([]string, 0, len(e.Hotels))
		for _, h := range e.Hotels {
			hotels = append(hotels, strings.TrimSpace(h.Name+" "+h.Reference))
		}
		rows = append(rows, []string{
			e.ID, e.Name, e.Country, e.City, strconv.FormatBool(e.Remote), e.DateStart, e.DateEnd,
			string(domain.ComputeEventState(e.ID, snap.Submissions)),
			e.CallForContentURL, e.CallForContentLastDate, e.LoginTool,
			strings.Join(travel, listSeparator), strings.Join(hotels, listSeparator),
			strconv.FormatBool(e.TravelHandled), strconv.FormatBool(e.HotelHandled),
			strconv.FormatBool(e.MVPSubmission), e.Notes,
		})
	}
	return writeCSV(header, rows)
}

func (s *exportService) SessionsCSV(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	header := []string{"id", "name", "alternateNames", "level", "sessionType", "abstract", "summary",
		"goals", "elevatorPitch", "retired", "materialsUrl", "targetAudience", "primaryTechnology",
		"additionalTechnology", "equipmentNotes"}
	rows := make([][]string, 0, len(snap.Sessions))
	for _, ss := range snap.Sessions {
		rows = append(rows, []string{
			ss.ID, ss.Name, strings.Join(ss.AlternateNames, listSeparator), ss.Level, ss.SessionType,
			ss.Abstract, ss.Summary, ss.Goals, ss.ElevatorPitch, strconv.FormatBool(ss.Retired),
			ss.MaterialsURL, strings.Join(ss.TargetAudience, listSeparator), ss.PrimaryTechnology,
			ss.AdditionalTechnology, ss.EquipmentNotes,
		})
	}
	return writeCSV(header, rows)
}

func (s *exportService) SubmissionsCSV(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	header := []string{"id", "sessionId", "sessionName", "eventId", "eventName", "state", "nameUsed", "notes"}
	rows := make([][]string, 0, len(snap.Submissions))
	for _, sub := range snap.Submissions {
		var sessionName, eventName string
		if ss := snap.SessionByID(sub.SessionID); ss != nil {
			sessionName = ss.Name
		}
		if e := snap.EventByID(sub.EventID); e != nil {
			eventName = e.Name
		}
		rows = append(rows, []string{
			sub.ID, sub.SessionID, sessionName, sub.EventID, eventName, string(sub.State), sub.NameUsed, sub.Notes,
		})
	}
	return writeCSV(header, rows)
}

// EventsICS renders every dated event as an all-day VEVENT.
func (s *exportService) EventsICS(ctx context.Context, selectedOnly bool) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	selected := make(map[string]bool)
	for _, sub := range snap.Submissions {
		if sub.State == domain.StateSelected {
			selected[sub.EventID] = true
		}
	}

	cal := s.newCalendar()
	for _, e := range snap.Events {
		if selectedOnly && !selected[e.ID] {
			continue
		}
		s.addEvent(cal, e)
	}
	return []byte(cal.Serialize()), nil
}

func (s *exportService) EventICS(ctx context.Context, id string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	e := snap.EventByID(id)
	if e == nil {
		return nil, domain.ErrNotFound
	}
	cal := s.newCalendar()
	if !s.addEvent(cal, e) {
		return nil, fmt.Errorf("%w: event has no valid start date", domain.ErrInvalidInput)
	}
	return []byte(cal.Serialize()), nil
}

func (s *exportService) newCalendar() *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetProductId(icsProductID)
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName("Speaking events")
	return cal
}

// addEvent reports false when e has no usable dates and was skipped.
func (s *exportService) addEvent(cal *ics.Calendar, e *domain.Event) bool {
	interval, ok := domain.EventInterval(e)
	if !ok {
		return false
	}
	ve := cal.AddEvent(e.ID + "@talktrack")
	ve.SetDtStampTime(s.now())
	ve.SetSummary(e.Name)
	ve.SetAllDayStartAt(interval.Start)
	// DTEND is exclusive for all-day events.
	end, _ := domain.ParseDay(e.EffectiveEnd())
	ve.SetAllDayEndAt(end.AddDate(0, 0, 1))
	ve.SetLocation(eventLocation(e))
	if e.CallForContentURL != "" {
		ve.SetURL(e.CallForContentURL)
	}
	if e.Notes != "" {
		ve.SetDescription(e.Notes)
	}
	return true
}

func eventLocation(e *domain.Event) string {
	if e.Remote {
		return "Remote"
	}
	parts := make([]string, 0, 2)
	for _, p := range []string{e.City, e.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

