package domain

import "time"

// OverlappingEvent identifies an event whose dates collide with another one.
// swagger:model OverlappingEvent
type OverlappingEvent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

// DayInterval is an inclusive range of whole days: Start is the first instant of the
// first day and End the last instant of the last day.
type DayInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the two intervals share at least one instant.
func (d DayInterval) Overlaps(o DayInterval) bool {
	return !d.Start.After(o.End) && !d.End.Before(o.Start)
}

// EventInterval returns the day interval covered by e.
// ok is false when DateStart is missing or not a real date, when a non-empty DateEnd is
// not a real date, or when DateEnd falls before DateStart. Such events never overlap.
func EventInterval(e *Event) (DayInterval, bool) {
	if e == nil {
		return DayInterval{}, false
	}
	start, ok := ParseDay(e.DateStart)
	if !ok {
		return DayInterval{}, false
	}
	last := start
	if e.DateEnd != "" {
		end, ok := ParseDay(e.DateEnd)
		if !ok || end.Before(start) {
			return DayInterval{}, false
		}
		last = end
	}
	return DayInterval{
		Start: start,
		End:   last.Add(24*time.Hour - time.Nanosecond),
	}, true
}

// OverlappingEvents returns every event in all whose dates intersect event's, skipping
// the event's own id. event may be an unsaved draft carrying a placeholder id.
func OverlappingEvents(event *Event, all []*Event) []OverlappingEvent {
	out := []OverlappingEvent{}
	span, ok := EventInterval(event)
	if !ok {
		return out
	}
	for _, other := range all {
		if other == nil || other.ID == event.ID {
			continue
		}
		otherSpan, ok := EventInterval(other)
		if !ok {
			continue
		}
		if span.Overlaps(otherSpan) {
			out = append(out, OverlappingEvent{ID: other.ID, Name: other.Name, City: other.City})
		}
	}
	return out
}
