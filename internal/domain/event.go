package domain

import (
	"context"
	"time"
)

// TravelType is the transport mode of a travel booking.
type TravelType string

const (
	TravelFlight TravelType = "flight"
	TravelTrain  TravelType = "train"
	TravelBus    TravelType = "bus"
	TravelCar    TravelType = "car"
	TravelOther  TravelType = "other"
)

// Valid reports whether t is one of the known travel types.
func (t TravelType) Valid() bool {
	switch t {
	case TravelFlight, TravelTrain, TravelBus, TravelCar, TravelOther:
		return true
	}
	return false
}

// TravelBooking is a single travel reservation for an event.
// swagger:model TravelBooking
type TravelBooking struct {
	ID        string     `json:"id"`
	Type      TravelType `json:"type"`
	Reference string     `json:"reference"`
}

// HotelBooking is a single hotel reservation for an event.
// swagger:model HotelBooking
type HotelBooking struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Reference string `json:"reference"`
}

// Event represents a conference or speaking engagement.
// Dates are canonical YYYY-MM-DD strings; an empty DateEnd means a single-day event.
// swagger:model Event
type Event struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Country                string          `json:"country"`
	City                   string          `json:"city"`
	Remote                 bool            `json:"remote"`
	DateStart              string          `json:"dateStart"`
	DateEnd                string          `json:"dateEnd"`
	CallForContentURL      string          `json:"callForContentUrl"`
	CallForContentLastDate string          `json:"callForContentLastDate"`
	LoginTool              string          `json:"loginTool"`
	Travel                 []TravelBooking `json:"travel"`
	Hotels                 []HotelBooking  `json:"hotels"`
	TravelHandled          bool            `json:"travelHandled"`
	HotelHandled           bool            `json:"hotelHandled"`
	MVPSubmission          bool            `json:"mvpSubmission"`
	Notes                  string          `json:"notes"`
}

// NewEvent returns a new Event with the given name and dates and empty booking lists.
// ID is typically set by the service on create.
func NewEvent(name, dateStart, dateEnd string) *Event {
	return &Event{
		Name:      name,
		DateStart: dateStart,
		DateEnd:   dateEnd,
		Travel:    []TravelBooking{},
		Hotels:    []HotelBooking{},
	}
}

// EffectiveEnd returns DateEnd, or DateStart when DateEnd is empty.
func (e *Event) EffectiveEnd() string {
	if e.DateEnd == "" {
		return e.DateStart
	}
	return e.DateEnd
}

// EventPatch carries a partial update for an event. Nil fields are left unchanged.
type EventPatch struct {
	Name                   *string          `json:"name"`
	Country                *string          `json:"country"`
	City                   *string          `json:"city"`
	Remote                 *bool            `json:"remote"`
	DateStart              *string          `json:"dateStart"`
	DateEnd                *string          `json:"dateEnd"`
	CallForContentURL      *string          `json:"callForContentUrl"`
	CallForContentLastDate *string          `json:"callForContentLastDate"`
	LoginTool              *string          `json:"loginTool"`
	Travel                 *[]TravelBooking `json:"travel"`
	Hotels                 *[]HotelBooking  `json:"hotels"`
	TravelHandled          *bool            `json:"travelHandled"`
	HotelHandled           *bool            `json:"hotelHandled"`
	MVPSubmission          *bool            `json:"mvpSubmission"`
	Notes                  *string          `json:"notes"`
}

// Apply copies every non-nil field of p onto e.
func (p EventPatch) Apply(e *Event) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Country != nil {
		e.Country = *p.Country
	}
	if p.City != nil {
		e.City = *p.City
	}
	if p.Remote != nil {
		e.Remote = *p.Remote
	}
	if p.DateStart != nil {
		e.DateStart = *p.DateStart
	}
	if p.DateEnd != nil {
		e.DateEnd = *p.DateEnd
	}
	if p.CallForContentURL != nil {
		e.CallForContentURL = *p.CallForContentURL
	}
	if p.CallForContentLastDate != nil {
		e.CallForContentLastDate = *p.CallForContentLastDate
	}
	if p.LoginTool != nil {
		e.LoginTool = *p.LoginTool
	}
	if p.Travel != nil {
		e.Travel = *p.Travel
	}
	if p.Hotels != nil {
		e.Hotels = *p.Hotels
	}
	if p.TravelHandled != nil {
		e.TravelHandled = *p.TravelHandled
	}
	if p.HotelHandled != nil {
		e.HotelHandled = *p.HotelHandled
	}
	if p.MVPSubmission != nil {
		e.MVPSubmission = *p.MVPSubmission
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
}

// EventView is an event decorated with its derived state and scheduling conflicts.
// swagger:model EventView
type EventView struct {
	*Event
	State    EventState         `json:"state"`
	Overlaps []OverlappingEvent `json:"overlaps"`
}

// EventFilter narrows an event listing.
type EventFilter struct {
	// States keeps only events whose derived state is in the set. Empty keeps all.
	States []EventState
	// FutureOnly drops events that ended before Today, except selected events
	// still missing their MVP submission.
	FutureOnly bool
	// Today's calendar date is taken in its own location.
	Today time.Time
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	// Delete removes the event and every submission that references it.
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for events.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	ListEventViews(ctx context.Context, filter EventFilter) ([]*EventView, error)
	UpdateEvent(ctx context.Context, id string, patch EventPatch) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	DeclineEvent(ctx context.Context, id string) ([]*Submission, error)
	FindOverlaps(ctx context.Context, draft *Event) ([]OverlappingEvent, error)
}
