package domain

import "context"

// Session levels, from introductory to expert.
var SessionLevels = []string{"100", "200", "300", "400", "500"}

// Session types offered when proposing a talk.
const DefaultSessionType = "Session (45-60 min)"

var SessionTypes = []string{
	DefaultSessionType,
	"Workshop (full day)",
	"Short session (20 min)",
	"Lightning Talk (5-10 min)",
	"Keynote",
}

// TargetAudiences is the fixed vocabulary for Session.TargetAudience.
var TargetAudiences = []string{
	"developers",
	"architects",
	"data-engineers",
	"data-scientists",
	"dbas",
	"devops",
	"managers",
	"students",
}

// IsSessionLevel reports whether level is one of SessionLevels.
func IsSessionLevel(level string) bool { return contains(SessionLevels, level) }

// IsSessionType reports whether t is one of SessionTypes.
func IsSessionType(t string) bool { return contains(SessionTypes, t) }

// IsTargetAudience reports whether a is one of TargetAudiences.
func IsTargetAudience(a string) bool { return contains(TargetAudiences, a) }

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Session is a reusable talk proposal, independent of any event.
// swagger:model Session
type Session struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	AlternateNames       []string `json:"alternateNames"`
	Level                string   `json:"level"`
	SessionType          string   `json:"sessionType"`
	Abstract             string   `json:"abstract"`
	Summary              string   `json:"summary"`
	Goals                string   `json:"goals"`
	ElevatorPitch        string   `json:"elevatorPitch"`
	Retired              bool     `json:"retired"`
	MaterialsURL         string   `json:"materialsUrl"`
	TargetAudience       []string `json:"targetAudience"`
	PrimaryTechnology    string   `json:"primaryTechnology"`
	AdditionalTechnology string   `json:"additionalTechnology"`
	EquipmentNotes       string   `json:"equipmentNotes"`
}

// NewSession returns a Session with the given name and level and the default session type.
func NewSession(name, level string) *Session {
	return &Session{
		Name:           name,
		Level:          level,
		SessionType:    DefaultSessionType,
		AlternateNames: []string{},
		TargetAudience: []string{},
	}
}

// SessionPatch carries a partial update for a session. Nil fields are left unchanged.
type SessionPatch struct {
	Name                 *string   `json:"name"`
	AlternateNames       *[]string `json:"alternateNames"`
	Level                *string   `json:"level"`
	SessionType          *string   `json:"sessionType"`
	Abstract             *string   `json:"abstract"`
	Summary              *string   `json:"summary"`
	Goals                *string   `json:"goals"`
	ElevatorPitch        *string   `json:"elevatorPitch"`
	Retired              *bool     `json:"retired"`
	MaterialsURL         *string   `json:"materialsUrl"`
	TargetAudience       *[]string `json:"targetAudience"`
	PrimaryTechnology    *string   `json:"primaryTechnology"`
	AdditionalTechnology *string   `json:"additionalTechnology"`
	EquipmentNotes       *string   `json:"equipmentNotes"`
}

// Apply copies every non-nil field of p onto s.
func (p SessionPatch) Apply(s *Session) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.AlternateNames != nil {
		s.AlternateNames = *p.AlternateNames
	}
	if p.Level != nil {
		s.Level = *p.Level
	}
	if p.SessionType != nil {
		s.SessionType = *p.SessionType
	}
	if p.Abstract != nil {
		s.Abstract = *p.Abstract
	}
	if p.Summary != nil {
		s.Summary = *p.Summary
	}
	if p.Goals != nil {
		s.Goals = *p.Goals
	}
	if p.ElevatorPitch != nil {
		s.ElevatorPitch = *p.ElevatorPitch
	}
	if p.Retired != nil {
		s.Retired = *p.Retired
	}
	if p.MaterialsURL != nil {
		s.MaterialsURL = *p.MaterialsURL
	}
	if p.TargetAudience != nil {
		s.TargetAudience = *p.TargetAudience
	}
	if p.PrimaryTechnology != nil {
		s.PrimaryTechnology = *p.PrimaryTechnology
	}
	if p.AdditionalTechnology != nil {
		s.AdditionalTechnology = *p.AdditionalTechnology
	}
	if p.EquipmentNotes != nil {
		s.EquipmentNotes = *p.EquipmentNotes
	}
}

// SessionRepository defines the interface for session storage.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	List(ctx context.Context) ([]*Session, error)
	Update(ctx context.Context, session *Session) error
	// Delete removes the session and every submission that references it.
	Delete(ctx context.Context, id string) error
}

// SessionService defines the business logic for sessions.
type SessionService interface {
	CreateSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	ListSessions(ctx context.Context) ([]*Session, error)
	UpdateSession(ctx context.Context, id string, patch SessionPatch) (*Session, error)
	ToggleRetired(ctx context.Context, id string) (*Session, error)
	// DeleteSession returns ErrConflict when submissions reference the session, unless force is set.
	DeleteSession(ctx context.Context, id string, force bool) error
}
