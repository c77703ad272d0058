package domain

import (
	"context"
	"strings"
)

// SubmissionState is the lifecycle state of a submission.
type SubmissionState string

const (
	StateSubmitted SubmissionState = "submitted"
	StateSelected  SubmissionState = "selected"
	StateRejected  SubmissionState = "rejected"
	StateDeclined  SubmissionState = "declined"
)

// Valid reports whether s is one of the four submission states.
func (s SubmissionState) Valid() bool {
	switch s {
	case StateSubmitted, StateSelected, StateRejected, StateDeclined:
		return true
	}
	return false
}

// ParseSubmissionState maps a stored or legacy status spelling onto the four states.
// "accepted" means selected; anything unrecognised is submitted.
func ParseSubmissionState(raw string) SubmissionState {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "selected", "accepted":
		return StateSelected
	case "rejected":
		return StateRejected
	case "declined":
		return StateDeclined
	default:
		return StateSubmitted
	}
}

// Final reports whether a decision has been made (anything but submitted).
func (s SubmissionState) Final() bool {
	return s == StateSelected || s == StateRejected || s == StateDeclined
}

// Submission links one Session to one Event.
// swagger:model Submission
type Submission struct {
	ID        string          `json:"id"`
	SessionID string          `json:"sessionId"`
	EventID   string          `json:"eventId"`
	State     SubmissionState `json:"state"`
	NameUsed  string          `json:"nameUsed"`
	Notes     string          `json:"notes"`
}

// NewSubmission returns a submission in the submitted state.
func NewSubmission(sessionID, eventID, nameUsed string) *Submission {
	return &Submission{
		SessionID: sessionID,
		EventID:   eventID,
		State:     StateSubmitted,
		NameUsed:  nameUsed,
	}
}

// SubmissionFilter narrows a submission listing. Empty fields match everything.
type SubmissionFilter struct {
	EventID   string
	SessionID string
}

// Matches reports whether s passes the filter.
func (f SubmissionFilter) Matches(s *Submission) bool {
	if f.EventID != "" && s.EventID != f.EventID {
		return false
	}
	if f.SessionID != "" && s.SessionID != f.SessionID {
		return false
	}
	return true
}

// SubmissionRepository defines the interface for submission storage.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *Submission) error
	GetByID(ctx context.Context, id string) (*Submission, error)
	List(ctx context.Context, filter SubmissionFilter) ([]*Submission, error)
	Update(ctx context.Context, submission *Submission) error
	Delete(ctx context.Context, id string) error
}

// SubmissionService defines the business logic for submissions.
type SubmissionService interface {
	// CreateSubmission returns ErrConflict when the (session, event) pair already exists
	// and ErrNotFound when either endpoint is missing.
	CreateSubmission(ctx context.Context, sessionID, eventID, nameUsed string) (*Submission, error)
	ListSubmissions(ctx context.Context, filter SubmissionFilter) ([]*Submission, error)
	UpdateSubmission(ctx context.Context, id string, state *SubmissionState, notes *string) (*Submission, error)
	DeleteSubmission(ctx context.Context, id string) error
}
