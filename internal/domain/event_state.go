package domain

// EventState is the aggregate status of an event, derived from its submissions.
type EventState string

const (
	EventSelected EventState = "selected"
	EventRejected EventState = "rejected"
	EventDeclined EventState = "declined"
	EventPending  EventState = "pending"
	EventNone     EventState = "none"
)

// EventStates lists every aggregate status.
var EventStates = []EventState{EventSelected, EventRejected, EventDeclined, EventPending, EventNone}

// Valid reports whether s is one of EventStates.
func (s EventState) Valid() bool {
	for _, v := range EventStates {
		if v == s {
			return true
		}
	}
	return false
}

// ComputeEventState derives the status of eventID from the full submission list.
//
// The checks run in a fixed order and the order matters for mixed final sets:
// any selected among all-final wins, then all-rejected, then rejected/declined,
// and anything still submitted is pending. No submissions (or an unknown id) is none.
func ComputeEventState(eventID string, submissions []*Submission) EventState {
	count := 0
	allFinal, hasSelected := true, false
	allRejected, allRejectedOrDeclined := true, true
	for _, s := range submissions {
		if s == nil || s.EventID != eventID {
			continue
		}
		count++
		if !s.State.Final() {
			allFinal = false
		}
		if s.State == StateSelected {
			hasSelected = true
		}
		if s.State != StateRejected {
			allRejected = false
		}
		if s.State != StateRejected && s.State != StateDeclined {
			allRejectedOrDeclined = false
		}
	}

	if count == 0 {
		return EventNone
	}
	if allFinal && hasSelected {
		return EventSelected
	}
	if allRejected {
		return EventRejected
	}
	if allRejectedOrDeclined {
		return EventDeclined
	}
	return EventPending
}
