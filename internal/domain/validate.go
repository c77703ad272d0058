package domain

import (
	"fmt"
	"strings"
)

// EventProblems lists what is wrong with e. An empty result means e can be stored.
func EventProblems(e *Event) []string {
	var problems []string
	if strings.TrimSpace(e.Name) == "" {
		problems = append(problems, "name is required")
	}
	start, startOK := ParseDay(e.DateStart)
	if e.DateStart != "" && !startOK {
		problems = append(problems, "dateStart must be a valid YYYY-MM-DD date")
	}
	if e.DateEnd != "" {
		end, ok := ParseDay(e.DateEnd)
		switch {
		case !ok:
			problems = append(problems, "dateEnd must be a valid YYYY-MM-DD date")
		case startOK && end.Before(start):
			problems = append(problems, "dateEnd must not be before dateStart")
		}
	}
	if e.CallForContentLastDate != "" {
		if _, ok := ParseDay(e.CallForContentLastDate); !ok {
			problems = append(problems, "callForContentLastDate must be a valid YYYY-MM-DD date")
		}
	}
	for i, t := range e.Travel {
		if !t.Type.Valid() {
			problems = append(problems, fmt.Sprintf("travel[%d].type %q is not a known travel type", i, t.Type))
		}
	}
	return problems
}

// SessionProblems lists what is wrong with s. An empty result means s can be stored.
func SessionProblems(s *Session) []string {
	var problems []string
	if strings.TrimSpace(s.Name) == "" {
		problems = append(problems, "name is required")
	}
	if !IsSessionLevel(s.Level) {
		problems = append(problems, "level must be one of "+strings.Join(SessionLevels, ", "))
	}
	if s.SessionType != "" && !IsSessionType(s.SessionType) {
		problems = append(problems, fmt.Sprintf("sessionType %q is not a known session type", s.SessionType))
	}
	for _, a := range s.TargetAudience {
		if !IsTargetAudience(a) {
			problems = append(problems, fmt.Sprintf("targetAudience %q is not a known audience", a))
		}
	}
	return problems
}

// SettingsProblems lists what is wrong with s.
func SettingsProblems(s Settings) []string {
	var problems []string
	if !s.DateFormat.Valid() {
		problems = append(problems, fmt.Sprintf("dateFormat %q is not supported", s.DateFormat))
	}
	if s.MaxEventsPerMonth < 0 {
		problems = append(problems, "maxEventsPerMonth must not be negative")
	}
	if s.MaxEventsPerYear < 0 {
		problems = append(problems, "maxEventsPerYear must not be negative")
	}
	return problems
}

// InvalidInput wraps problems into an error matching ErrInvalidInput, or returns nil when there are none.
func InvalidInput(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
}
