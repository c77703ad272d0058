package jsonfile

import "talktrack/internal/domain"

// migrations[i] upgrades a file from version i to i+1. Each step fills the defaults
// for the fields introduced in that release.
var migrations = []func(*fileData){
	// v1: travel and hotel bookings, MVP flag.
	func(d *fileData) {
		for _, e := range d.Events {
			if e.Travel == nil {
				e.Travel = []domain.TravelBooking{}
			}
			if e.Hotels == nil {
				e.Hotels = []domain.HotelBooking{}
			}
		}
	},
	// v2: alternate names on sessions, names used on submissions.
	func(d *fileData) {
		names := make(map[string]string, len(d.Sessions))
		for _, s := range d.Sessions {
			if s.AlternateNames == nil {
				s.AlternateNames = []string{}
			}
			names[s.ID] = s.Name
		}
		for _, sub := range d.Submissions {
			if sub.NameUsed == "" {
				sub.NameUsed = names[sub.SessionID]
			}
		}
	},
	// v3: session type and audience, normalised submission states.
	func(d *fileData) {
		for _, s := range d.Sessions {
			if s.SessionType == "" {
				s.SessionType = domain.DefaultSessionType
			}
			if s.TargetAudience == nil {
				s.TargetAudience = []string{}
			}
		}
		for _, sub := range d.Submissions {
			sub.State = domain.ParseSubmissionState(string(sub.State))
		}
	},
}

// migrate brings d up to domain.SchemaVersion in place.
func migrate(d *fileData) {
	if d.Events == nil {
		d.Events = []*domain.Event{}
	}
	if d.Sessions == nil {
		d.Sessions = []*domain.Session{}
	}
	if d.Submissions == nil {
		d.Submissions = []*domain.Submission{}
	}
	if d.Version < 0 {
		d.Version = 0
	}
	for v := d.Version; v < len(migrations) && v < domain.SchemaVersion; v++ {
		migrations[v](d)
	}
	if d.Version < domain.SchemaVersion {
		d.Version = domain.SchemaVersion
	}
}
