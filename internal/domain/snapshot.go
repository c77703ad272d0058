package domain

import "context"

// SchemaVersion is the current version of the persisted record schema.
const SchemaVersion = 3

// Snapshot is a consistent copy of the three collections, used by derived views and exports.
type Snapshot struct {
	Events      []*Event
	Sessions    []*Session
	Submissions []*Submission
}

// EventByID returns the event with the given id, or nil.
func (s *Snapshot) EventByID(id string) *Event {
	for _, e := range s.Events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// SessionByID returns the session with the given id, or nil.
func (s *Snapshot) SessionByID(id string) *Session {
	for _, sess := range s.Sessions {
		if sess.ID == id {
			return sess
		}
	}
	return nil
}

// SnapshotReader reads all three collections at once.
type SnapshotReader interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// Backup is the full JSON export of the tracker.
// swagger:model Backup
type Backup struct {
	Version     int           `json:"version"`
	Events      []*Event      `json:"events"`
	Sessions    []*Session    `json:"sessions"`
	Submissions []*Submission `json:"submissions"`
	Settings    Settings      `json:"settings"`
}

// ExportService renders the stored data as downloadable files.
type ExportService interface {
	Backup(ctx context.Context) (*Backup, error)
	EventsCSV(ctx context.Context) ([]byte, error)
	SessionsCSV(ctx context.Context) ([]byte, error)
	SubmissionsCSV(ctx context.Context) ([]byte, error)
	// EventsICS includes only events with at least one selected submission when selectedOnly is set.
	EventsICS(ctx context.Context, selectedOnly bool) ([]byte, error)
	EventICS(ctx context.Context, id string) ([]byte, error)
}
