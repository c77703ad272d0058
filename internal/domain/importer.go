package domain

import "context"

// EventPageFetcher downloads the HTML of a call-for-speakers page (or a test double).
type EventPageFetcher interface {
	FetchPage(ctx context.Context, url string) (string, error)
}

// ImportService turns third-party call-for-speakers pages into draft events.
type ImportService interface {
	// ImportSessionize returns an unsaved draft. Fields the page does not expose are left empty.
	ImportSessionize(ctx context.Context, url string) (*Event, error)
}
