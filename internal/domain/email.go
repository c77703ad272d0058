package domain

import (
	"context"
	"time"
)

// EmailMessage is one outgoing email. Either body may be empty.
type EmailMessage struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// DeadlineDigestItem is one open call for content in the digest.
type DeadlineDigestItem struct {
	EventID   string
	EventName string
	Location  string
	Deadline  string // rendered in the user's date format
	DaysLeft  int
	URL       string
}

// DeadlineDigestEmailData holds data for the deadline digest email.
type DeadlineDigestEmailData struct {
	GeneratedOn string
	WindowDays  int
	Items       []DeadlineDigestItem
}

// DigestService sends reminders about calls for content that are about to close.
type DigestService interface {
	// SendDeadlineDigest returns the number of events listed; nothing is sent when it is zero.
	SendDeadlineDigest(ctx context.Context, now time.Time) (int, error)
}
