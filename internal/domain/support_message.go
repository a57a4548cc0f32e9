package domain

import "time"

// SupportMessage is one line in a customer's support thread. The thread
// belongs to OwnerUserID (the customer) regardless of who wrote the line;
// SenderUserID is the actual author and differs from the owner when staff
// replies. Rows are append-only: only IsRead ever changes, unread to read,
// never back.
type SupportMessage struct {
	ID           string
	OwnerUserID  string
	SenderUserID string
	Body         string
	IsFromStaff  bool
	IsRead       bool
	CreatedAt    time.Time
}

// ThreadSummary is one roster row in the staff support listing.
type ThreadSummary struct {
	Owner              *User
	LastMessageSnippet string
	LastMessageAt      time.Time
}
