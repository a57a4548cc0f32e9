package dto

import "time"

// PostMessageRequest payload.
type PostMessageRequest struct {
	Message string `json:"message"`
}

// SupportMessageResponse is one thread line.
type SupportMessageResponse struct {
	ID           string    `json:"id"`
	OwnerUserID  string    `json:"owner_user_id"`
	SenderUserID string    `json:"sender_user_id"`
	Body         string    `json:"body"`
	IsFromStaff  bool      `json:"is_from_staff"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}

// ThreadSummaryResponse is one staff roster row.
type ThreadSummaryResponse struct {
	Owner              UserSummary `json:"owner"`
	LastMessageSnippet string      `json:"last_message_snippet"`
	LastMessageAt      time.Time   `json:"last_message_at"`
}

// UnreadCountResponse is the polling badge payload.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// ThreadResponse is a full thread with its owner.
type ThreadResponse struct {
	Owner    UserSummary              `json:"owner"`
	Messages []SupportMessageResponse `json:"messages"`
}
