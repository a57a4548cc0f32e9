package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered       EventType = "user_registered"
	EventServiceOrderCreated  EventType = "service_order_created"
	EventSupportMessagePosted EventType = "support_message_posted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string `json:"user_id"`
	Handle string `json:"handle"`
	Email  string `json:"email"`
}

// ServiceOrderCreatedPayload payload.
type ServiceOrderCreatedPayload struct {
	OrderID   string `json:"order_id"`
	ServiceID string `json:"service_id"`
	UserID    string `json:"user_id"`
}

// SupportMessagePostedPayload payload.
type SupportMessagePostedPayload struct {
	MessageID   string `json:"message_id"`
	OwnerUserID string `json:"owner_user_id"`
	IsFromStaff bool   `json:"is_from_staff"`
	BodyPreview string `json:"body_preview"`
}
