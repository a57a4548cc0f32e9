package domain

import "time"

// OrderStatusNew is the status assigned to every freshly created order.
// Status is a free-form label afterwards, changed only through the admin
// collaborator, never through the public API.
const OrderStatusNew = "New"

// ServiceOrder ties a customer to a catalog service they requested.
type ServiceOrder struct {
	ID          string
	UserID      string
	ServiceID   string
	Description string
	Status      string
	CreatedAt   time.Time
}
