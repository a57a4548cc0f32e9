package dto

import "time"

// CreateOrderRequest payload.
type CreateOrderRequest struct {
	ServiceID   string `json:"service_id"`
	Description string `json:"description"`
}

// OrderSummary response.
type OrderSummary struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"service_id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderDetailResponse adds the catalog service and, on staff screens, the
// requesting customer.
type OrderDetailResponse struct {
	Order     OrderSummary     `json:"order"`
	Service   *ServiceResponse `json:"service,omitempty"`
	Requester *UserSummary     `json:"requester,omitempty"`
}
