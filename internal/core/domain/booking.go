package domain

import "time"

// Booking records a customer's reservation of a service on a date.
// ServiceID and Email are advisory references; no referential integrity
// is enforced against the services or users collections.
type Booking struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	ServiceID      string    `json:"service_id"`
	ServiceName    string    `json:"service_name,omitempty"`
	Date           string    `json:"date"`
	Price          float64   `json:"price"`
	IdempotencyKey string    `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
