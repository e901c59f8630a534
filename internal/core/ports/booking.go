package ports

import (
	"context"

	"github.com/beautyparlor/booking-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Insert(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindAll(ctx context.Context) ([]*domain.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	// FindByIdempotencyKey returns domain.ErrBookingNotFound on a miss.
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error)
}

// CreateBookingInput carries the data for a new booking.
type CreateBookingInput struct {
	Email       string
	ServiceID   string
	ServiceName string
	Date        string
	Price       float64
	// IdempotencyKey, when non-empty, deduplicates retried submissions:
	// a repeat with the same key returns the previously stored booking.
	IdempotencyKey string
}

// BookingResult is returned by BookingService.Create.
type BookingResult struct {
	Booking *domain.Booking
	// AlreadyExisted is true when the idempotency key matched a prior booking.
	AlreadyExisted bool
}

// ListBookingsInput carries the parameters for the per-email listing.
// RequesterEmail comes from the verified token; non-admin requesters may
// only list their own bookings.
type ListBookingsInput struct {
	Email          string
	RequesterEmail string
}

// BookingService defines booking use cases.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*BookingResult, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	ListByEmail(ctx context.Context, input ListBookingsInput) ([]*domain.Booking, error)
}
