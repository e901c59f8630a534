package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/beautyparlor/booking-api/internal/core/domain"
	"github.com/beautyparlor/booking-api/internal/core/ports"
)

// BookingService implements booking creation and listing.
type BookingService struct {
	repo   ports.BookingRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, users ports.UserRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, users: users, logger: logger}
}

// Create stores a new booking. If an idempotency key is provided and
// already seen, the previously stored booking is returned without a
// second insert.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*ports.BookingResult, error) {
	if input.IdempotencyKey != "" {
		existing, err := s.repo.FindByIdempotencyKey(ctx, input.IdempotencyKey)
		if err == nil && existing != nil {
			s.logger.Info().
				Str("idempotency_key", input.IdempotencyKey).
				Str("booking_id", existing.ID).
				Msg("idempotent replay")
			return &ports.BookingResult{Booking: existing, AlreadyExisted: true}, nil
		}
		if err != nil && !errors.Is(err, domain.ErrBookingNotFound) {
			return nil, err
		}
	}

	booking := &domain.Booking{
		Email:          input.Email,
		ServiceID:      input.ServiceID,
		ServiceName:    input.ServiceName,
		Date:           input.Date,
		Price:          input.Price,
		IdempotencyKey: input.IdempotencyKey,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create booking")
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", created.ID).
		Str("email", created.Email).
		Str("service_id", created.ServiceID).
		Msg("booking created")

	return &ports.BookingResult{Booking: created}, nil
}

func (s *BookingService) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	return s.repo.FindAll(ctx)
}

// ListByEmail returns the bookings for the given email. A requester asking
// for another email must hold the admin role; the role lookup only happens
// on a mismatch, so the common own-bookings path costs no extra read.
func (s *BookingService) ListByEmail(ctx context.Context, input ports.ListBookingsInput) ([]*domain.Booking, error) {
	if input.Email != input.RequesterEmail {
		requester, err := s.users.FindByEmail(ctx, input.RequesterEmail)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrForbidden
			}
			return nil, err
		}
		if !requester.IsAdmin() {
			return nil, domain.ErrForbidden
		}
	}
	return s.repo.FindByEmail(ctx, input.Email)
}
