package ports

import (
	"context"

	"github.com/beautyparlor/booking-api/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
// Reviews are append-only; there is deliberately no update or delete.
type ReviewRepository interface {
	Insert(ctx context.Context, r *domain.Review) (*domain.Review, error)
	FindAll(ctx context.Context) ([]*domain.Review, error)
}

// CreateReviewInput carries the data for a new review.
type CreateReviewInput struct {
	Reviewer string
	Email    string
	Rating   int
	Text     string
}

// ReviewService defines review use cases.
type ReviewService interface {
	List(ctx context.Context) ([]*domain.Review, error)
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
}
