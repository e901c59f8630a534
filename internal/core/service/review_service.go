package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/beautyparlor/booking-api/internal/core/domain"
	"github.com/beautyparlor/booking-api/internal/core/ports"
)

// ReviewService implements the append-only review feed.
type ReviewService struct {
	repo   ports.ReviewRepository
	logger zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, logger: logger}
}

func (s *ReviewService) List(ctx context.Context) ([]*domain.Review, error) {
	return s.repo.FindAll(ctx)
}

func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	review := &domain.Review{
		Reviewer:  input.Reviewer,
		Email:     input.Email,
		Rating:    input.Rating,
		Text:      input.Text,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, review)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create review")
		return nil, err
	}

	s.logger.Info().Str("review_id", created.ID).Int("rating", created.Rating).Msg("review created")
	return created, nil
}
