package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/beautyparlor/booking-api/internal/core/domain"
	"github.com/beautyparlor/booking-api/internal/core/ports"
)

// CatalogService implements the admin-managed service listing.
type CatalogService struct {
	repo   ports.ServiceRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ServiceRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.FindAll(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	svc := &domain.Service{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, svc)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create service")
		return nil, err
	}

	s.logger.Info().Str("service_id", created.ID).Str("name", created.Name).Msg("service created")
	return created, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Str("service_id", id).Int64("deleted", deleted).Msg("service deleted")
	return deleted, nil
}
