package ports

import (
	"context"

	"github.com/beautyparlor/booking-api/internal/core/domain"
)

// ServiceRepository defines persistence operations for the service catalog.
type ServiceRepository interface {
	Insert(ctx context.Context, s *domain.Service) (*domain.Service, error)
	// FindByID returns domain.ErrServiceNotFound when no document matches.
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	FindAll(ctx context.Context) ([]*domain.Service, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// CreateServiceInput carries the data for a new catalog entry.
type CreateServiceInput struct {
	Name        string
	Price       float64
	Description string
	Image       string
}

// CatalogService defines service-listing use cases.
type CatalogService interface {
	List(ctx context.Context) ([]*domain.Service, error)
	Get(ctx context.Context, id string) (*domain.Service, error)
	Create(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
	Delete(ctx context.Context, id string) (int64, error)
}
