package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/beautyparlor/booking-api/internal/core/domain"
	"github.com/beautyparlor/booking-api/internal/core/ports"
)

// UserService implements account registration and role management.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates an account with the member role. The pre-insert
// existence check keeps the friendly duplicate message; the unique email
// index closes the check-then-insert race, so a concurrent duplicate
// surfaces as ErrUserExists from the repository instead of a second user.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user := &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		PhotoURL:  input.PhotoURL,
		Role:      domain.RoleMember,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to register user")
		}
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Msg("user registered")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

// IsAdmin looks up the stored role for an email. Unknown emails are not
// admins; only a store failure is an error.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *UserService) PromoteToAdmin(ctx context.Context, id string) (*ports.UpdateResult, error) {
	result, err := s.repo.SetRole(ctx, id, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Msg("user promoted to admin")
	return result, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Str("user_id", id).Int64("deleted", deleted).Msg("user deleted")
	return deleted, nil
}
