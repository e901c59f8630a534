package ports

import (
	"context"

	"github.com/beautyparlor/booking-api/internal/core/domain"
)

// UpdateResult mirrors the match/modify counts of a single-document update.
type UpdateResult struct {
	MatchedCount  int64 `json:"matched_count"`
	ModifiedCount int64 `json:"modified_count"`
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns domain.ErrUserNotFound when no account exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	SetRole(ctx context.Context, id, role string) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// RegisterUserInput carries the data for a new registration.
type RegisterUserInput struct {
	Name     string
	Email    string
	PhotoURL string
}

// UserService defines account use cases.
type UserService interface {
	// Register creates an account with the member role. A second call with
	// the same email returns domain.ErrUserExists and performs no insert.
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// IsAdmin reports whether the account with the given email holds the
	// admin role. An unknown email is simply not an admin.
	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteToAdmin(ctx context.Context, id string) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}
