package ports

import (
	"context"

	"github.com/corporation/identity-api/internal/core/domain"
)

// CreateUserInput carries the validated payload for user creation.
type CreateUserInput struct {
	Email       string
	FirstName   string
	LastName    string
	Role        domain.Role
	IsActive    bool
	RawPassword string
}

// UserService implements user management on top of UserRepository.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
