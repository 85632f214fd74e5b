package ports

import (
	"context"
	"time"

	"github.com/corporation/identity-api/internal/core/domain"
)

// UserUpdate is a partial field set applied to a stored user. Nil fields
// are left untouched.
type UserUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
	Role      *domain.Role
	IsActive  *bool
}

// Empty reports whether the update would change nothing.
func (u UserUpdate) Empty() bool {
	return u.Email == nil && u.FirstName == nil && u.LastName == nil &&
		u.Role == nil && u.IsActive == nil
}

// UserRepository defines the persistence contract for user records.
// Insert must reject a duplicate email with domain.ErrEmailTaken.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.User, error)
	SetLastLogin(ctx context.Context, id string, at time.Time) error
}
