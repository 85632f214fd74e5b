package handler

import (
	"time"

	"github.com/corporation/identity-api/internal/core/domain"
)

// --- Request / Response types ---

type createUserRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	FirstName   string `json:"first_name"   validate:"required,min=1,max=128"`
	LastName    string `json:"last_name"    validate:"required,min=1,max=128"`
	Role        string `json:"role"         validate:"required,oneof=admin developer 'simple mortal'"`
	IsActive    *bool  `json:"is_active"`
	RawPassword string `json:"raw_password" validate:"required"`
}

// patchUserRequest is the partial update payload: nil fields stay untouched.
type patchUserRequest struct {
	Email     *string `json:"email"      validate:"omitempty,email"`
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=128"`
	LastName  *string `json:"last_name"  validate:"omitempty,min=1,max=128"`
	Role      *string `json:"role"       validate:"omitempty,oneof=admin developer 'simple mortal'"`
	IsActive  *bool   `json:"is_active"`
}

// putUserRequest replaces every mutable field.
type putUserRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,min=1,max=128"`
	LastName  string `json:"last_name"  validate:"required,min=1,max=128"`
	Role      string `json:"role"       validate:"required,oneof=admin developer 'simple mortal'"`
	IsActive  *bool  `json:"is_active"  validate:"required"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

// userPageResponse mirrors the classic page envelope: items plus totals.
type userPageResponse struct {
	Items []userResponse `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Pages int            `json:"pages"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type journalWriteRequest struct {
	Message string `json:"message" validate:"required"`
}

type journalReadResponse struct {
	Messages []string `json:"messages"`
}

type messageResponse struct {
	Message string `json:"message"`
}
