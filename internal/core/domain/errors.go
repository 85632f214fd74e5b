package domain

import "errors"

var (
	// ErrBadCredentials covers both unknown email and wrong password so the
	// login response never reveals which one failed.
	ErrBadCredentials  = errors.New("incorrect email or password")
	ErrAccountInactive = errors.New("account is inactive")
	ErrTokenInvalid    = errors.New("token invalid or expired")
	ErrForbidden       = errors.New("insufficient role")
	ErrPasswordChange  = errors.New("cannot change password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrEmailTaken      = errors.New("email already registered")
	ErrUpdateFailed    = errors.New("error updating a user")
	ErrDeleteFailed    = errors.New("error deleting a user")
)
