package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email is already registered")
	ErrUserInactive = errors.New("this account has been deactivated")
	ErrInvalidRole  = errors.New("invalid role")
)
