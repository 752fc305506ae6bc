package auth

import "context"

type Service interface {
	// Login verifies credentials and issues a JWT access token carrying the
	// user's id and role.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
