package auth

import (
	"context"
	"testing"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/auth"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	byEmail map[string]user.User
}

func (s *stubUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (s *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if u, ok := s.byEmail[email]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) List(ctx context.Context, departmentID *string) ([]user.User, error) {
	return nil, nil
}
func (s *stubUserRepo) Update(ctx context.Context, u user.User) error { return nil }
func (s *stubUserRepo) SetOvertimeEnabled(ctx context.Context, id string, enabled bool) error {
	return nil
}
func (s *stubUserRepo) Delete(ctx context.Context, id string) error { return nil }

func newAuthService(t *testing.T, users ...user.User) auth.Service {
	t.Helper()
	repo := &stubUserRepo{byEmail: make(map[string]user.User)}
	for _, u := range users {
		repo.byEmail[u.Email] = u
	}
	return NewAuthService(repo, jwt.NewJWTService("test-secret", "15m"))
}

func activeUser(t *testing.T, password string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return user.User{
		ID:           "usr-1",
		FullName:     "Sara",
		Email:        "sara@aiwa.com",
		PasswordHash: string(hash),
		Role:         user.RoleManager,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	svc := newAuthService(t, activeUser(t, "password123"))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "sara@aiwa.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, "usr-1", resp.User.ID)
	assert.Equal(t, user.RoleManager, resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthService(t, activeUser(t, "password123"))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "sara@aiwa.com",
		Password: "nope-nope-nope",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@aiwa.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	u := activeUser(t, "password123")
	u.IsActive = false
	svc := newAuthService(t, u)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "sara@aiwa.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestLogin_ValidatesRequest(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "not-an-email"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
