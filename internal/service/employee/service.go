package employee

import (
	"context"
	"fmt"
	"net/url"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	userRepo user.Repository
}

func NewEmployeeService(userRepo user.Repository) user.Service {
	return &EmployeeServiceImpl{userRepo: userRepo}
}

// Create implements user.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = user.RoleEmployee
	}

	avatar := defaultAvatarURL(req.FullName)
	u := user.User{
		ID:                uuid.New().String(),
		FullName:          req.FullName,
		Email:             req.Email,
		PasswordHash:      string(hash),
		Role:              role,
		DepartmentID:      &req.DepartmentID,
		AvatarURL:         &avatar,
		IsActive:          true,
		CustomStartTime:   normalizeOverride(req.CustomStartTime),
		CustomEndTime:     normalizeOverride(req.CustomEndTime),
		IsOvertimeEnabled: req.OvertimeEnabled,
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created.ToResponse(), nil
}

// Get implements user.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return u.ToResponse(), nil
}

// List implements user.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context, departmentID *string) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}
	return responses, nil
}

// Update implements user.Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	u.FullName = req.FullName
	u.Email = req.Email
	u.DepartmentID = &req.DepartmentID
	u.IsActive = req.IsActive
	u.CustomStartTime = normalizeOverride(req.CustomStartTime)
	u.CustomEndTime = normalizeOverride(req.CustomEndTime)
	if req.Role != "" {
		u.Role = req.Role
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// SetOvertimeEnabled implements user.Service.
func (s *EmployeeServiceImpl) SetOvertimeEnabled(ctx context.Context, id string, enabled bool) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.SetOvertimeEnabled(ctx, id, enabled)
}

// Delete implements user.Service.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// normalizeOverride collapses empty-string overrides to nil so the org
// default applies.
func normalizeOverride(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

func defaultAvatarURL(fullName string) string {
	return "https://ui-avatars.com/api/?background=random&name=" + url.QueryEscape(fullName)
}
