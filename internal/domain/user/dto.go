package user

import (
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/clock"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	Role            Role    `json:"role"`
	DepartmentID    string  `json:"department_id"`
	CustomStartTime *string `json:"custom_start_time"`
	CustomEndTime   *string `json:"custom_end_time"`
	OvertimeEnabled bool    `json:"overtime_enabled"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if r.Role != "" && !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be MANAGER, SUPERVISOR or EMPLOYEE"})
	}
	errs = append(errs, validateClockOverride("custom_start_time", r.CustomStartTime)...)
	errs = append(errs, validateClockOverride("custom_end_time", r.CustomEndTime)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID              string  `json:"-"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	Role            Role    `json:"role"`
	DepartmentID    string  `json:"department_id"`
	IsActive        bool    `json:"is_active"`
	CustomStartTime *string `json:"custom_start_time"`
	CustomEndTime   *string `json:"custom_end_time"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if r.Password != "" && len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if r.Role != "" && !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be MANAGER, SUPERVISOR or EMPLOYEE"})
	}
	errs = append(errs, validateClockOverride("custom_start_time", r.CustomStartTime)...)
	errs = append(errs, validateClockOverride("custom_end_time", r.CustomEndTime)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateClockOverride(field string, v *string) validator.ValidationErrors {
	if v == nil || *v == "" {
		return nil
	}
	if _, err := clock.ParseClock(*v); err != nil {
		return validator.ValidationErrors{{Field: field, Message: "must be a valid HH:MM time"}}
	}
	return nil
}

type UserResponse struct {
	ID              string  `json:"id"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	Role            Role    `json:"role"`
	DepartmentID    *string `json:"department_id"`
	Department      string  `json:"department,omitempty"`
	AvatarURL       *string `json:"avatar_url"`
	IsActive        bool    `json:"is_active"`
	CustomStartTime *string `json:"custom_start_time"`
	CustomEndTime   *string `json:"custom_end_time"`
	OvertimeEnabled bool    `json:"overtime_enabled"`
}

func (u User) ToResponse() UserResponse {
	resp := UserResponse{
		ID:              u.ID,
		FullName:        u.FullName,
		Email:           u.Email,
		Role:            u.Role,
		DepartmentID:    u.DepartmentID,
		AvatarURL:       u.AvatarURL,
		IsActive:        u.IsActive,
		CustomStartTime: u.CustomStartTime,
		CustomEndTime:   u.CustomEndTime,
		OvertimeEnabled: u.IsOvertimeEnabled,
	}
	if u.DepartmentName != nil {
		resp.Department = *u.DepartmentName
	}
	return resp
}
