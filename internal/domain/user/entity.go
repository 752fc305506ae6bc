package user

import "time"

type Role string

const (
	RoleManager    Role = "MANAGER"
	RoleSupervisor Role = "SUPERVISOR"
	RoleEmployee   Role = "EMPLOYEE"
)

func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleSupervisor, RoleEmployee:
		return true
	}
	return false
}

// User is an account in the organization. Every employee is a user; managers
// and supervisors additionally get elevated routes.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	DepartmentID *string
	AvatarURL    *string
	IsActive     bool

	// CustomStartTime/CustomEndTime override the organization shift for this
	// employee, "HH:MM". Nil means the org default applies.
	CustomStartTime *string
	CustomEndTime   *string

	// IsOvertimeEnabled controls whether time worked past the shift end is
	// tracked as overtime or capped at the shift length.
	IsOvertimeEnabled bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for listings.
	DepartmentName *string
}
