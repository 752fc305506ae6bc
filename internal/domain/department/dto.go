package department

import "github.com/aiwa-ops/hrops-backend-go/internal/pkg/validator"

type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r *CreateDepartmentRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	return nil
}

type UpdateDepartmentRequest struct {
	ID          string  `json:"-"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	EmployeeCount int     `json:"employee_count"`
}

func (d Department) ToResponse() DepartmentResponse {
	return DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		EmployeeCount: d.EmployeeCount,
	}
}
