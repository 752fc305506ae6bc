package department

import (
	"context"
	"fmt"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/department"
	"github.com/google/uuid"
)

type DepartmentServiceImpl struct {
	departmentRepo department.Repository
}

func NewDepartmentService(departmentRepo department.Repository) department.Service {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

// Create implements department.Service.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return created.ToResponse(), nil
}

// Get implements department.Service.
func (s *DepartmentServiceImpl) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return d.ToResponse(), nil
}

// List implements department.Service.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, d.ToResponse())
	}
	return responses, nil
}

// Update implements department.Service.
func (s *DepartmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	d, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	d.Name = req.Name
	d.Description = req.Description

	return s.departmentRepo.Update(ctx, d)
}

// Delete implements department.Service.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.departmentRepo.Delete(ctx, id)
}
