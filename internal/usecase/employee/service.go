package employee

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/repositories"
	usecaseErrors "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/errors"
)

// Service handles employee directory business logic
type Service struct {
	employeeRepo   repositories.EmployeeRepository
	departmentRepo repositories.DepartmentRepository
}

// NewService creates a new employee service
func NewService(employeeRepo repositories.EmployeeRepository, departmentRepo repositories.DepartmentRepository) *Service {
	return &Service{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// CreateEmployeeInput contains the data needed to register an employee
type CreateEmployeeInput struct {
	Code          string
	Name          string
	Designation   *string
	CompanyEmail  *string
	PersonalEmail *string
	DepartmentID  uuid.UUID
	SuperiorID    *uuid.UUID
	HODID         *uuid.UUID
	UserID        *uuid.UUID
}

// CreateEmployee registers a new employee in the directory. The
// department must exist, as must any superior or head-of-department
// reference.
func (s *Service) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*entities.Employee, error) {
	if strings.TrimSpace(input.Code) == "" {
		return nil, usecaseErrors.ErrEmployeeCodeRequired
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	if _, err := s.departmentRepo.FindByID(ctx, input.DepartmentID); err != nil {
		if errors.Is(err, entities.ErrDepartmentNotFound) {
			return nil, usecaseErrors.ErrDepartmentNotFound
		}
		return nil, err
	}

	for _, ref := range []*uuid.UUID{input.SuperiorID, input.HODID} {
		if ref == nil {
			continue
		}
		if _, err := s.employeeRepo.FindByID(ctx, *ref); err != nil {
			if errors.Is(err, entities.ErrEmployeeNotFound) {
				return nil, usecaseErrors.ErrEmployeeNotFound
			}
			return nil, err
		}
	}

	employee := &entities.Employee{
		Code:          strings.TrimSpace(input.Code),
		Name:          strings.TrimSpace(input.Name),
		Designation:   input.Designation,
		CompanyEmail:  input.CompanyEmail,
		PersonalEmail: input.PersonalEmail,
		DepartmentID:  input.DepartmentID,
		SuperiorID:    input.SuperiorID,
		HODID:         input.HODID,
		UserID:        input.UserID,
		IsActive:      true,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// ListEmployees retrieves the whole directory ordered by name
func (s *Service) ListEmployees(ctx context.Context) ([]*entities.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// GetEmployee retrieves a single employee
func (s *Service) GetEmployee(ctx context.Context, id uuid.UUID) (*entities.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrEmployeeNotFound) {
			return nil, usecaseErrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

// CreateDepartment registers a new department with a unique name
func (s *Service) CreateDepartment(ctx context.Context, name string) (*entities.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	if _, err := s.departmentRepo.FindByName(ctx, name); err == nil {
		return nil, usecaseErrors.ErrAlreadyExists
	} else if !errors.Is(err, entities.ErrDepartmentNotFound) {
		return nil, err
	}

	department := &entities.Department{Name: name}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// ListDepartments retrieves every department ordered by name
func (s *Service) ListDepartments(ctx context.Context) ([]*entities.Department, error) {
	return s.departmentRepo.List(ctx)
}
