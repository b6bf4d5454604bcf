package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
)

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, employee *entities.Employee) error

	// FindByID retrieves an employee by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Employee, error)

	// FindByIDs retrieves employees by a set of IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Employee, error)

	// FindByUserID retrieves the employee linked to a login account
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entities.Employee, error)

	// List retrieves all employees with their department, ordered by name
	List(ctx context.Context) ([]*entities.Employee, error)

	// FindByDepartment retrieves active employees of a department with
	// their superior and head-of-department preloaded
	FindByDepartment(ctx context.Context, departmentID uuid.UUID) ([]*entities.Employee, error)
}

// DepartmentRepository defines the interface for department data access
type DepartmentRepository interface {
	// Create creates a new department
	Create(ctx context.Context, department *entities.Department) error

	// FindByID retrieves a department by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Department, error)

	// FindByName retrieves a department by name
	FindByName(ctx context.Context, name string) (*entities.Department, error)

	// List retrieves all departments ordered by name
	List(ctx context.Context) ([]*entities.Department, error)
}
