package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/repositories"
)

// employeeRepository implements the EmployeeRepository interface
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) repositories.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create creates a new employee
func (r *employeeRepository) Create(ctx context.Context, employee *entities.Employee) error {
	if err := r.db.WithContext(ctx).Create(employee).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// FindByID retrieves an employee by ID
func (r *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Employee, error) {
	var employee entities.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("id = ?", id).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID: %w", err)
	}
	return &employee, nil
}

// FindByIDs retrieves employees by a set of IDs
func (r *employeeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var employees []*entities.Employee
	err := r.db.WithContext(ctx).
		Preload("Superior").
		Preload("HOD").
		Where("id IN ?", ids).
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find employees by IDs: %w", err)
	}
	return employees, nil
}

// FindByUserID retrieves the employee linked to a login account
func (r *employeeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entities.Employee, error) {
	var employee entities.Employee
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee by user ID: %w", err)
	}
	return &employee, nil
}

// List retrieves all employees with their department, ordered by name
func (r *employeeRepository) List(ctx context.Context) ([]*entities.Employee, error) {
	var employees []*entities.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Order("name ASC").
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// FindByDepartment retrieves active employees of a department
func (r *employeeRepository) FindByDepartment(ctx context.Context, departmentID uuid.UUID) ([]*entities.Employee, error) {
	var employees []*entities.Employee
	err := r.db.WithContext(ctx).
		Preload("Superior").
		Preload("HOD").
		Where("department_id = ? AND is_active = ?", departmentID, true).
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find employees by department: %w", err)
	}
	return employees, nil
}

// departmentRepository implements the DepartmentRepository interface
type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) repositories.DepartmentRepository {
	return &departmentRepository{db: db}
}

// Create creates a new department
func (r *departmentRepository) Create(ctx context.Context, department *entities.Department) error {
	if err := r.db.WithContext(ctx).Create(department).Error; err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}
	return nil
}

// FindByID retrieves a department by ID
func (r *departmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Department, error) {
	var department entities.Department
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&department).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to find department by ID: %w", err)
	}
	return &department, nil
}

// FindByName retrieves a department by name
func (r *departmentRepository) FindByName(ctx context.Context, name string) (*entities.Department, error) {
	var department entities.Department
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&department).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to find department by name: %w", err)
	}
	return &department, nil
}

// List retrieves all departments ordered by name
func (r *departmentRepository) List(ctx context.Context) ([]*entities.Department, error) {
	var departments []*entities.Department
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}
