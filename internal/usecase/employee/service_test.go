package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	usecaseErrors "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/errors"
)

type fakeEmployeeRepo struct {
	employees map[uuid.UUID]*entities.Employee
}

func newFakeEmployeeRepo(employees ...*entities.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[uuid.UUID]*entities.Employee)}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e *entities.Employee) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.employees[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Employee, error) {
	if e, ok := r.employees[id]; ok {
		return e, nil
	}
	return nil, entities.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Employee, error) {
	return nil, nil
}
func (r *fakeEmployeeRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entities.Employee, error) {
	return nil, entities.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]*entities.Employee, error) {
	var out []*entities.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) FindByDepartment(ctx context.Context, departmentID uuid.UUID) ([]*entities.Employee, error) {
	return nil, nil
}

type fakeDepartmentRepo struct {
	departments map[uuid.UUID]*entities.Department
}

func newFakeDepartmentRepo(departments ...*entities.Department) *fakeDepartmentRepo {
	r := &fakeDepartmentRepo{departments: make(map[uuid.UUID]*entities.Department)}
	for _, d := range departments {
		r.departments[d.ID] = d
	}
	return r
}

func (r *fakeDepartmentRepo) Create(ctx context.Context, d *entities.Department) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.departments[d.ID] = d
	return nil
}

func (r *fakeDepartmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Department, error) {
	if d, ok := r.departments[id]; ok {
		return d, nil
	}
	return nil, entities.ErrDepartmentNotFound
}

func (r *fakeDepartmentRepo) FindByName(ctx context.Context, name string) (*entities.Department, error) {
	for _, d := range r.departments {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, entities.ErrDepartmentNotFound
}

func (r *fakeDepartmentRepo) List(ctx context.Context) ([]*entities.Department, error) {
	var out []*entities.Department
	for _, d := range r.departments {
		out = append(out, d)
	}
	return out, nil
}

func fixture() (*Service, *entities.Department, *entities.Employee) {
	department := &entities.Department{ID: uuid.New(), Name: "Engineering"}
	superior := &entities.Employee{ID: uuid.New(), Code: "EMP-001", Name: "Ravi Kumar", DepartmentID: department.ID}

	svc := NewService(newFakeEmployeeRepo(superior), newFakeDepartmentRepo(department))
	return svc, department, superior
}

func TestCreateEmployee(t *testing.T) {
	svc, department, superior := fixture()

	employee, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		Code:         "  EMP-002  ",
		Name:         "Priya Nair",
		DepartmentID: department.ID,
		SuperiorID:   &superior.ID,
	})
	if err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}
	if employee.Code != "EMP-002" {
		t.Fatalf("expected trimmed code, got %q", employee.Code)
	}
	if !employee.IsActive {
		t.Fatal("new employee should be active")
	}
}

func TestCreateEmployeeMissingCode(t *testing.T) {
	svc, department, _ := fixture()

	_, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		Name:         "Priya Nair",
		DepartmentID: department.ID,
	})
	if !errors.Is(err, usecaseErrors.ErrEmployeeCodeRequired) {
		t.Fatalf("expected ErrEmployeeCodeRequired, got %v", err)
	}
}

func TestCreateEmployeeUnknownDepartment(t *testing.T) {
	svc, _, _ := fixture()

	_, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		Code:         "EMP-002",
		Name:         "Priya Nair",
		DepartmentID: uuid.New(),
	})
	if !errors.Is(err, usecaseErrors.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestCreateEmployeeUnknownSuperior(t *testing.T) {
	svc, department, _ := fixture()

	ghost := uuid.New()
	_, err := svc.CreateEmployee(context.Background(), CreateEmployeeInput{
		Code:         "EMP-002",
		Name:         "Priya Nair",
		DepartmentID: department.ID,
		SuperiorID:   &ghost,
	})
	if !errors.Is(err, usecaseErrors.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestCreateDepartmentDuplicate(t *testing.T) {
	svc, _, _ := fixture()

	_, err := svc.CreateDepartment(context.Background(), "Engineering")
	if !errors.Is(err, usecaseErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	if _, err := svc.CreateDepartment(context.Background(), "Operations"); err != nil {
		t.Fatalf("CreateDepartment failed: %v", err)
	}
}

func TestGetEmployeeNotFound(t *testing.T) {
	svc, _, _ := fixture()

	_, err := svc.GetEmployee(context.Background(), uuid.New())
	if !errors.Is(err, usecaseErrors.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
