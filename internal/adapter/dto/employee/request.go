package employee

import "github.com/google/uuid"

// CreateEmployeeRequest represents the request to register an employee
type CreateEmployeeRequest struct {
	Code          string     `json:"code" validate:"required,min=1,max=50"`
	Name          string     `json:"name" validate:"required,min=1,max=255"`
	Designation   *string    `json:"designation,omitempty"`
	CompanyEmail  *string    `json:"company_email,omitempty" validate:"omitempty,email"`
	PersonalEmail *string    `json:"personal_email,omitempty" validate:"omitempty,email"`
	DepartmentID  uuid.UUID  `json:"department_id" validate:"required"`
	SuperiorID    *uuid.UUID `json:"superior_id,omitempty"`
	HODID         *uuid.UUID `json:"hod_id,omitempty"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
}

// CreateDepartmentRequest represents the request to register a department
type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}
