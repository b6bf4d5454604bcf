package employee

import "time"

// EmployeeResponse represents an employee in responses
type EmployeeResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Designation   *string   `json:"designation,omitempty"`
	CompanyEmail  *string   `json:"company_email,omitempty"`
	PersonalEmail *string   `json:"personal_email,omitempty"`
	DepartmentID  string    `json:"department_id"`
	Department    *string   `json:"department,omitempty"`
	SuperiorID    *string   `json:"superior_id,omitempty"`
	HODID         *string   `json:"hod_id,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// DepartmentResponse represents a department in responses
type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
