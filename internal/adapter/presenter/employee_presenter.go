package presenter

import (
	"github.com/kamplisrinivas/mom-meeting-system/internal/adapter/dto/employee"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
)

// ToEmployeeResponse converts an Employee entity to EmployeeResponse DTO
func ToEmployeeResponse(e *entities.Employee) *employee.EmployeeResponse {
	if e == nil {
		return nil
	}

	response := &employee.EmployeeResponse{
		ID:            e.ID.String(),
		Code:          e.Code,
		Name:          e.Name,
		Designation:   e.Designation,
		CompanyEmail:  e.CompanyEmail,
		PersonalEmail: e.PersonalEmail,
		DepartmentID:  e.DepartmentID.String(),
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
	}

	if e.Department != nil {
		response.Department = &e.Department.Name
	}
	if e.SuperiorID != nil {
		id := e.SuperiorID.String()
		response.SuperiorID = &id
	}
	if e.HODID != nil {
		id := e.HODID.String()
		response.HODID = &id
	}

	return response
}

// ToEmployeeListResponse converts a slice of Employee entities
func ToEmployeeListResponse(employees []*entities.Employee) []*employee.EmployeeResponse {
	responses := make([]*employee.EmployeeResponse, len(employees))
	for i, e := range employees {
		responses[i] = ToEmployeeResponse(e)
	}
	return responses
}

// ToDepartmentResponse converts a Department entity to its DTO
func ToDepartmentResponse(d *entities.Department) *employee.DepartmentResponse {
	if d == nil {
		return nil
	}
	return &employee.DepartmentResponse{
		ID:   d.ID.String(),
		Name: d.Name,
	}
}

// ToDepartmentListResponse converts a slice of Department entities
func ToDepartmentListResponse(departments []*entities.Department) []*employee.DepartmentResponse {
	responses := make([]*employee.DepartmentResponse, len(departments))
	for i, d := range departments {
		responses[i] = ToDepartmentResponse(d)
	}
	return responses
}
