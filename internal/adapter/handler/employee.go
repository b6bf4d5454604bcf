package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kamplisrinivas/mom-meeting-system/errors"
	employeeDTO "github.com/kamplisrinivas/mom-meeting-system/internal/adapter/dto/employee"
	"github.com/kamplisrinivas/mom-meeting-system/internal/adapter/presenter"
	employeeUsecase "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/employee"
)

// Employee handles employee directory HTTP requests
type Employee struct {
	employeeService *employeeUsecase.Service
	logger          *zap.Logger
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *employeeUsecase.Service, logger *zap.Logger) *Employee {
	return &Employee{
		employeeService: employeeService,
		logger:          logger,
	}
}

// ListEmployees handles GET /api/employees
func (h *Employee) ListEmployees(c echo.Context) error {
	employees, err := h.employeeService.ListEmployees(c.Request().Context())
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToEmployeeListResponse(employees))
}

// CreateEmployee handles POST /api/employees
func (h *Employee) CreateEmployee(c echo.Context) error {
	var req employeeDTO.CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation(err.Error()))
	}

	employee, err := h.employeeService.CreateEmployee(c.Request().Context(), employeeUsecase.CreateEmployeeInput{
		Code:          req.Code,
		Name:          req.Name,
		Designation:   req.Designation,
		CompanyEmail:  req.CompanyEmail,
		PersonalEmail: req.PersonalEmail,
		DepartmentID:  req.DepartmentID,
		SuperiorID:    req.SuperiorID,
		HODID:         req.HODID,
		UserID:        req.UserID,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusCreated, presenter.ToEmployeeResponse(employee))
}

// GetEmployee handles GET /api/employees/:id
func (h *Employee) GetEmployee(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid employee id"))
	}

	employee, err := h.employeeService.GetEmployee(c.Request().Context(), id)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToEmployeeResponse(employee))
}

// ListDepartments handles GET /api/departments
func (h *Employee) ListDepartments(c echo.Context) error {
	departments, err := h.employeeService.ListDepartments(c.Request().Context())
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToDepartmentListResponse(departments))
}

// CreateDepartment handles POST /api/departments
func (h *Employee) CreateDepartment(c echo.Context) error {
	var req employeeDTO.CreateDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation(err.Error()))
	}

	department, err := h.employeeService.CreateDepartment(c.Request().Context(), req.Name)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusCreated, presenter.ToDepartmentResponse(department))
}
