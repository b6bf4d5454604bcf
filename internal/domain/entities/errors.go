package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidPassword = errors.New("invalid password")

	// Employee errors
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrDepartmentNotFound = errors.New("department not found")

	// Meeting errors
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrInvalidMeetingType = errors.New("invalid meeting type")

	// MOM point errors
	ErrMomPointNotFound = errors.New("mom point not found")
	ErrInvalidStatus    = errors.New("invalid status")

	// Action item errors
	ErrActionItemNotFound = errors.New("action item not found")

	// Generic errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidRequest = errors.New("invalid request")
)
