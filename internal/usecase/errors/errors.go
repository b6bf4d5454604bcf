package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInternalError = errors.New("internal server error")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrUserNotActive      = errors.New("user is not active")
)

// Meeting errors
var (
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrInvalidMeetingType = errors.New("meeting type must be Online or Offline")
	ErrPlatformRequired   = errors.New("platform is required for Online meeting")
	ErrVenueRequired      = errors.New("venue is required for Offline meeting")
)

// MOM point errors
var (
	ErrMomPointNotFound    = errors.New("mom point not found")
	ErrNoAssignees         = errors.New("at least one assignee is required")
	ErrNotAssignee         = errors.New("caller is not an assignee")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrTransitionForbidden = errors.New("status transition not allowed")
)

// Action item errors
var (
	ErrActionItemNotFound = errors.New("action item not found")
)

// Employee errors
var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrEmployeeCodeRequired = errors.New("employee code is required")
)
