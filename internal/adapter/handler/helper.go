package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kamplisrinivas/mom-meeting-system/errors"
	usecaseErrors "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/errors"
)

// Response shapes
type successBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errorBody struct {
	Success bool      `json:"success"`
	Error   errorInfo `json:"error"`
}

// errorInfo never carries internal error text; the raw cause stays in
// the server log.
type errorInfo struct {
	Code    string            `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// handleSuccess writes a standardized success response
func handleSuccess(c echo.Context, logger *zap.Logger, status int, data interface{}) error {
	resp := successBody{
		Success: true,
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// handleError centralizes error handling and logging. Service sentinel
// errors are mapped to AppError first; anything unrecognized becomes a
// generic internal error.
func handleError(c echo.Context, logger *zap.Logger, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		)
	}

	body := errorBody{
		Success: false,
		Error: errorInfo{
			Code:    appErr.Code.String(),
			Message: appErr.Message,
			Details: appErr.Details,
		},
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps service-layer sentinel errors onto the HTTP error
// taxonomy.
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrInvalidCredentials):
		return errors.ErrInvalidCredentials()
	case stdErrors.Is(err, usecaseErrors.ErrTokenInvalid),
		stdErrors.Is(err, usecaseErrors.ErrTokenExpired):
		return errors.ErrInvalidToken()
	case stdErrors.Is(err, usecaseErrors.ErrUserNotActive),
		stdErrors.Is(err, usecaseErrors.ErrUnauthorized):
		return errors.ErrUnauthenticated()

	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound()
	case stdErrors.Is(err, usecaseErrors.ErrMomPointNotFound):
		return errors.ErrMomPointNotFound()
	case stdErrors.Is(err, usecaseErrors.ErrActionItemNotFound):
		return errors.ErrActionItemNotFound()
	case stdErrors.Is(err, usecaseErrors.ErrEmployeeNotFound):
		return errors.ErrEmployeeNotFound()
	case stdErrors.Is(err, usecaseErrors.ErrDepartmentNotFound):
		return errors.ErrNotFound("department")
	case stdErrors.Is(err, usecaseErrors.ErrNotFound):
		return errors.ErrNotFound("resource")

	case stdErrors.Is(err, usecaseErrors.ErrNotAssignee):
		return errors.ErrNotAssignee()
	case stdErrors.Is(err, usecaseErrors.ErrForbidden):
		return errors.ErrPermissionDenied("access")

	case stdErrors.Is(err, usecaseErrors.ErrPlatformRequired):
		return errors.ErrMissingField("platform")
	case stdErrors.Is(err, usecaseErrors.ErrVenueRequired):
		return errors.ErrMissingField("venue")
	case stdErrors.Is(err, usecaseErrors.ErrEmployeeCodeRequired):
		return errors.ErrMissingField("code")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidMeetingType),
		stdErrors.Is(err, usecaseErrors.ErrInvalidStatus),
		stdErrors.Is(err, usecaseErrors.ErrNoAssignees),
		stdErrors.Is(err, usecaseErrors.ErrTransitionForbidden),
		stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrValidation(err.Error())

	case stdErrors.Is(err, usecaseErrors.ErrAlreadyExists):
		return errors.ErrAlreadyExists("resource")
	}

	return errors.ErrInternal(err)
}
