package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kamplisrinivas/mom-meeting-system/errors"
	authDTO "github.com/kamplisrinivas/mom-meeting-system/internal/adapter/dto/auth"
	"github.com/kamplisrinivas/mom-meeting-system/internal/adapter/presenter"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	authUsecase "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *authUsecase.Service
	tokenTTL    time.Duration
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *authUsecase.Service, tokenTTL time.Duration, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

// Login handles POST /api/auth/login
func (h *Auth) Login(c echo.Context) error {
	var req authDTO.LoginRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation("email and password are required"))
	}

	output, err := h.authService.Login(c.Request().Context(), authUsecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}

	response := &authDTO.LoginResponse{
		AccessToken: output.Token,
		ExpiresIn:   int(h.tokenTTL.Seconds()),
		TokenType:   "Bearer",
		User:        presenter.ToUserResponse(output.User),
	}

	return handleSuccess(c, h.logger, http.StatusOK, response)
}

// Me handles GET /api/auth/me
func (h *Auth) Me(c echo.Context) error {
	user, ok := c.Get("user").(*entities.User)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToUserResponse(user))
}
