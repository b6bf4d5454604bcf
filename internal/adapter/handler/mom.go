package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kamplisrinivas/mom-meeting-system/errors"
	momDTO "github.com/kamplisrinivas/mom-meeting-system/internal/adapter/dto/mom"
	"github.com/kamplisrinivas/mom-meeting-system/internal/adapter/presenter"
	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	momUsecase "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/mom"
)

// Mom handles MOM point HTTP requests
type Mom struct {
	momService *momUsecase.Service
	logger     *zap.Logger
}

// NewMomHandler creates a new MOM point handler
func NewMomHandler(momService *momUsecase.Service, logger *zap.Logger) *Mom {
	return &Mom{
		momService: momService,
		logger:     logger,
	}
}

// CreatePoint handles POST /api/mom
func (h *Mom) CreatePoint(c echo.Context) error {
	var req momDTO.CreatePointRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation(err.Error()))
	}

	point, err := h.momService.CreatePoint(c.Request().Context(), momUsecase.CreatePointInput{
		MeetingID:   req.MeetingID,
		Topic:       req.Topic,
		Discussion:  req.Discussion,
		Decision:    req.Decision,
		DueDate:     req.DueDate,
		AssigneeIDs: req.AssignedTo,
		Status:      entities.TaskStatus(req.Status),
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return handleSuccess(c, h.logger, http.StatusCreated, presenter.ToPointResponse(point))
}

// PointsByMeeting handles GET /api/mom/meeting/:meetingId
func (h *Mom) PointsByMeeting(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("meetingId"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid meeting id"))
	}

	points, err := h.momService.PointsByMeeting(c.Request().Context(), meetingID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToPointListResponse(points))
}

// GetPoint handles GET /api/mom/:id
func (h *Mom) GetPoint(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid mom point id"))
	}

	point, err := h.momService.GetPoint(c.Request().Context(), id)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToPointResponse(point))
}

// MyTasks handles GET /api/mom/my-tasks
func (h *Mom) MyTasks(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	points, err := h.momService.MyTasks(c.Request().Context(), userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToPointListResponse(points))
}

// UpdatePoint handles PUT /api/mom/:id
func (h *Mom) UpdatePoint(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid mom point id"))
	}

	var req momDTO.UpdatePointRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation(err.Error()))
	}

	input := momUsecase.UpdatePointInput{
		Topic:      req.Topic,
		Discussion: req.Discussion,
		Decision:   req.Decision,
		DueDate:    req.DueDate,
	}
	if req.AssignedTo != nil {
		input.AssigneeIDs = req.AssignedTo
	}
	if req.Status != nil {
		status := entities.TaskStatus(*req.Status)
		input.Status = &status
	}

	point, err := h.momService.UpdatePoint(c.Request().Context(), id, input)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToPointResponse(point))
}

// UpdateStatus handles PUT /api/mom/:id/status
func (h *Mom) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid mom point id"))
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req momDTO.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation(err.Error()))
	}

	point, err := h.momService.UpdateStatus(c.Request().Context(), id, userID, entities.TaskStatus(req.Status))
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToPointResponse(point))
}

// DeletePoint handles DELETE /api/mom/:id
func (h *Mom) DeletePoint(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid mom point id"))
	}

	if err := h.momService.DeletePoint(c.Request().Context(), id); err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, map[string]string{"id": id.String()})
}
