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
	actionUsecase "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/action"
)

// Action handles action item HTTP requests
type Action struct {
	actionService *actionUsecase.Service
	logger        *zap.Logger
}

// NewActionHandler creates a new action item handler
func NewActionHandler(actionService *actionUsecase.Service, logger *zap.Logger) *Action {
	return &Action{
		actionService: actionService,
		logger:        logger,
	}
}

// CreateItem handles POST /api/actions/mom/:momPointId
func (h *Action) CreateItem(c echo.Context) error {
	momPointID, err := uuid.Parse(c.Param("momPointId"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid mom point id"))
	}

	var req momDTO.CreateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation(err.Error()))
	}

	item, err := h.actionService.CreateItem(c.Request().Context(), actionUsecase.CreateItemInput{
		MomPointID:  momPointID,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusCreated, presenter.ToActionItemResponse(item))
}

// ItemsByMomPoint handles GET /api/actions/mom/:momPointId
func (h *Action) ItemsByMomPoint(c echo.Context) error {
	momPointID, err := uuid.Parse(c.Param("momPointId"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid mom point id"))
	}

	items, err := h.actionService.ItemsByMomPoint(c.Request().Context(), momPointID)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToActionItemListResponse(items))
}

// GetItem handles GET /api/actions/:id
func (h *Action) GetItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid action item id"))
	}

	item, err := h.actionService.GetItem(c.Request().Context(), id)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToActionItemResponse(item))
}

// UpdateStatus handles PUT /api/actions/:id/status
func (h *Action) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid action item id"))
	}

	var req momDTO.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation(err.Error()))
	}

	item, err := h.actionService.UpdateStatus(c.Request().Context(), id, entities.TaskStatus(req.Status))
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToActionItemResponse(item))
}

// UpdateItem handles PUT /api/actions/:id
func (h *Action) UpdateItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid action item id"))
	}

	var req momDTO.UpdateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid request body"))
	}

	input := actionUsecase.UpdateItemInput{
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		status := entities.TaskStatus(*req.Status)
		input.Status = &status
	}

	item, err := h.actionService.UpdateItem(c.Request().Context(), id, input)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToActionItemResponse(item))
}

// DeleteItem handles DELETE /api/actions/:id
func (h *Action) DeleteItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid action item id"))
	}

	if err := h.actionService.DeleteItem(c.Request().Context(), id); err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, map[string]string{"id": id.String()})
}
