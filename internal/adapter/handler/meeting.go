package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kamplisrinivas/mom-meeting-system/errors"
	meetingDTO "github.com/kamplisrinivas/mom-meeting-system/internal/adapter/dto/meeting"
	"github.com/kamplisrinivas/mom-meeting-system/internal/adapter/presenter"
	meetingUsecase "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/meeting"
)

// Meeting handles meeting HTTP requests
type Meeting struct {
	meetingService *meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService *meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// CreateMeeting handles POST /api/meetings
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingDTO.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation(err.Error()))
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	meeting, err := h.meetingService.CreateMeeting(c.Request().Context(), meetingUsecase.CreateMeetingInput{
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		Time:         req.Time,
		Type:         req.Type,
		Platform:     req.Platform,
		Venue:        req.Venue,
		DepartmentID: req.DepartmentID,
		CreatedBy:    userID,
		Metadata:     req.Metadata,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return handleSuccess(c, h.logger, http.StatusCreated, presenter.ToMeetingResponse(meeting))
}

// ListMeetings handles GET /api/meetings
func (h *Meeting) ListMeetings(c echo.Context) error {
	meetings, err := h.meetingService.ListMeetings(c.Request().Context())
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToMeetingListResponse(meetings))
}

// GetMeeting handles GET /api/meetings/:id
func (h *Meeting) GetMeeting(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid meeting id"))
	}

	meeting, err := h.meetingService.GetMeeting(c.Request().Context(), id)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToMeetingResponse(meeting))
}

// UpdateMeeting handles PUT /api/meetings/:id
func (h *Meeting) UpdateMeeting(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid meeting id"))
	}

	var req meetingDTO.UpdateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return handleError(c, h.logger, errors.ErrValidation(err.Error()))
	}

	meeting, err := h.meetingService.UpdateMeeting(c.Request().Context(), meetingUsecase.UpdateMeetingInput{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		Time:         req.Time,
		Type:         req.Type,
		Platform:     req.Platform,
		Venue:        req.Venue,
		DepartmentID: req.DepartmentID,
		Metadata:     req.Metadata,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToMeetingResponse(meeting))
}

// DeleteMeeting handles DELETE /api/meetings/:id
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handleError(c, h.logger, errors.ErrValidation("invalid meeting id"))
	}

	if err := h.meetingService.DeleteMeeting(c.Request().Context(), id); err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, map[string]string{"id": id.String()})
}
