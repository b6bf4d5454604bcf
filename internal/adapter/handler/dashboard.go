package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kamplisrinivas/mom-meeting-system/internal/adapter/presenter"
	dashboardUsecase "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/dashboard"
)

// Dashboard handles dashboard HTTP requests
type Dashboard struct {
	dashboardService *dashboardUsecase.Service
	logger           *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *dashboardUsecase.Service, logger *zap.Logger) *Dashboard {
	return &Dashboard{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Summary handles GET /api/dashboard/summary
func (h *Dashboard) Summary(c echo.Context) error {
	summary, err := h.dashboardService.GetSummary(c.Request().Context())
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, summary)
}

// TodaysMeetings handles GET /api/dashboard/today
func (h *Dashboard) TodaysMeetings(c echo.Context) error {
	meetings, err := h.dashboardService.TodaysMeetings(c.Request().Context())
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToMeetingListResponse(meetings))
}

// PendingActions handles GET /api/dashboard/actions/pending
func (h *Dashboard) PendingActions(c echo.Context) error {
	items, err := h.dashboardService.PendingActions(c.Request().Context())
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return handleSuccess(c, h.logger, http.StatusOK, presenter.ToActionItemListResponse(items))
}
