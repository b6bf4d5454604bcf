package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kamplisrinivas/mom-meeting-system/internal/domain/entities"
	"github.com/kamplisrinivas/mom-meeting-system/internal/infrastructure/http/middleware"
	"github.com/kamplisrinivas/mom-meeting-system/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	authHandler      *Auth
	meetingHandler   *Meeting
	momHandler       *Mom
	actionHandler    *Action
	employeeHandler  *Employee
	dashboardHandler *Dashboard
	authMiddleware   echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authHandler *Auth,
	meetingHandler *Meeting,
	momHandler *Mom,
	actionHandler *Action,
	employeeHandler *Employee,
	dashboardHandler *Dashboard,
	authMiddleware echo.MiddlewareFunc,
) *Router {
	return &Router{
		cfg:              cfg,
		authHandler:      authHandler,
		meetingHandler:   meetingHandler,
		momHandler:       momHandler,
		actionHandler:    actionHandler,
		employeeHandler:  employeeHandler,
		dashboardHandler: dashboardHandler,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")

	rt.setupAuthRoutes(api)
	rt.setupMeetingRoutes(api)
	rt.setupMomRoutes(api)
	rt.setupActionRoutes(api)
	rt.setupEmployeeRoutes(api)
	rt.setupDashboardRoutes(api)
}

// setupAuthRoutes configures authentication routes. Login is the only
// route outside the auth middleware.
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.GET("/me", rt.authHandler.Me, rt.authMiddleware)
}

// setupMeetingRoutes configures meeting management routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings", rt.authMiddleware)
	meetingGroup.GET("", rt.meetingHandler.ListMeetings)
	meetingGroup.POST("", rt.meetingHandler.CreateMeeting)
	meetingGroup.GET("/:id", rt.meetingHandler.GetMeeting)
	meetingGroup.PUT("/:id", rt.meetingHandler.UpdateMeeting)
	meetingGroup.DELETE("/:id", rt.meetingHandler.DeleteMeeting)
}

// setupMomRoutes configures MOM point routes
func (rt *Router) setupMomRoutes(g *echo.Group) {
	momGroup := g.Group("/mom", rt.authMiddleware)
	momGroup.POST("", rt.momHandler.CreatePoint)
	momGroup.GET("/my-tasks", rt.momHandler.MyTasks)
	momGroup.GET("/meeting/:meetingId", rt.momHandler.PointsByMeeting)
	momGroup.GET("/:id", rt.momHandler.GetPoint)
	momGroup.PUT("/:id", rt.momHandler.UpdatePoint)
	momGroup.PUT("/:id/status", rt.momHandler.UpdateStatus)
	momGroup.DELETE("/:id", rt.momHandler.DeletePoint)
}

// setupActionRoutes configures action item routes
func (rt *Router) setupActionRoutes(g *echo.Group) {
	actionGroup := g.Group("/actions", rt.authMiddleware)
	actionGroup.POST("/mom/:momPointId", rt.actionHandler.CreateItem)
	actionGroup.GET("/mom/:momPointId", rt.actionHandler.ItemsByMomPoint)
	actionGroup.GET("/:id", rt.actionHandler.GetItem)
	actionGroup.PUT("/:id", rt.actionHandler.UpdateItem)
	actionGroup.PUT("/:id/status", rt.actionHandler.UpdateStatus)
	actionGroup.DELETE("/:id", rt.actionHandler.DeleteItem)
}

// setupEmployeeRoutes configures directory routes. Creating employees
// and departments is restricted to admins and managers.
func (rt *Router) setupEmployeeRoutes(g *echo.Group) {
	manageRoles := middleware.RequireRole(entities.RoleAdmin, entities.RoleManager)

	employeeGroup := g.Group("/employees", rt.authMiddleware)
	employeeGroup.GET("", rt.employeeHandler.ListEmployees)
	employeeGroup.GET("/:id", rt.employeeHandler.GetEmployee)
	employeeGroup.POST("", rt.employeeHandler.CreateEmployee, manageRoles)

	departmentGroup := g.Group("/departments", rt.authMiddleware)
	departmentGroup.GET("", rt.employeeHandler.ListDepartments)
	departmentGroup.POST("", rt.employeeHandler.CreateDepartment, manageRoles)
}

// setupDashboardRoutes configures dashboard routes
func (rt *Router) setupDashboardRoutes(g *echo.Group) {
	dashboardGroup := g.Group("/dashboard", rt.authMiddleware)
	dashboardGroup.GET("/summary", rt.dashboardHandler.Summary)
	dashboardGroup.GET("/today", rt.dashboardHandler.TodaysMeetings)
	dashboardGroup.GET("/actions/pending", rt.dashboardHandler.PendingActions)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
