package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/kamplisrinivas/mom-meeting-system/pkg/validator"

	"github.com/kamplisrinivas/mom-meeting-system/internal/adapter/handler"
	"github.com/kamplisrinivas/mom-meeting-system/internal/adapter/repository"
	"github.com/kamplisrinivas/mom-meeting-system/internal/infrastructure/database"
	httpmw "github.com/kamplisrinivas/mom-meeting-system/internal/infrastructure/http/middleware"
	"github.com/kamplisrinivas/mom-meeting-system/internal/infrastructure/mail"
	actionUsecase "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/action"
	"github.com/kamplisrinivas/mom-meeting-system/internal/usecase/auth"
	dashboardUsecase "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/dashboard"
	employeeUsecase "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/employee"
	meetingUsecase "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/meeting"
	momUsecase "github.com/kamplisrinivas/mom-meeting-system/internal/usecase/mom"
	"github.com/kamplisrinivas/mom-meeting-system/internal/usecase/notify"
	"github.com/kamplisrinivas/mom-meeting-system/pkg/config"
	"github.com/kamplisrinivas/mom-meeting-system/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping automatic migrations; use cmd/migrate for schema changes")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	pointRepo := repository.NewMomPointRepository(db)
	actionRepo := repository.NewActionItemRepository(db)

	// Initialize JWT manager
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize mail transport and notification dispatcher
	smtpSender := mail.NewSMTPSender(&cfg.SMTP, logger)
	dispatcher := notify.NewDispatcher(employeeRepo, smtpSender, logger)

	// Initialize services
	log.Println("✨ Initializing services...")
	strictPolicy := cfg.MOM.StatusPolicy == config.StatusPolicyStrict
	authService := auth.NewService(userRepo, jwtManager)
	meetingService := meetingUsecase.NewService(meetingRepo, dispatcher)
	momService := momUsecase.NewService(pointRepo, meetingRepo, employeeRepo, dispatcher, strictPolicy)
	actionService := actionUsecase.NewService(actionRepo, pointRepo, employeeRepo, strictPolicy)
	employeeService := employeeUsecase.NewService(employeeRepo, departmentRepo)
	dashboardService := dashboardUsecase.NewService(meetingRepo, pointRepo, actionRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.JWT.Expiry, logger)
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)
	momHandler := handler.NewMomHandler(momService, logger)
	actionHandler := handler.NewActionHandler(actionService, logger)
	employeeHandler := handler.NewEmployeeHandler(employeeService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authEchoMW := httpmw.EchoAuth(authService)
	router := handler.NewRouter(cfg, authHandler, meetingHandler, momHandler, actionHandler, employeeHandler, dashboardHandler, authEchoMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
