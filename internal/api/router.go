package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusworks/placement-portal/internal/api/handler"
	"github.com/campusworks/placement-portal/internal/api/middleware"
	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
	"github.com/campusworks/placement-portal/pkg/logger"

	_ "github.com/campusworks/placement-portal/docs"
)

// Services bundles the service instances the router exposes.
type Services struct {
	Sessions     ports.SessionService
	Navigation   ports.NavigationService
	Jobs         ports.JobService
	Applications ports.ApplicationService
	Reports      ports.ReportService
	Directory    ports.DirectoryRepository
	Activity     handler.ActivityDispatcher
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, svcs Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("placement"))

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(svcs.Sessions, svcs.Navigation, svcs.Activity)
	navigationHandler := handler.NewNavigationHandler(svcs.Navigation, svcs.Activity)
	jobHandler := handler.NewJobHandler(svcs.Jobs)
	applicationHandler := handler.NewApplicationHandler(svcs.Applications)
	reportHandler := handler.NewReportHandler(svcs.Reports)
	directoryHandler := handler.NewDirectoryHandler(svcs.Directory)

	auth := middleware.Auth(jwtSecret)

	// --- Session routes (no token required) ---
	v1 := e.Group("/v1")
	v1.POST("/auth/login", sessionHandler.Login)
	v1.POST("/auth/signup", sessionHandler.Signup)
	v1.POST("/auth/logout", sessionHandler.Logout)
	v1.POST("/auth/clear-error", sessionHandler.ClearError)
	v1.GET("/auth/session", sessionHandler.Session)

	// --- Navigation routes ---
	nav := v1.Group("/navigation", auth)
	nav.GET("", navigationHandler.State)
	nav.POST("/navigate", navigationHandler.Navigate)
	nav.POST("/back", navigationHandler.Back)

	// --- Job routes ---
	jobs := v1.Group("/jobs", auth)
	jobs.GET("", jobHandler.List)
	jobs.GET("/:id", jobHandler.Get)
	jobs.POST("", jobHandler.Create, middleware.RBAC(domain.RoleEmployer, domain.RoleAdmin))

	// --- Application routes ---
	apps := v1.Group("/applications", auth)
	apps.POST("", applicationHandler.Apply, middleware.RBAC(domain.RoleStudent))
	apps.GET("", applicationHandler.List)
	apps.PATCH("/:id/status", applicationHandler.UpdateStatus,
		middleware.RBAC(domain.RolePlacementOfficer, domain.RoleAdmin))

	// --- Report and directory routes ---
	reports := v1.Group("/reports", auth, middleware.RBAC(domain.RolePlacementOfficer, domain.RoleAdmin))
	reports.GET("/stats", reportHandler.Stats)
	reports.GET("/placements", reportHandler.Placements)

	v1.GET("/directory/users", directoryHandler.List, auth, middleware.RBAC(domain.RoleAdmin))

	// --- Observability and docs (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
