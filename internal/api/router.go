package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orgsuite/admin-console/internal/api/handler"
	"github.com/orgsuite/admin-console/internal/api/middleware"
	"github.com/orgsuite/admin-console/internal/core/domain"
	"github.com/orgsuite/admin-console/internal/core/ports"
)

// Deps carries everything the router needs, wired by the composition root.
type Deps struct {
	JWTSecret string

	Auth          ports.AuthService
	Users         ports.UserService
	Organizations ports.OrganizationService
	Orders        ports.OrderService

	// Mongo and Redis may be nil when a tier is disabled; the readiness
	// probe simply omits them.
	Mongo *mongo.Database
	Redis *redis.Client
	Ready <-chan struct{}

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	orgHandler := handler.NewOrganizationHandler(d.Organizations)
	orderHandler := handler.NewOrderHandler(d.Orders)

	authMW := middleware.Auth(d.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMW)

	// --- Users: org_user may still read/update their own record, so the
	// route is open to all roles and the service scopes the rest. ---
	users := e.Group("/v1/users", authMW)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.POST("", userHandler.Create, middleware.RBAC(domain.RoleSuperAdmin, domain.RoleOrgAdmin))
	users.DELETE("/:id", userHandler.Delete, middleware.RBAC(domain.RoleSuperAdmin, domain.RoleOrgAdmin))

	// --- Organizations: super_admin only. ---
	orgs := e.Group("/v1/organizations", authMW, middleware.RBAC(domain.RoleSuperAdmin))
	orgs.GET("", orgHandler.List)
	orgs.GET("/:id", orgHandler.Get)
	orgs.POST("", orgHandler.Create)
	orgs.PUT("/:id", orgHandler.Update)
	orgs.DELETE("/:id", orgHandler.Delete)

	// --- Orders: all roles, service applies visibility and pinning. ---
	orders := e.Group("/v1/orders", authMW)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("", orderHandler.Create)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Mongo, d.Redis, d.Ready)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the store bootstrapped?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
