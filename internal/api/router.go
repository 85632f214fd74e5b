package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"

	_ "github.com/corporation/identity-api/docs"
	"github.com/corporation/identity-api/internal/api/handler"
	"github.com/corporation/identity-api/internal/api/middleware"
	"github.com/corporation/identity-api/internal/core/domain"
	"github.com/corporation/identity-api/internal/core/ports"
)

// RouterConfig carries the constructed services the routes depend on.
// Everything is injected; the router owns no client handles itself.
type RouterConfig struct {
	Log      zerolog.Logger
	Codec    ports.TokenCodec
	Auth     ports.AuthService
	Resolver ports.RoleResolver
	Users    ports.UserService
	Journal  handler.JournalStore
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("identity"))
	e.Use(middleware.Auth(cfg.Codec))

	// --- Introspection (exempt from auth) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/docs/*", echoswagger.WrapHandler)
	e.GET("/openapi.json", func(c echo.Context) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return err
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
	})

	healthHandler := handler.NewHealthHandler()
	e.GET("/health_check", healthHandler.Check)

	// --- Token routes ---
	authHandler := handler.NewAuthHandler(cfg.Auth)
	token := e.Group("/token")
	token.POST("/pair", authHandler.TokenPair)
	token.POST("/refresh", authHandler.Refresh)

	// --- User management ---
	adminOnly := middleware.RequireRole(cfg.Resolver, domain.RoleAdmin)

	userHandler := handler.NewUserHandler(cfg.Users)
	users := e.Group("/users")
	users.POST("", userHandler.Create, adminOnly)
	users.GET("", userHandler.List) // any authenticated user
	users.GET("/:id", userHandler.Get, adminOnly)
	users.PATCH("/:id", userHandler.Patch, adminOnly)
	users.PUT("/:id", userHandler.Put, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Journal ---
	journalHandler := handler.NewJournalHandler(cfg.Journal)
	journal := e.Group("/journal")
	journal.POST("/write", journalHandler.Write, adminOnly)
	journal.GET("/read", journalHandler.Read,
		middleware.RequireRole(cfg.Resolver, domain.RoleAdmin, domain.RoleDeveloper))

	return e
}
