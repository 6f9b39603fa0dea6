package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/glamslot/booking/docs"
	"github.com/glamslot/booking/internal/api/handler"
	"github.com/glamslot/booking/internal/api/middleware"
	"github.com/glamslot/booking/internal/core/domain"
	"github.com/glamslot/booking/internal/core/ports"
	"github.com/glamslot/booking/internal/core/service"
	"github.com/glamslot/booking/internal/infrastructure/http/handlers"
	"github.com/glamslot/booking/internal/pkg/config"
)

// ViewPrefix is where the guarded client views are mounted.
const ViewPrefix = "/app"

// Dependencies are the adapters selected by configuration.
type Dependencies struct {
	Sessions       *service.SessionRegistry
	Provider       ports.IdentityProvider
	Notifier       ports.Notifier
	PaymentMethods ports.PaymentMethodService
	Favorites      ports.FavoriteService
	Readiness      map[string]handlers.Pinger

	// Registerer and Gatherer back the HTTP metrics; nil means the default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, deps Dependencies, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "booking",
		Registerer: deps.Registerer,
	}))

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Device session ---
	device := middleware.Device(cfg.Device.Secret, cfg.Device.TTL, cfg.SecureDeviceCookie())
	session := middleware.Session(middleware.SessionProviderFunc(func(deviceID string) ports.SessionStore {
		return deps.Sessions.For(deviceID)
	}))

	newIdentityService := func(store ports.SessionStore, n ports.Notifier) ports.IdentityService {
		return service.NewIdentityService(store, deps.Provider, n, log)
	}
	authHandler := handler.NewAuthHandler(newIdentityService, deps.Notifier)
	viewHandler := handler.NewViewHandler(ViewPrefix)
	paymentHandler := handler.NewPaymentMethodHandler(deps.PaymentMethods, deps.Notifier)
	favoriteHandler := handler.NewFavoriteHandler(deps.Favorites, deps.Notifier)

	v1 := e.Group("/api/v1", device, session)

	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/demo", authHandler.DemoLogin)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me)

	v1.GET("/guard", viewHandler.Guard)
	v1.GET("/navigation", viewHandler.Navigation, middleware.RequireIdentity())

	me := v1.Group("/me", middleware.RequireIdentity())
	me.GET("/payment-methods", paymentHandler.List)
	me.POST("/payment-methods", paymentHandler.Add)
	me.DELETE("/payment-methods/:id", paymentHandler.Remove)
	me.POST("/payment-methods/:id/default", paymentHandler.SetDefault)
	me.POST("/payment-methods/:id/toggle", paymentHandler.ToggleActive)
	me.GET("/favorites", favoriteHandler.List)
	me.POST("/favorites", favoriteHandler.Add)
	me.POST("/favorites/toggle", favoriteHandler.Toggle)
	me.DELETE("/favorites/:id", favoriteHandler.Remove)

	// --- Guarded views ---
	views := e.Group(ViewPrefix, device, session, middleware.Guard(ViewPrefix))
	views.GET("", viewHandler.Show)
	views.GET("/*", viewHandler.Show)
	if cfg.EnforceSalonRole {
		salon := views.Group("/salon", middleware.RBAC(domain.RoleSalon))
		salon.GET("", viewHandler.Show)
		salon.GET("/*", viewHandler.Show)
	}

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("device_id", middleware.DeviceIDFrom(c)).
				Msg("request")
			return nil
		},
	})
}
