// Package router wires HTTP routes to their handlers.
package router

import (
	"reminders/config"
	"reminders/internal/delivery/api/middleware"
	"reminders/internal/delivery/api/router/handler"
	"reminders/internal/delivery/api/ws"
	"reminders/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	ReminderHandler *handler.ReminderHandler
	LocationHandler *handler.LocationHandler
	DeviceHandler   *handler.DeviceHandler
	WSHandler       *ws.Handler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

type router struct {
	healthHandler   *handler.HealthHandler
	authHandler     *handler.AuthHandler
	reminderHandler *handler.ReminderHandler
	locationHandler *handler.LocationHandler
	deviceHandler   *handler.DeviceHandler
	wsHandler       *ws.Handler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		authHandler:     params.AuthHandler,
		reminderHandler: params.ReminderHandler,
		locationHandler: params.LocationHandler,
		deviceHandler:   params.DeviceHandler,
		wsHandler:       params.WSHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up every API route.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, metrics.Handler())
	}

	// Public: reports whether the caller's token is still good.
	e.GET("/auth/state", r.authHandler.AuthenticationState)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	remindersGroup := apiV1.Group("/reminders")
	{
		remindersGroup.GET("", r.reminderHandler.ListReminders)
		remindersGroup.POST("", r.reminderHandler.SaveReminder)
		remindersGroup.DELETE("", r.reminderHandler.DeleteAllReminders)
		remindersGroup.GET("/:id", r.reminderHandler.GetReminder)
		remindersGroup.GET("/:id/qr", r.reminderHandler.ReminderQR)
	}

	locationsGroup := apiV1.Group("/locations")
	{
		locationsGroup.POST("/report", r.locationHandler.ReportLocation)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	apiV1.GET("/ws", r.wsHandler.Connect)
}
