// Package router registers the API endpoints.
package router

import (
	"nudge/internal/delivery/api/router/handler"
	"nudge/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler     *handler.ProfileHandler
	NudgeHandler       *handler.NudgeHandler
	DeliveryLogHandler *handler.DeliveryLogHandler
	MatchingHandler    *handler.MatchingHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler     *handler.ProfileHandler
	nudgeHandler       *handler.NudgeHandler
	deliveryLogHandler *handler.DeliveryLogHandler
	matchingHandler    *handler.MatchingHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:     params.ProfileHandler,
		nudgeHandler:       params.NudgeHandler,
		deliveryLogHandler: params.DeliveryLogHandler,
		matchingHandler:    params.MatchingHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Profiles
	e.POST("/update-location", r.profileHandler.UpdateLocation)
	e.GET("/users", r.profileHandler.ListUsers)

	// Rules
	e.POST("/create-nudge", r.nudgeHandler.CreateNudge)
	e.GET("/nudges", r.nudgeHandler.ListNudges)
	e.GET("/nudges/geojson", r.nudgeHandler.ListNudgeGeofences)

	// Matching
	e.GET("/delivery-log", r.deliveryLogHandler.ListDeliveryLog)
	e.POST("/run-nudge-engine", r.matchingHandler.RunNudgeEngine)
}
