package middleware

import (
	"log/slog"
	"unicode"

	deliverycontext "nudge/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client-supplied IDs before they reach logs and dispatch events.
const maxRequestIDLength = 128

// Component names tag every request-scoped log line with the binary that served it.
const (
	ComponentAPI        = "api"
	ComponentPushWorker = "pushworker"
)

// RequestIDMiddleware assigns each request an ID and a logger tagged with it.
// The ID travels with dispatch events, so a push can be traced back to the pass that produced it.
type RequestIDMiddleware struct {
	logger    *slog.Logger
	component string
}

// NewRequestIDMiddleware creates the middleware for the given component.
func NewRequestIDMiddleware(logger *slog.Logger, component string) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger:    logger,
		component: component,
	}
}

// Process reuses a well-formed X-Request-Id header or generates a UUID.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(
			slog.String("request_id", requestID),
			slog.String("component", m.component),
		)

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
