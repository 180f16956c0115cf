package handler

import (
	"log/slog"
	"net/http"

	"nudge/internal/delivery/api/response"
	"nudge/internal/delivery/api/validator"
	"nudge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NudgeHandlerParams holds dependencies for NudgeHandler, injected by Fx.
type NudgeHandlerParams struct {
	fx.In

	NudgeUC usecase.NudgeUsecase
	Logger  *slog.Logger
}

// NudgeHandler serves nudge rule endpoints
type NudgeHandler struct {
	nudgeUC usecase.NudgeUsecase
	logger  *slog.Logger
}

// NewNudgeHandler is the constructor for NudgeHandler
func NewNudgeHandler(params NudgeHandlerParams) *NudgeHandler {
	return &NudgeHandler{
		nudgeUC: params.NudgeUC,
		logger:  params.Logger,
	}
}

// CreateNudgeResponse acknowledges a created rule
type CreateNudgeResponse struct {
	Status  string `json:"status"`
	NudgeID string `json:"nudgeId"`
}

// CreateNudge stores a new nudge rule
func (h *NudgeHandler) CreateNudge(c echo.Context) error {
	var req CreateNudgeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid nudge rule input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	rule, err := h.nudgeUC.CreateNudgeRule(c.Request().Context(), req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, CreateNudgeResponse{
		Status:  "Nudge created",
		NudgeID: rule.NudgeID,
	})
}

// ListNudges returns every stored rule in creation order
func (h *NudgeHandler) ListNudges(c echo.Context) error {
	rules, err := h.nudgeUC.ListNudgeRules(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, rules)
}

// ListNudgeGeofences returns the rule geofences as a GeoJSON FeatureCollection
func (h *NudgeHandler) ListNudgeGeofences(c echo.Context) error {
	collection, err := h.nudgeUC.NudgeRuleGeofences(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, collection)
}
