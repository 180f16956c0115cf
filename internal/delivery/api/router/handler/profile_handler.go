package handler

import (
	"log/slog"
	"net/http"

	"nudge/internal/delivery/api/response"
	"nudge/internal/delivery/api/validator"
	"nudge/internal/domain/entity"
	"nudge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves user profile endpoints
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateLocationResponse acknowledges a profile upsert
type UpdateLocationResponse struct {
	Status   string           `json:"status"`
	UserID   string           `json:"userId"`
	Location *entity.Location `json:"location"`
}

// UpdateLocation upserts the caller's profile, replacing any previous one with the same user ID
func (h *ProfileHandler) UpdateLocation(c echo.Context) error {
	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	profile, err := h.profileUC.UpsertUserProfile(c.Request().Context(), req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, UpdateLocationResponse{
		Status:   "Location received",
		UserID:   profile.UserID,
		Location: profile.LastLocation,
	})
}

// ListUsers returns every stored profile
func (h *ProfileHandler) ListUsers(c echo.Context) error {
	profiles, err := h.profileUC.ListUserProfiles(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, profiles)
}
