package handler

import (
	"net/http"

	"nudge/internal/delivery/api/response"
	"nudge/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DeliveryLogHandler serves the delivery history
type DeliveryLogHandler struct {
	deliveryLogUC usecase.DeliveryLogUsecase
}

// NewDeliveryLogHandler is the constructor for DeliveryLogHandler
func NewDeliveryLogHandler(deliveryLogUC usecase.DeliveryLogUsecase) *DeliveryLogHandler {
	return &DeliveryLogHandler{deliveryLogUC: deliveryLogUC}
}

// ListDeliveryLog returns every delivery entry in insertion order
func (h *DeliveryLogHandler) ListDeliveryLog(c echo.Context) error {
	entries, err := h.deliveryLogUC.ListDeliveryLog(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, entries)
}
