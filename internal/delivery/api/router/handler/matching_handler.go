package handler

import (
	"log/slog"
	"net/http"

	"nudge/internal/delivery/api/response"
	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/errors"
	"nudge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MatchingHandlerParams holds dependencies for MatchingHandler, injected by Fx.
type MatchingHandlerParams struct {
	fx.In

	MatchingUC usecase.MatchingUsecase
	Logger     *slog.Logger
}

// MatchingHandler triggers matching passes
type MatchingHandler struct {
	matchingUC usecase.MatchingUsecase
	logger     *slog.Logger
}

// NewMatchingHandler is the constructor for MatchingHandler
func NewMatchingHandler(params MatchingHandlerParams) *MatchingHandler {
	return &MatchingHandler{
		matchingUC: params.MatchingUC,
		logger:     params.Logger,
	}
}

// RunNudgeEngineResponse lists the intents of a pass and the pairs that could not be evaluated.
// A pass cut short by its deadline also carries the timeout error and request meta.
type RunNudgeEngineResponse struct {
	NudgesToSend []entity.DeliveryIntent `json:"nudges_to_send"`
	Errors       []entity.PairFailure    `json:"errors,omitempty"`
	Error        *response.ErrorInfo     `json:"error,omitempty"`
	Meta         *response.MetaInfo      `json:"meta,omitempty"`
}

// RunNudgeEngine runs one matching pass over all stored users and rules
func (h *MatchingHandler) RunNudgeEngine(c echo.Context) error {
	ctx := deliverycontext.WithPassTrigger(c.Request().Context(), deliverycontext.TriggerManual)

	result, err := h.matchingUC.RunMatchingPass(ctx)
	if err != nil {
		if result != nil && isPassTimeout(err) {
			return h.partialResult(c, result, err)
		}

		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, RunNudgeEngineResponse{
		NudgesToSend: result.Intents,
		Errors:       result.Failures,
	})
}

// partialResult answers a timed-out pass with the intents it already recorded.
// Those pairs are already recorded in the delivery history.
func (h *MatchingHandler) partialResult(c echo.Context, result *entity.MatchResult, err error) error {
	var appErr domainerrors.AppError
	errors.As(err, &appErr)

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Returning partial matching result",
		slog.Int("intents", len(result.Intents)),
		slog.Any("error", err),
	)

	return c.JSON(appErr.HTTPCode(), RunNudgeEngineResponse{
		NudgesToSend: result.Intents,
		Errors:       result.Failures,
		Error: &response.ErrorInfo{
			Code:    appErr.ErrorCode(),
			Message: appErr.Message(),
		},
		Meta: &response.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

func isPassTimeout(err error) bool {
	var appErr domainerrors.AppError

	return errors.As(err, &appErr) && appErr.ErrorCode() == domainerrors.ErrMatchingPassTimeout.ErrorCode()
}
