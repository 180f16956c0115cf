package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "nudge/internal/delivery/api/middleware"
	"nudge/internal/delivery/api/response"
	"nudge/internal/delivery/api/router/handler"
	"nudge/internal/delivery/api/validator"
	"nudge/internal/domain/entity"
	mockUsecase "nudge/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerMocks struct {
	profileUC     *mockUsecase.MockProfileUsecase
	nudgeUC       *mockUsecase.MockNudgeUsecase
	deliveryLogUC *mockUsecase.MockDeliveryLogUsecase
	matchingUC    *mockUsecase.MockMatchingUsecase
}

func newTestEcho(t *testing.T) (*echo.Echo, routerMocks) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mocks := routerMocks{
		profileUC:     mockUsecase.NewMockProfileUsecase(t),
		nudgeUC:       mockUsecase.NewMockNudgeUsecase(t),
		deliveryLogUC: mockUsecase.NewMockDeliveryLogUsecase(t),
		matchingUC:    mockUsecase.NewMockMatchingUsecase(t),
	}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		ProfileHandler:     handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: mocks.profileUC, Logger: logger}),
		NudgeHandler:       handler.NewNudgeHandler(handler.NudgeHandlerParams{NudgeUC: mocks.nudgeUC, Logger: logger}),
		DeliveryLogHandler: handler.NewDeliveryLogHandler(mocks.deliveryLogUC),
		MatchingHandler:    handler.NewMatchingHandler(handler.MatchingHandlerParams{MatchingUC: mocks.matchingUC, Logger: logger}),
	}).RegisterRoutes(e)

	return e, mocks
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_Health(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodGet, "/does-not-exist", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestRouter_RunNudgeEngineRequiresPost(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodGet, "/run-nudge-engine", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_RunNudgeEngine(t *testing.T) {
	e, mocks := newTestEcho(t)

	mocks.matchingUC.EXPECT().RunMatchingPass(mock.Anything).Return(&entity.MatchResult{
		Intents: []entity.DeliveryIntent{},
	}, nil)

	rec := serve(e, http.MethodPost, "/run-nudge-engine", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"nudges_to_send":[]}`, rec.Body.String())
}
