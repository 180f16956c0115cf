package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nudge/config"
	"nudge/internal/domain/service"
	mockService "nudge/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(t *testing.T) (*PushHandler, *mockService.MockNotificationService) {
	t.Helper()

	notificationSvc := mockService.NewMockNotificationService(t)
	h := NewPushHandler(PushHandlerParams{
		Config:          &config.Config{},
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notificationSvc,
	})

	return h, notificationSvc
}

func pushBody(t *testing.T, event *service.DispatchEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.EventID
	msg.Message.Attributes = map[string]string{"event_id": event.EventID, "request_id": "req-attr"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func testEvent() *service.DispatchEvent {
	return &service.DispatchEvent{
		RequestID:     "req-event",
		EventID:       "evt-1",
		PassTimestamp: 1773489600,
		Items: []service.DispatchItem{
			{UserID: "u1", NudgeID: "n1", Title: "Coffee", Message: "Nearby", NotificationToken: "tok-1"},
			{UserID: "u1", NudgeID: "n2", Title: "Books", Message: "Sale", NotificationToken: "tok-1"},
			{UserID: "u2", NudgeID: "n1", Title: "Coffee", Message: "Nearby", NotificationToken: "tok-2"},
		},
	}
}

func TestHandlePush_SendsOneBatchPerNudge(t *testing.T) {
	h, notificationSvc := newTestHandler(t)

	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"tok-1", "tok-2"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Title == "Coffee" && msg.Body == "Nearby" &&
				msg.Data["nudge_id"] == "n1" && msg.Data["event_id"] == "evt-1" &&
				msg.Data["pass_timestamp"] == "1773489600"
		})).
		Return(&service.BatchResult{SuccessCount: 2}, nil).Once()
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"tok-1"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Title == "Books" && msg.Data["nudge_id"] == "n2"
		})).
		Return(&service.BatchResult{SuccessCount: 1}, nil).Once()

	c, rec := newPushContext(pushBody(t, testEvent()))
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_SplitsLargeGroups(t *testing.T) {
	h, notificationSvc := newTestHandler(t)

	event := &service.DispatchEvent{EventID: "evt-big"}
	for i := range service.MaxBatchTokens + 1 {
		event.Items = append(event.Items, service.DispatchItem{
			UserID:            fmt.Sprintf("u%d", i),
			NudgeID:           "n1",
			Title:             "Coffee",
			Message:           "Nearby",
			NotificationToken: fmt.Sprintf("tok-%d", i),
		})
	}

	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == service.MaxBatchTokens }), mock.Anything).
		Return(&service.BatchResult{SuccessCount: service.MaxBatchTokens}, nil).Once()
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{fmt.Sprintf("tok-%d", service.MaxBatchTokens)}, mock.Anything).
		Return(&service.BatchResult{SuccessCount: 1}, nil).Once()

	c, rec := newPushContext(pushBody(t, event))
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_AllBatchesFailIsRetryable(t *testing.T) {
	h, notificationSvc := newTestHandler(t)

	notificationSvc.EXPECT().SendBatchNotification(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError).Twice()

	c, rec := newPushContext(pushBody(t, testEvent()))
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_PartialFailureIsAcknowledged(t *testing.T) {
	h, notificationSvc := newTestHandler(t)

	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"tok-1", "tok-2"}, mock.Anything).
		Return(&service.BatchResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"tok-2"}}, nil).Once()
	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"tok-1"}, mock.Anything).
		Return(nil, assert.AnError).Once()

	c, rec := newPushContext(pushBody(t, testEvent()))
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_NoTokens(t *testing.T) {
	h, _ := newTestHandler(t)

	event := &service.DispatchEvent{
		EventID: "evt-empty",
		Items:   []service.DispatchItem{{UserID: "u1", NudgeID: "n1"}},
	}

	c, rec := newPushContext(pushBody(t, event))
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed envelope", body: `{"message":`},
		{name: "invalid base64", body: `{"message":{"data":"%%%"}}`},
		{name: "invalid event", body: fmt.Sprintf(`{"message":{"data":%q}}`, base64.StdEncoding.EncodeToString([]byte("not json")))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			c, rec := newPushContext(tt.body)
			require.NoError(t, h.HandlePush(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestExtractRequestID(t *testing.T) {
	h, _ := newTestHandler(t)
	event := testEvent()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "req-attr"}
	assert.Equal(t, "req-attr", h.extractRequestID(context.Background(), &msg, event))

	assert.Equal(t, "req-event", h.extractRequestID(context.Background(), &PubSubMessage{}, event))

	event.RequestID = ""
	assert.NotEmpty(t, h.extractRequestID(context.Background(), &PubSubMessage{}, event))
}

func TestVerifyPubSubToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		payload *idtoken.Payload
		err     error
		wantErr string
	}{
		{name: "missing header", wantErr: "missing authorization header"},
		{name: "wrong scheme", header: "Basic abc", wantErr: "invalid authorization header format"},
		{name: "validation failure", header: "Bearer abc", err: assert.AnError, wantErr: "failed to validate token"},
		{
			name:    "wrong issuer",
			header:  "Bearer abc",
			payload: &idtoken.Payload{Issuer: "evil.example.com"},
			wantErr: "invalid issuer",
		},
		{
			name:    "unverified email",
			header:  "Bearer abc",
			payload: &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantErr: "email not verified",
		},
		{
			name:    "valid",
			header:  "Bearer abc",
			payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			var gotAudience string
			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				gotAudience = audience

				return tt.payload, tt.err
			}

			req := httptest.NewRequest(http.MethodPost, "http://worker.local/push", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			err := h.verifyPubSubToken(req)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "http://worker.local/push", gotAudience)
		})
	}
}

func TestHandlePush_RejectsUnauthenticatedInProduction(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: mockService.NewMockNotificationService(t),
	})

	c, rec := newPushContext(pushBody(t, testEvent()))
	require.NoError(t, h.HandlePush(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
