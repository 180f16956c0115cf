package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"nudge/config"
	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/constants"
	"nudge/internal/domain/service"
	"nudge/internal/errors"
	"nudge/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a Google-signed ID token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler delivers the intents of a matching pass received as Pub/Sub push messages
type PushHandler struct {
	verifyPushAuth  bool
	validateToken   tokenValidator
	logger          *slog.Logger
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push requests carry an OIDC token, and local development skips the check
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		validateToken:   idtoken.Validate,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.DispatchEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse dispatch event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing dispatch event",
		slog.String("event_id", event.EventID),
		slog.Int64("pass_timestamp", event.PassTimestamp),
		slog.Int("items", len(event.Items)),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process dispatch event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 makes Pub/Sub redeliver; anything else is acknowledged to avoid endless retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the inbound request
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DispatchEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// pushGroup is the set of tokens that receive the same nudge content.
type pushGroup struct {
	nudgeID string
	message service.PushMessage
	tokens  []string
}

// groupItems groups items sharing a nudge and its content, keeping first-seen order.
// A token appears at most once per group.
func groupItems(event *service.DispatchEvent) []*pushGroup {
	type groupKey struct{ nudgeID, title, message string }

	index := make(map[groupKey]*pushGroup)
	seen := make(map[groupKey]map[string]struct{})
	groups := make([]*pushGroup, 0)

	for _, item := range event.Items {
		if item.NotificationToken == "" {
			continue
		}

		key := groupKey{item.NudgeID, item.Title, item.Message}
		group, ok := index[key]
		if !ok {
			group = &pushGroup{
				nudgeID: item.NudgeID,
				message: service.PushMessage{
					Title: item.Title,
					Body:  item.Message,
					Data: map[string]string{
						"nudge_id":       item.NudgeID,
						"event_id":       event.EventID,
						"pass_timestamp": strconv.FormatInt(event.PassTimestamp, 10),
					},
				},
			}
			index[key] = group
			seen[key] = make(map[string]struct{})
			groups = append(groups, group)
		}

		if _, dup := seen[key][item.NotificationToken]; dup {
			continue
		}
		seen[key][item.NotificationToken] = struct{}{}
		group.tokens = append(group.tokens, item.NotificationToken)
	}

	return groups
}

// processEvent sends every group in batches. The event is retried only when no batch went out,
// so a redelivery never duplicates pushes that already succeeded.
func (h *PushHandler) processEvent(ctx context.Context, event *service.DispatchEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	groups := groupItems(event)
	if len(groups) == 0 {
		logger.Info("[Worker] No tokens to notify", slog.String("event_id", event.EventID))

		return nil
	}

	var totalSent, totalFailed, totalInvalid, batches, failedBatches int
	var lastErr error

	for _, group := range groups {
		for idx := 0; idx < len(group.tokens); idx += service.MaxBatchTokens {
			end := min(idx+service.MaxBatchTokens, len(group.tokens))
			batch := group.tokens[idx:end]
			batches++

			result, err := h.notificationSvc.SendBatchNotification(ctx, batch, group.message)
			if err != nil {
				logger.Error("[Worker] Failed to send batch",
					slog.String("nudge_id", group.nudgeID),
					slog.Int("batch_start", idx),
					slog.Int("batch_size", len(batch)),
					slog.Any("error", err),
				)
				failedBatches++
				totalFailed += len(batch)
				lastErr = err
				metrics.RecordPushResults(0, len(batch), 0)

				continue
			}

			totalSent += result.SuccessCount
			totalFailed += result.FailureCount
			totalInvalid += len(result.InvalidTokens)
			metrics.RecordPushResults(result.SuccessCount, result.FailureCount, len(result.InvalidTokens))

			for _, token := range result.InvalidTokens {
				logger.Warn("[Worker] Invalid notification token",
					slog.String("nudge_id", group.nudgeID),
					slog.String("token_prefix", token[:min(10, len(token))]),
				)
			}
		}
	}

	logger.Info("[Worker] Dispatch event completed",
		slog.String("event_id", event.EventID),
		slog.Int("total_sent", totalSent),
		slog.Int("total_failed", totalFailed),
		slog.Int("invalid_tokens", totalInvalid),
	)

	if failedBatches == batches {
		return newRetryableError(errors.Wrap(lastErr, "all batches failed"))
	}

	return nil
}

// verifyPubSubToken verifies the OIDC token Google Pub/Sub attaches to push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
