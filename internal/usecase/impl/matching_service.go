package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nudge/config"
	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/geo"
	"nudge/internal/domain/lifecycle"
	"nudge/internal/domain/repository"
	"nudge/internal/domain/service"
	"nudge/internal/errors"
	"nudge/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// matchingService implements the MatchingUsecase interface.
type matchingService struct {
	profileRepo     repository.UserProfileRepository
	ruleRepo        repository.NudgeRuleRepository
	deliveryLogRepo repository.DeliveryLogRepository
	clock           service.Clock
	publisher       service.EventPublisher
	metrics         service.MatchingMetrics
	logger          *slog.Logger

	dedupWindow time.Duration
	passTimeout time.Duration
	distance    func(a, b orb.Point) float64

	// mu serializes whole passes so the dedup check and the record of a pair cannot interleave
	// with another pass.
	mu sync.Mutex
}

// MatchingServiceParams holds dependencies for MatchingService, injected by Fx.
type MatchingServiceParams struct {
	fx.In

	ProfileRepo     repository.UserProfileRepository
	RuleRepo        repository.NudgeRuleRepository
	DeliveryLogRepo repository.DeliveryLogRepository
	Clock           service.Clock
	Publisher       service.EventPublisher
	Metrics         service.MatchingMetrics
	Config          *config.Config
	Logger          *slog.Logger
}

// NewMatchingService is the constructor for matchingService.
func NewMatchingService(params MatchingServiceParams) usecase.MatchingUsecase {
	dedupWindow := config.DefaultDedupWindow
	passTimeout := time.Duration(0)
	if params.Config != nil && params.Config.Matching != nil {
		if params.Config.Matching.DedupWindow > 0 {
			dedupWindow = params.Config.Matching.DedupWindow
		}
		passTimeout = params.Config.Matching.PassTimeout
	}

	return &matchingService{
		profileRepo:     params.ProfileRepo,
		ruleRepo:        params.RuleRepo,
		deliveryLogRepo: params.DeliveryLogRepo,
		clock:           params.Clock,
		publisher:       params.Publisher,
		metrics:         params.Metrics,
		logger:          params.Logger,
		dedupWindow:     dedupWindow,
		passTimeout:     passTimeout,
		distance:        geo.Distance,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *matchingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RunMatchingPass loads the current users and rules and evaluates them at the clock's current time.
func (srv *matchingService) RunMatchingPass(ctx context.Context) (*entity.MatchResult, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.passTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.passTimeout)
		defer cancel()
	}

	logger := srv.log(ctx).With(slog.String("trigger", deliverycontext.GetPassTrigger(ctx)))
	start := time.Now()

	users, err := srv.profileRepo.ListProfiles(ctx)
	if err != nil {
		srv.observe(service.PassOutcomeError, start, nil)

		return nil, srv.passError(err, "failed to list user profiles")
	}

	rules, err := srv.ruleRepo.ListRules(ctx)
	if err != nil {
		srv.observe(service.PassOutcomeError, start, nil)

		return nil, srv.passError(err, "failed to list nudge rules")
	}

	result, evalErr := srv.Evaluate(ctx, users, rules, srv.clock.Now())

	// Intents recorded before an interruption are already in the history, so they are sent too.
	srv.dispatch(ctx, users, result)

	if evalErr != nil {
		outcome := service.PassOutcomeError
		if errors.Is(evalErr, context.DeadlineExceeded) {
			outcome = service.PassOutcomeTimeout
		}
		srv.observe(outcome, start, result)
		logger.Warn("Matching pass interrupted",
			slog.Int("users", len(users)),
			slog.Int("rules", len(rules)),
			slog.Int("evaluated", result.Evaluated),
			slog.Int("intents", len(result.Intents)),
			slog.Any("error", evalErr),
		)

		return result, srv.passError(evalErr, "matching pass interrupted")
	}

	srv.observe(service.PassOutcomeOK, start, result)
	logger.Info("Matching pass completed",
		slog.Int("users", len(users)),
		slog.Int("rules", len(rules)),
		slog.Int("evaluated", result.Evaluated),
		slog.Int("intents", len(result.Intents)),
		slog.Int("failures", len(result.Failures)),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// Evaluate applies the filter chain to every (user, rule) pair in caller order.
// A pair passes when the user is within the rule's radius, now falls in the rule's active
// window, the user shares an interest tag and the pair was not delivered within the dedup
// window. Passing pairs are recorded with the pass timestamp before the next pair is checked.
func (srv *matchingService) Evaluate(
	ctx context.Context,
	users []*entity.UserProfile,
	rules []*entity.NudgeRule,
	now time.Time,
) (*entity.MatchResult, error) {
	result := &entity.MatchResult{
		Timestamp: now.Unix(),
		Intents:   []entity.DeliveryIntent{},
	}
	nowClock := entity.FormatClock(now)

	for _, user := range users {
		if !user.HasLocation() {
			continue
		}
		userPoint := user.LastLocation.Point()

		for _, rule := range rules {
			if err := ctx.Err(); err != nil {
				return result, errors.Wrap(err, "context done between pairs")
			}
			result.Evaluated++

			matched, err := srv.matches(ctx, user, userPoint, rule, nowClock, result.Timestamp)
			if err != nil {
				srv.recordFailure(ctx, result, user, rule, err)

				continue
			}
			if !matched {
				continue
			}

			entry := &entity.DeliveryLogEntry{
				UserID:    user.UserID,
				NudgeID:   rule.NudgeID,
				Timestamp: result.Timestamp,
			}
			if err := srv.deliveryLogRepo.RecordDelivery(ctx, entry); err != nil {
				srv.recordFailure(ctx, result, user, rule, errors.Wrap(err, "failed to record delivery"))

				continue
			}

			result.Intents = append(result.Intents, entity.DeliveryIntent{
				UserID:  user.UserID,
				NudgeID: rule.NudgeID,
				Title:   rule.Title,
				Message: rule.Message,
			})
		}
	}

	return result, nil
}

// matches runs the four filters in order and stops at the first that rejects the pair.
func (srv *matchingService) matches(
	ctx context.Context,
	user *entity.UserProfile,
	userPoint orb.Point,
	rule *entity.NudgeRule,
	nowClock string,
	now int64,
) (bool, error) {
	if srv.distance(userPoint, rule.Location.Point()) > rule.RadiusM {
		return false, nil
	}

	active, err := rule.ActiveTime.Contains(nowClock)
	if err != nil {
		return false, errors.Wrap(err, "invalid active time")
	}
	if !active {
		return false, nil
	}

	if !user.SharesInterest(rule.InterestTags) {
		return false, nil
	}

	recent, err := srv.deliveryLogRepo.WasRecentlyDelivered(ctx, user.UserID, rule.NudgeID, now, srv.dedupWindow)
	if err != nil {
		return false, errors.Wrap(err, "failed to check delivery history")
	}

	return !recent, nil
}

func (srv *matchingService) recordFailure(
	ctx context.Context,
	result *entity.MatchResult,
	user *entity.UserProfile,
	rule *entity.NudgeRule,
	err error,
) {
	srv.log(ctx).Warn("Skipping pair",
		slog.String("user_id", user.UserID),
		slog.String("nudge_id", rule.NudgeID),
		slog.Any("error", err),
	)

	result.Failures = append(result.Failures, entity.PairFailure{
		UserID:  user.UserID,
		NudgeID: rule.NudgeID,
		Reason:  err.Error(),
	})
}

// dispatch publishes the pass's intents for users that have a notification token.
// Publishing failures are logged; the intents stay recorded.
func (srv *matchingService) dispatch(ctx context.Context, users []*entity.UserProfile, result *entity.MatchResult) {
	if srv.publisher == nil || result == nil || len(result.Intents) == 0 {
		return
	}

	tokens := make(map[string]string, len(users))
	for _, user := range users {
		if token := user.Token(); token != "" {
			tokens[user.UserID] = token
		}
	}

	items := make([]service.DispatchItem, 0, len(result.Intents))
	for _, intent := range result.Intents {
		token, ok := tokens[intent.UserID]
		if !ok {
			continue
		}
		items = append(items, service.DispatchItem{
			UserID:            intent.UserID,
			NudgeID:           intent.NudgeID,
			Title:             intent.Title,
			Message:           intent.Message,
			NotificationToken: token,
		})
	}

	if len(items) == 0 {
		srv.log(ctx).Debug("No intents with notification tokens to dispatch", slog.Int("intents", len(result.Intents)))

		return
	}

	event := &service.DispatchEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EventID:       uuid.New().String(),
		PassTimestamp: result.Timestamp,
		Items:         items,
	}

	// The pass context may already be done; publishing gets its own deadline.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := srv.publisher.PublishDispatchEvent(publishCtx, event); err != nil {
		srv.log(ctx).Error("Failed to publish dispatch event",
			slog.String("event_id", event.EventID),
			slog.Int("items", len(items)),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Debug("Dispatch event published",
		slog.String("event_id", event.EventID),
		slog.Int("items", len(items)),
	)
}

func (srv *matchingService) observe(outcome string, start time.Time, result *entity.MatchResult) {
	if srv.metrics == nil {
		return
	}

	if result == nil {
		srv.metrics.ObservePass(outcome, time.Since(start), 0, 0, 0)

		return
	}

	srv.metrics.ObservePass(outcome, time.Since(start), result.Evaluated, len(result.Intents), len(result.Failures))
}

// passError maps a pass failure onto the domain error returned to callers.
func (srv *matchingService) passError(err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(domainerrors.ErrMatchingPassTimeout.WithDetails(err.Error()), message)
	}
	if errors.Is(err, context.Canceled) {
		return errors.Wrap(err, message)
	}

	return errors.Wrap(domainerrors.NewDatabaseExecuteError(err, message), message)
}
