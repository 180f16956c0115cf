package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"nudge/config"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	"nudge/internal/domain/service"
	"nudge/internal/errors"
	"nudge/internal/infra/persistence/memory"
	mockRepo "nudge/internal/mocks/repository"
	mockService "nudge/internal/mocks/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testPassTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// matchingServiceFixtures holds all test dependencies for matching service tests.
type matchingServiceFixtures struct {
	service     *matchingService
	profileRepo repository.UserProfileRepository
	ruleRepo    repository.NudgeRuleRepository
	historyRepo repository.DeliveryLogRepository
}

func createTestMatchingService(t *testing.T, history repository.DeliveryLogRepository) matchingServiceFixtures {
	t.Helper()

	if history == nil {
		history = memory.NewDeliveryLogRepository()
	}
	profileRepo := memory.NewUserProfileRepository()
	ruleRepo := memory.NewNudgeRuleRepository()

	srv := NewMatchingService(MatchingServiceParams{
		ProfileRepo:     profileRepo,
		RuleRepo:        ruleRepo,
		DeliveryLogRepo: history,
		Config:          &config.Config{Matching: &config.MatchingConfig{DedupWindow: 2 * time.Hour}},
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return matchingServiceFixtures{
		service:     srv.(*matchingService),
		profileRepo: profileRepo,
		ruleRepo:    ruleRepo,
		historyRepo: history,
	}
}

func testUser(id string, lat, lng float64, interests ...string) *entity.UserProfile {
	return &entity.UserProfile{
		UserID:       id,
		Interests:    interests,
		LastLocation: &entity.Location{Lat: lat, Lng: lng},
	}
}

func testRule(id string, lat, lng, radius float64, tags ...string) *entity.NudgeRule {
	return &entity.NudgeRule{
		NudgeID:      id,
		Title:        "Title " + id,
		Message:      "Message " + id,
		Location:     entity.Location{Lat: lat, Lng: lng},
		RadiusM:      radius,
		InterestTags: tags,
		ActiveTime:   entity.ActiveTime{Start: "09:00", End: "17:00"},
	}
}

func TestMatchingService_Evaluate_AllFiltersPass(t *testing.T) {
	fx := createTestMatchingService(t, nil)
	ctx := context.Background()

	users := []*entity.UserProfile{testUser("u1", 37.7749, -122.4194, "coffee")}
	rules := []*entity.NudgeRule{testRule("n1", 37.7750, -122.4195, 100, "coffee", "food")}

	result, err := fx.service.Evaluate(ctx, users, rules, testPassTime)

	require.NoError(t, err)
	require.Len(t, result.Intents, 1)
	assert.Equal(t, entity.DeliveryIntent{UserID: "u1", NudgeID: "n1", Title: "Title n1", Message: "Message n1"}, result.Intents[0])
	assert.Equal(t, testPassTime.Unix(), result.Timestamp)
	assert.Equal(t, 1, result.Evaluated)
	assert.Empty(t, result.Failures)

	entries, err := fx.historyRepo.ListDeliveries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, &entity.DeliveryLogEntry{UserID: "u1", NudgeID: "n1", Timestamp: testPassTime.Unix()}, entries[0])
}

func TestMatchingService_Evaluate_FilterRejections(t *testing.T) {
	tests := []struct {
		name string
		user *entity.UserProfile
		rule func() *entity.NudgeRule
	}{
		{
			name: "outside radius",
			user: testUser("u1", 37.7749, -122.4194, "coffee"),
			rule: func() *entity.NudgeRule { return testRule("n1", 37.8049, -122.4194, 100, "coffee") },
		},
		{
			name: "outside active window",
			user: testUser("u1", 37.7749, -122.4194, "coffee"),
			rule: func() *entity.NudgeRule {
				rule := testRule("n1", 37.7749, -122.4194, 100, "coffee")
				rule.ActiveTime = entity.ActiveTime{Start: "13:00", End: "14:00"}

				return rule
			},
		},
		{
			name: "window crossing midnight",
			user: testUser("u1", 37.7749, -122.4194, "coffee"),
			rule: func() *entity.NudgeRule {
				rule := testRule("n1", 37.7749, -122.4194, 100, "coffee")
				rule.ActiveTime = entity.ActiveTime{Start: "22:00", End: "13:00"}

				return rule
			},
		},
		{
			name: "no shared interest",
			user: testUser("u1", 37.7749, -122.4194, "coffee"),
			rule: func() *entity.NudgeRule { return testRule("n1", 37.7749, -122.4194, 100, "Coffee", "tea") },
		},
		{
			name: "user without interests",
			user: testUser("u1", 37.7749, -122.4194),
			rule: func() *entity.NudgeRule { return testRule("n1", 37.7749, -122.4194, 100, "coffee") },
		},
		{
			name: "rule without tags",
			user: testUser("u1", 37.7749, -122.4194, "coffee"),
			rule: func() *entity.NudgeRule { return testRule("n1", 37.7749, -122.4194, 100) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMatchingService(t, nil)
			ctx := context.Background()

			result, err := fx.service.Evaluate(ctx, []*entity.UserProfile{tt.user}, []*entity.NudgeRule{tt.rule()}, testPassTime)

			require.NoError(t, err)
			assert.Empty(t, result.Intents)
			assert.Empty(t, result.Failures)

			entries, err := fx.historyRepo.ListDeliveries(ctx)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestMatchingService_Evaluate_RadiusIsInclusive(t *testing.T) {
	fx := createTestMatchingService(t, nil)
	fx.service.distance = func(_, _ orb.Point) float64 { return 100 }

	users := []*entity.UserProfile{testUser("u1", 0, 0, "coffee")}
	rules := []*entity.NudgeRule{
		testRule("exact", 0, 0, 100, "coffee"),
		testRule("short", 0, 0, 99.999, "coffee"),
	}

	result, err := fx.service.Evaluate(context.Background(), users, rules, testPassTime)

	require.NoError(t, err)
	require.Len(t, result.Intents, 1)
	assert.Equal(t, "exact", result.Intents[0].NudgeID)
}

func TestMatchingService_Evaluate_ZeroRadiusMatchesOnlyExactPoint(t *testing.T) {
	fx := createTestMatchingService(t, nil)

	users := []*entity.UserProfile{
		testUser("same", 48.8566, 2.3522, "art"),
		testUser("near", 48.8567, 2.3522, "art"),
	}
	rules := []*entity.NudgeRule{testRule("n1", 48.8566, 2.3522, 0, "art")}

	result, err := fx.service.Evaluate(context.Background(), users, rules, testPassTime)

	require.NoError(t, err)
	require.Len(t, result.Intents, 1)
	assert.Equal(t, "same", result.Intents[0].UserID)
}

func TestMatchingService_Evaluate_WindowBoundsInclusive(t *testing.T) {
	fx := createTestMatchingService(t, nil)

	users := []*entity.UserProfile{testUser("u1", 0, 0, "coffee")}
	startRule := testRule("starts-now", 0, 0, 10, "coffee")
	startRule.ActiveTime = entity.ActiveTime{Start: "12:00", End: "12:30"}
	endRule := testRule("ends-now", 0, 0, 10, "coffee")
	endRule.ActiveTime = entity.ActiveTime{Start: "11:00", End: "12:00"}

	result, err := fx.service.Evaluate(context.Background(), users, []*entity.NudgeRule{startRule, endRule}, testPassTime)

	require.NoError(t, err)
	assert.Len(t, result.Intents, 2)
}

func TestMatchingService_Evaluate_SkipsUsersWithoutLocation(t *testing.T) {
	fx := createTestMatchingService(t, nil)

	users := []*entity.UserProfile{
		{UserID: "nowhere", Interests: []string{"coffee"}},
		testUser("u1", 0, 0, "coffee"),
	}
	rules := []*entity.NudgeRule{testRule("n1", 0, 0, 10, "coffee")}

	result, err := fx.service.Evaluate(context.Background(), users, rules, testPassTime)

	require.NoError(t, err)
	require.Len(t, result.Intents, 1)
	assert.Equal(t, "u1", result.Intents[0].UserID)
	assert.Equal(t, 1, result.Evaluated)
}

func TestMatchingService_Evaluate_EmptyInputs(t *testing.T) {
	fx := createTestMatchingService(t, nil)
	ctx := context.Background()

	result, err := fx.service.Evaluate(ctx, nil, []*entity.NudgeRule{testRule("n1", 0, 0, 10, "coffee")}, testPassTime)
	require.NoError(t, err)
	assert.Empty(t, result.Intents)
	assert.NotNil(t, result.Intents)

	result, err = fx.service.Evaluate(ctx, []*entity.UserProfile{testUser("u1", 0, 0, "coffee")}, nil, testPassTime)
	require.NoError(t, err)
	assert.Empty(t, result.Intents)
}

func TestMatchingService_Evaluate_OrderIsUserMajor(t *testing.T) {
	fx := createTestMatchingService(t, nil)

	users := []*entity.UserProfile{
		testUser("u1", 0, 0, "coffee"),
		testUser("u2", 0, 0, "coffee"),
	}
	rules := []*entity.NudgeRule{
		testRule("n1", 0, 0, 10, "coffee"),
		testRule("n2", 0, 0, 10, "coffee"),
	}

	result, err := fx.service.Evaluate(context.Background(), users, rules, testPassTime)

	require.NoError(t, err)
	require.Len(t, result.Intents, 4)
	got := make([]string, 0, len(result.Intents))
	for _, intent := range result.Intents {
		got = append(got, intent.UserID+"/"+intent.NudgeID)
	}
	assert.Equal(t, []string{"u1/n1", "u1/n2", "u2/n1", "u2/n2"}, got)

	entries, err := fx.historyRepo.ListDeliveries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for _, entry := range entries {
		assert.Equal(t, testPassTime.Unix(), entry.Timestamp)
	}
}

func TestMatchingService_Evaluate_Idempotent(t *testing.T) {
	fx := createTestMatchingService(t, nil)
	ctx := context.Background()

	users := []*entity.UserProfile{testUser("u1", 0, 0, "coffee")}
	rules := []*entity.NudgeRule{testRule("n1", 0, 0, 10, "coffee")}

	first, err := fx.service.Evaluate(ctx, users, rules, testPassTime)
	require.NoError(t, err)
	require.Len(t, first.Intents, 1)

	second, err := fx.service.Evaluate(ctx, users, rules, testPassTime.Add(time.Minute))
	require.NoError(t, err)
	assert.Empty(t, second.Intents)

	entries, err := fx.historyRepo.ListDeliveries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMatchingService_Evaluate_DedupWindowBoundary(t *testing.T) {
	tests := []struct {
		name      string
		age       time.Duration
		wantMatch bool
	}{
		{name: "one second inside window", age: 2*time.Hour - time.Second, wantMatch: false},
		{name: "exactly at window", age: 2 * time.Hour, wantMatch: true},
		{name: "past window", age: 3 * time.Hour, wantMatch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMatchingService(t, nil)
			ctx := context.Background()

			require.NoError(t, fx.historyRepo.RecordDelivery(ctx, &entity.DeliveryLogEntry{
				UserID:    "u1",
				NudgeID:   "n1",
				Timestamp: testPassTime.Add(-tt.age).Unix(),
			}))

			result, err := fx.service.Evaluate(ctx,
				[]*entity.UserProfile{testUser("u1", 0, 0, "coffee")},
				[]*entity.NudgeRule{testRule("n1", 0, 0, 10, "coffee")},
				testPassTime,
			)

			require.NoError(t, err)
			if tt.wantMatch {
				assert.Len(t, result.Intents, 1)
			} else {
				assert.Empty(t, result.Intents)
			}
		})
	}
}

func TestMatchingService_Evaluate_DedupIsPerPair(t *testing.T) {
	fx := createTestMatchingService(t, nil)
	ctx := context.Background()

	require.NoError(t, fx.historyRepo.RecordDelivery(ctx, &entity.DeliveryLogEntry{
		UserID: "u1", NudgeID: "n2", Timestamp: testPassTime.Unix(),
	}))
	require.NoError(t, fx.historyRepo.RecordDelivery(ctx, &entity.DeliveryLogEntry{
		UserID: "u2", NudgeID: "n1", Timestamp: testPassTime.Unix(),
	}))

	result, err := fx.service.Evaluate(ctx,
		[]*entity.UserProfile{testUser("u1", 0, 0, "coffee")},
		[]*entity.NudgeRule{testRule("n1", 0, 0, 10, "coffee")},
		testPassTime,
	)

	require.NoError(t, err)
	assert.Len(t, result.Intents, 1)
}

func TestMatchingService_Evaluate_DuplicateNudgeIDDedupedWithinPass(t *testing.T) {
	fx := createTestMatchingService(t, nil)

	rules := []*entity.NudgeRule{
		testRule("dup", 0, 0, 10, "coffee"),
		testRule("dup", 0, 0, 10, "coffee"),
	}

	result, err := fx.service.Evaluate(context.Background(), []*entity.UserProfile{testUser("u1", 0, 0, "coffee")}, rules, testPassTime)

	require.NoError(t, err)
	assert.Len(t, result.Intents, 1)
	assert.Equal(t, 2, result.Evaluated)
}

func TestMatchingService_Evaluate_ShortCircuitsBeforeHistory(t *testing.T) {
	history := mockRepo.NewMockDeliveryLogRepository(t)
	fx := createTestMatchingService(t, history)

	users := []*entity.UserProfile{
		testUser("far", 10, 10, "coffee"),
		testUser("bored", 0, 0, "golf"),
	}
	offHours := testRule("closed", 0, 0, 10, "coffee")
	offHours.ActiveTime = entity.ActiveTime{Start: "06:00", End: "07:00"}
	rules := []*entity.NudgeRule{testRule("n1", 0, 0, 10, "coffee"), offHours}

	// No history expectations: the mock fails the test on any call.
	result, err := fx.service.Evaluate(context.Background(), users, rules, testPassTime)

	require.NoError(t, err)
	assert.Empty(t, result.Intents)
	assert.Equal(t, 4, result.Evaluated)
}

func TestMatchingService_Evaluate_InvalidWindowIsPairFailure(t *testing.T) {
	fx := createTestMatchingService(t, nil)

	broken := testRule("broken", 0, 0, 10, "coffee")
	broken.ActiveTime = entity.ActiveTime{Start: "9:00", End: "17:00"}
	rules := []*entity.NudgeRule{broken, testRule("ok", 0, 0, 10, "coffee")}

	result, err := fx.service.Evaluate(context.Background(), []*entity.UserProfile{testUser("u1", 0, 0, "coffee")}, rules, testPassTime)

	require.NoError(t, err)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "u1", result.Failures[0].UserID)
	assert.Equal(t, "broken", result.Failures[0].NudgeID)
	assert.Contains(t, result.Failures[0].Reason, "invalid active time")
	require.Len(t, result.Intents, 1)
	assert.Equal(t, "ok", result.Intents[0].NudgeID)
}

func TestMatchingService_Evaluate_HistoryErrorsArePairFailures(t *testing.T) {
	history := mockRepo.NewMockDeliveryLogRepository(t)
	fx := createTestMatchingService(t, history)
	ctx := context.Background()
	window := 2 * time.Hour
	now := testPassTime.Unix()

	history.EXPECT().WasRecentlyDelivered(ctx, "u1", "lookup", now, window).Return(false, errors.New("connection reset"))
	history.EXPECT().WasRecentlyDelivered(ctx, "u1", "write", now, window).Return(false, nil)
	history.EXPECT().
		RecordDelivery(ctx, &entity.DeliveryLogEntry{UserID: "u1", NudgeID: "write", Timestamp: now}).
		Return(errors.New("disk full"))
	history.EXPECT().WasRecentlyDelivered(ctx, "u1", "fine", now, window).Return(false, nil)
	history.EXPECT().
		RecordDelivery(ctx, &entity.DeliveryLogEntry{UserID: "u1", NudgeID: "fine", Timestamp: now}).
		Return(nil)

	rules := []*entity.NudgeRule{
		testRule("lookup", 0, 0, 10, "coffee"),
		testRule("write", 0, 0, 10, "coffee"),
		testRule("fine", 0, 0, 10, "coffee"),
	}

	result, err := fx.service.Evaluate(ctx, []*entity.UserProfile{testUser("u1", 0, 0, "coffee")}, rules, testPassTime)

	require.NoError(t, err)
	require.Len(t, result.Failures, 2)
	assert.Contains(t, result.Failures[0].Reason, "connection reset")
	assert.Contains(t, result.Failures[1].Reason, "disk full")
	require.Len(t, result.Intents, 1)
	assert.Equal(t, "fine", result.Intents[0].NudgeID)
}

func TestMatchingService_Evaluate_StopsWhenContextDone(t *testing.T) {
	fx := createTestMatchingService(t, nil)
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	fx.service.distance = func(_, _ orb.Point) float64 {
		calls++
		if calls == 2 {
			cancel()
		}

		return 0
	}

	users := []*entity.UserProfile{testUser("u1", 0, 0, "coffee"), testUser("u2", 0, 0, "coffee")}
	rules := []*entity.NudgeRule{testRule("n1", 0, 0, 10, "coffee"), testRule("n2", 0, 0, 10, "coffee")}

	result, err := fx.service.Evaluate(ctx, users, rules, testPassTime)

	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Len(t, result.Intents, 2)
	assert.Equal(t, 2, result.Evaluated)
}

func TestMatchingService_RunMatchingPass_PublishesIntents(t *testing.T) {
	ctx := context.Background()
	clock := mockService.NewMockClock(t)
	publisher := mockService.NewMockEventPublisher(t)
	metrics := mockService.NewMockMatchingMetrics(t)

	profileRepo := memory.NewUserProfileRepository()
	ruleRepo := memory.NewNudgeRuleRepository()
	history := memory.NewDeliveryLogRepository()

	token := "device-token"
	withToken := testUser("u1", 0, 0, "coffee")
	withToken.NotificationToken = &token
	require.NoError(t, profileRepo.UpsertProfile(ctx, withToken))
	require.NoError(t, profileRepo.UpsertProfile(ctx, testUser("u2", 0, 0, "coffee")))
	require.NoError(t, ruleRepo.CreateRule(ctx, testRule("n1", 0, 0, 10, "coffee")))

	srv := NewMatchingService(MatchingServiceParams{
		ProfileRepo:     profileRepo,
		RuleRepo:        ruleRepo,
		DeliveryLogRepo: history,
		Clock:           clock,
		Publisher:       publisher,
		Metrics:         metrics,
		Config:          &config.Config{Matching: &config.MatchingConfig{PassTimeout: time.Minute}},
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	clock.EXPECT().Now().Return(testPassTime)
	publisher.EXPECT().
		PublishDispatchEvent(mock.Anything, mock.MatchedBy(func(event *service.DispatchEvent) bool {
			return event.EventID != "" &&
				event.PassTimestamp == testPassTime.Unix() &&
				len(event.Items) == 1 &&
				event.Items[0] == service.DispatchItem{
					UserID:            "u1",
					NudgeID:           "n1",
					Title:             "Title n1",
					Message:           "Message n1",
					NotificationToken: token,
				}
		})).
		Return(nil)
	metrics.EXPECT().ObservePass(service.PassOutcomeOK, mock.AnythingOfType("time.Duration"), 2, 2, 0).Return()

	result, err := srv.RunMatchingPass(ctx)

	require.NoError(t, err)
	assert.Len(t, result.Intents, 2)
}

func TestMatchingService_RunMatchingPass_PublishFailureKeepsIntents(t *testing.T) {
	ctx := context.Background()
	clock := mockService.NewMockClock(t)
	publisher := mockService.NewMockEventPublisher(t)

	profileRepo := memory.NewUserProfileRepository()
	ruleRepo := memory.NewNudgeRuleRepository()
	history := memory.NewDeliveryLogRepository()

	token := "device-token"
	user := testUser("u1", 0, 0, "coffee")
	user.NotificationToken = &token
	require.NoError(t, profileRepo.UpsertProfile(ctx, user))
	require.NoError(t, ruleRepo.CreateRule(ctx, testRule("n1", 0, 0, 10, "coffee")))

	srv := NewMatchingService(MatchingServiceParams{
		ProfileRepo:     profileRepo,
		RuleRepo:        ruleRepo,
		DeliveryLogRepo: history,
		Clock:           clock,
		Publisher:       publisher,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	clock.EXPECT().Now().Return(testPassTime)
	publisher.EXPECT().PublishDispatchEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	result, err := srv.RunMatchingPass(ctx)

	require.NoError(t, err)
	assert.Len(t, result.Intents, 1)

	entries, err := history.ListDeliveries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMatchingService_RunMatchingPass_ListError(t *testing.T) {
	ctx := context.Background()
	profileRepo := mockRepo.NewMockUserProfileRepository(t)
	metrics := mockService.NewMockMatchingMetrics(t)

	srv := NewMatchingService(MatchingServiceParams{
		ProfileRepo:     profileRepo,
		RuleRepo:        mockRepo.NewMockNudgeRuleRepository(t),
		DeliveryLogRepo: mockRepo.NewMockDeliveryLogRepository(t),
		Clock:           mockService.NewMockClock(t),
		Metrics:         metrics,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	profileRepo.EXPECT().ListProfiles(mock.Anything).Return(nil, errors.New("connection refused"))
	metrics.EXPECT().ObservePass(service.PassOutcomeError, mock.AnythingOfType("time.Duration"), 0, 0, 0).Return()

	result, err := srv.RunMatchingPass(ctx)

	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestMatchingService_RunMatchingPass_Timeout(t *testing.T) {
	ctx := context.Background()
	clock := mockService.NewMockClock(t)
	metrics := mockService.NewMockMatchingMetrics(t)

	profileRepo := memory.NewUserProfileRepository()
	ruleRepo := memory.NewNudgeRuleRepository()
	require.NoError(t, profileRepo.UpsertProfile(ctx, testUser("u1", 0, 0, "coffee")))
	require.NoError(t, profileRepo.UpsertProfile(ctx, testUser("u2", 0, 0, "coffee")))
	require.NoError(t, ruleRepo.CreateRule(ctx, testRule("n1", 0, 0, 10, "coffee")))

	srv := NewMatchingService(MatchingServiceParams{
		ProfileRepo:     profileRepo,
		RuleRepo:        ruleRepo,
		DeliveryLogRepo: memory.NewDeliveryLogRepository(),
		Clock:           clock,
		Metrics:         metrics,
		Config:          &config.Config{Matching: &config.MatchingConfig{PassTimeout: 10 * time.Millisecond}},
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*matchingService)
	srv.distance = func(_, _ orb.Point) float64 {
		time.Sleep(50 * time.Millisecond)

		return 0
	}

	clock.EXPECT().Now().Return(testPassTime)
	metrics.EXPECT().ObservePass(service.PassOutcomeTimeout, mock.AnythingOfType("time.Duration"), 1, 1, 0).Return()

	result, err := srv.RunMatchingPass(ctx)

	require.Error(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Intents, 1)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrMatchingPassTimeout.ErrorCode(), appErr.ErrorCode())
}

func TestMatchingService_RunMatchingPass_ConcurrentPassesDeliverOnce(t *testing.T) {
	ctx := context.Background()
	profileRepo := memory.NewUserProfileRepository()
	ruleRepo := memory.NewNudgeRuleRepository()
	history := memory.NewDeliveryLogRepository()
	require.NoError(t, profileRepo.UpsertProfile(ctx, testUser("u1", 0, 0, "coffee")))
	require.NoError(t, ruleRepo.CreateRule(ctx, testRule("n1", 0, 0, 10, "coffee")))

	srv := NewMatchingService(MatchingServiceParams{
		ProfileRepo:     profileRepo,
		RuleRepo:        ruleRepo,
		DeliveryLogRepo: history,
		Clock:           fixedClock{now: testPassTime},
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	const passes = 16
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int
	)
	for range passes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := srv.RunMatchingPass(ctx)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			total += len(result.Intents)
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, total)
	entries, err := history.ListDeliveries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
