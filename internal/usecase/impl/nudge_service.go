package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	"nudge/internal/errors"
	"nudge/internal/usecase"

	"github.com/paulmach/orb/geojson"
)

type nudgeService struct {
	ruleRepo repository.NudgeRuleRepository
	logger   *slog.Logger
}

// NewNudgeService is the constructor for nudgeService.
func NewNudgeService(ruleRepo repository.NudgeRuleRepository, logger *slog.Logger) usecase.NudgeUsecase {
	return &nudgeService{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

func (srv *nudgeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateNudgeRule stores a new rule after checking its geofence and active window.
func (srv *nudgeService) CreateNudgeRule(ctx context.Context, rule *entity.NudgeRule) (*entity.NudgeRule, error) {
	if rule == nil || rule.NudgeID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "nudgeId is required")
	}
	if !rule.Location.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "location out of range")
	}
	if rule.RadiusM < 0 || math.IsNaN(rule.RadiusM) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "radius_m must not be negative")
	}
	if !entity.IsClock(rule.ActiveTime.Start) || !entity.IsClock(rule.ActiveTime.End) {
		return nil, errors.Wrap(domainerrors.ErrInvalidActiveTime, "invalid active time")
	}
	if rule.ActiveTime.Start > rule.ActiveTime.End {
		srv.log(ctx).Warn("Active window crosses midnight and will never match",
			slog.String("nudge_id", rule.NudgeID),
			slog.String("start", rule.ActiveTime.Start),
			slog.String("end", rule.ActiveTime.End),
		)
	}
	if rule.InterestTags == nil {
		rule.InterestTags = []string{}
	}

	if err := srv.ruleRepo.CreateRule(ctx, rule); err != nil {
		srv.log(ctx).Error("Failed to create nudge rule", slog.String("nudge_id", rule.NudgeID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrNudgeRuleCreationFailed.WithDetails(err.Error()), "failed to create nudge rule")
	}

	srv.log(ctx).Info("Nudge rule created", slog.String("nudge_id", rule.NudgeID), slog.Float64("radius_m", rule.RadiusM))

	return rule, nil
}

// ListNudgeRules returns all stored rules.
func (srv *nudgeService) ListNudgeRules(ctx context.Context) ([]*entity.NudgeRule, error) {
	rules, err := srv.ruleRepo.ListRules(ctx)
	if err != nil {
		return nil, errors.Wrap(domainerrors.NewDatabaseExecuteError(err, "list nudge rules"), "failed to list nudge rules")
	}

	return rules, nil
}

// NudgeRuleGeofences exports each rule center as a point feature carrying the rule's radius
// and window, in rule creation order.
func (srv *nudgeService) NudgeRuleGeofences(ctx context.Context) (*geojson.FeatureCollection, error) {
	rules, err := srv.ListNudgeRules(ctx)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, rule := range rules {
		feature := geojson.NewFeature(rule.Location.Point())
		feature.ID = rule.NudgeID
		feature.Properties["nudgeId"] = rule.NudgeID
		feature.Properties["title"] = rule.Title
		feature.Properties["radius_m"] = rule.RadiusM
		feature.Properties["interestTags"] = rule.InterestTags
		feature.Properties["activeStart"] = rule.ActiveTime.Start
		feature.Properties["activeEnd"] = rule.ActiveTime.End
		fc.Append(feature)
	}

	return fc, nil
}
