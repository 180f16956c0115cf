package usecase

import (
	"context"

	"nudge/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// NudgeUsecase defines nudge rule management use cases
type NudgeUsecase interface {
	// CreateNudgeRule appends a rule; duplicate nudge IDs are accepted
	CreateNudgeRule(ctx context.Context, rule *entity.NudgeRule) (*entity.NudgeRule, error)

	// ListNudgeRules returns all rules in creation order
	ListNudgeRules(ctx context.Context) ([]*entity.NudgeRule, error)

	// NudgeRuleGeofences returns every rule center as a GeoJSON point feature
	NudgeRuleGeofences(ctx context.Context) (*geojson.FeatureCollection, error)
}
