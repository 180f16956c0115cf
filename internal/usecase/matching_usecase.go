package usecase

import (
	"context"
	"time"

	"nudge/internal/domain/entity"
)

// MatchingUsecase defines the matching engine entry points
type MatchingUsecase interface {
	// RunMatchingPass evaluates every stored user against every stored rule once.
	// Passes are serialized; concurrent callers wait for the running pass to finish.
	RunMatchingPass(ctx context.Context) (*entity.MatchResult, error)

	// Evaluate runs the filter chain over the given snapshot, records matches in the delivery
	// history and returns the resulting intents. It does not take the pass lock.
	Evaluate(ctx context.Context, users []*entity.UserProfile, rules []*entity.NudgeRule, now time.Time) (*entity.MatchResult, error)
}
