package repository

import (
	"context"

	"nudge/internal/domain/entity"
)

// NudgeRuleRepository is an append-only store of nudge rules.
// Duplicate nudge IDs are accepted and kept as separate rules.
type NudgeRuleRepository interface {
	// CreateRule appends a rule.
	CreateRule(ctx context.Context, rule *entity.NudgeRule) error

	// ListRules returns all rules in creation order.
	ListRules(ctx context.Context) ([]*entity.NudgeRule, error)
}
