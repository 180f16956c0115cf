package memory

import (
	"context"
	"slices"
	"sync"

	"nudge/internal/domain/entity"
	"nudge/internal/domain/repository"
)

type nudgeRuleRepository struct {
	mu    sync.RWMutex
	rules []*entity.NudgeRule
}

// NewNudgeRuleRepository is the constructor for nudgeRuleRepository.
func NewNudgeRuleRepository() repository.NudgeRuleRepository {
	return &nudgeRuleRepository{}
}

// CreateRule appends a rule without checking for duplicate nudge IDs.
func (repo *nudgeRuleRepository) CreateRule(_ context.Context, rule *entity.NudgeRule) error {
	stored := cloneRule(rule)

	repo.mu.Lock()
	repo.rules = append(repo.rules, stored)
	repo.mu.Unlock()

	return nil
}

// ListRules returns copies of all rules in creation order.
func (repo *nudgeRuleRepository) ListRules(_ context.Context) ([]*entity.NudgeRule, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	rules := make([]*entity.NudgeRule, 0, len(repo.rules))
	for _, rule := range repo.rules {
		rules = append(rules, cloneRule(rule))
	}

	return rules, nil
}

func cloneRule(rule *entity.NudgeRule) *entity.NudgeRule {
	cloned := *rule
	cloned.InterestTags = slices.Clone(rule.InterestTags)
	if rule.Location.Timestamp != nil {
		ts := *rule.Location.Timestamp
		cloned.Location.Timestamp = &ts
	}

	return &cloned
}
