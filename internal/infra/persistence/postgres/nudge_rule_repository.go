package postgres

import (
	"context"

	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	"nudge/internal/errors"
	"nudge/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type nudgeRuleRepository struct {
	db *gorm.DB
}

// NewNudgeRuleRepository is the constructor for nudgeRuleRepository.
func NewNudgeRuleRepository(db *gorm.DB) repository.NudgeRuleRepository {
	return &nudgeRuleRepository{
		db: db,
	}
}

// CreateRule inserts a rule row.
func (repo *nudgeRuleRepository) CreateRule(ctx context.Context, rule *entity.NudgeRule) error {
	ruleM := fromNudgeRuleDomain(rule)

	if err := repo.db.WithContext(ctx).Create(ruleM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("radius must not be negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required rule information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create nudge rule")
	}

	return nil
}

// ListRules returns all rules in creation order.
func (repo *nudgeRuleRepository) ListRules(ctx context.Context) ([]*entity.NudgeRule, error) {
	var ruleModels []*model.NudgeRuleModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list nudge rules")
	}

	rules := make([]*entity.NudgeRule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		rules = append(rules, toNudgeRuleDomain(ruleM))
	}

	return rules, nil
}

func fromNudgeRuleDomain(rule *entity.NudgeRule) *model.NudgeRuleModel {
	tags := rule.InterestTags
	if tags == nil {
		tags = []string{}
	}

	return &model.NudgeRuleModel{
		NudgeID:      rule.NudgeID,
		Title:        rule.Title,
		Message:      rule.Message,
		Lat:          rule.Location.Lat,
		Lng:          rule.Location.Lng,
		RadiusM:      rule.RadiusM,
		InterestTags: tags,
		ActiveStart:  rule.ActiveTime.Start,
		ActiveEnd:    rule.ActiveTime.End,
	}
}

func toNudgeRuleDomain(ruleM *model.NudgeRuleModel) *entity.NudgeRule {
	tags := ruleM.InterestTags
	if tags == nil {
		tags = []string{}
	}

	return &entity.NudgeRule{
		NudgeID:      ruleM.NudgeID,
		Title:        ruleM.Title,
		Message:      ruleM.Message,
		Location:     entity.Location{Lat: ruleM.Lat, Lng: ruleM.Lng},
		RadiusM:      ruleM.RadiusM,
		InterestTags: tags,
		ActiveTime:   entity.ActiveTime{Start: ruleM.ActiveStart, End: ruleM.ActiveEnd},
	}
}
