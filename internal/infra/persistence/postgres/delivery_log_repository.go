package postgres

import (
	"context"
	"time"

	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	"nudge/internal/errors"
	"nudge/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type deliveryLogRepository struct {
	db *gorm.DB
}

// NewDeliveryLogRepository is the constructor for deliveryLogRepository.
func NewDeliveryLogRepository(db *gorm.DB) repository.DeliveryLogRepository {
	return &deliveryLogRepository{
		db: db,
	}
}

// WasRecentlyDelivered checks for a row of the pair with delivered_at > now - window,
// which is now - delivered_at < window.
func (repo *deliveryLogRepository) WasRecentlyDelivered(ctx context.Context, userID, nudgeID string, now int64, window time.Duration) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryLogModel{}).
		Where("user_id = ? AND nudge_id = ? AND delivered_at > ?", userID, nudgeID, now-repository.WindowSeconds(window)).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to query delivery log")
	}

	return count > 0, nil
}

// RecordDelivery inserts an entry row.
func (repo *deliveryLogRepository) RecordDelivery(ctx context.Context, entry *entity.DeliveryLogEntry) error {
	entryM := &model.DeliveryLogModel{
		UserID:      entry.UserID,
		NudgeID:     entry.NudgeID,
		DeliveredAt: entry.Timestamp,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record delivery")
	}

	return nil
}

// ListDeliveries returns all entries in insertion order.
func (repo *deliveryLogRepository) ListDeliveries(ctx context.Context) ([]*entity.DeliveryLogEntry, error) {
	var entryModels []*model.DeliveryLogModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delivery log")
	}

	entries := make([]*entity.DeliveryLogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, &entity.DeliveryLogEntry{
			UserID:    entryM.UserID,
			NudgeID:   entryM.NudgeID,
			Timestamp: entryM.DeliveredAt,
		})
	}

	return entries, nil
}
