package usecase

import (
	"context"

	"nudge/internal/domain/entity"
)

// DeliveryLogUsecase exposes the read-only delivery history for auditing
type DeliveryLogUsecase interface {
	// ListDeliveryLog returns all delivery entries in insertion order
	ListDeliveryLog(ctx context.Context) ([]*entity.DeliveryLogEntry, error)
}
