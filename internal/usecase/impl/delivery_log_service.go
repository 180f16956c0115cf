package impl

import (
	"context"

	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	"nudge/internal/errors"
	"nudge/internal/usecase"
)

type deliveryLogService struct {
	deliveryLogRepo repository.DeliveryLogRepository
}

// NewDeliveryLogService is the constructor for deliveryLogService.
func NewDeliveryLogService(deliveryLogRepo repository.DeliveryLogRepository) usecase.DeliveryLogUsecase {
	return &deliveryLogService{
		deliveryLogRepo: deliveryLogRepo,
	}
}

// ListDeliveryLog returns the full delivery history.
func (srv *deliveryLogService) ListDeliveryLog(ctx context.Context) ([]*entity.DeliveryLogEntry, error) {
	entries, err := srv.deliveryLogRepo.ListDeliveries(ctx)
	if err != nil {
		return nil, errors.Wrap(domainerrors.NewDatabaseExecuteError(err, "list delivery log"), "failed to list delivery log")
	}

	return entries, nil
}
