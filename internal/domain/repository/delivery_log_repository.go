package repository

import (
	"context"
	"time"

	"nudge/internal/domain/entity"
)

// DeliveryLogRepository is the append-only delivery history used for deduplication.
// The matching engine is its only writer.
type DeliveryLogRepository interface {
	// WasRecentlyDelivered reports whether an entry exists for the exact (userID, nudgeID) pair
	// with now - entry.Timestamp < window. An entry exactly window old does not count.
	WasRecentlyDelivered(ctx context.Context, userID, nudgeID string, now int64, window time.Duration) (bool, error)

	// RecordDelivery appends an entry. Existing entries are never merged or updated.
	RecordDelivery(ctx context.Context, entry *entity.DeliveryLogEntry) error

	// ListDeliveries returns all entries in insertion order.
	ListDeliveries(ctx context.Context) ([]*entity.DeliveryLogEntry, error)
}

// WindowSeconds converts a dedup window to whole seconds, the granularity of entry timestamps.
func WindowSeconds(window time.Duration) int64 {
	return int64(window / time.Second)
}
