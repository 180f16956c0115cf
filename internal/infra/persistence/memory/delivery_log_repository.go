package memory

import (
	"context"
	"sync"
	"time"

	"nudge/internal/domain/entity"
	"nudge/internal/domain/repository"
)

type deliveryKey struct {
	userID  string
	nudgeID string
}

// deliveryLogRepository keeps the full history in insertion order plus, per pair,
// the latest recorded timestamp. The latest timestamp alone decides the dedup query
// because now - ts is smallest for the largest ts.
type deliveryLogRepository struct {
	mu      sync.RWMutex
	entries []entity.DeliveryLogEntry
	latest  map[deliveryKey]int64
}

// NewDeliveryLogRepository is the constructor for deliveryLogRepository.
func NewDeliveryLogRepository() repository.DeliveryLogRepository {
	return &deliveryLogRepository{
		latest: make(map[deliveryKey]int64),
	}
}

// WasRecentlyDelivered reports whether the pair has an entry with now - ts < window.
func (repo *deliveryLogRepository) WasRecentlyDelivered(_ context.Context, userID, nudgeID string, now int64, window time.Duration) (bool, error) {
	repo.mu.RLock()
	ts, ok := repo.latest[deliveryKey{userID: userID, nudgeID: nudgeID}]
	repo.mu.RUnlock()

	if !ok {
		return false, nil
	}

	return now-ts < repository.WindowSeconds(window), nil
}

// RecordDelivery appends an entry.
func (repo *deliveryLogRepository) RecordDelivery(_ context.Context, entry *entity.DeliveryLogEntry) error {
	key := deliveryKey{userID: entry.UserID, nudgeID: entry.NudgeID}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.entries = append(repo.entries, *entry)
	if prev, ok := repo.latest[key]; !ok || entry.Timestamp > prev {
		repo.latest[key] = entry.Timestamp
	}

	return nil
}

// ListDeliveries returns a snapshot of all entries in insertion order.
func (repo *deliveryLogRepository) ListDeliveries(_ context.Context) ([]*entity.DeliveryLogEntry, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	entries := make([]*entity.DeliveryLogEntry, 0, len(repo.entries))
	for idx := range repo.entries {
		entry := repo.entries[idx]
		entries = append(entries, &entry)
	}

	return entries, nil
}
