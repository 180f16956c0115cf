package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	"nudge/internal/errors"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "nudge"

// deliveryLogRepository keeps one sorted set per (user, nudge) pair scored by delivery time,
// plus a list holding every entry in insertion order.
type deliveryLogRepository struct {
	client    goredis.UniversalClient
	keyPrefix string
}

// NewDeliveryLogRepository is the constructor for deliveryLogRepository.
func NewDeliveryLogRepository(client goredis.UniversalClient, keyPrefix string) repository.DeliveryLogRepository {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	return &deliveryLogRepository{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// pairKey length-prefixes the user ID so IDs containing ':' cannot collide.
func (repo *deliveryLogRepository) pairKey(userID, nudgeID string) string {
	return fmt.Sprintf("%s:delivery:pair:%d:%s:%s", repo.keyPrefix, len(userID), userID, nudgeID)
}

func (repo *deliveryLogRepository) logKey() string {
	return repo.keyPrefix + ":delivery:log"
}

// WasRecentlyDelivered counts pair entries scored in (now - window, +inf).
func (repo *deliveryLogRepository) WasRecentlyDelivered(ctx context.Context, userID, nudgeID string, now int64, window time.Duration) (bool, error) {
	minScore := "(" + strconv.FormatInt(now-repository.WindowSeconds(window), 10)

	count, err := repo.client.ZCount(ctx, repo.pairKey(userID, nudgeID), minScore, "+inf").Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to query delivery history")
	}

	return count > 0, nil
}

// RecordDelivery adds the entry to its pair set and the insertion-ordered log atomically.
func (repo *deliveryLogRepository) RecordDelivery(ctx context.Context, entry *entity.DeliveryLogEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "failed to encode delivery entry")
	}

	// Members must be unique or a second delivery at the same second would overwrite the first.
	member := strconv.FormatInt(entry.Timestamp, 10) + ":" + uuid.NewString()

	_, err = repo.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.ZAdd(ctx, repo.pairKey(entry.UserID, entry.NudgeID), goredis.Z{
			Score:  float64(entry.Timestamp),
			Member: member,
		})
		pipe.RPush(ctx, repo.logKey(), payload)

		return nil
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record delivery")
	}

	return nil
}

// ListDeliveries returns all entries in insertion order.
func (repo *deliveryLogRepository) ListDeliveries(ctx context.Context) ([]*entity.DeliveryLogEntry, error) {
	raw, err := repo.client.LRange(ctx, repo.logKey(), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delivery log")
	}

	entries := make([]*entity.DeliveryLogEntry, 0, len(raw))
	for _, item := range raw {
		var entry entity.DeliveryLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, errors.Wrap(err, "failed to decode delivery entry")
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}
