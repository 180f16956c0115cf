package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"nudge/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWindow = 7200 * time.Second

func TestDeliveryLogRepository_WasRecentlyDelivered(t *testing.T) {
	ctx := context.Background()
	repo := NewDeliveryLogRepository()

	require.NoError(t, repo.RecordDelivery(ctx, &entity.DeliveryLogEntry{UserID: "u1", NudgeID: "n1", Timestamp: 1000}))

	tests := []struct {
		name    string
		userID  string
		nudgeID string
		now     int64
		want    bool
	}{
		{name: "same instant", userID: "u1", nudgeID: "n1", now: 1000, want: true},
		{name: "one second before boundary", userID: "u1", nudgeID: "n1", now: 8199, want: true},
		{name: "exactly at boundary", userID: "u1", nudgeID: "n1", now: 8200, want: false},
		{name: "after boundary", userID: "u1", nudgeID: "n1", now: 9000, want: false},
		{name: "other nudge", userID: "u1", nudgeID: "n2", now: 1000, want: false},
		{name: "other user", userID: "u2", nudgeID: "n1", now: 1000, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.WasRecentlyDelivered(ctx, tt.userID, tt.nudgeID, tt.now, testWindow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeliveryLogRepository_EmptyHistory(t *testing.T) {
	repo := NewDeliveryLogRepository()

	got, err := repo.WasRecentlyDelivered(context.Background(), "u1", "n1", 0, testWindow)

	require.NoError(t, err)
	assert.False(t, got)
}

func TestDeliveryLogRepository_LatestEntryWins(t *testing.T) {
	ctx := context.Background()
	repo := NewDeliveryLogRepository()

	require.NoError(t, repo.RecordDelivery(ctx, &entity.DeliveryLogEntry{UserID: "u1", NudgeID: "n1", Timestamp: 20000}))
	require.NoError(t, repo.RecordDelivery(ctx, &entity.DeliveryLogEntry{UserID: "u1", NudgeID: "n1", Timestamp: 100}))

	got, err := repo.WasRecentlyDelivered(ctx, "u1", "n1", 21000, testWindow)

	require.NoError(t, err)
	assert.True(t, got)
}

func TestDeliveryLogRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewDeliveryLogRepository()

	entries := []*entity.DeliveryLogEntry{
		{UserID: "u2", NudgeID: "n1", Timestamp: 300},
		{UserID: "u1", NudgeID: "n1", Timestamp: 100},
		{UserID: "u1", NudgeID: "n1", Timestamp: 100},
	}
	for _, entry := range entries {
		require.NoError(t, repo.RecordDelivery(ctx, entry))
	}

	listed, err := repo.ListDeliveries(ctx)

	require.NoError(t, err)
	assert.Equal(t, entries, listed)

	listed[0].UserID = "mutated"
	again, err := repo.ListDeliveries(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", again[0].UserID)
}

func TestDeliveryLogRepository_ConcurrentRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewDeliveryLogRepository()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.RecordDelivery(ctx, &entity.DeliveryLogEntry{UserID: "u1", NudgeID: "n1", Timestamp: int64(i)}))
		}()
	}
	wg.Wait()

	listed, err := repo.ListDeliveries(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 50)
}
