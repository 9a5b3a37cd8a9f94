package server

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophotel/internal/models"
	"github.com/iudanet/gophotel/internal/server/storage/sqlite"
)

func TestRunTokenCleanup(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	user := &models.User{
		ID:           "user-1",
		Username:     "nightshift",
		PasswordHash: "hash",
		CreatedAt:    clock.Now(),
	}
	require.NoError(t, store.CreateUser(ctx, user))
	require.NoError(t, store.SaveRefreshToken(ctx, &models.RefreshToken{
		Token:     "short-lived",
		UserID:    user.ID,
		CreatedAt: clock.Now(),
		ExpiresAt: clock.Now().Add(30 * time.Minute),
	}))
	require.NoError(t, store.SaveRefreshToken(ctx, &models.RefreshToken{
		Token:     "long-lived",
		UserID:    user.ID,
		CreatedAt: clock.Now(),
		ExpiresAt: clock.Now().Add(48 * time.Hour),
	}))

	runCtx, cancel := context.WithCancel(ctx)
	var stopped atomic.Bool
	go func() {
		RunTokenCleanup(runCtx, store, clock, time.Hour, setupTestLogger())
		stopped.Store(true)
	}()

	clock.BlockUntil(1)
	clock.Advance(time.Hour)

	assert.Eventually(t, func() bool {
		_, err := store.GetRefreshToken(ctx, "short-lived")
		return err != nil
	}, time.Second, 10*time.Millisecond)

	_, err = store.GetRefreshToken(ctx, "long-lived")
	assert.NoError(t, err)

	cancel()
	assert.Eventually(t, stopped.Load, time.Second, 10*time.Millisecond)
}
