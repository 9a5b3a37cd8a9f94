package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophotel/internal/models"
	"github.com/iudanet/gophotel/internal/server/storage"
)

func TestTokenStorage_SaveRefreshToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	tests := []struct {
		token *models.RefreshToken
		name  string
	}{
		{
			name: "save new refresh token",
			token: &models.RefreshToken{
				Token:     "token123",
				UserID:    userID,
				ExpiresAt: time.Now().Add(24 * time.Hour),
				CreatedAt: time.Now(),
			},
		},
		{
			name: "replace existing token with same value",
			token: &models.RefreshToken{
				Token:     "token123",
				UserID:    userID,
				ExpiresAt: time.Now().Add(48 * time.Hour),
				CreatedAt: time.Now(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.SaveRefreshToken(ctx, tt.token))

			retrieved, err := s.GetRefreshToken(ctx, tt.token.Token)
			require.NoError(t, err)
			assert.Equal(t, tt.token.UserID, retrieved.UserID)
			assert.WithinDuration(t, tt.token.ExpiresAt, retrieved.ExpiresAt, time.Second)
		})
	}
}

func TestTokenStorage_SaveRefreshToken_UnknownUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.SaveRefreshToken(ctx, &models.RefreshToken{
		Token:     "orphan",
		UserID:    "no-such-user",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	})
	assert.Error(t, err)
}

func TestTokenStorage_DeleteRefreshToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	require.NoError(t, s.SaveRefreshToken(ctx, &models.RefreshToken{
		Token:     "to-delete",
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}))

	require.NoError(t, s.DeleteRefreshToken(ctx, "to-delete"))

	_, err := s.GetRefreshToken(ctx, "to-delete")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	err = s.DeleteRefreshToken(ctx, "to-delete")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestTokenStorage_DeleteUserTokens(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	otherID := createTestUser(t, ctx, s)

	for _, tok := range []string{"a", "b", "c"} {
		require.NoError(t, s.SaveRefreshToken(ctx, &models.RefreshToken{
			Token:     tok,
			UserID:    userID,
			ExpiresAt: time.Now().Add(time.Hour),
			CreatedAt: time.Now(),
		}))
	}
	require.NoError(t, s.SaveRefreshToken(ctx, &models.RefreshToken{
		Token:     "other",
		UserID:    otherID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}))

	count, err := s.DeleteUserTokens(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = s.GetRefreshToken(ctx, "other")
	assert.NoError(t, err)
}

func TestTokenStorage_DeleteExpiredTokens(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tokens := map[string]time.Time{
		"expired-long-ago": now.Add(-48 * time.Hour),
		"expired-just-now": now.Add(-time.Second),
		"still-valid":      now.Add(time.Hour),
	}
	for tok, exp := range tokens {
		require.NoError(t, s.SaveRefreshToken(ctx, &models.RefreshToken{
			Token:     tok,
			UserID:    userID,
			ExpiresAt: exp,
			CreatedAt: now.Add(-72 * time.Hour),
		}))
	}

	count, err := s.DeleteExpiredTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = s.GetRefreshToken(ctx, "still-valid")
	assert.NoError(t, err)
	_, err = s.GetRefreshToken(ctx, "expired-just-now")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}
