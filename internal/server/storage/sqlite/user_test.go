package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophotel/internal/models"
	"github.com/iudanet/gophotel/internal/server/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	tests := []struct {
		user *models.User
		name string
	}{
		{
			name: "create new user successfully",
			user: &models.User{
				ID:           uuid.New().String(),
				Username:     "frontdesk1",
				PasswordHash: "hash123",
				CreatedAt:    time.Now(),
			},
		},
		{
			name: "create user with last login",
			user: &models.User{
				ID:           uuid.New().String(),
				Username:     "frontdesk2",
				PasswordHash: "hash456",
				CreatedAt:    time.Now(),
				LastLogin:    timePtr(time.Now()),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.CreateUser(ctx, tt.user))

			retrieved, err := s.GetUserByID(ctx, tt.user.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.user.Username, retrieved.Username)
			assert.Equal(t, tt.user.PasswordHash, retrieved.PasswordHash)
			assert.WithinDuration(t, tt.user.CreatedAt, retrieved.CreatedAt, time.Second)
			if tt.user.LastLogin == nil {
				assert.Nil(t, retrieved.LastLogin)
			} else {
				require.NotNil(t, retrieved.LastLogin)
				assert.WithinDuration(t, *tt.user.LastLogin, *retrieved.LastLogin, time.Second)
			}
		})
	}
}

func TestUserStorage_CreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user1 := &models.User{
		ID:           uuid.New().String(),
		Username:     "duplicate",
		PasswordHash: "hash1",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, user1))

	user2 := &models.User{
		ID:           uuid.New().String(),
		Username:     "duplicate",
		PasswordHash: "hash2",
		CreatedAt:    time.Now(),
	}
	err := s.CreateUser(ctx, user2)
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     "housekeeping",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, user))

	tests := []struct {
		wantErr  error
		name     string
		username string
	}{
		{name: "existing user", username: "housekeeping"},
		{name: "missing user", username: "nobody", wantErr: storage.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GetUserByUsername(ctx, tt.username)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
		})
	}
}

func TestUserStorage_GetUserByID_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	loginAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	require.NoError(t, s.UpdateLastLogin(ctx, userID, loginAt))

	user, err := s.GetUserByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)
	assert.True(t, loginAt.Equal(*user.LastLogin))

	err = s.UpdateLastLogin(ctx, uuid.New().String(), loginAt)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
