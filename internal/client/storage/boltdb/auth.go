package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophotel/internal/client/storage"
)

// Сессия одна на клиент: сотрудник за стойкой входит под своим именем
var sessionKey = []byte("current")

// SaveAuth replaces the stored session
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if auth == nil || auth.UserID == "" || auth.RefreshToken == "" {
		return fmt.Errorf("session must carry a user id and a refresh token")
	}
	return s.update(func(tx *bbolt.Tx) error {
		return putJSON(tx, bucketAuth, sessionKey, auth)
	})
}

// GetAuth returns the stored session or storage.ErrAuthNotFound
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	auth := &storage.AuthData{}
	err := s.view(func(tx *bbolt.Tx) error {
		return getJSON(tx, bucketAuth, sessionKey, auth, storage.ErrAuthNotFound)
	})
	if err != nil {
		return nil, err
	}
	return auth, nil
}

// DeleteAuth removes the session on logout
func (s *Storage) DeleteAuth(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketAuth)
		if err != nil {
			return err
		}
		if bucket.Get(sessionKey) == nil {
			return storage.ErrAuthNotFound
		}
		return bucket.Delete(sessionKey)
	})
}
