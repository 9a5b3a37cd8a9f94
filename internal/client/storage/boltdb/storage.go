package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophotel/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketAuth  = []byte("auth")
	bucketRooms = []byte("rooms")
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

var (
	_ storage.AuthStorage = (*Storage)(nil)
	_ storage.RoomCache   = (*Storage)(nil)
)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Таймаут нужен, чтобы второй экземпляр клиента не зависал на блокировке файла
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketRooms} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

func (s *Storage) update(fn func(tx *bbolt.Tx) error) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(fn)
}

func (s *Storage) view(fn func(tx *bbolt.Tx) error) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.View(fn)
}

func bucketOf(tx *bbolt.Tx, name []byte) (*bbolt.Bucket, error) {
	bucket := tx.Bucket(name)
	if bucket == nil {
		return nil, fmt.Errorf("%s bucket not found", name)
	}
	return bucket, nil
}

// putJSON сохраняет v под key в bucket name
func putJSON(tx *bbolt.Tx, name, key []byte, v any) error {
	bucket, err := bucketOf(tx, name)
	if err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s entry: %w", name, err)
	}
	if err := bucket.Put(key, data); err != nil {
		return fmt.Errorf("failed to save %s entry: %w", name, err)
	}
	return nil
}

// getJSON читает key в v; отсутствующий ключ возвращает notFound
func getJSON(tx *bbolt.Tx, name, key []byte, v any, notFound error) error {
	bucket, err := bucketOf(tx, name)
	if err != nil {
		return err
	}
	data := bucket.Get(key)
	if data == nil {
		return notFound
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s entry: %w", name, err)
	}
	return nil
}
