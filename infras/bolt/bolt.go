package bolt

import (
	"fmt"

	"summitbooking/config"

	"github.com/rs/zerolog/log"
	bbolt "go.etcd.io/bbolt"
)

var bucketSession = []byte("session")

// Store is the flat key-value area backing session state. One bucket, string
// keys and values, durable across process restarts.
type Store struct {
	db *bbolt.DB
}

func New(config *config.Config) *Store {
	store, err := Open(config.Session.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", config.Session.Path).Msg("Failed to open session store")
	}

	return store
}

func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Put(key, value string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to put session key %s: %w", key, err)
	}

	return nil
}

// Get returns the value for key and whether the key was present.
func (s *Store) Get(key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketSession).Get([]byte(key))
		if raw != nil {
			value = string(raw)
			found = true
		}

		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to get session key %s: %w", key, err)
	}

	return value, found, nil
}

// Clear removes every key in the session area.
func (s *Store) Clear() error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketSession); err != nil {
			return err
		}

		_, err := tx.CreateBucket(bucketSession)

		return err
	})
	if err != nil {
		return fmt.Errorf("failed to clear session store: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
