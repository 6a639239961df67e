// Package idempotency maps client-supplied Idempotency-Key headers to the
// payment created for them, so a retried POST returns the original record
// instead of double-submitting.
package idempotency

import (
	"time"

	bolt "github.com/boltdb/bolt"
)

const bucketName = "idempotency_keys"

type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the BoltDB file and ensures the key bucket exists.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Lookup returns the payment id previously recorded for key, if any.
func (s *Store) Lookup(key string) (string, bool, error) {
	var id string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(key)); v != nil {
			id = string(v)
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return id, id != "", nil
}

// Remember records key -> paymentID unless the key is already taken, and
// returns the id that owns the key afterwards. The check and the write are
// one transaction, so concurrent retries agree on a single owner.
func (s *Store) Remember(key, paymentID string) (string, error) {
	owner := paymentID
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if v := b.Get([]byte(key)); v != nil {
			owner = string(v)
			return nil
		}
		return b.Put([]byte(key), []byte(paymentID))
	})
	if err != nil {
		return "", err
	}
	return owner, nil
}
