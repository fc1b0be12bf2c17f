// Package bbolt implements the ports.ProfileStore interface using bbolt (embedded B+ tree).
// Profiling runs live in a single "runs" bucket, one JSON document per run keyed by
// run ID. Writes are transactional — a crash mid-write cannot corrupt previously
// committed data.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/textkit/internal/ports"
)

// Bucket keys
var (
	bucketRuns = []byte("runs")
)

// Store implements ports.ProfileStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

var _ ports.ProfileStore = (*Store)(nil)

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun persists a run, overwriting any run with the same ID.
func (s *Store) SaveRun(run *ports.ProfileRun) error {
	if run == nil {
		return fmt.Errorf("nil profile run")
	}
	if run.ID == "" {
		return fmt.Errorf("profile run has no id")
	}

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal profile run: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketRuns)
		if err != nil {
			return err
		}
		return b.Put([]byte(run.ID), data)
	})
}

// LoadRun retrieves a run by ID.
// Returns nil, nil if no run exists with that ID.
func (s *Store) LoadRun(id string) (*ports.ProfileRun, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRuns)
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get([]byte(id)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if data == nil {
		return nil, nil
	}

	var run ports.ProfileRun
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("unmarshal profile run %q: %w", id, err)
	}
	return &run, nil
}

// ListRuns returns all run IDs in ascending (byte) order.
func (s *Store) ListRuns() ([]string, error) {
	var ids []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRuns)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	return ids, err
}

// DeleteRun removes a run.
// Idempotent: deleting a nonexistent run is not an error.
func (s *Store) DeleteRun(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketRuns)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(id))
	})
}
