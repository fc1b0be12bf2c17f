// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

import "time"

// ProfileStore persists profiling runs to durable storage.
// The backing store (bbolt) keeps one JSON document per run, keyed by run ID.
// Concurrent reads are safe; writes are serialized by the adapter.
//
// Crash safety: SaveRun must be transactional. A crash mid-write must not
// corrupt previously committed runs.
type ProfileStore interface {
	// SaveRun persists a run. Overwrites any prior run with the same ID.
	SaveRun(run *ProfileRun) error

	// LoadRun retrieves a run by ID.
	// Returns nil, nil if no run exists with that ID.
	LoadRun(id string) (*ProfileRun, error)

	// ListRuns returns all stored run IDs in ascending order.
	ListRuns() ([]string, error)

	// DeleteRun removes a run.
	// Idempotent: deleting a nonexistent run is not an error.
	DeleteRun(id string) error
}

// ProfileRun is one recorded profiling session over the text operations.
type ProfileRun struct {
	ID         string                    `json:"id"`
	Label      string                    `json:"label,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
	Iterations int                       `json:"iterations"`
	Stats      map[string]OperationStats `json:"stats"`
}

// OperationStats summarizes the recorded durations of one operation.
type OperationStats struct {
	Count int           `json:"count"`
	Total time.Duration `json:"total"`
	Mean  time.Duration `json:"mean"`
	Min   time.Duration `json:"min"`
	Max   time.Duration `json:"max"`
}
