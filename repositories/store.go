package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrStoreUnavailable is returned by every repository when the process runs
// without a configured database. Distinct from not-found (a nil result) and
// from validation errors (rejected in the controllers).
var ErrStoreUnavailable = errors.New("backing store unavailable")

// Store wraps the database handle passed to every repository at construction.
// The handle may be absent when DB_URL was never configured; repositories
// check before each operation.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB returns the live handle or ErrStoreUnavailable.
func (s *Store) DB() (*gorm.DB, error) {
	if s == nil || s.db == nil {
		return nil, ErrStoreUnavailable
	}
	return s.db, nil
}

// Available reports whether a backing store is configured.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}
