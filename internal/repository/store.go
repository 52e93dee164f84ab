package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrStore marks a failed transaction. The underlying cause stays reachable
// through errors.Is and errors.As.
var ErrStore = errors.New("store operation failed")

// Store bundles the repositories that share one database handle.
type Store struct {
	db         *gorm.DB
	Categories *CategoryRepository
	Regrets    *RegretRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		Categories: NewCategoryRepository(db),
		Regrets:    NewRegretRepository(db),
	}
}

// Transaction runs fn against a Store bound to one transaction. The
// transaction commits when fn returns nil and rolls back otherwise. Any
// failure is wrapped in ErrStore.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
