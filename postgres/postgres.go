// Package postgres implements workflow.CatalogStore on PostgreSQL via pgx.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meikuraledutech/workflow"
)

// PGStore implements workflow.CatalogStore using PostgreSQL via pgx.
type PGStore struct {
	db *pgxpool.Pool
}

// New creates a new PGStore backed by the given pgx connection pool.
func New(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

var _ workflow.CatalogStore = (*PGStore)(nil)
