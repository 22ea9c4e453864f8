package workflow

import (
	"context"
	"errors"
)

var ErrActionNotFound = errors.New("workflow: automation action not found")

// CatalogStore defines the contract for persisting the automation catalog.
// Workflow graphs themselves are never persisted.
type CatalogStore interface {
	CatalogSource

	// Schema
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Actions
	SeedDefaults(ctx context.Context) error
	PutAction(ctx context.Context, a *Action) error
	GetAction(ctx context.Context, id string) (*Action, error)
	DeleteAction(ctx context.Context, id string) error
}
