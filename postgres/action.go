package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/meikuraledutech/workflow"
)

const upsertActionSQL = `
INSERT INTO automation_actions (id, label, params) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET label = EXCLUDED.label, params = EXCLUDED.params`

// SeedDefaults upserts the built-in actions in one transaction.
// Existing rows keep their position in the listing.
func (s *PGStore) SeedDefaults(ctx context.Context) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("workflow: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range workflow.DefaultActions() {
		if _, err := tx.Exec(ctx, upsertActionSQL, a.ID, a.Label, params(a.Params)); err != nil {
			return fmt.Errorf("workflow: seed action %s: %w", a.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("workflow: commit: %w", err)
	}
	return nil
}

// PutAction inserts or replaces an action. New actions are listed last.
func (s *PGStore) PutAction(ctx context.Context, a *workflow.Action) error {
	if a.ID == "" {
		return fmt.Errorf("workflow: put action: empty id")
	}
	if _, err := s.db.Exec(ctx, upsertActionSQL, a.ID, a.Label, params(a.Params)); err != nil {
		return fmt.Errorf("workflow: put action %s: %w", a.ID, err)
	}
	return nil
}

// GetAction fetches a single action by its ID.
// Returns ErrActionNotFound if it doesn't exist.
func (s *PGStore) GetAction(ctx context.Context, id string) (*workflow.Action, error) {
	var a workflow.Action
	err := s.db.QueryRow(ctx,
		`SELECT id, label, params FROM automation_actions WHERE id = $1`, id,
	).Scan(&a.ID, &a.Label, &a.Params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, workflow.ErrActionNotFound
		}
		return nil, fmt.Errorf("workflow: get action: %w", err)
	}
	return &a, nil
}

// DeleteAction deletes an action by its ID.
// No error if the action doesn't exist.
func (s *PGStore) DeleteAction(ctx context.Context, id string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM automation_actions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("workflow: delete action: %w", err)
	}
	return nil
}

// ListActions returns every action in insertion order.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListActions(ctx context.Context) ([]workflow.Action, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, label, params FROM automation_actions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("workflow: list actions: %w", err)
	}
	defer rows.Close()

	actions := []workflow.Action{}
	for rows.Next() {
		var a workflow.Action
		if err := rows.Scan(&a.ID, &a.Label, &a.Params); err != nil {
			return nil, fmt.Errorf("workflow: scan action: %w", err)
		}
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workflow: rows actions: %w", err)
	}

	return actions, nil
}

// params keeps NOT NULL satisfied for actions without parameters.
func params(p []string) []string {
	if p == nil {
		return []string{}
	}
	return p
}
