package postgres

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS automation_actions (
    id         TEXT PRIMARY KEY,
    label      TEXT NOT NULL,
    params     TEXT[] NOT NULL DEFAULT '{}',
    seq        BIGSERIAL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_automation_actions_seq ON automation_actions(seq);
`

// CreateSchema creates the automation_actions table if it doesn't exist.
func (s *PGStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return err
}

// DropSchema drops the automation_actions table.
func (s *PGStore) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS automation_actions CASCADE;`)
	return err
}
