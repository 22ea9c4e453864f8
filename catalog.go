package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrCatalogUnavailable = errors.New("workflow: automation catalog unavailable")
	ErrUnknownKind        = errors.New("workflow: unknown node kind")
)

// Action describes one automation an Automated node can run.
type Action struct {
	ID     string   `json:"id"`
	Label  string   `json:"label"`
	Params []string `json:"params"`
}

// Catalog is a snapshot of the available actions. A nil Catalog stands for
// an unavailable catalog; lookups against it always miss.
type Catalog []Action

// FindAction resolves id against the catalog. An empty id never matches.
func FindAction(c Catalog, id string) (Action, bool) {
	if id == "" {
		return Action{}, false
	}
	for _, a := range c {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// CatalogSource lists automation actions from wherever they live.
type CatalogSource interface {
	ListActions(ctx context.Context) ([]Action, error)
}

// FetchCatalog reads one catalog snapshot from src. Any failure is reported
// as ErrCatalogUnavailable; callers are expected to fall back to a nil
// Catalog rather than abort the simulation.
func FetchCatalog(ctx context.Context, src CatalogSource) (Catalog, error) {
	if src == nil {
		return nil, ErrCatalogUnavailable
	}
	actions, err := src.ListActions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	return Catalog(actions), nil
}

// DefaultActions returns the built-in automation actions.
func DefaultActions() []Action {
	return []Action{
		{ID: "send_email", Label: "Send Email", Params: []string{"to", "subject", "body"}},
		{ID: "generate_doc", Label: "Generate Document", Params: []string{"template", "recipient"}},
		{ID: "create_ticket", Label: "Create Support Ticket", Params: []string{"priority", "description"}},
		{ID: "notify_slack", Label: "Send Slack Notification", Params: []string{"channel", "message"}},
		{ID: "update_database", Label: "Update Database", Params: []string{"table", "data"}},
	}
}

// StaticCatalog is an in-memory CatalogSource. Latency, when set, is waited
// out before answering so callers can exercise cancellation.
type StaticCatalog struct {
	Actions []Action
	Latency time.Duration
}

// NewStaticCatalog returns a StaticCatalog serving DefaultActions.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{Actions: DefaultActions()}
}

// ListActions returns a copy of the configured actions.
func (s *StaticCatalog) ListActions(ctx context.Context) ([]Action, error) {
	if s.Latency > 0 {
		t := time.NewTimer(s.Latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Action, len(s.Actions))
	for i, a := range s.Actions {
		a.Params = append([]string(nil), a.Params...)
		out[i] = a
	}
	return out, nil
}
