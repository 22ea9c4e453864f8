package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/meikuraledutech/workflow"
)

// catalogTimeout bounds the single catalog fetch made per request.
const catalogTimeout = 5 * time.Second

type api struct {
	catalog workflow.CatalogSource
	log     *slog.Logger
}

type newNodeRequest struct {
	Type     workflow.Kind     `json:"type"`
	Position workflow.Position `json:"position"`
}

type validateResponse struct {
	Valid    bool              `json:"valid"`
	Findings workflow.Findings `json:"findings"`
}

func newApp(catalog workflow.CatalogSource, logger *slog.Logger) *fiber.App {
	a := &api{catalog: catalog, log: logger}

	app := fiber.New()
	app.Use(requestLogger(logger))

	// ── Palette ───────────────────────────────────────────────────────
	app.Get("/automations", a.listAutomations)
	app.Get("/approver-roles", func(c fiber.Ctx) error {
		return c.JSON(workflow.ApproverRoles())
	})
	app.Post("/nodes", a.createNode)

	// ── Graph snapshots ───────────────────────────────────────────────
	app.Post("/validate", a.validate)
	app.Post("/simulate", a.simulate)
	app.Post("/import", a.importGraph)
	app.Post("/export", a.exportGraph)

	return app
}

func (a *api) fetchCatalog(c fiber.Ctx) (workflow.Catalog, error) {
	ctx, cancel := context.WithTimeout(c.Context(), catalogTimeout)
	defer cancel()
	return workflow.FetchCatalog(ctx, a.catalog)
}

func (a *api) listAutomations(c fiber.Ctx) error {
	catalog, err := a.fetchCatalog(c)
	if err != nil {
		a.log.Warn("automation catalog fetch failed", "requestID", requestID(c), "error", err)
		return c.Status(503).JSON(fiber.Map{"error": "automation catalog unavailable"})
	}
	if catalog == nil {
		catalog = workflow.Catalog{}
	}
	return c.JSON(catalog)
}

func (a *api) createNode(c fiber.Ctx) error {
	var req newNodeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	node, err := workflow.NewNode(req.Type, req.Position)
	if errors.Is(err, workflow.ErrUnknownKind) {
		return c.Status(400).JSON(fiber.Map{"error": fmt.Sprintf("unknown node type %q", req.Type)})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(node)
}

func (a *api) validate(c fiber.Ctx) error {
	g, err := workflow.Import(c.Body())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	findings := workflow.Validate(g)
	if findings == nil {
		findings = workflow.Findings{}
	}
	return c.JSON(validateResponse{Valid: findings.Simulatable(), Findings: findings})
}

// simulate fetches the catalog once and runs the dry run. A failed fetch
// degrades Automated steps to their fallback message instead of failing.
func (a *api) simulate(c fiber.Ctx) error {
	g, err := workflow.Import(c.Body())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	catalog, err := a.fetchCatalog(c)
	if err != nil {
		a.log.Warn("simulating without automation catalog", "requestID", requestID(c), "error", err)
		catalog = nil
	}

	trace := workflow.Simulate(g, catalog)
	a.log.Debug("simulated workflow",
		"requestID", requestID(c),
		"nodes", len(g.Nodes),
		"steps", len(trace.Steps),
		"success", trace.Success,
	)
	return c.JSON(trace)
}

// importGraph accepts a possibly hand-edited export and returns it normalized.
func (a *api) importGraph(c fiber.Ctx) error {
	g, err := workflow.ImportLenient(c.Body())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	out, err := workflow.Export(g)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}

func (a *api) exportGraph(c fiber.Ctx) error {
	g, err := workflow.Import(c.Body())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	out, err := workflow.Export(g)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	c.Attachment(fmt.Sprintf("workflow-%d.json", time.Now().Unix()))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}
