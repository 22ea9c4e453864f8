package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/meikuraledutech/workflow"
	"github.com/meikuraledutech/workflow/postgres"
)

func main() {
	ctx := context.Background()

	// Use the postgres catalog when DATABASE_URL is set, otherwise the
	// built-in one.
	var src workflow.CatalogSource = workflow.NewStaticCatalog()
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pool, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			log.Fatalf("connect: %v", err)
		}
		defer pool.Close()

		store := postgres.New(pool)
		if err := store.CreateSchema(ctx); err != nil {
			log.Fatalf("schema: %v", err)
		}
		if err := store.SeedDefaults(ctx); err != nil {
			log.Fatalf("seed: %v", err)
		}
		src = store
		fmt.Println("using postgres automation catalog")
	}

	// ── Build an onboarding flow from palette defaults ────────────────
	start := mustNode(workflow.KindStart, 0)
	start.Data = workflow.StartData{Label: "Start", Title: "Employee Onboarding", Metadata: workflow.Metadata{{Key: "dept", Value: "eng"}}}

	docs := mustNode(workflow.KindTask, 1)
	docs.Data = workflow.TaskData{
		Label:    "Collect documents",
		Title:    "Collect documents",
		Assignee: workflow.String("HR Admin"),
		DueDate:  workflow.String("2026-11-01"),
	}

	signoff := mustNode(workflow.KindApproval, 2)
	signoff.Data = workflow.ApprovalData{Label: "Manager sign-off", Title: "Manager sign-off", ApproverRole: workflow.String("Manager")}

	welcome := mustNode(workflow.KindAutomated, 3)
	welcome.Data = workflow.AutomatedData{
		Label:        "Welcome mail",
		Title:        "Welcome mail",
		ActionID:     workflow.String("send_email"),
		ActionParams: map[string]string{"to": "new.hire@example.com", "subject": "Welcome"},
	}

	// Left at its defaults so validation has something to say.
	provision := mustNode(workflow.KindAutomated, 4)

	done := mustNode(workflow.KindEnd, 5)

	g := workflow.Graph{
		Nodes: []workflow.Node{start, docs, signoff, welcome, provision, done},
		Edges: []workflow.Edge{
			workflow.NewEdge(start.ID, docs.ID),
			workflow.NewEdge(docs.ID, signoff.ID),
			workflow.NewEdge(signoff.ID, welcome.ID),
			workflow.NewEdge(welcome.ID, provision.ID),
			workflow.NewEdge(provision.ID, done.ID),
		},
	}

	// ── Validate ──────────────────────────────────────────────────────
	findings := workflow.Validate(g)
	fmt.Printf("findings (%d, simulatable=%t):\n", len(findings), findings.Simulatable())
	printJSON(findings)

	// ── Simulate ──────────────────────────────────────────────────────
	catalog, err := workflow.FetchCatalog(ctx, src)
	if err != nil {
		log.Printf("catalog unavailable, continuing without it: %v", err)
	}
	fmt.Println("\ntrace:")
	printJSON(workflow.Simulate(g, catalog))

	// ── Export ────────────────────────────────────────────────────────
	out, err := workflow.Export(g)
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	fmt.Println("\nexport:")
	fmt.Println(string(out))
}

func mustNode(kind workflow.Kind, row int) workflow.Node {
	n, err := workflow.NewNode(kind, workflow.Position{X: 250, Y: float64(row) * 120})
	if err != nil {
		log.Fatalf("new node: %v", err)
	}
	return n
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
