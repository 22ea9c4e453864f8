package workflow

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() Catalog {
	return Catalog(DefaultActions())
}

func TestSimulateBlockedGraphReturnsFindings(t *testing.T) {
	g := Graph{Nodes: []Node{start("s", "Onboard")}}

	trace := Simulate(g, catalog())
	assert.False(t, trace.Success)
	assert.NotNil(t, trace.Steps)
	assert.Empty(t, trace.Steps)
	if diff := cmp.Diff(Validate(g), trace.Findings); diff != "" {
		t.Errorf("findings mismatch (-validate +trace):\n%s", diff)
	}
}

func TestSimulateEmptyGraph(t *testing.T) {
	trace := Simulate(Graph{}, catalog())
	assert.False(t, trace.Success)
	assert.Empty(t, trace.Steps)
	assert.Equal(t, []string{MsgEmpty}, trace.Findings.Messages())
}

// Scenario: advisory findings do not stop the run.
func TestSimulateWithAdvisories(t *testing.T) {
	g := chain(start("s", "Onboard"), task("t", "New Task", ""), end("e"))

	trace := Simulate(g, catalog())
	require.True(t, trace.Success)
	require.Len(t, trace.Steps, 3)
	assert.Equal(t, "Task created but no assignee specified", trace.Steps[1].Message)
	assert.Len(t, trace.Findings, 2)
	assert.False(t, trace.Findings.HasBlocking())
}

func TestSimulateStepsFollowNodeOrder(t *testing.T) {
	// The End node is inserted before the Task it follows.
	s := start("s", "Onboard")
	e := end("e")
	tk := task("t", "Collect", "amy")
	g := Graph{
		Nodes: []Node{s, e, tk},
		Edges: []Edge{{ID: "1", Source: "s", Target: "t"}, {ID: "2", Source: "t", Target: "e"}},
	}

	trace := Simulate(g, catalog())
	require.True(t, trace.Success)
	assert.Equal(t, []string{"s", "e", "t"}, stepIDs(trace.Steps))
}

func TestSimulateStatusIsAlwaysCompleted(t *testing.T) {
	g := chain(
		start("s", ""),
		task("t", "", ""),
		Node{ID: "a", Data: ApprovalData{}},
		automated("x", ""),
		Node{ID: "u"},
		end("e"),
	)

	trace := Simulate(g, nil)
	require.True(t, trace.Success)
	require.Len(t, trace.Steps, len(g.Nodes))
	for _, s := range trace.Steps {
		assert.Equal(t, StatusCompleted, s.Status, s.NodeID)
	}
}

func TestSimulateMessages(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"task with due date", Node{ID: "n", Data: TaskData{Title: "T", Assignee: String("amy"), DueDate: String("2026-11-01")}}, "Task assigned to amy (Due: 2026-11-01)"},
		{"task without due date", Node{ID: "n", Data: TaskData{Title: "T", Assignee: String("amy"), DueDate: String("")}}, "Task assigned to amy"},
		{"approval with role", Node{ID: "n", Data: ApprovalData{Title: "A", ApproverRole: String("HRBP")}}, "Approval request sent to HRBP"},
		{"approval without role", Node{ID: "n", Data: ApprovalData{Title: "A"}}, "Approval step configured"},
		// Scenario: catalog label is resolved.
		{"known action", automated("n", "send_email"), "Executed automated action: Send Email"},
		{"unknown action", automated("n", "fax_it"), "Automated step executed"},
		{"empty action", automated("n", ""), "Automated step executed"},
		{"missing payload", Node{ID: "n"}, "Executed unknown node"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := chain(start("s", "Onboard"), tt.node, end("e"))
			trace := Simulate(g, catalog())
			require.True(t, trace.Success)
			assert.Equal(t, "Workflow initiated: Onboard", trace.Steps[0].Message)
			assert.Equal(t, tt.want, trace.Steps[1].Message)
		})
	}
}

func TestSimulateEndMessage(t *testing.T) {
	custom := Node{ID: "e", Data: EndData{EndMessage: String("Welcome aboard")}}
	empty := Node{ID: "e", Data: EndData{EndMessage: String("")}}

	trace := Simulate(chain(start("s", "A"), custom), nil)
	assert.Equal(t, "Welcome aboard", trace.Steps[1].Message)

	trace = Simulate(chain(start("s", "A"), empty), nil)
	assert.Equal(t, "Workflow completed successfully", trace.Steps[1].Message)
}

// Scenario: the catalog could not be fetched.
func TestSimulateWithoutCatalog(t *testing.T) {
	g := chain(start("s", "Onboard"), automated("x", "send_email"), end("e"))

	trace := Simulate(g, nil)
	assert.True(t, trace.Success)
	assert.Equal(t, "Automated step executed", trace.Steps[1].Message)

	trace = Simulate(g, Catalog{})
	assert.Equal(t, "Automated step executed", trace.Steps[1].Message)
}

func TestSimulateStepTitles(t *testing.T) {
	g := chain(
		Node{ID: "s", Data: StartData{Label: "Start", Title: "Onboard"}},
		Node{ID: "t", Data: TaskData{Title: "Collect", Assignee: String("amy")}},
		end("e"),
	)

	trace := Simulate(g, nil)
	got := []string{trace.Steps[0].NodeTitle, trace.Steps[1].NodeTitle, trace.Steps[2].NodeTitle}
	assert.Equal(t, []string{"Start", "Collect", "Node 3"}, got)
}

func stepIDs(steps []Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.NodeID
	}
	return out
}
