package workflow

import "fmt"

// Status is the outcome of one simulated step.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	// StatusFailed is never assigned today; incomplete content is reported
	// through advisory findings instead.
	StatusFailed Status = "failed"
)

// Step is the simulated execution of one node.
type Step struct {
	NodeID    string `json:"nodeId"`
	NodeTitle string `json:"nodeTitle"`
	Status    Status `json:"status"`
	Message   string `json:"message"`
}

// Trace is the result of a dry run.
type Trace struct {
	Success  bool     `json:"success"`
	Steps    []Step   `json:"steps"`
	Findings Findings `json:"findings,omitempty"`
}

// Simulate produces a dry-run trace of g.
//
// The graph is validated first. If any finding is blocking, the trace is
// unsuccessful, has no steps, and carries every finding. Otherwise there is
// one completed step per node in graph order, and advisory findings ride
// along for display.
//
// Edges are not consulted: steps follow insertion order, not reachability
// from the Start node, so a branching graph or one built out of causal order
// yields a trace whose order does not reflect the flow.
//
// A nil catalog is treated as unavailable and every Automated node gets the
// fallback message.
func Simulate(g Graph, catalog Catalog) Trace {
	findings := Validate(g)
	if findings.HasBlocking() {
		return Trace{Success: false, Steps: []Step{}, Findings: findings}
	}

	steps := make([]Step, 0, len(g.Nodes))
	for i, n := range g.Nodes {
		steps = append(steps, Step{
			NodeID:    n.ID,
			NodeTitle: DisplayTitle(n, i),
			Status:    StatusCompleted,
			Message:   stepMessage(n, catalog),
		})
	}
	return Trace{Success: true, Steps: steps, Findings: findings}
}

func stepMessage(n Node, catalog Catalog) string {
	switch d := n.Data.(type) {
	case StartData:
		return "Workflow initiated: " + d.Title
	case TaskData:
		assignee := deref(d.Assignee)
		if assignee == "" {
			return "Task created but no assignee specified"
		}
		msg := "Task assigned to " + assignee
		if due := deref(d.DueDate); due != "" {
			msg += " (Due: " + due + ")"
		}
		return msg
	case ApprovalData:
		if role := deref(d.ApproverRole); role != "" {
			return "Approval request sent to " + role
		}
		return "Approval step configured"
	case AutomatedData:
		if a, ok := FindAction(catalog, deref(d.ActionID)); ok {
			return "Executed automated action: " + a.Label
		}
		return "Automated step executed"
	case EndData:
		if msg := deref(d.EndMessage); msg != "" {
			return msg
		}
		return "Workflow completed successfully"
	default:
		return fmt.Sprintf("Executed %s node", n.Kind())
	}
}
