package workflow

import (
	"fmt"
	"strings"
)

// Severity classifies a Finding.
type Severity string

const (
	// SeverityBlocking findings prevent simulation.
	SeverityBlocking Severity = "blocking"
	// SeverityAdvisory findings are shown alongside results.
	SeverityAdvisory Severity = "advisory"
)

// Finding is one validation result.
type Finding struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	NodeID   string   `json:"nodeId,omitempty"`
}

// Findings is the ordered output of Validate.
type Findings []Finding

// HasBlocking reports whether any finding is blocking.
func (fs Findings) HasBlocking() bool {
	for _, f := range fs {
		if f.Severity == SeverityBlocking {
			return true
		}
	}
	return false
}

// Simulatable reports whether the validated graph may be simulated.
func (fs Findings) Simulatable() bool { return !fs.HasBlocking() }

// Blocking returns the blocking findings in order.
func (fs Findings) Blocking() Findings { return fs.filter(SeverityBlocking) }

// Advisory returns the advisory findings in order.
func (fs Findings) Advisory() Findings { return fs.filter(SeverityAdvisory) }

// Messages returns the finding messages in order.
func (fs Findings) Messages() []string {
	var out []string
	for _, f := range fs {
		out = append(out, f.Message)
	}
	return out
}

func (fs Findings) filter(s Severity) Findings {
	var out Findings
	for _, f := range fs {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

// Messages produced by Validate.
const (
	MsgEmpty             = "Workflow is empty. Add at least one node to begin."
	MsgMissingStart      = "Workflow must have a Start node"
	MsgMultipleStart     = "Workflow has multiple Start nodes. Only one is recommended."
	MsgMissingEnd        = "Workflow must have an End node"
	MsgStartNotConnected = "Start node is not connected to any other node"
	MsgEndNotConnected   = "End node is not connected from any other node"
	MsgTaskNeedsTitle    = "Task node needs a proper title"
	msgNotFullyConnected = "Node %q is not fully connected"
	msgTaskNoAssignee    = "Task %q has no assignee"
	msgApprovalNoRole    = "Approval node %q has no approver role set"
	msgAutomatedNoAction = "Automated node %q has no action selected"
)

// defaultTaskTitle is the title a new Task starts with; leaving it unchanged
// counts as missing.
const defaultTaskTitle = "New Task"

// Validate runs the rule battery over g and returns every finding in rule
// order. It is pure and total: an empty graph yields a single blocking
// finding and nothing else.
func Validate(g Graph) Findings {
	if len(g.Nodes) == 0 {
		return Findings{{Severity: SeverityBlocking, Message: MsgEmpty}}
	}

	var fs Findings
	blocking := func(msg, nodeID string) {
		fs = append(fs, Finding{Severity: SeverityBlocking, Message: msg, NodeID: nodeID})
	}
	advisory := func(msg, nodeID string) {
		fs = append(fs, Finding{Severity: SeverityAdvisory, Message: msg, NodeID: nodeID})
	}

	// Cardinality.
	starts := g.NodesOfKind(KindStart)
	switch {
	case len(starts) == 0:
		blocking(MsgMissingStart, "")
	case len(starts) > 1:
		advisory(MsgMultipleStart, "")
	}
	// Multiple End nodes are accepted without comment.
	ends := g.NodesOfKind(KindEnd)
	if len(ends) == 0 {
		blocking(MsgMissingEnd, "")
	}

	// Entry and exit connectivity look at the first node of each kind only.
	if len(starts) > 0 && !g.HasOutgoing(starts[0].ID) {
		blocking(MsgStartNotConnected, starts[0].ID)
	}
	if len(ends) > 0 && !g.HasIncoming(ends[0].ID) {
		blocking(MsgEndNotConnected, ends[0].ID)
	}

	for i, n := range g.Nodes {
		switch n.Kind() {
		case KindStart, KindEnd:
			continue
		}
		if !g.HasIncoming(n.ID) || !g.HasOutgoing(n.ID) {
			advisory(fmt.Sprintf(msgNotFullyConnected, DisplayTitle(n, i)), n.ID)
		}
	}

	for _, n := range g.Nodes {
		switch d := n.Data.(type) {
		case TaskData:
			if blank(d.Title) || d.Title == defaultTaskTitle {
				advisory(MsgTaskNeedsTitle, n.ID)
			}
			if blank(deref(d.Assignee)) {
				advisory(fmt.Sprintf(msgTaskNoAssignee, d.Title), n.ID)
			}
		case ApprovalData:
			if blank(deref(d.ApproverRole)) {
				advisory(fmt.Sprintf(msgApprovalNoRole, d.Title), n.ID)
			}
		case AutomatedData:
			if blank(deref(d.ActionID)) {
				advisory(fmt.Sprintf(msgAutomatedNoAction, d.Title), n.ID)
			}
		case StartData, EndData, nil:
		}
	}

	return fs
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
