// Package workflow models business-process graphs built from five node kinds,
// checks them for structural and content problems, and produces a dry-run
// execution trace without performing any side effects.
//
// The package never owns or mutates a live graph. Callers hand in a Graph
// snapshot per call and get fresh Findings or a Trace back.
package workflow

// Kind is the tag of a node payload.
type Kind string

const (
	KindStart     Kind = "start"
	KindTask      Kind = "task"
	KindApproval  Kind = "approval"
	KindAutomated Kind = "automated"
	KindEnd       Kind = "end"

	// KindUnknown is reported for a node that carries no payload.
	KindUnknown Kind = "unknown"
)

// Kinds returns the closed set of node kinds in palette order.
func Kinds() []Kind {
	return []Kind{KindStart, KindTask, KindApproval, KindAutomated, KindEnd}
}

// Valid reports whether k is one of the five node kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindStart, KindTask, KindApproval, KindAutomated, KindEnd:
		return true
	}
	return false
}

// Payload is the kind-specific data of a node. The set of implementations is
// closed: StartData, TaskData, ApprovalData, AutomatedData and EndData.
type Payload interface {
	Kind() Kind
	// DisplayLabel is the display string shown on the canvas.
	DisplayLabel() string
	// TitleText returns the title field and whether the kind has one.
	TitleText() (string, bool)

	isPayload()
}

// Position is the canvas location of a node. Presentation only.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a single step in a workflow graph.
type Node struct {
	ID       string   `json:"id"`
	Position Position `json:"position"`
	Data     Payload  `json:"data"`
}

// Kind returns the payload tag, or KindUnknown when the payload is missing.
func (n Node) Kind() Kind {
	if n.Data == nil {
		return KindUnknown
	}
	return n.Data.Kind()
}

// Edge is a directed connection between two nodes.
// Self-loops and duplicate edges are allowed.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is an immutable snapshot handed over by the editing surface.
// Node order is insertion order and is significant.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodesOfKind returns the nodes tagged kind, in graph order.
func (g Graph) NodesOfKind(kind Kind) []Node {
	var out []Node
	for _, n := range g.Nodes {
		if n.Kind() == kind {
			out = append(out, n)
		}
	}
	return out
}

// HasIncoming reports whether any edge targets nodeID.
// Edges whose source does not exist still count.
func (g Graph) HasIncoming(nodeID string) bool {
	for _, e := range g.Edges {
		if e.Target == nodeID {
			return true
		}
	}
	return false
}

// HasOutgoing reports whether any edge starts at nodeID.
// Edges whose target does not exist still count.
func (g Graph) HasOutgoing(nodeID string) bool {
	for _, e := range g.Edges {
		if e.Source == nodeID {
			return true
		}
	}
	return false
}

// Node looks up a node by ID. Returns false for dangling references.
func (g Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
