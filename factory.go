package workflow

import (
	"fmt"

	"github.com/google/uuid"
)

// NewNode returns a node of the given kind at pos with the editor's default
// payload and a fresh ID of the form "<kind>-<uuid>".
func NewNode(kind Kind, pos Position) (Node, error) {
	p, err := DefaultPayload(kind)
	if err != nil {
		return Node{}, err
	}
	return Node{ID: string(kind) + "-" + uuid.NewString(), Position: pos, Data: p}, nil
}

// DefaultPayload returns the payload a freshly dropped node starts with.
func DefaultPayload(kind Kind) (Payload, error) {
	switch kind {
	case KindStart:
		return StartData{Label: "Start", Title: "Workflow Start", Metadata: Metadata{}}, nil
	case KindTask:
		return TaskData{
			Label:        "Task",
			Title:        defaultTaskTitle,
			Description:  String(""),
			Assignee:     String(""),
			DueDate:      String(""),
			CustomFields: map[string]string{},
		}, nil
	case KindApproval:
		return ApprovalData{Label: "Approval", Title: "New Approval", ApproverRole: String("")}, nil
	case KindAutomated:
		return AutomatedData{
			Label:        "Automated",
			Title:        "New Action",
			ActionID:     String(""),
			ActionParams: map[string]string{},
		}, nil
	case KindEnd:
		return EndData{Label: "End", EndMessage: String("Workflow Complete"), ShowSummary: Bool(false)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// NewEdge connects source to target under a fresh ID.
func NewEdge(source, target string) Edge {
	return Edge{ID: "edge-" + uuid.NewString(), Source: source, Target: target}
}

// ApproverRoles is the suggestion list offered for ApprovalData.ApproverRole.
// Any other string is accepted.
func ApproverRoles() []string {
	return []string{"Manager", "HRBP", "Director", "VP", "CEO"}
}
