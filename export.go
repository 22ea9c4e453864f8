package workflow

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// The export document is the graph itself:
//
//	{"nodes":[{"id","type","position","data"}],"edges":[{"id","source","target"}]}
//
// data repeats the type tag so the document reads the same as the editor's
// own download.

type nodeJSON struct {
	ID       string          `json:"id"`
	Type     Kind            `json:"type"`
	Position Position        `json:"position"`
	Data     json.RawMessage `json:"data"`
}

// MarshalJSON writes the node in export form.
func (n Node) MarshalJSON() ([]byte, error) {
	data, err := marshalPayload(n.Data)
	if err != nil {
		return nil, fmt.Errorf("workflow: encode node %s: %w", n.ID, err)
	}
	return json.Marshal(nodeJSON{ID: n.ID, Type: n.Kind(), Position: n.Position, Data: data})
}

// UnmarshalJSON reads a node in export form. The tag is taken from "type",
// falling back to "data.type".
func (n *Node) UnmarshalJSON(b []byte) error {
	var raw nodeJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	kind := raw.Type
	if kind == "" && len(raw.Data) > 0 {
		var tag struct {
			Type Kind `json:"type"`
		}
		if err := json.Unmarshal(raw.Data, &tag); err != nil {
			return fmt.Errorf("workflow: decode node %s: %w", raw.ID, err)
		}
		kind = tag.Type
	}
	p, err := unmarshalPayload(kind, raw.Data)
	if err != nil {
		return fmt.Errorf("workflow: decode node %s: %w", raw.ID, err)
	}
	*n = Node{ID: raw.ID, Position: raw.Position, Data: p}
	return nil
}

func marshalPayload(p Payload) (json.RawMessage, error) {
	switch d := p.(type) {
	case StartData:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			StartData
		}{KindStart, d})
	case TaskData:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			TaskData
		}{KindTask, d})
	case ApprovalData:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			ApprovalData
		}{KindApproval, d})
	case AutomatedData:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			AutomatedData
		}{KindAutomated, d})
	case EndData:
		return json.Marshal(struct {
			Type Kind `json:"type"`
			EndData
		}{KindEnd, d})
	case nil:
		return json.RawMessage("null"), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownKind, p)
	}
}

func unmarshalPayload(kind Kind, data json.RawMessage) (Payload, error) {
	if len(data) == 0 || string(data) == "null" {
		if kind == "" || kind == KindUnknown {
			return nil, nil
		}
		data = json.RawMessage("{}")
	}
	switch kind {
	case KindStart:
		var d StartData
		err := json.Unmarshal(data, &d)
		return d, err
	case KindTask:
		var d TaskData
		err := json.Unmarshal(data, &d)
		return d, err
	case KindApproval:
		var d ApprovalData
		err := json.Unmarshal(data, &d)
		return d, err
	case KindAutomated:
		var d AutomatedData
		err := json.Unmarshal(data, &d)
		return d, err
	case KindEnd:
		var d EndData
		err := json.Unmarshal(data, &d)
		return d, err
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Export encodes g as an indented export document.
func Export(g Graph) ([]byte, error) {
	if g.Nodes == nil {
		g.Nodes = []Node{}
	}
	if g.Edges == nil {
		g.Edges = []Edge{}
	}
	b, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("workflow: export: %w", err)
	}
	return b, nil
}

// Import decodes an export document.
func Import(b []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(b, &g); err != nil {
		return Graph{}, fmt.Errorf("workflow: import: %w", err)
	}
	return g, nil
}

// ImportLenient decodes an export document that may have been edited by
// hand, repairing trailing commas, missing quotes and similar damage first.
func ImportLenient(b []byte) (Graph, error) {
	g, err := Import(b)
	if err == nil {
		return g, nil
	}
	repaired, repairErr := jsonrepair.JSONRepair(string(b))
	if repairErr != nil {
		return Graph{}, fmt.Errorf("workflow: import: %w", err)
	}
	return Import([]byte(repaired))
}
