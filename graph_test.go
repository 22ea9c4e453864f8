package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodesOfKindKeepsOrder(t *testing.T) {
	g := Graph{Nodes: []Node{
		start("s1", "A"),
		task("t1", "T", "amy"),
		start("s2", "B"),
		end("e1"),
	}}

	starts := g.NodesOfKind(KindStart)
	assert.Equal(t, []string{"s1", "s2"}, ids(starts))
	assert.Empty(t, g.NodesOfKind(KindApproval))
}

func TestDegreeQueriesCountDanglingEdges(t *testing.T) {
	g := Graph{
		Nodes: []Node{start("s", "A")},
		Edges: []Edge{
			{ID: "x", Source: "s", Target: "ghost"},
			{ID: "y", Source: "phantom", Target: "nobody"},
		},
	}

	assert.True(t, g.HasOutgoing("s"))
	assert.False(t, g.HasIncoming("s"))
	// Endpoints that name no node still satisfy the checks.
	assert.True(t, g.HasIncoming("ghost"))
	assert.True(t, g.HasOutgoing("phantom"))

	_, ok := g.Node("ghost")
	assert.False(t, ok)
}

func TestSelfLoopCountsBothWays(t *testing.T) {
	g := Graph{
		Nodes: []Node{task("t", "Review", "amy")},
		Edges: []Edge{{ID: "loop", Source: "t", Target: "t"}},
	}
	assert.True(t, g.HasIncoming("t"))
	assert.True(t, g.HasOutgoing("t"))
}

func TestNodeKindWithoutPayload(t *testing.T) {
	assert.Equal(t, KindUnknown, Node{ID: "x"}.Kind())
	assert.False(t, KindUnknown.Valid())
	for _, k := range Kinds() {
		assert.True(t, k.Valid(), k)
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		name string
		node Node
		i    int
		want string
	}{
		{"label wins", Node{Data: TaskData{Label: "Collect docs", Title: "New Task"}}, 0, "Collect docs"},
		{"title fallback", Node{Data: ApprovalData{Title: "Manager sign-off"}}, 1, "Manager sign-off"},
		{"end has no title", Node{Data: EndData{}}, 2, "Node 3"},
		{"blank label and title", Node{Data: StartData{}}, 0, "Node 1"},
		{"missing payload", Node{}, 4, "Node 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayTitle(tt.node, tt.i))
		})
	}
}

func ids(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}
