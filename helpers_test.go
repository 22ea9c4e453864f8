package workflow

import "strconv"

// chain connects the nodes in order with fresh edge IDs.
func chain(nodes ...Node) Graph {
	g := Graph{Nodes: nodes}
	for i := 1; i < len(nodes); i++ {
		g.Edges = append(g.Edges, Edge{
			ID:     "e" + strconv.Itoa(i),
			Source: nodes[i-1].ID,
			Target: nodes[i].ID,
		})
	}
	return g
}

func start(id, title string) Node {
	return Node{ID: id, Data: StartData{Title: title}}
}

func end(id string) Node {
	return Node{ID: id, Data: EndData{}}
}

func task(id, title, assignee string) Node {
	return Node{ID: id, Data: TaskData{Title: title, Assignee: String(assignee)}}
}

func automated(id, actionID string) Node {
	return Node{ID: id, Data: AutomatedData{Title: "Run " + actionID, ActionID: String(actionID)}}
}
