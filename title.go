package workflow

import "strconv"

// DisplayTitle resolves the name shown for the node at index i (0-based) of a
// graph: the payload label, else its title when the kind has one, else
// "Node <i+1>".
func DisplayTitle(n Node, i int) string {
	if n.Data != nil {
		if label := n.Data.DisplayLabel(); label != "" {
			return label
		}
		if title, ok := n.Data.TitleText(); ok && title != "" {
			return title
		}
	}
	return "Node " + strconv.Itoa(i+1)
}

// titleOf returns the raw title field, used by content messages that quote
// the title even when it is blank.
func titleOf(n Node) string {
	if n.Data == nil {
		return ""
	}
	title, _ := n.Data.TitleText()
	return title
}
