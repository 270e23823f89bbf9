package parser

// RawNode is a single node of the concrete syntax tree produced by the
// grammar. It carries the node type label and the ordered children, including
// anonymous nodes (keywords, operators, punctuation), so downstream filtering
// sees the full token surface of the source.
type RawNode struct {
	Type     string
	Children []*RawNode
}

// AddChild appends a child node, preserving source order
func (n *RawNode) AddChild(child *RawNode) {
	n.Children = append(n.Children, child)
}

// Count returns the number of nodes in the subtree rooted at n, including n.
// The walk is iterative so pathological nesting cannot exhaust the stack.
func (n *RawNode) Count() int {
	if n == nil {
		return 0
	}
	count := 0
	stack := []*RawNode{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
	return count
}
