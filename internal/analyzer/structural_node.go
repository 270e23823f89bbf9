package analyzer

// StructuralNode is a node in the filtered structural tree: the node type
// label and the surviving children in source order. Trees are built once by
// the Normalizer, read by the Serializer, and never mutated in between.
type StructuralNode struct {
	Type     string
	Children []*StructuralNode
}

// NewStructuralNode creates a structural node with the given type label
func NewStructuralNode(nodeType string) *StructuralNode {
	return &StructuralNode{
		Type:     nodeType,
		Children: []*StructuralNode{},
	}
}

// AddChild appends a child node, preserving source order
func (s *StructuralNode) AddChild(child *StructuralNode) {
	if child != nil {
		s.Children = append(s.Children, child)
	}
}

// IsLeaf returns true if this node has no children
func (s *StructuralNode) IsLeaf() bool {
	return len(s.Children) == 0
}

// Size returns the number of nodes in the subtree rooted at this node.
// Iterative so deeply nested trees cannot exhaust the call stack.
func (s *StructuralNode) Size() int {
	if s == nil {
		return 0
	}
	size := 0
	stack := []*StructuralNode{s}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
	return size
}
