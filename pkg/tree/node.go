package tree

// Node represents one path segment at one position in the forest.
type Node struct {
	// Name is the raw segment text. It is sanitized only when rendered.
	Name string `yaml:"name"`

	// Children are kept in first-seen order. Sibling names are unique.
	Children []*Node `yaml:"children,omitempty"`
}

// Forest is the ordered list of root nodes.
type Forest []*Node

// Child returns the direct child called name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Len counts n and all of its descendants.
func (n *Node) Len() int {
	total := 1
	for _, c := range n.Children {
		total += c.Len()
	}
	return total
}

// Len counts every node in the forest.
func (f Forest) Len() int {
	total := 0
	for _, n := range f {
		total += n.Len()
	}
	return total
}
