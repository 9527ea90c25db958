package rbtree

import "fmt"

// Color is the coloring of a tree node.
type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	switch c {
	case Black:
		return "BLACK"
	case Red:
		return "RED"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Node is a vertex of a tree. Clients receive nodes from Tree.Find as
// read-only handles; structure and color may only be changed by the tree.
//
// A nil child link is a black nil leaf.
type Node struct {
	value       int
	color       Color
	left, right *Node
}

func newNode(value int) *Node {
	return &Node{value: value, color: Red}
}

// Value returns the key stored in n.
func (n *Node) Value() int {
	return n.value
}

// Color returns the current color of n.
func (n *Node) Color() Color {
	return n.color
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("value: %d {color: %s}", n.value, n.color)
}

// isRed treats absent children as black.
func isRed(n *Node) bool {
	return n != nil && n.color == Red
}
