package rbtree

import "fmt"

// Check validates the red-black and search-tree invariants:
//
//   - every node is red or black,
//   - the root is black,
//   - a red node has no red child,
//   - every path from a node to its nil leaves holds the same number of
//     black nodes,
//   - keys in a left subtree are smaller, keys in a right subtree greater
//     than the node's key.
//
// The number of nodes found is checked against Len as well.
// Errors wrap ErrInvariant.
func (t *Tree) Check() error {
	if t == nil || t.root == nil {
		if t != nil && t.count != 0 {
			return fmt.Errorf("%w: empty tree must have len=0, has %d", ErrInvariant, t.count)
		}
		return nil
	}
	if t.root.color != Black {
		return fmt.Errorf("%w: root %d is not black", ErrInvariant, t.root.value)
	}
	count, _, err := checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: node count mismatch (%d != %d)", ErrInvariant, count, t.count)
	}
	return nil
}

// checkNode returns the number of nodes and the black-height of the subtree
// at n. Nil leaves count as black with black-height 1. lo and hi are the
// exclusive key bounds inherited from the ancestors, nil meaning unbounded.
func checkNode(n *Node, lo, hi *int) (count int, blackHeight int, err error) {
	if n == nil {
		return 0, 1, nil
	}
	if n.color != Red && n.color != Black {
		return 0, 0, fmt.Errorf("%w: node %d has invalid color %s", ErrInvariant, n.value, n.color)
	}
	if lo != nil && n.value <= *lo {
		return 0, 0, fmt.Errorf("%w: node %d not greater than ancestor %d", ErrInvariant, n.value, *lo)
	}
	if hi != nil && n.value >= *hi {
		return 0, 0, fmt.Errorf("%w: node %d not less than ancestor %d", ErrInvariant, n.value, *hi)
	}
	if n.color == Red && (isRed(n.left) || isRed(n.right)) {
		return 0, 0, fmt.Errorf("%w: red node %d has red child", ErrInvariant, n.value)
	}
	lcount, lheight, err := checkNode(n.left, lo, &n.value)
	if err != nil {
		return 0, 0, err
	}
	rcount, rheight, err := checkNode(n.right, &n.value, hi)
	if err != nil {
		return 0, 0, err
	}
	if lheight != rheight {
		return 0, 0, fmt.Errorf("%w: non-uniform black-height at node %d (%d != %d)",
			ErrInvariant, n.value, lheight, rheight)
	}
	if n.color == Black {
		lheight++
	}
	return lcount + rcount + 1, lheight, nil
}
