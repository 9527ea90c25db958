package rbtree

// Tree is a red-black tree of distinct integer keys.
//
// A tree created by
//
//	Tree{}
//
// is a valid empty tree.
//
//	Operation     |   Tree
//	--------------+-----------
//	Insert        |   O(log n)
//	Find          |   O(log n)
//	Height        |   O(n)
//
// A tree is not safe for concurrent use.
type Tree struct {
	root  *Node
	count int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Root returns the root node of the tree, or nil for an empty tree.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, where 0 means empty and 1 means a single root node.
func (t *Tree) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Insert adds value to the tree. Inserting a value which is already present
// leaves the tree unchanged.
func (t *Tree) Insert(value int) {
	if t.root == nil {
		t.root = newNode(value)
		t.count = 1
	} else {
		var inserted bool
		t.root, inserted = insert(t.root, value)
		if !inserted {
			tracer().Debugf("rbtree: value %d already present", value)
			return
		}
		t.count++
	}
	t.root.color = Black
}

// insert places value into the subtree at n and returns the new subtree root
// to be linked in place of n. Only subtrees which actually received a node
// are re-balanced.
func insert(n *Node, value int) (*Node, bool) {
	if n == nil {
		tracer().Debugf("rbtree: insert %d as red leaf", value)
		return newNode(value), true
	}
	var inserted bool
	switch {
	case value == n.value:
		return n, false
	case value > n.value:
		n.right, inserted = insert(n.right, value)
	default:
		n.left, inserted = insert(n.left, value)
	}
	if !inserted {
		return n, false
	}
	return balance(n), true
}

// Find returns the node holding value. If value is not present, Find returns
// nil and false. Find never modifies the tree.
func (t *Tree) Find(value int) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	n := t.root
	for n != nil {
		switch {
		case value == n.value:
			return n, true
		case value > n.value:
			n = n.right
		default:
			n = n.left
		}
	}
	return nil, false
}

// Contains reports whether value is present in the tree.
func (t *Tree) Contains(value int) bool {
	_, ok := t.Find(value)
	return ok
}

// walk visits the nodes of the subtree at n in order, together with their
// depth below the subtree root. Iteration stops early if fn returns false.
func walk(n *Node, depth int, fn func(n *Node, depth int) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.left, depth+1, fn) {
		return false
	}
	if !fn(n, depth) {
		return false
	}
	return walk(n.right, depth+1, fn)
}
