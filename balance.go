package rbtree

// balance restores the red-black properties locally at n, after one of n's
// subtrees has changed. It returns the node which now sits at n's position.
//
// Rules are checked in fixed order on every pass. A rotation asks for another
// pass, as it may set up the condition of another rule. A color flip ends the
// loop: it turns n red, which may leave a red-red link to n's parent, to be
// repaired by the parent's own call to balance.
func balance(n *Node) *Node {
	again := true
	for again {
		again = false
		if isRed(n.right) && !isRed(n.left) {
			n = rotateLeft(n)
			again = true
		}
		if isRed(n.left) && isRed(n.left.left) {
			n = rotateRight(n)
			again = true
		}
		if isRed(n.left) && isRed(n.right) {
			recolorForSplit(n)
			again = false
		}
	}
	return n
}

// rotateLeft promotes the right child of n.
func rotateLeft(n *Node) *Node {
	/*
		    Before:               After:
		          n                    x
		         / \                  / \
		        A   x       →        n   C
		           / \              / \
		          B   C            A   B
	*/
	assert(n.right != nil, "rotateLeft called on node without right child")
	x := n.right
	n.right = x.left
	x.left = n
	x.color = n.color
	n.color = Red
	tracer().Debugf("rbtree: rotate left at %d, promoting %d", n.value, x.value)
	return x
}

// rotateRight promotes the left child of n.
func rotateRight(n *Node) *Node {
	/*
		    Before:               After:
		          n                    x
		         / \                  / \
		        x   C       →        A   n
		       / \                      / \
		      A   B                    B   C
	*/
	assert(n.left != nil, "rotateRight called on node without left child")
	x := n.left
	n.left = x.right
	x.right = n
	x.color = n.color
	n.color = Red
	tracer().Debugf("rbtree: rotate right at %d, promoting %d", n.value, x.value)
	return x
}

// recolorForSplit splits a temporary 4-node: n changes color and both
// children become black.
func recolorForSplit(n *Node) {
	assert(n.left != nil && n.right != nil, "color flip called on node with missing child")
	if n.color == Red {
		n.color = Black
	} else {
		n.color = Red
	}
	n.left.color = Black
	n.right.color = Black
	tracer().Debugf("rbtree: color flip at %d", n.value)
}
