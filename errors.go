package rbtree

import "errors"

// ErrInvariant signals a violated red-black or search-tree invariant.
// Errors returned by Check wrap it and name the offending node.
var ErrInvariant = errors.New("rbtree: invariant violated")
