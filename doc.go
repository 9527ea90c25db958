/*
Package rbtree implements a red-black tree over integer keys.

The tree supports ordered insertion and point lookup. Its height stays
logarithmic in the number of keys, regardless of insertion order.

# Balancing

Insertion descends recursively from the root and attaches a new red leaf.
On the way back up, every node of the search path is handed to a local
fix-up step, which looks only at a node and its immediate children:

	1. a red right child next to a black (or missing) left child is rotated left,
	2. two consecutive red links on the left spine are rotated right,
	3. two red children are split by a color flip.

The node returned by the fix-up replaces the parent's link, as rotations
change which node sits at the top of a subtree. Finally the root is forced
black. The resulting shapes lean left: a red link is always a left link.
This is the left-leaning variant of red-black trees described by
R. Sedgewick (2008), which mirrors a 2-3 tree: a black node with a red left
child stands for a 3-node.

# Usage

	tree := rbtree.New()
	for _, v := range []int{5, 3, 8} {
		tree.Insert(v)
	}
	if node, ok := tree.Find(3); ok {
		fmt.Println(node.Value(), node.Color())
	}

Inserting a key already present is a no-op. A Tree is not safe for concurrent
use; clients have to serialize access themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
