package rbtree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[*Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Absent children are drawn as small black
// nil leaves.
func Tree2Dot(tree *Tree, w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable()
	walk(tree.Root(), 0, func(node *Node, _ int) bool {
		ID := ids.alloc(node)
		fmt.Fprintf(&nodelist, "\"%d\" [label=%d %s];\n", ID, node.value, nodeDotStyles(node))
		for side, child := range [2]*Node{node.left, node.right} {
			if child == nil {
				nilid := fmt.Sprintf("nil%d%c", ID, "LR"[side])
				fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", ID, nilid)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
		return true
	})
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("rbtree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",style=filled,fillcolor=black,shape=circle,fixedsize=true,width=.15]"
}

func nodeDotStyles(node *Node) string {
	s := ",style=filled,shape=circle"
	if node.color == Red {
		s += ",color=\"#cc0000\",fillcolor=\"#ff6666\""
	} else {
		s += ",color=black,fillcolor=\"#555555\",fontcolor=white"
	}
	return s
}
