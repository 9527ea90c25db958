package rbtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// indentWidth is the number of columns a node is indented per level of depth.
const indentWidth = 4

// Printer writes an indented dump of a tree, one line per node:
//
//	value: <v> {color: <RED|BLACK>}
//
// The left subtree of a node is written before the node, the right subtree
// after it. The root is not indented, every level below the root is indented
// by another 4 columns. The dump is meant for manual inspection only;
// it is not a serialization format.
type Printer struct {
	// Colorize highlights the color of nodes with terminal escape sequences.
	// Highlighting is subject to color.NoColor.
	Colorize bool
	// Colors maps node colors to highlighting attributes. It may contain just
	// a subset of the node colors. If nil, a default palette is used.
	Colors map[Color]*color.Color
}

func makeDefaultPalette() map[Color]*color.Color {
	return map[Color]*color.Color{
		Red:   color.New(color.FgRed, color.Bold),
		Black: color.New(color.Bold),
	}
}

// Fprint writes the dump of tree t to w. It returns the first write error.
func (p Printer) Fprint(t *Tree, w io.Writer) error {
	palette := p.Colors
	if p.Colorize && palette == nil {
		palette = makeDefaultPalette()
	}
	var err error
	walk(t.Root(), 0, func(n *Node, depth int) bool {
		cname := n.color.String()
		if p.Colorize {
			if c, ok := palette[n.color]; ok {
				cname = c.Sprint(cname)
			}
		}
		_, err = fmt.Fprintf(w, "%svalue: %d {color: %s}\n",
			strings.Repeat(" ", depth*indentWidth), n.value, cname)
		return err == nil
	})
	return err
}

// Fprint writes an uncolored dump of the tree to w. See Printer for the format.
func (t *Tree) Fprint(w io.Writer) error {
	return Printer{}.Fprint(t, w)
}

// DebugString returns the uncolored dump of the tree. An empty tree results
// in an empty string.
func (t *Tree) DebugString() string {
	var sb strings.Builder
	_ = t.Fprint(&sb)
	return sb.String()
}

// Print writes the dump of the tree to stdout. If stdout is a terminal,
// node colors are highlighted.
func (t *Tree) Print() {
	p := Printer{Colorize: term.IsTerminal(int(os.Stdout.Fd()))}
	if err := p.Fprint(t, os.Stdout); err != nil {
		tracer().Errorf("rbtree: print: %s", err.Error())
	}
}
