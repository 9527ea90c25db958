package main

import (
	"context"
	"flag"
	"io"

	"github.com/google/subcommands"
	"github.com/npillmayer/rbtree"
)

type cmdDot struct {
	treeInput
	out io.Writer
}

func (cmd *cmdDot) Name() string     { return "dot" }
func (cmd *cmdDot) Synopsis() string { return "write the tree in Graphviz DOT format" }
func (cmd *cmdDot) Usage() string    { return "dot [-random N] [-seed S] [values...]\n" }

func (cmd *cmdDot) SetFlags(f *flag.FlagSet) {
	cmd.setFlags(f)
}

func (cmd *cmdDot) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	tree, status := cmd.build(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	if err := rbtree.Tree2Dot(tree, cmd.out); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
