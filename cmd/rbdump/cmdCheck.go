package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/google/subcommands"
	"github.com/npillmayer/rbtree"
)

type cmdCheck struct {
	treeInput
	out io.Writer
}

func (cmd *cmdCheck) Name() string     { return "check" }
func (cmd *cmdCheck) Synopsis() string { return "verify tree invariants after every insertion" }
func (cmd *cmdCheck) Usage() string    { return "check [-random N] [-seed S] [values...]\n" }

func (cmd *cmdCheck) SetFlags(f *flag.FlagSet) {
	cmd.setFlags(f)
}

func (cmd *cmdCheck) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	vals, err := cmd.values(f.Args())
	if err != nil {
		T().Errorf("%s", err.Error())
		return subcommands.ExitUsageError
	}
	tree := rbtree.New()
	for i, v := range vals {
		tree.Insert(v)
		if err := tree.Check(); err != nil {
			T().Errorf("after inserting %d (step %d): %s", v, i+1, err.Error())
			return subcommands.ExitFailure
		}
	}
	bound := 2 * math.Log2(float64(tree.Len()+1))
	fmt.Fprintf(cmd.out, "values: %d, height: %d, bound: %.2f\n", tree.Len(), tree.Height(), bound)
	if float64(tree.Height()) > bound {
		T().Errorf("height %d exceeds bound %.2f", tree.Height(), bound)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
