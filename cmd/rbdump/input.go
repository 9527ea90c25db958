package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/google/subcommands"
	"github.com/npillmayer/rbtree"
)

// treeInput collects the values a subcommand inserts into a tree.
type treeInput struct {
	random int
	seed   int64
}

func (in *treeInput) setFlags(f *flag.FlagSet) {
	f.IntVar(&in.random, "random", 0, "insert a random permutation of 1…N first")
	f.Int64Var(&in.seed, "seed", 1, "seed for -random")
}

func (in *treeInput) values(args []string) ([]int, error) {
	var vals []int
	if in.random > 0 {
		r := rand.New(rand.NewSource(in.seed))
		for _, i := range r.Perm(in.random) {
			vals = append(vals, i+1)
		}
	}
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("not an integer value: %q", arg)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// build creates a tree from the flags and positional arguments of f.
// Argument errors map to a usage error.
func (in *treeInput) build(f *flag.FlagSet) (*rbtree.Tree, subcommands.ExitStatus) {
	vals, err := in.values(f.Args())
	if err != nil {
		T().Errorf("%s", err.Error())
		return nil, subcommands.ExitUsageError
	}
	tree := rbtree.New()
	for _, v := range vals {
		tree.Insert(v)
	}
	T().Debugf("built tree of %d values from %d inputs", tree.Len(), len(vals))
	return tree, subcommands.ExitSuccess
}
