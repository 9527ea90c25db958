/*
Command rbdump builds a red-black tree from integer values and shows its
structure.

	rbdump [-v] print [-random N] [-seed S] [-color auto|always|never] [values...]
	rbdump [-v] dot   [-random N] [-seed S] [values...]
	rbdump [-v] check [-random N] [-seed S] [values...]

Values given on the command line are inserted after N random values, if any.
The random values are a permutation of 1…N, determined by the seed.
*/
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func main() {
	gtrace.CoreTracer = gologadapter.New()
	verbose := flag.Bool("v", false, "trace tree operations")
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(&cmdPrint{out: os.Stdout}, "")
	subcommands.Register(&cmdDot{out: os.Stdout}, "")
	subcommands.Register(&cmdCheck{out: os.Stdout}, "")
	flag.Parse()
	level := tracing.LevelInfo
	if *verbose {
		level = tracing.LevelDebug
	}
	T().SetTraceLevel(level)
	tracing.Select("rbtree").SetTraceLevel(level)
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
