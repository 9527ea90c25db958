package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/subcommands"
	"github.com/npillmayer/rbtree"
	"golang.org/x/term"
)

type cmdPrint struct {
	treeInput
	colorMode string
	out       io.Writer
}

func (cmd *cmdPrint) Name() string     { return "print" }
func (cmd *cmdPrint) Synopsis() string { return "print an indented dump of the tree" }
func (cmd *cmdPrint) Usage() string {
	return "print [-random N] [-seed S] [-color auto|always|never] [values...]\n"
}

func (cmd *cmdPrint) SetFlags(f *flag.FlagSet) {
	cmd.setFlags(f)
	f.StringVar(&cmd.colorMode, "color", "auto", "highlight node colors: auto, always or never")
}

func (cmd *cmdPrint) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	var colorize bool
	switch cmd.colorMode {
	case "auto":
		colorize = term.IsTerminal(int(os.Stdout.Fd()))
	case "always":
		color.NoColor = false
		colorize = true
	case "never":
	default:
		T().Errorf("unknown color mode %q", cmd.colorMode)
		return subcommands.ExitUsageError
	}
	tree, status := cmd.build(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	if err := (rbtree.Printer{Colorize: colorize}).Fprint(tree, cmd.out); err != nil {
		T().Errorf("print: %s", err.Error())
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
