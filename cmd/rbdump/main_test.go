package main

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/npillmayer/schuko/testconfig"
)

func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("cannot parse arguments %v: %v", args, err)
	}
	return cmd.Execute(context.Background(), f)
}

func TestPrintValues(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	var out bytes.Buffer
	status := run(t, &cmdPrint{out: &out}, "-color", "never", "3", "1", "2")
	if status != subcommands.ExitSuccess {
		t.Fatalf("unexpected exit status %d", status)
	}
	expected := "    value: 1 {color: BLACK}\nvalue: 2 {color: BLACK}\n    value: 3 {color: BLACK}\n"
	if out.String() != expected {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestPrintRejectsBadInput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	var out bytes.Buffer
	if status := run(t, &cmdPrint{out: &out}, "-color", "never", "1", "x"); status != subcommands.ExitUsageError {
		t.Errorf("expected usage error for non-integer value, have %d", status)
	}
	if status := run(t, &cmdPrint{out: &out}, "-color", "sometimes", "1"); status != subcommands.ExitUsageError {
		t.Errorf("expected usage error for unknown color mode, have %d", status)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output on usage errors, have %q", out.String())
	}
}

func TestDotRandom(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	var out bytes.Buffer
	if status := run(t, &cmdDot{out: &out}, "-random", "20", "-seed", "7"); status != subcommands.ExitSuccess {
		t.Fatalf("unexpected exit status %d", status)
	}
	if !strings.HasPrefix(out.String(), "strict digraph {") {
		t.Errorf("expected DOT output, have %q", out.String())
	}
	// 20 nodes have 19 links between them and 21 nil leaves
	if n := strings.Count(out.String(), "->"); n != 40 {
		t.Errorf("expected 40 edges, have %d", n)
	}
}

func TestCheck(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	var out bytes.Buffer
	status := run(t, &cmdCheck{out: &out}, "-random", "300", "-seed", "42", "5", "5", "301")
	if status != subcommands.ExitSuccess {
		t.Fatalf("unexpected exit status %d", status)
	}
	if !strings.HasPrefix(out.String(), "values: 301, height: ") {
		t.Errorf("unexpected report %q", out.String())
	}
}

func TestInputValues(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()

	in := treeInput{random: 5, seed: 3}
	vals, err := in.values([]string{"-4", "10"})
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != 7 || vals[5] != -4 || vals[6] != 10 {
		t.Fatalf("unexpected values %v", vals)
	}
	seen := make(map[int]bool)
	for _, v := range vals[:5] {
		if v < 1 || v > 5 || seen[v] {
			t.Fatalf("random values are not a permutation of 1…5: %v", vals[:5])
		}
		seen[v] = true
	}
}
