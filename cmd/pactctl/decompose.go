package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quotientgraph/pact/decomp"
	"github.com/quotientgraph/pact/dfs"
	"github.com/quotientgraph/pact/htdsolver"
	"github.com/quotientgraph/pact/tdecomp"
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose <pattern>",
	Short: "print the hypertree decomposition acquired for a pattern",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecompose,
}

func runDecompose(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	pattern, err := readGraphArg(args[0])
	if err != nil {
		return fmt.Errorf("reading pattern: %w", err)
	}

	hg := decomp.PatternHypergraph(pattern)
	solver := htdsolver.NewSubprocess(cfg.Decomposition.SolverPath)

	root, err := decomp.Acquire(cmd.Context(), pattern, hg, solver, cfg.DecompConfig())
	if err != nil {
		return fmt.Errorf("acquiring decomposition: %w", err)
	}

	out := cmd.OutOrStdout()
	cyclic, cycles, err := dfs.DetectCycles(pattern)
	if err != nil {
		return fmt.Errorf("detecting pattern cycles: %w", err)
	}
	fmt.Fprintf(out, "cyclic=%t cycle_count=%d\n", cyclic, len(cycles))
	fmt.Fprintf(out, "width=%d ghw=%d depth=%d\n", root.Width(), root.GHW(), root.Depth())
	printNode(out, root, 0)
	return nil
}

func printNode(out io.Writer, n *tdecomp.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(out, "%sbag={%s} cover={%s}\n", indent, strings.Join(n.BagSlice(), ","), strings.Join(n.Cover(), ","))
	for _, c := range n.Children {
		printNode(out, c, depth+1)
	}
}
