package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/quotientgraph/pact/decomp"
	"github.com/quotientgraph/pact/exec"
	"github.com/quotientgraph/pact/graph"
	"github.com/quotientgraph/pact/htdsolver"
	"github.com/quotientgraph/pact/plan"
	"github.com/quotientgraph/pact/telemetry"
)

var earlySemijoin bool

var countCmd = &cobra.Command{
	Use:   "count <pattern> <host>",
	Short: "count homomorphisms of pattern into host",
	Args:  cobra.ExactArgs(2),
	RunE:  runCount,
}

func init() {
	countCmd.Flags().BoolVar(&earlySemijoin, "early-semijoin", false, "apply the early-semijoin cover join strategy")
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := telemetry.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if cfg.Telemetry.Enabled {
		if err := telemetry.Init(); err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
	}

	pattern, err := readGraphArg(args[0])
	if err != nil {
		return fmt.Errorf("reading pattern: %w", err)
	}
	host, err := readGraphArg(args[1])
	if err != nil {
		return fmt.Errorf("reading host: %w", err)
	}

	result, err := countHomomorphisms(cmd.Context(), pattern, host, cfg.DecompConfig(), cfg.ExecConfig(), cfg.Decomposition.SolverPath, cfg.Execution.SliceCount)
	if err != nil {
		return err
	}

	logger.Info("count complete", "pattern_vertices", len(pattern.Vertices()), "host_vertices", len(host.Vertices()))
	fmt.Fprintln(cmd.OutOrStdout(), result.AsBigInt().String())
	return nil
}

// countHomomorphisms runs the full pipeline: decompose the pattern,
// compile the decomposition to a relational plan, execute it against
// host's edge relation, and sum the final relation's multiplicities. The
// GYO acyclic fast path never touches the solver; an empty solverPath
// only surfaces as an error for genuinely cyclic patterns.
func countHomomorphisms(ctx context.Context, pattern, host *graph.Graph, dcfg decomp.Config, ecfg exec.ExecConfig, solverPath string, sliceCount int) (exec.Multiplicity, error) {
	return countHomomorphismsWithSolver(ctx, pattern, host, dcfg, ecfg, htdsolver.NewSubprocess(solverPath), sliceCount)
}

func countHomomorphismsWithSolver(ctx context.Context, pattern, host *graph.Graph, dcfg decomp.Config, ecfg exec.ExecConfig, solver htdsolver.Solver, sliceCount int) (exec.Multiplicity, error) {
	labelInfo := plan.VertexLabels(pattern)

	// The star/clique shortcuts only reason about degree, not labels; a
	// labeled pattern must go through the general pipeline so its label
	// semijoins actually restrict the count.
	if len(labelInfo) == 0 {
		if k, ok := plan.StarShortcut(pattern); ok {
			return exec.BigMult(plan.CountViaStar(host, k)), nil
		}

		if n, ok := plan.CliqueFilter(pattern); ok {
			host = filterHostVertices(host, plan.PreFilterForClique(host, n))
		}
	}

	hg := decomp.PatternHypergraph(pattern)

	root, err := decomp.Acquire(ctx, pattern, hg, solver, dcfg)
	if err != nil {
		return exec.Multiplicity{}, fmt.Errorf("acquiring decomposition: %w", err)
	}

	opts := []plan.Option{plan.WithLabels(labelInfo)}
	if earlySemijoin {
		opts = append(opts, plan.WithEarlySemijoin())
	}
	ops := plan.Compile(root, opts...)

	seed := seedRelation(host)
	labelRels := hostLabelRelations(host)

	if sliceCount > 1 {
		vs := append([]string(nil), pattern.Vertices()...)
		sort.Strings(vs)
		return exec.RunSliced(ctx, ops, seed, labelRels, vs[0], sliceCount, ecfg)
	}

	rel, err := exec.Run(ctx, ops, seed, labelRels, ecfg)
	if err != nil {
		return exec.Multiplicity{}, fmt.Errorf("executing plan: %w", err)
	}
	return sumCounts(rel)
}
