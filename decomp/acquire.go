package decomp

import (
	"context"
	"errors"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/quotientgraph/pact/graph"
	"github.com/quotientgraph/pact/htdsolver"
	"github.com/quotientgraph/pact/hypergraph"
	"github.com/quotientgraph/pact/tdecomp"
	"github.com/quotientgraph/pact/telemetry"
)

// ErrNoDecomposition is returned when neither the acyclic fast path nor any
// external-solver attempt produces a usable decomposition.
var ErrNoDecomposition = errors.New("decomp: no decomposition obtained")

// Config tunes the decomposition acquirer.
type Config struct {
	// HTDAttempts is the number of parallel external-solver attempts tried
	// for cyclic patterns. Default 1.
	HTDAttempts int
	// SolverTimeout bounds each attempt's wall-clock budget.
	SolverTimeout time.Duration
	// RefineCovers enables the shortest-path cover refinement on every
	// solver-produced decomposition before scoring. Default true.
	RefineCovers bool
}

// DefaultConfig returns the reference tuning: one attempt, a 30s timeout,
// refinement enabled.
func DefaultConfig() Config {
	return Config{HTDAttempts: 1, SolverTimeout: 30 * time.Second, RefineCovers: true}
}

// Acquire obtains a rooted tree decomposition for pattern p: the GYO
// acyclic fast path first, falling back to T parallel solver attempts for
// cyclic patterns, scored by Σ(|con_cover|-|cover|)² and refined via
// Refine. Ported from balgowrapper.py's balgo_multitry_for_cheapest_decomp.
func Acquire(ctx context.Context, p *graph.Graph, hg *hypergraph.Hypergraph, solver htdsolver.Solver, cfg Config) (*tdecomp.Node, error) {
	ctx, span := telemetry.StartDecomposition(ctx, p.ID().String())
	defer span.End()
	start := time.Now()

	if root, err := GYOJoinTree(hg); err == nil {
		telemetry.RecordDecomposition(ctx, time.Since(start).Seconds(), 0)
		return root, nil
	} else if !errors.Is(err, ErrCyclicHypergraph) {
		return nil, err
	}

	attempts := cfg.HTDAttempts
	if attempts < 1 {
		attempts = 1
	}

	results := make([]*tdecomp.Node, attempts)
	costs := make([]int, attempts)
	errs := make([]error, attempts)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < attempts; i++ {
		i := i
		g.Go(func() error {
			attemptCtx := gctx
			var cancel context.CancelFunc
			if cfg.SolverTimeout > 0 {
				attemptCtx, cancel = context.WithTimeout(gctx, cfg.SolverTimeout)
				defer cancel()
			}

			node, err := solver.Decompose(attemptCtx, hg)
			if err != nil {
				errs[i] = err
				return nil
			}
			if err := Refine(p, node); err != nil {
				errs[i] = err
				return nil
			}
			results[i] = node
			costs[i] = overheadCost(node)
			return nil
		})
	}
	_ = g.Wait()

	best := -1
	bestCost := 0
	for i, n := range results {
		if n == nil {
			continue
		}
		if best == -1 || costs[i] < bestCost {
			best = i
			bestCost = costs[i]
		}
	}
	if best == -1 {
		return nil, errors.Join(append([]error{ErrNoDecomposition}, nonNilErrs(errs)...)...)
	}
	telemetry.RecordDecomposition(ctx, time.Since(start).Seconds(), int64(attempts))
	return results[best], nil
}

func overheadCost(n *tdecomp.Node) int {
	total := 0
	for _, node := range n.Nodes() {
		delta := len(node.ConCover) - len(node.CoverMap)
		total += delta * delta
	}
	return total
}

func nonNilErrs(errs []error) []error {
	out := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Error() < out[j].Error() })
	return out
}
