package exec

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/quotientgraph/pact/plan"
)

// RunSliced partitions the host edge relation's seed into sliceCount
// disjoint, upward-open intervals over sliceAttr (a pattern vertex name
// that is some RENAME's target in the root plan) and executes the full
// plan independently per slice via an errgroup.Group, associative-summing
// the per-slice final counts. Exact precisely because the plan reads the
// host only through renames, introduces no cross-slice joins, and the
// slice column is a rename target in the root plan (§4.H concurrency
// note). Ported from naive_exec.py's sliced_multithread_exec_helper.
func RunSliced(ctx context.Context, ops []plan.Op, seed *Relation, labelRelations map[string]*Relation, sliceAttr string, sliceCount int, cfg ExecConfig) (Multiplicity, error) {
	if sliceCount < 1 {
		sliceCount = 1
	}

	top := maxVertexValue(seed)
	bounds := sliceBounds(top, sliceCount)

	results := make([]Multiplicity, len(bounds))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range bounds {
		i, b := i, b
		g.Go(func() error {
			sliceCfg := cfg
			sliceCfg.SliceAttr = sliceAttr
			sliceCfg.SliceLo = b.lo
			sliceCfg.SliceHi = b.hi

			rel, err := Run(gctx, ops, seed, labelRelations, sliceCfg)
			if err != nil {
				return err
			}
			if rel.Len() == 0 {
				results[i] = SmallMult(0)
				return nil
			}
			sum, err := SumMultiplicities(rel.Counts, cfg.GracefulBigint)
			if err != nil {
				return err
			}
			results[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Multiplicity{}, err
	}

	return SumMultiplicities(results, cfg.GracefulBigint)
}

type interval struct {
	lo, hi *int64
}

func sliceBounds(top int64, n int) []interval {
	if top <= 0 {
		return []interval{{nil, nil}}
	}
	step := top/int64(n) + 1

	var out []interval
	for lo := int64(0); lo < top; lo += step {
		l := lo
		h := lo + step
		if h >= top {
			out = append(out, interval{lo: &l, hi: nil})
			break
		}
		out = append(out, interval{lo: &l, hi: &h})
	}
	return out
}

func maxVertexValue(r *Relation) int64 {
	var top int64
	for _, t := range r.Tuples {
		for _, v := range t {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > top {
				top = n
			}
		}
	}
	return top
}
