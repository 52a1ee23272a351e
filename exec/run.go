package exec

import (
	"context"
	"fmt"
	"time"

	"github.com/quotientgraph/pact/plan"
	"github.com/quotientgraph/pact/telemetry"
)

// ExecConfig tunes plan execution.
type ExecConfig struct {
	// GracefulBigint enables automatic promotion to arbitrary precision on
	// predicted overflow; when false, predicted overflow is a hard error.
	GracefulBigint bool
	// SliceAttr, if non-empty, restricts any relation carrying that
	// attribute to values in [SliceLo, SliceHi) immediately after a RENAME
	// introduces the column (upward-open interval, matching the source's
	// _slice_query). A nil bound is unconstrained on that side.
	SliceAttr string
	SliceLo   *int64
	SliceHi   *int64
}

// DefaultExecConfig enables graceful big-integer promotion, matching the
// reference naive_pandas_plan_exec default.
func DefaultExecConfig() ExecConfig {
	return ExecConfig{GracefulBigint: true}
}

// Run executes ops against seed (the base edge relation, under
// plan.BaseRelName) plus any label relations, returning the final
// relation named by the last op with NewName "node$0", or the last
// op's output relation if that name is absent. Execution halts early
// (empty relation, final count 0) the moment any operation produces an
// empty result, matching §4.H's empty-result shortcut.
func Run(ctx context.Context, ops []plan.Op, seed *Relation, labelRelations map[string]*Relation, cfg ExecConfig) (*Relation, error) {
	ctx, span := telemetry.StartExec(ctx, len(ops))
	defer span.End()
	start := time.Now()

	result, err := run(ctx, ops, seed, labelRelations, cfg)

	if err == nil {
		telemetry.RecordExec(ctx, time.Since(start).Seconds(), int64(result.Len()))
	}
	return result, err
}

func run(ctx context.Context, ops []plan.Op, seed *Relation, labelRelations map[string]*Relation, cfg ExecConfig) (*Relation, error) {
	state := map[string]*Relation{plan.BaseRelName: seed}
	for name, rel := range labelRelations {
		state[plan.LabelRelPrefix+name] = rel
	}

	var lastName string
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := execOne(ctx, op, state, cfg)
		if err != nil {
			return nil, err
		}
		state[op.NewName] = out
		lastName = op.NewName

		if out.Len() == 0 {
			return out, nil
		}
	}

	if rel, ok := state["node$0"]; ok {
		return rel, nil
	}
	return state[lastName], nil
}

func execOne(ctx context.Context, op plan.Op, state map[string]*Relation, cfg ExecConfig) (*Relation, error) {
	switch op.Kind {
	case plan.Rename:
		return execRename(op, state, cfg)
	case plan.Join:
		return execJoin(op, state)
	case plan.Semijoin:
		return execSemijoin(op, state)
	case plan.Project:
		return execProject(op, state)
	case plan.CountExt:
		return execCountExt(ctx, op, state, cfg)
	case plan.SumCount:
		return execSumCount(ctx, op, state, cfg)
	default:
		return nil, fmt.Errorf("exec: unknown operation kind %v", op.Kind)
	}
}

func execRename(op plan.Op, state map[string]*Relation, cfg ExecConfig) (*Relation, error) {
	a, err := lookup(state, op.A)
	if err != nil {
		return nil, err
	}

	schema := make([]string, len(a.Schema))
	for i, attr := range a.Schema {
		if newName, ok := op.Rename[attr]; ok {
			schema[i] = newName
		} else {
			schema[i] = attr
		}
	}

	out := &Relation{Schema: schema}
	for i, t := range a.Tuples {
		nt := make(Tuple, len(t))
		for attr, val := range t {
			if newName, ok := op.Rename[attr]; ok {
				nt[newName] = val
			} else {
				nt[attr] = val
			}
		}
		out.Tuples = append(out.Tuples, nt)
		out.Counts = append(out.Counts, a.Counts[i])
	}

	if cfg.SliceAttr != "" {
		filterBySlice(out, cfg)
	}

	return out, nil
}

func filterBySlice(r *Relation, cfg ExecConfig) {
	hasCol := false
	for _, attr := range r.Schema {
		if attr == cfg.SliceAttr {
			hasCol = true
			break
		}
	}
	if !hasCol {
		return
	}

	var tuples []Tuple
	var counts []Multiplicity
	for i, t := range r.Tuples {
		v, ok := sliceValue(t[cfg.SliceAttr])
		if !ok {
			continue
		}
		if cfg.SliceLo != nil && v < *cfg.SliceLo {
			continue
		}
		if cfg.SliceHi != nil && v >= *cfg.SliceHi {
			continue
		}
		tuples = append(tuples, t)
		counts = append(counts, r.Counts[i])
	}
	r.Tuples, r.Counts = tuples, counts
}

func sliceValue(s string) (int64, bool) {
	var n int64
	_, err := fmt.Sscanf(s, "%d", &n)
	return n, err == nil
}

func execJoin(op plan.Op, state map[string]*Relation) (*Relation, error) {
	a, err := lookup(state, op.A)
	if err != nil {
		return nil, err
	}
	b, err := lookup(state, op.B)
	if err != nil {
		return nil, err
	}

	if len(op.Key) == 0 {
		return cartesianProduct(a, b), nil
	}

	index := indexBy(b, op.Key)
	schema := mergedSchema(a.Schema, b.Schema)
	out := &Relation{Schema: schema}
	for i, ta := range a.Tuples {
		for _, tb := range index[keyOf(ta, op.Key)] {
			out.Tuples = append(out.Tuples, mergeTuples(ta, tb))
			out.Counts = append(out.Counts, a.Counts[i])
		}
	}
	return out, nil
}

func cartesianProduct(a, b *Relation) *Relation {
	schema := mergedSchema(a.Schema, b.Schema)
	out := &Relation{Schema: schema}
	for i, ta := range a.Tuples {
		for _, tb := range b.Tuples {
			out.Tuples = append(out.Tuples, mergeTuples(ta, tb))
			out.Counts = append(out.Counts, a.Counts[i])
		}
	}
	return out
}

func execSemijoin(op plan.Op, state map[string]*Relation) (*Relation, error) {
	a, err := lookup(state, op.A)
	if err != nil {
		return nil, err
	}
	b, err := lookup(state, op.B)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool)
	for _, tb := range b.Tuples {
		present[keyOf(tb, op.Key)] = true
	}

	out := &Relation{Schema: a.Schema}
	for i, ta := range a.Tuples {
		if present[keyOf(ta, op.Key)] {
			out.Tuples = append(out.Tuples, ta)
			out.Counts = append(out.Counts, a.Counts[i])
		}
	}
	return out, nil
}

func execProject(op plan.Op, state map[string]*Relation) (*Relation, error) {
	a, err := lookup(state, op.A)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]Multiplicity)
	rep := make(map[string]Tuple)
	order := make([]string, 0)
	for i, t := range a.Tuples {
		k := keyOf(t, op.Key)
		if _, ok := rep[k]; !ok {
			rep[k] = project(t, op.Key)
			order = append(order, k)
		}
		groups[k] = append(groups[k], a.Counts[i])
	}

	out := &Relation{Schema: op.Key}
	for _, k := range order {
		out.Tuples = append(out.Tuples, rep[k])
		out.Counts = append(out.Counts, MaxMultiplicity(groups[k]))
	}
	return out, nil
}

func execCountExt(ctx context.Context, op plan.Op, state map[string]*Relation, cfg ExecConfig) (*Relation, error) {
	a, err := lookup(state, op.A)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]Multiplicity)
	rep := make(map[string]Tuple)
	order := make([]string, 0)
	for i, t := range a.Tuples {
		k := keyOf(t, op.Key)
		if _, ok := rep[k]; !ok {
			rep[k] = project(t, op.Key)
			order = append(order, k)
		}
		groups[k] = append(groups[k], a.Counts[i])
	}

	out := &Relation{Schema: op.Key}
	for _, k := range order {
		sum, err := SumMultiplicities(groups[k], cfg.GracefulBigint)
		if err != nil {
			return nil, err
		}
		if sum.IsBig() {
			telemetry.RecordOverflow(ctx)
		}
		out.Tuples = append(out.Tuples, rep[k])
		out.Counts = append(out.Counts, sum)
	}
	return out, nil
}

func execSumCount(ctx context.Context, op plan.Op, state map[string]*Relation, cfg ExecConfig) (*Relation, error) {
	a, err := lookup(state, op.A)
	if err != nil {
		return nil, err
	}
	b, err := lookup(state, op.B)
	if err != nil {
		return nil, err
	}

	bIndexCount := make(map[string]Multiplicity)
	bIndexTuple := make(map[string]bool)
	for i, tb := range b.Tuples {
		k := keyOf(tb, op.Key)
		bIndexCount[k] = b.Counts[i]
		bIndexTuple[k] = true
	}

	out := &Relation{Schema: a.Schema}
	for i, ta := range a.Tuples {
		k := keyOf(ta, op.Key)
		if !bIndexTuple[k] {
			continue
		}
		product, err := MulMultiplicities(a.Counts[i], bIndexCount[k], cfg.GracefulBigint)
		if err != nil {
			return nil, err
		}
		if product.IsBig() {
			telemetry.RecordOverflow(ctx)
		}
		out.Tuples = append(out.Tuples, ta)
		out.Counts = append(out.Counts, product)
	}
	return out, nil
}

func lookup(state map[string]*Relation, name string) (*Relation, error) {
	rel, ok := state[name]
	if !ok {
		return nil, fmt.Errorf("exec: relation %q not yet produced", name)
	}
	return rel, nil
}

func indexBy(r *Relation, key []string) map[string][]Tuple {
	out := make(map[string][]Tuple, r.Len())
	for _, t := range r.Tuples {
		k := keyOf(t, key)
		out[k] = append(out[k], t)
	}
	return out
}

func mergedSchema(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, attr := range a {
		if !seen[attr] {
			seen[attr] = true
			out = append(out, attr)
		}
	}
	for _, attr := range b {
		if !seen[attr] {
			seen[attr] = true
			out = append(out, attr)
		}
	}
	return out
}

func mergeTuples(a, b Tuple) Tuple {
	out := make(Tuple, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
