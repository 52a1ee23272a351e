package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/quotientgraph/pact/exec"
	"github.com/quotientgraph/pact/graph"
	"github.com/quotientgraph/pact/graph6"
)

// readGraphArg resolves a CLI argument to a graph. An argument prefixed
// with "@" names a file whose trimmed contents are decoded; anything else
// is decoded literally. Format is auto-detected: a leading ':' is
// sparse6, a literal containing whitespace is the internal directed
// format, anything else is dense graph6.
func readGraphArg(arg string) (*graph.Graph, error) {
	literal := arg
	if strings.HasPrefix(arg, "@") {
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg[1:], err)
		}
		literal = string(data)
	}
	literal = strings.TrimSpace(literal)
	if literal == "" {
		return nil, fmt.Errorf("empty graph input %q", arg)
	}

	switch {
	case strings.HasPrefix(literal, ":"):
		return graph6.DecodeSparse6(literal)
	case strings.ContainsAny(literal, " \t"):
		return graph6.DecodeDirected(literal)
	default:
		return graph6.DecodeGraph6(literal)
	}
}

// seedRelation builds the base edge relation a compiled plan's RENAME
// operations read from: schema {"s","t"}, each host edge contributing one
// tuple per direction it is traversable in. Undirected hosts contribute
// both (u,v) and (v,u) since either endpoint may bind either pattern
// endpoint of an edge variable.
func seedRelation(host *graph.Graph) *exec.Relation {
	rel := exec.NewRelation([]string{"s", "t"})
	for _, e := range host.Edges() {
		rel.Tuples = append(rel.Tuples, exec.Tuple{"s": e.From, "t": e.To})
		rel.Counts = append(rel.Counts, exec.SmallMult(1))
		if !host.Directed() {
			rel.Tuples = append(rel.Tuples, exec.Tuple{"s": e.To, "t": e.From})
			rel.Counts = append(rel.Counts, exec.SmallMult(1))
		}
	}
	return rel
}

func sumCounts(r *exec.Relation) (exec.Multiplicity, error) {
	return exec.SumMultiplicities(r.Counts, true)
}

// hostLabelRelations builds one unary relation per label carried by any
// host vertex, schema {"vertex"}, feeding the RENAME/SEMIJOIN pair
// plan.WithLabels compiles for each labeled pattern endpoint.
func hostLabelRelations(host *graph.Graph) map[string]*exec.Relation {
	out := make(map[string]*exec.Relation)
	for _, v := range host.Vertices() {
		for _, label := range host.Labels(v) {
			rel, ok := out[label]
			if !ok {
				rel = exec.NewRelation([]string{"vertex"})
				out[label] = rel
			}
			rel.Tuples = append(rel.Tuples, exec.Tuple{"vertex": v})
			rel.Counts = append(rel.Counts, exec.SmallMult(1))
		}
	}
	return out
}

// filterHostVertices returns the induced subgraph of host on keep, used by
// the clique fast path to drop vertices that cannot possibly participate
// in an embedding before the decomposition/plan pipeline ever sees them.
func filterHostVertices(host *graph.Graph, keep []string) *graph.Graph {
	kept := make(map[string]bool, len(keep))
	for _, id := range keep {
		kept[id] = true
	}

	out := graph.New(graph.WithDirected(host.Directed()))
	for _, id := range keep {
		_ = out.AddVertex(id)
	}
	for _, e := range host.Edges() {
		if kept[e.From] && kept[e.To] {
			_, _ = out.AddEdge(e.From, e.To)
		}
	}
	out.RecomputeShape()
	return out
}
