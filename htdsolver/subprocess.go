package htdsolver

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"sort"

	"github.com/quotientgraph/pact/hypergraph"
	"github.com/quotientgraph/pact/tdecomp"
)

// Subprocess launches an external balanced hypertree-decomposition solver
// binary and speaks its shell-io JSON protocol.
type Subprocess struct {
	// Path is the solver executable. Typically a BalancedGo-style binary
	// invoked with "-shellio -exact -heuristic 1 -local -complete".
	Path string
	// Args are the flags passed to the solver as given; NewSubprocess's
	// reference set starts with "-shellio".
	Args []string
}

// NewSubprocess returns a Subprocess solver for the binary at path, using
// the reference flag set (exact, heuristic 1, local, complete).
func NewSubprocess(path string) *Subprocess {
	return &Subprocess{
		Path: path,
		Args: []string{"-shellio", "-exact", "-heuristic", "1", "-local", "-complete"},
	}
}

type jsonNode struct {
	Bag      []string    `json:"Bag"`
	Cover    []string    `json:"Cover"`
	Children []*jsonNode `json:"Children"`
}

type jsonReply struct {
	Root *jsonNode `json:"Root"`
}

// Decompose pipes one "NAME(u, v)" line per hyperedge to the solver's
// stdin, then parses its single-line JSON reply.
func (s *Subprocess) Decompose(ctx context.Context, hg *hypergraph.Hypergraph) (*tdecomp.Node, error) {
	cmd := exec.CommandContext(ctx, s.Path, s.Args...)

	var stdin bytes.Buffer
	ecmap := make(map[string][]string, len(hg.Edges))
	for _, name := range hg.EdgeNames() {
		e, _ := hg.Edge(name)
		members := sortedMembers(e)
		if len(members) != 2 {
			return nil, fmt.Errorf("%w: edge %s is not binary", ErrSolverProtocol, name)
		}
		ecmap[name] = members
		fmt.Fprintf(&stdin, "%s(%s, %s)\n", name, members[0], members[1])
	}
	cmd.Stdin = &stdin

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrSolverTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrSolverProtocol, err)
	}

	scanner := bufio.NewScanner(&stdout)
	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: empty solver output", ErrSolverProtocol)
	}

	var reply jsonReply
	if err := json.Unmarshal(scanner.Bytes(), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolverProtocol, err)
	}
	if reply.Root == nil {
		return nil, fmt.Errorf("%w: missing Root", ErrSolverProtocol)
	}

	return buildNode(reply.Root, ecmap), nil
}

func buildNode(jn *jsonNode, ecmap map[string][]string) *tdecomp.Node {
	coverMap := make(map[string][]string, len(jn.Cover))
	for _, en := range jn.Cover {
		coverMap[en] = ecmap[en]
	}
	n := tdecomp.New(jn.Bag, coverMap)
	for _, jc := range jn.Children {
		n.Children = append(n.Children, buildNode(jc, ecmap))
	}
	return n
}

func sortedMembers(e hypergraph.Edge) []string {
	out := make([]string, 0, len(e))
	for v := range e {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
