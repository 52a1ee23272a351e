package plan

import (
	"fmt"
	"sort"

	"github.com/quotientgraph/pact/tdecomp"
)

// Option configures the plan compiler.
type Option func(*compileConfig)

type compileConfig struct {
	earlySemijoin bool
	labelInfo     map[string][]string
}

// WithEarlySemijoin enables the early-semijoin optimization: during join
// path construction, any pending semijoin-child candidate whose bag has
// become a subset of the accumulated variable set is semijoined in
// immediately rather than after the full node join completes. Does not
// change the result, only the amount of intermediate work. Ported from
// planner.py's *_earlysj family.
func WithEarlySemijoin() Option {
	return func(c *compileConfig) { c.earlySemijoin = true }
}

// WithLabels supplies the pattern's vertex->labels map (see VertexLabels),
// restricting every edge cover's RENAME to only the host bindings that
// carry the required label(s) on each labeled endpoint. A nil or empty
// map emits no label ops at all, matching an unlabeled pattern. Ported
// from labeled/planner.py's label_info parameter.
func WithLabels(labelInfo map[string][]string) Option {
	return func(c *compileConfig) { c.labelInfo = labelInfo }
}

// NodeName returns the relation name owned by pre-order index i.
func NodeName(i int) string {
	return fmt.Sprintf("node$%d", i)
}

// Compile walks decomposition root in post-order (children before their
// parent's counting ops) and emits the ordered operation sequence whose
// final "node$0" relation carries the homomorphism-extension counts over
// bag(root). Ported from planner.py's node_to_ops/node_to_ops_earlysj.
func Compile(root *tdecomp.Node, opts ...Option) []Op {
	cfg := &compileConfig{}
	for _, o := range opts {
		o(cfg)
	}
	idx := 0
	if cfg.earlySemijoin {
		return compileEarlySJ(root, &idx, cfg.labelInfo)
	}
	return compileNode(root, &idx, cfg.labelInfo)
}

func compileNode(node *tdecomp.Node, idx *int, labelInfo map[string][]string) []Op {
	nodename := NodeName(*idx)
	var plan []Op

	for _, en := range node.ConCoverNames() {
		endpoints := node.ConCover[en]
		plan = append(plan, renameOp(en, endpoints))
		plan = append(plan, labelFilterOps(en, endpoints, labelInfo)...)
	}

	if len(node.ConCover) > 1 {
		plan = append(plan, coverJoinOps(node, nodename)...)
	} else if len(plan) > 0 {
		plan[len(plan)-1].NewName = nodename
	}

	childMap := make(map[*tdecomp.Node]string, len(node.Children))
	for _, child := range node.Children {
		*idx++
		plan = append(plan, compileNode(child, idx, labelInfo)...)
		childMap[child] = NodeName(*idx)
	}

	for _, child := range node.Children {
		if !isSemijoinChild(node, child) {
			continue
		}
		plan = append(plan, semijoinOp(node, child, nodename, childMap[child]))
	}

	for _, child := range node.Children {
		if isSemijoinChild(node, child) {
			continue
		}
		plan = append(plan, countOps(node, child, nodename, childMap[child])...)
	}

	return plan
}

func compileEarlySJ(node *tdecomp.Node, idx *int, labelInfo map[string][]string) []Op {
	nodename := NodeName(*idx)
	var plan []Op

	conNames := node.ConCoverNames()
	for _, en := range conNames {
		endpoints := node.ConCover[en]
		plan = append(plan, renameOp(en, endpoints))
		plan = append(plan, labelFilterOps(en, endpoints, labelInfo)...)
		if len(node.ConCover) == 1 {
			plan[len(plan)-1].NewName = nodename
		}
	}

	childMap := make(map[*tdecomp.Node]string, len(node.Children))
	for _, child := range node.Children {
		*idx++
		plan = append(plan, compileEarlySJ(child, idx, labelInfo)...)
		childMap[child] = NodeName(*idx)
	}

	if len(node.ConCover) > 1 {
		plan = append(plan, coverJoinOpsEarlySJ(node, nodename, childMap)...)
	}

	for _, child := range node.Children {
		if isSemijoinChild(node, child) {
			continue
		}
		plan = append(plan, countOps(node, child, nodename, childMap[child])...)
	}

	return plan
}

func renameOp(edgeName string, endpoints []string) Op {
	return Op{
		Kind:    Rename,
		NewName: edgeName,
		A:       BaseRelName,
		Rename:  map[string]string{"s": endpoints[0], "t": endpoints[1]},
	}
}

// labelFilterOps restricts edgeName to only the tuples whose endpoint
// bindings carry every label required of that pattern vertex: for each
// label on each endpoint, the label's unary base relation (schema
// {"vertex"}) is renamed so its column matches the endpoint's attribute
// name, then semijoined against the running edge relation. Chained
// per-label so a vertex with multiple required labels is restricted by
// all of them. Ported from labeled/planner.py's label_semijoin_op.
func labelFilterOps(edgeName string, endpoints []string, labelInfo map[string][]string) []Op {
	var ops []Op
	for _, v := range endpoints {
		for _, label := range labelInfo[v] {
			renamed := labelRenamedRel(label, v)
			ops = append(ops, Op{
				Kind:    Rename,
				NewName: renamed,
				A:       LabelRelPrefix + label,
				Rename:  map[string]string{"vertex": v},
			})
			ops = append(ops, Op{
				Kind:    Semijoin,
				NewName: edgeName,
				A:       edgeName,
				B:       renamed,
				Key:     []string{v},
			})
		}
	}
	return ops
}

func labelRenamedRel(label, vertex string) string {
	return fmt.Sprintf("label_%s$%s", label, vertex)
}

func semijoinOp(parent, child *tdecomp.Node, parentName, childName string) Op {
	return Op{
		Kind:    Semijoin,
		NewName: parentName,
		A:       parentName,
		B:       childName,
		Key:     intersectBags(parent.Bag, child.Bag),
	}
}

func isSemijoinChild(p, c *tdecomp.Node) bool {
	if !c.IsLeaf() {
		return false
	}
	return isSubsetBag(c.Bag, p.Bag)
}

func countOps(parent, child *tdecomp.Node, parentName, childName string) []Op {
	overlap := intersectBags(parent.Bag, child.Bag)
	return []Op{
		{Kind: CountExt, NewName: childName, A: childName, Key: overlap},
		{Kind: SumCount, NewName: parentName, A: parentName, B: childName, Key: overlap},
	}
}

func binaryJoinOp(rn, sn string, coverMap map[string][]string, nodeName string) Op {
	r, s := coverMap[rn], coverMap[sn]
	return Op{Kind: Join, NewName: nodeName, A: rn, B: sn, Key: intersectSlices(r, s)}
}

func coverJoinOps(node *tdecomp.Node, nodeName string) []Op {
	cover := node.ConCover
	names := node.ConCoverNames()

	if len(cover) == 2 {
		project := Op{Kind: Project, NewName: nodeName, A: nodeName, Key: node.BagSlice()}
		return []Op{binaryJoinOp(names[0], names[1], cover, nodeName), project}
	}

	path := findJoinPath(cover, names)
	return pathJoinOps(path, node, nodeName)
}

func coverJoinOpsEarlySJ(node *tdecomp.Node, nodeName string, childMap map[*tdecomp.Node]string) []Op {
	cover := node.ConCover
	names := node.ConCoverNames()

	sjCandidates := func() []*tdecomp.Node {
		var out []*tdecomp.Node
		for _, c := range node.Children {
			if isSemijoinChild(node, c) {
				out = append(out, c)
			}
		}
		return out
	}

	if len(cover) == 2 {
		sjs := sjCandidates()
		e1, e2 := node.CoverMap[names[0]], node.CoverMap[names[1]]
		ops := []Op{binaryJoinOp(names[0], names[1], cover, nodeName)}
		for _, c := range sjs {
			ops = append(ops, Op{Kind: Semijoin, NewName: nodeName, A: nodeName, B: childMap[c], Key: c.BagSlice()})
		}
		if !sameVarSet(append(append([]string{}, e1...), e2...), node.BagSlice()) {
			ops = append(ops, Op{Kind: Project, NewName: nodeName, A: nodeName, Key: node.BagSlice()})
		}
		return ops
	}

	path := findJoinPath(cover, names)
	return pathJoinOpsEarlySJ(path, node, nodeName, childMap)
}

func findJoinPath(coverMap map[string][]string, names []string) []string {
	working := make(map[string][]string, len(coverMap))
	for _, n := range names {
		working[n] = coverMap[n]
	}

	path := []string{names[0]}
	curVars := toSet(working[names[0]])
	delete(working, names[0])

	for len(working) > 0 {
		remaining := sortedKeys(working)
		var next string
		for _, en := range remaining {
			if intersects(curVars, working[en]) {
				next = en
				break
			}
		}
		path = append(path, next)
		for _, v := range working[next] {
			curVars[v] = struct{}{}
		}
		delete(working, next)
	}
	return path
}

func pathJoinOps(path []string, node *tdecomp.Node, nodeName string) []Op {
	cover := node.ConCover
	ops := []Op{binaryJoinOp(path[0], path[1], cover, nodeName)}
	curVars := toSet(cover[path[0]])
	for _, v := range cover[path[1]] {
		curVars[v] = struct{}{}
	}

	for _, en := range path[2:] {
		joinatts := intersectSetSlice(curVars, cover[en])
		for _, v := range cover[en] {
			curVars[v] = struct{}{}
		}
		ops = append(ops, Op{Kind: Join, NewName: nodeName, A: nodeName, B: en, Key: joinatts})
	}

	ops = append(ops, Op{Kind: Project, NewName: nodeName, A: nodeName, Key: node.BagSlice()})
	return ops
}

func pathJoinOpsEarlySJ(path []string, node *tdecomp.Node, nodeName string, childMap map[*tdecomp.Node]string) []Op {
	cover := node.ConCover
	ops := []Op{binaryJoinOp(path[0], path[1], cover, nodeName)}
	curVars := toSet(cover[path[0]])
	for _, v := range cover[path[1]] {
		curVars[v] = struct{}{}
	}

	var sjCandidates []*tdecomp.Node
	for _, c := range node.Children {
		if isSemijoinChild(node, c) {
			sjCandidates = append(sjCandidates, c)
		}
	}

	drainReady := func() {
		var remaining []*tdecomp.Node
		for _, c := range sjCandidates {
			if isBagSubsetOfSet(c.Bag, curVars) {
				ops = append(ops, Op{Kind: Semijoin, NewName: nodeName, A: nodeName, B: childMap[c], Key: c.BagSlice()})
			} else {
				remaining = append(remaining, c)
			}
		}
		sjCandidates = remaining
	}
	drainReady()

	for _, en := range path[2:] {
		joinatts := intersectSetSlice(curVars, cover[en])
		for _, v := range cover[en] {
			curVars[v] = struct{}{}
		}
		ops = append(ops, Op{Kind: Join, NewName: nodeName, A: nodeName, B: en, Key: joinatts})
		drainReady()
	}

	ops = append(ops, Op{Kind: Project, NewName: nodeName, A: nodeName, Key: node.BagSlice()})
	return ops
}

func toSet(vs []string) map[string]struct{} {
	out := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		out[v] = struct{}{}
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func intersects(set map[string]struct{}, vs []string) bool {
	for _, v := range vs {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

func intersectSlices(a, b []string) []string {
	bs := toSet(b)
	var out []string
	for _, v := range a {
		if _, ok := bs[v]; ok {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func intersectSetSlice(set map[string]struct{}, vs []string) []string {
	var out []string
	for _, v := range vs {
		if _, ok := set[v]; ok {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func intersectBags(a, b map[string]struct{}) []string {
	var out []string
	for v := range a {
		if _, ok := b[v]; ok {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func isSubsetBag(sub, super map[string]struct{}) bool {
	for v := range sub {
		if _, ok := super[v]; !ok {
			return false
		}
	}
	return true
}

func isBagSubsetOfSet(bag map[string]struct{}, set map[string]struct{}) bool {
	for v := range bag {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

func sameVarSet(vs []string, bag []string) bool {
	a, b := toSet(vs), toSet(bag)
	if len(a) != len(b) {
		return false
	}
	for v := range a {
		if _, ok := b[v]; !ok {
			return false
		}
	}
	return true
}
