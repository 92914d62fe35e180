package astar

import (
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// ctxPollInterval is how many expansions pass between context checks.
const ctxPollInterval = 1024

// Search runs A* on p and returns the cheapest route from p.Start to the
// first node satisfying p.Goal.
//
// Preconditions and validation (in order):
//  1. p.Successors must be non-nil (ErrNilSuccessors).
//  2. p.Goal must be non-nil (ErrNilGoal).
//  3. Options must be valid (ErrOptionViolation).
//
// Returns ErrNoPath when no goal node is reachable, ErrExpansionLimit when the
// cap is hit, ErrNegativeCost on a negative arc, or ctx.Err() on cancellation.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search[N comparable](p Problem[N], opts ...Option) (*Result[N], error) {
	if p.Successors == nil {
		return nil, ErrNilSuccessors
	}
	if p.Goal == nil {
		return nil, ErrNilGoal
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	h := p.Heuristic
	if h == nil {
		h = Zero[N]
	}

	r := &runner[N]{
		problem:   p,
		heuristic: h,
		options:   cfg,
		best:      make(map[N]int),
		settled:   mapset.New[N](),
	}
	if cfg.ReturnPath {
		r.prev = make(map[N]N)
	}
	r.open = heap.New[item[N]](r.less)

	r.init()

	return r.process()
}

// item is one frontier entry. Several items may exist for the same node;
// only the one whose g equals best[node] is live.
type item[N comparable] struct {
	node N
	g    int
	h    int
	seq  uint64
}

func (it item[N]) f() int { return it.g + it.h }

// runner holds the mutable state of a single Search.
type runner[N comparable] struct {
	problem   Problem[N]
	heuristic func(N) int
	options   Options

	best     map[N]int     // node → best known g-score
	prev     map[N]N       // node → parent on the best known route; nil without ReturnPath
	settled  mapset.Set[N] // closed set
	open     *heap.Heap[item[N]]
	seq      uint64
	expanded int
}

// less orders the frontier by f, then h, then insertion order.
func (r *runner[N]) less(a, b item[N]) bool {
	if fa, fb := a.f(), b.f(); fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

func (r *runner[N]) push(n N, g int) {
	r.open.Push(item[N]{node: n, g: g, h: r.heuristic(n), seq: r.seq})
	r.seq++
}

// init seeds the frontier with the start node at g = 0.
func (r *runner[N]) init() {
	r.best[r.problem.Start] = 0
	r.push(r.problem.Start, 0)
}

// process pops frontier entries until a goal is reached or the frontier is empty.
func (r *runner[N]) process() (*Result[N], error) {
	for r.open.Size() > 0 {
		// 1) Pop the entry with the smallest f (ties: smaller h, then older).
		it, _ := r.open.Pop()

		// 2) Skip stale entries: a cheaper route to this node was pushed later.
		if it.g > r.best[it.node] {
			continue
		}
		// 3) Skip nodes already settled at this g-score.
		if r.settled.Has(it.node) {
			continue
		}

		// 4) Test the goal on pop, never on push, so the cost is optimal.
		if r.problem.Goal(it.node) {
			return r.result(it), nil
		}

		// 5) Settle the node and enforce the expansion cap.
		r.settled.Put(it.node)
		r.expanded++
		if r.options.MaxExpansions > 0 && r.expanded > r.options.MaxExpansions {
			return nil, fmt.Errorf("%w: %d nodes settled", ErrExpansionLimit, r.options.MaxExpansions)
		}
		// 6) Poll the context every ctxPollInterval expansions.
		if r.expanded%ctxPollInterval == 0 {
			if err := r.options.Ctx.Err(); err != nil {
				return nil, err
			}
		}

		// 7) Relax all outgoing arcs of the node.
		if err := r.relax(it); err != nil {
			return nil, err
		}
	}

	// 8) Frontier exhausted without reaching a goal.
	return nil, ErrNoPath
}

// relax pushes every successor of u whose tentative g-score improves on the
// best known one. A settled successor that improves is reopened.
func (r *runner[N]) relax(u item[N]) error {
	// 1) Ask the problem for the arcs leaving u.
	for _, a := range r.problem.Successors(u.node) {
		// 2) Reject negative costs; A* optimality assumes non-negative arcs.
		if a.Cost < 0 {
			return fmt.Errorf("%w: cost %d from %v to %v", ErrNegativeCost, a.Cost, u.node, a.To)
		}
		// 3) Keep only strict improvements over the best known g-score.
		g := u.g + a.Cost
		if old, seen := r.best[a.To]; seen && g >= old {
			continue
		}
		// 4) Record the new g-score and parent, reopen the node if it was
		//    settled, and push a fresh frontier entry.
		r.best[a.To] = g
		if r.prev != nil {
			r.prev[a.To] = u.node
		}
		r.settled.Remove(a.To)
		r.push(a.To, g)
	}

	return nil
}

// result builds the Result for goal entry it, walking parents back to Start.
func (r *runner[N]) result(it item[N]) *Result[N] {
	res := &Result[N]{Cost: it.g, Expanded: r.expanded}
	if r.prev == nil {
		return res
	}

	path := []N{it.node}
	for cur := it.node; cur != r.problem.Start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Path = path

	return res
}
