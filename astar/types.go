package astar

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by Search.
var (
	// ErrNilSuccessors indicates the Problem has no Successors function.
	ErrNilSuccessors = errors.New("astar: successors function is nil")

	// ErrNilGoal indicates the Problem has no Goal predicate.
	ErrNilGoal = errors.New("astar: goal predicate is nil")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNegativeCost indicates a successor arc carried a negative cost.
	ErrNegativeCost = errors.New("astar: negative arc cost encountered")

	// ErrExpansionLimit indicates MaxExpansions nodes were settled without reaching the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrNoPath indicates the frontier was exhausted before any goal node was reached.
	ErrNoPath = errors.New("astar: no path to goal")
)

// Arc is a weighted edge to a successor node.
type Arc[N comparable] struct {
	To   N
	Cost int
}

// Problem describes one search over an implicit graph.
//
// Start      – the initial node, pushed with g = 0.
// Successors – outgoing arcs of a node; called once per settled node.
// Heuristic  – lower bound on the remaining cost; nil means Zero.
// Goal       – success predicate evaluated on every popped node.
type Problem[N comparable] struct {
	Start      N
	Successors func(N) []Arc[N]
	Heuristic  func(N) int
	Goal       func(N) bool
}

// Zero is the zero heuristic. Searching with it is uniform-cost search.
func Zero[N comparable](N) int { return 0 }

// Options configures Search.
//
//   - Ctx: polled every ctxPollInterval expansions.
//   - MaxExpansions: 0 disables the cap; otherwise Search fails once more
//     than MaxExpansions nodes have been settled.
//   - ReturnPath: record parents and return the node sequence.
type Options struct {
	Ctx           context.Context
	MaxExpansions int
	ReturnPath    bool

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no expansion cap
// and path reconstruction enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		ReturnPath:    true,
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of settled nodes.
//
//	n > 0:  cap at n
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithoutPath disables parent bookkeeping; Result.Path will be nil.
func WithoutPath() Option {
	return func(o *Options) {
		o.ReturnPath = false
	}
}

// Result is the outcome of a successful Search.
//
// Cost     – g-score of the goal node reached.
// Path     – nodes from Start to the goal inclusive (nil with WithoutPath).
// Expanded – number of nodes settled before the goal was popped.
type Result[N comparable] struct {
	Cost     int
	Path     []N
	Expanded int
}

// Goal returns the last node of Path. ok is false when Path was not recorded.
func (r *Result[N]) Goal() (n N, ok bool) {
	if len(r.Path) == 0 {
		return n, false
	}

	return r.Path[len(r.Path)-1], true
}

// Steps returns the number of arcs on Path, or -1 when Path was not recorded.
func (r *Result[N]) Steps() int {
	if r.Path == nil {
		return -1
	}

	return len(r.Path) - 1
}
