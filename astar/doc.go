// Package astar implements a generic best-first (A*) shortest-path search
// over implicit graphs with non-negative integer arc costs.
//
// Overview:
//
//   - The graph is never materialised. A Problem supplies a start node, a
//     Successors function, an optional Heuristic and a Goal predicate, so the
//     same engine serves fixed-coordinate targets and set-membership targets.
//   - The frontier is a min-heap ordered by f = g + h, ties broken by lower h
//     and then insertion order, which makes every run deterministic.
//   - A nil Heuristic is the zero heuristic: the search degrades to
//     uniform-cost search (Dijkstra) and is correct for any Goal predicate.
//   - Stale heap entries are tolerated ("lazy decrease-key") and skipped when
//     popped.
//
// Correctness:
//
//   - With an admissible heuristic (never overestimates the remaining cost)
//     the first node popped that satisfies Goal has minimal g-score.
//   - A settled node is reopened if a strictly cheaper route to it appears,
//     so admissible but inconsistent heuristics are still optimal.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a consistent heuristic.
//   - Space: O(V + E) for best-cost / parent maps and heap entries.
//
// Options:
//
//   - WithMaxExpansions(n): fail with ErrExpansionLimit after n settled nodes.
//   - WithoutPath():        skip parent bookkeeping; Result.Path is nil.
//   - WithContext(ctx):     poll ctx every 1024 expansions.
//
// Errors:
//
//   - ErrNilSuccessors, ErrNilGoal: incomplete Problem.
//   - ErrOptionViolation: invalid Option.
//   - ErrNegativeCost: a successor arc had negative cost.
//   - ErrExpansionLimit: MaxExpansions exceeded.
//   - ErrNoPath: frontier exhausted without reaching Goal.
//
// All state lives in one Search call; concurrent searches share nothing.
package astar
