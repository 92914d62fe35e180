package hillclimb

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/traverse"
)

// Solve finds the shortest route on g for q.
//
// Steps:
//  1. Validate q (ErrInvalidQuery).
//  2. Locate the start marker (ErrMarkerNotFound).
//  3. Resolve the target: a marker cell, or the set of cells of an elevation
//     class. An empty class cannot be satisfied and is ErrMarkerNotFound.
//  4. Search with traverse.Neighbors as successor function; Manhattan
//     distance guides marker targets unless q.Uniform, elevation targets use
//     the zero heuristic.
//  5. Map astar.ErrNoPath to ErrNoPathFound.
//
// Complexity: O(W×H·log(W×H)) time, O(W×H) memory.
func Solve(g *heightmap.Grid, q Query) (*Route, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	start, err := g.Find(q.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	p := astar.Problem[heightmap.Position]{
		Start: start,
		Successors: func(pos heightmap.Position) []astar.Arc[heightmap.Position] {
			edges := traverse.Neighbors(g, pos, q.Mode)
			arcs := make([]astar.Arc[heightmap.Position], len(edges))
			for i, e := range edges {
				arcs[i] = astar.Arc[heightmap.Position]{To: e.To, Cost: e.Cost}
			}
			return arcs
		},
	}

	switch q.Target.Kind {
	case TargetMarker:
		end, err := g.Find(q.Target.Marker)
		if err != nil {
			return nil, fmt.Errorf("target: %w", err)
		}
		p.Goal = func(pos heightmap.Position) bool { return pos == end }
		if !q.Uniform {
			p.Heuristic = func(pos heightmap.Position) int { return Manhattan(pos, end) }
		}
	case TargetElevation:
		goals := mapset.New[heightmap.Position]()
		for _, pos := range g.Positions(q.Target.Elevation) {
			goals.Put(pos)
		}
		if goals.Size() == 0 {
			return nil, fmt.Errorf("target: %w: no cell of elevation %v", ErrMarkerNotFound, q.Target.Elevation)
		}
		p.Goal = goals.Has
	}

	res, err := astar.Search(p, astar.WithMaxExpansions(q.MaxExpansions))
	if err != nil {
		if errors.Is(err, astar.ErrNoPath) {
			return nil, fmt.Errorf("%w: %v from %v to %v", ErrNoPathFound, q.Mode, start, q.Target)
		}
		return nil, err
	}

	return &Route{
		Start:    start,
		End:      res.Path[len(res.Path)-1],
		Path:     res.Path,
		Steps:    res.Cost,
		Expanded: res.Expanded,
	}, nil
}

// SolveText parses text with opts and runs Solve.
func SolveText(text string, q Query, opts ...heightmap.Option) (*Route, error) {
	g, err := heightmap.Parse(text, opts...)
	if err != nil {
		return nil, err
	}

	return Solve(g, q)
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b heightmap.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
