package hillclimb

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/traverse"
)

// Sentinel errors returned by Solve. ErrMalformedInput and ErrMarkerNotFound
// are the heightmap sentinels, so errors.Is works with either name.
var (
	// ErrMalformedInput indicates the map text is not a valid grid.
	ErrMalformedInput = heightmap.ErrMalformedInput

	// ErrMarkerNotFound indicates the start or target cannot be located.
	ErrMarkerNotFound = heightmap.ErrMarkerNotFound

	// ErrNoPathFound indicates the search exhausted every reachable cell.
	// It wraps astar.ErrNoPath.
	ErrNoPathFound = fmt.Errorf("hillclimb: no path found: %w", astar.ErrNoPath)

	// ErrInvalidQuery indicates a Query with an unknown mode or target kind.
	ErrInvalidQuery = errors.New("hillclimb: invalid query")
)

// TargetKind selects how the end of a route is recognised.
type TargetKind int

const (
	// TargetMarker ends at the single cell holding Target.Marker.
	TargetMarker TargetKind = iota
	// TargetElevation ends at any cell whose elevation equals Target.Elevation.
	TargetElevation
)

// String returns "marker" or "elevation".
func (k TargetKind) String() string {
	switch k {
	case TargetMarker:
		return "marker"
	case TargetElevation:
		return "elevation"
	default:
		return fmt.Sprintf("TargetKind(%d)", int(k))
	}
}

// Target is the success predicate of a Query.
type Target struct {
	Kind      TargetKind
	Marker    rune                // used when Kind == TargetMarker
	Elevation heightmap.Elevation // used when Kind == TargetElevation
}

// AtMarker targets the cell holding marker.
func AtMarker(marker rune) Target {
	return Target{Kind: TargetMarker, Marker: marker}
}

// AtElevation targets any cell of elevation e.
func AtElevation(e heightmap.Elevation) Target {
	return Target{Kind: TargetElevation, Elevation: e}
}

// String formats t as "marker 'E'" or "elevation a".
func (t Target) String() string {
	if t.Kind == TargetElevation {
		return fmt.Sprintf("elevation %v", t.Elevation)
	}

	return fmt.Sprintf("marker %q", t.Marker)
}

// Query configures one route search.
//
// Mode          – step rule applied to every move.
// Start         – marker symbol of the start cell.
// Target        – where the route ends.
// Uniform       – ignore the Manhattan heuristic even for marker targets.
// MaxExpansions – optional cap on settled cells (0 = none).
type Query struct {
	Mode          traverse.Mode
	Start         rune
	Target        Target
	Uniform       bool
	MaxExpansions int
}

// Summit is the forward query: climb from 'S' to 'E' under Ascent.
func Summit() Query {
	return Query{Mode: traverse.Ascent, Start: 'S', Target: AtMarker('E')}
}

// Trailhead is the reverse query: walk down from 'E' to the nearest cell of
// the lowest elevation under Descent.
func Trailhead() Query {
	return Query{Mode: traverse.Descent, Start: 'E', Target: AtElevation(heightmap.Lowest)}
}

// Validate reports ErrInvalidQuery for an unknown mode, target kind or a
// negative expansion cap.
func (q Query) Validate() error {
	if !q.Mode.Valid() {
		return fmt.Errorf("%w: mode %v", ErrInvalidQuery, q.Mode)
	}
	switch q.Target.Kind {
	case TargetMarker:
	case TargetElevation:
		if !q.Target.Elevation.Valid() {
			return fmt.Errorf("%w: target elevation %d", ErrInvalidQuery, int(q.Target.Elevation))
		}
	default:
		return fmt.Errorf("%w: target kind %v", ErrInvalidQuery, q.Target.Kind)
	}
	if q.MaxExpansions < 0 {
		return fmt.Errorf("%w: MaxExpansions %d", ErrInvalidQuery, q.MaxExpansions)
	}

	return nil
}

// Route is the result of a successful Solve.
//
// Start, End – first and last cells of Path.
// Path       – every cell visited, Start and End included.
// Steps      – number of moves (the terminal g-score).
// Expanded   – cells settled by the search; useful to compare heuristics.
type Route struct {
	Start, End heightmap.Position
	Path       []heightmap.Position
	Steps      int
	Expanded   int
}

// Length returns the route length in unit steps.
func (r *Route) Length() int {
	return r.Steps
}
