package traverse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// ErrUnknownMode is returned by ParseMode for an unrecognised name.
var ErrUnknownMode = errors.New("traverse: unknown mode")

const (
	// MaxClimb is the largest elevation gain allowed by a single Ascent step.
	MaxClimb heightmap.Elevation = 1
	// StepCost is the cost of every move.
	StepCost = 1
)

// Mode selects the elevation-difference rule applied to each step.
type Mode int

const (
	// Ascent allows climbing at most MaxClimb and dropping any amount.
	Ascent Mode = iota
	// Descent is Ascent on the reversed graph.
	Descent
)

// String returns "ascent" or "descent".
func (m Mode) String() string {
	switch m {
	case Ascent:
		return "ascent"
	case Descent:
		return "descent"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is Ascent or Descent.
func (m Mode) Valid() bool {
	return m == Ascent || m == Descent
}

// Reverse returns the mode whose edges are those of m reversed.
func (m Mode) Reverse() Mode {
	if m == Ascent {
		return Descent
	}

	return Ascent
}

// ParseMode accepts "ascent"/"up" and "descent"/"down", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascent", "up":
		return Ascent, nil
	case "descent", "down":
		return Descent, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Edge is one legal step to an adjacent cell.
type Edge struct {
	To   heightmap.Position
	Cost int
}

// offsets lists N, E, S, W. A Manhattan-distance heuristic is admissible
// only while every move is one of these unit steps at StepCost.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Offsets returns the orthogonal neighbor offsets in visiting order.
func Offsets() [4][2]int {
	return offsets
}

// Legal reports whether a step from elevation from to elevation to is
// allowed under mode.
func Legal(from, to heightmap.Elevation, mode Mode) bool {
	switch mode {
	case Ascent:
		return to <= from+MaxClimb
	case Descent:
		return from <= to+MaxClimb
	default:
		return false
	}
}

// Neighbors returns the in-bounds orthogonal cells reachable from p in one
// step under mode. It returns nil when p is outside g or mode is invalid.
// Complexity: O(1).
func Neighbors(g *heightmap.Grid, p heightmap.Position, mode Mode) []Edge {
	from, ok := g.Elevation(p)
	if !ok || !mode.Valid() {
		return nil
	}

	out := make([]Edge, 0, len(offsets))
	for _, d := range offsets {
		q := p.Add(d[0], d[1])
		to, ok := g.Elevation(q)
		if !ok || !Legal(from, to, mode) {
			continue
		}
		out = append(out, Edge{To: q, Cost: StepCost})
	}

	return out
}
