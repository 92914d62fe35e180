// Package heightmap defines core types, options, and sentinel errors
// for elevation grids.
package heightmap

import (
	"errors"
	"fmt"
	"unicode"
)

// Sentinel errors for heightmap operations.
var (
	// ErrMalformedInput indicates the text is not a rectangular grid of known symbols.
	ErrMalformedInput = errors.New("heightmap: malformed input")
	// ErrMarkerNotFound indicates a requested marker symbol does not occur in the grid.
	ErrMarkerNotFound = errors.New("heightmap: marker not found")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("heightmap: invalid option supplied")
)

// Elevation is the height of a cell on the ordered scale Lowest…Highest.
type Elevation int

const (
	// Lowest is the elevation of 'a'.
	Lowest Elevation = 0
	// Highest is the elevation of 'z'.
	Highest Elevation = 'z' - 'a'
)

// Valid reports whether e lies on the scale.
func (e Elevation) Valid() bool {
	return e >= Lowest && e <= Highest
}

// Rune returns the letter that represents e ('a' for Lowest).
func (e Elevation) Rune() rune {
	return 'a' + rune(e)
}

// String implements fmt.Stringer.
func (e Elevation) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Elevation(%d)", int(e))
	}

	return string(e.Rune())
}

// ElevationOf maps a letter 'a'…'z' to its elevation.
// ok is false for any other rune.
func ElevationOf(r rune) (e Elevation, ok bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}

	return Elevation(r - 'a'), true
}

// Position is a 0-indexed (X, Y) cell coordinate; X grows right, Y grows down.
type Position struct {
	X, Y int
}

// String formats p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Cell is a single grid cell: the symbol read from the input and the
// elevation it stands for.
type Cell struct {
	Symbol    rune
	Elevation Elevation
}

// IsMarker reports whether the cell holds a non-letter marker symbol.
func (c Cell) IsMarker() bool {
	_, letter := ElevationOf(c.Symbol)
	return !letter
}

// DefaultMarkers returns the start/summit marker table: 'S' → Lowest, 'E' → Highest.
func DefaultMarkers() map[rune]Elevation {
	return map[rune]Elevation{
		'S': Lowest,
		'E': Highest,
	}
}

// Options holds the marker table used while parsing.
type Options struct {
	Markers map[rune]Elevation

	// internal error recorded during option parsing
	err error
}

// Option configures Parse via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Parse runs.
type Option func(*Options)

// DefaultOptions returns Options with DefaultMarkers.
func DefaultOptions() Options {
	return Options{Markers: DefaultMarkers()}
}

// WithMarker registers symbol as an alias of elev, overriding any previous
// entry for the same symbol. Letters cannot be markers.
func WithMarker(symbol rune, elev Elevation) Option {
	return func(o *Options) {
		if err := checkMarker(symbol, elev); err != nil {
			o.err = err
			return
		}
		o.Markers[symbol] = elev
	}
}

// WithMarkers replaces the whole marker table. An empty table means the grid
// may hold letters only.
func WithMarkers(markers map[rune]Elevation) Option {
	return func(o *Options) {
		table := make(map[rune]Elevation, len(markers))
		for r, e := range markers {
			if err := checkMarker(r, e); err != nil {
				o.err = err
				return
			}
			table[r] = e
		}
		o.Markers = table
	}
}

func checkMarker(symbol rune, elev Elevation) error {
	if _, letter := ElevationOf(symbol); letter {
		return fmt.Errorf("%w: marker %q collides with an elevation letter", ErrOptionViolation, symbol)
	}
	if unicode.IsSpace(symbol) {
		return fmt.Errorf("%w: marker %q is whitespace", ErrOptionViolation, symbol)
	}
	if !elev.Valid() {
		return fmt.Errorf("%w: marker %q has elevation %d outside [%d,%d]",
			ErrOptionViolation, symbol, int(elev), int(Lowest), int(Highest))
	}

	return nil
}

// Grid is an immutable rectangular elevation map.
// Cells are stored row-major; use At or Elevation instead of indexing.
type Grid struct {
	width, height int
	cells         []Cell
	markers       map[rune]Elevation
}
