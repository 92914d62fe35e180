// Package heightmap parses plain-text elevation maps into an immutable grid
// of cells that the search packages of hillclimb walk over.
//
// What:
//
//   - Grid wraps a rectangular, row-major slice of cells, each holding the
//     original symbol and its resolved Elevation.
//   - Letters 'a'…'z' map to elevations 0…25 (Lowest…Highest).
//   - Marker symbols (by default 'S' and 'E') are aliases of a configured
//     elevation: 'S' behaves as Lowest, 'E' as Highest. Any non-letter rune can
//     be registered as a marker with WithMarker.
//   - Find locates the first cell holding a marker; FindAll and Positions
//     select cells by predicate or elevation class.
//
// Why:
//
//   - The same grid serves forward (start → summit) and reverse
//     (summit → nearest low point) queries, so markers are configuration,
//     not constants.
//
// Complexity:
//
//   - Parse / NewGrid: O(W×H) time and memory.
//   - At, Elevation, Symbol, InBounds: O(1).
//   - Find, FindAll, Positions: O(W×H).
//
// Errors:
//
//   - ErrMalformedInput: no rows, empty row, ragged rows or unknown symbol.
//   - ErrMarkerNotFound: Find was asked for a symbol absent from the grid.
//   - ErrOptionViolation: an Option tried to register an invalid marker.
//
// A Grid is never mutated after construction and is safe for concurrent reads.
package heightmap
