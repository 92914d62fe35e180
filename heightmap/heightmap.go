package heightmap

import (
	"fmt"
	"strings"
)

// Parse reads a newline-delimited elevation map.
// A trailing '\r' on each line is dropped and blank lines before the first
// and after the last row are ignored, so files ending in a newline parse as
// expected. Every remaining row must have the same width and consist of
// letters 'a'…'z' or registered marker symbols.
// Complexity: O(W×H).
func Parse(text string, opts ...Option) (*Grid, error) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	// trim blank lines at both ends
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]rune, len(lines))
	for y, line := range lines {
		rows[y] = []rune(line)
	}

	return build(rows, opts)
}

// NewGrid builds a Grid from pre-split rows and an explicit marker table.
// It deep-copies the input so later changes to rows do not leak in.
// A nil markers table means DefaultMarkers.
// Complexity: O(W×H).
func NewGrid(rows [][]rune, markers map[rune]Elevation) (*Grid, error) {
	var opts []Option
	if markers != nil {
		opts = append(opts, WithMarkers(markers))
	}

	return build(rows, opts)
}

func build(rows [][]rune, opts []Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: grid has no rows", ErrMalformedInput)
	}
	h, w := len(rows), len(rows[0])
	if w == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrMalformedInput)
	}

	cells := make([]Cell, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedInput, y, len(row), w)
		}
		for x, r := range row {
			e, ok := ElevationOf(r)
			if !ok {
				if e, ok = cfg.Markers[r]; !ok {
					return nil, fmt.Errorf("%w: unknown symbol %q at (%d,%d)", ErrMalformedInput, r, x, y)
				}
			}
			cells = append(cells, Cell{Symbol: r, Elevation: e})
		}
	}

	return &Grid{
		width:   w,
		height:  h,
		cells:   cells,
		markers: cfg.Markers,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells (Width×Height).
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at p; ok is false when p is out of bounds.
// Complexity: O(1).
func (g *Grid) At(p Position) (c Cell, ok bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}

	return g.cells[g.index(p)], true
}

// Elevation returns the elevation at p, resolving marker symbols to the
// elevation they alias. ok is false when p is out of bounds.
func (g *Grid) Elevation(p Position) (Elevation, bool) {
	c, ok := g.At(p)
	return c.Elevation, ok
}

// Symbol returns the raw symbol at p. ok is false when p is out of bounds.
func (g *Grid) Symbol(p Position) (rune, bool) {
	c, ok := g.At(p)
	return c.Symbol, ok
}

// Markers returns a copy of the marker table the grid was parsed with.
func (g *Grid) Markers() map[rune]Elevation {
	out := make(map[rune]Elevation, len(g.markers))
	for r, e := range g.markers {
		out[r] = e
	}

	return out
}

// Find returns the first position in row-major order whose symbol is marker.
// Returns ErrMarkerNotFound (wrapped with the symbol) if no cell holds it.
// Complexity: O(W×H).
func (g *Grid) Find(marker rune) (Position, error) {
	for i, c := range g.cells {
		if c.Symbol == marker {
			return g.Coordinate(i), nil
		}
	}

	return Position{}, fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
}

// FindAll returns, in row-major order, every position whose cell satisfies pred.
// Complexity: O(W×H).
func (g *Grid) FindAll(pred func(Cell) bool) []Position {
	var out []Position
	for i, c := range g.cells {
		if pred(c) {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}

// Positions returns every position of elevation class e, markers included.
func (g *Grid) Positions(e Elevation) []Position {
	return g.FindAll(func(c Cell) bool { return c.Elevation == e })
}

// String reproduces the grid as newline-separated rows of symbols.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[y*g.width+x].Symbol)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps p to a row-major index: y*Width + x. Caller checks bounds.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}
