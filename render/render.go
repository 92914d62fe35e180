// Package render draws a heightmap with a route overlaid on it, one text row
// per grid row. Route cells show an arrow toward the next cell, the end cell
// keeps its symbol, and every other cell shows '.' (or its own symbol when
// Options.Terrain is set). Marker cells off the route keep their symbol.
// With Options.Color the route is highlighted using ANSI styles, subject to
// the colour level gookit/color detects; call color.ForceColor to colour
// output that is not a terminal.
package render

import (
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/katalvlaran/hillclimb"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/traverse"
)

// Styles used when Options.Color is set.
var (
	StyleStart   = color.Style{color.FgGreen, color.OpBold}
	StyleEnd     = color.Style{color.FgRed, color.OpBold}
	StylePath    = color.Style{color.FgCyan}
	StyleTerrain = color.Style{color.FgGray}
)

// Options controls the drawing.
type Options struct {
	// Color wraps cells in ANSI styles.
	Color bool
	// Terrain prints each off-route cell's symbol instead of '.'.
	Terrain bool
}

// arrows holds one glyph per traverse offset, in the same order.
var arrows = [4]rune{'^', '>', 'v', '<'}

// Arrow returns the glyph for a single step from one cell to an adjacent one:
// '^', '>', 'v' or '<'. Non-adjacent pairs yield '?'.
func Arrow(from, to heightmap.Position) rune {
	dx, dy := to.X-from.X, to.Y-from.Y
	for i, d := range traverse.Offsets() {
		if d[0] == dx && d[1] == dy {
			return arrows[i]
		}
	}

	return '?'
}

// Render writes g to w with route overlaid. A nil route draws the bare map.
func Render(w io.Writer, g *heightmap.Grid, route *hillclimb.Route, opts Options) error {
	next := make(map[heightmap.Position]heightmap.Position)
	var end heightmap.Position
	onRoute := false
	if route != nil && len(route.Path) > 0 {
		for i := 0; i+1 < len(route.Path); i++ {
			next[route.Path[i]] = route.Path[i+1]
		}
		end = route.Path[len(route.Path)-1]
		onRoute = true
	}

	markers := g.Markers()

	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := heightmap.Position{X: x, Y: y}
			sym, _ := g.Symbol(p)

			switch to, ok := next[p]; {
			case ok:
				style := StylePath
				if p == route.Start {
					style = StyleStart
				}
				cell(&sb, Arrow(p, to), style, opts.Color)
			case onRoute && p == end:
				cell(&sb, sym, StyleEnd, opts.Color)
			case opts.Terrain || route == nil:
				cell(&sb, sym, StyleTerrain, opts.Color)
			case hasMarker(markers, sym):
				cell(&sb, sym, StyleTerrain, opts.Color)
			default:
				cell(&sb, '.', StyleTerrain, opts.Color)
			}
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func hasMarker(markers map[rune]heightmap.Elevation, r rune) bool {
	_, ok := markers[r]
	return ok
}

func cell(sb *strings.Builder, r rune, style color.Style, colored bool) {
	if !colored {
		sb.WriteRune(r)
		return
	}
	sb.WriteString(style.Render(string(r)))
}
