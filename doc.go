// Package hillclimb finds shortest climbing routes over elevation maps.
//
// 🧗 What is hillclimb?
//
//	A small toolkit that turns a plain-text heightmap into a graph walked by
//	a generic A* engine, with direction-dependent step rules:
//		• heightmap/: parse text into an immutable elevation grid, resolve markers
//		• traverse/ : neighbor rule engine (Ascent / Descent modes)
//		• astar/    : generic A* / uniform-cost search over any comparable node
//		• config/   : YAML description of markers and named queries
//		• render/   : draw a grid with its route, coloured on a terminal
//		• cmd/hillclimb: command-line front end
//
// This root package binds them together: a Query picks a traversal Mode, a
// start marker and a target predicate (a fixed marker cell, or any cell of an
// elevation class), and Solve returns the Route with its length.
//
// Quick example on the reference map:
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
//	Summit():    ascent from S to E                → 31 steps
//	Trailhead(): descent from E to any 'a' cell    → 29 steps
//
// The Manhattan heuristic used for marker targets is admissible only because
// every step costs 1 and moves are orthogonal. Extending traverse with
// diagonal or weighted moves requires revisiting Manhattan.
package hillclimb
