// Package traverse is the neighbor rule engine of hillclimb: given a cell of
// a heightmap.Grid and a traversal Mode it lists the orthogonal cells a
// climber may step to next.
//
// Modes:
//
//   - Ascent:  a step C → N is legal iff elev(N) ≤ elev(C) + MaxClimb.
//     Any drop is allowed, climbing is limited to one unit.
//   - Descent: a step C → N is legal iff elev(C) ≤ elev(N) + MaxClimb.
//     This is exactly the Ascent graph with every edge reversed, which lets a
//     search start at the summit and walk back toward any low cell.
//
// Every returned Edge costs StepCost (1). Neighbors are produced in the
// fixed order N, E, S, W and never leave the grid. The engine keeps no state;
// Neighbors is a pure function of the grid, the position and the mode.
package traverse
