package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/traverse"
)

func pos(x, y int) heightmap.Position { return heightmap.Position{X: x, Y: y} }

// targets collects the destination of each edge, asserting unit cost.
func targets(t *testing.T, edges []traverse.Edge) []heightmap.Position {
	t.Helper()
	out := make([]heightmap.Position, 0, len(edges))
	for _, e := range edges {
		assert.Equal(t, traverse.StepCost, e.Cost, "edge to %v", e.To)
		out = append(out, e.To)
	}

	return out
}

// TestLegal covers both rules at the climb boundary.
func TestLegal(t *testing.T) {
	cases := []struct {
		from, to heightmap.Elevation
		mode     traverse.Mode
		want     bool
	}{
		{0, 1, traverse.Ascent, true},
		{0, 2, traverse.Ascent, false},
		{25, 0, traverse.Ascent, true},
		{5, 5, traverse.Ascent, true},
		{1, 0, traverse.Descent, true},
		{2, 0, traverse.Descent, false},
		{0, 25, traverse.Descent, true},
		{5, 5, traverse.Descent, true},
		{0, 0, traverse.Mode(7), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, traverse.Legal(tc.from, tc.to, tc.mode),
			"Legal(%v→%v, %v)", tc.from, tc.to, tc.mode)
	}
}

// TestLegal_Reverse checks that Descent is Ascent with every edge flipped.
func TestLegal_Reverse(t *testing.T) {
	for a := heightmap.Lowest; a <= heightmap.Highest; a++ {
		for b := heightmap.Lowest; b <= heightmap.Highest; b++ {
			assert.Equal(t, traverse.Legal(a, b, traverse.Ascent), traverse.Legal(b, a, traverse.Descent),
				"a=%v b=%v", a, b)
		}
	}
}

// TestNeighbors_Ascent inspects the start cell and a cliff edge of the sample grid.
func TestNeighbors_Ascent(t *testing.T) {
	g, err := heightmap.Parse("Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n")
	require.NoError(t, err)

	// S (a) at the corner: E → a, S → a; no N or W.
	got := targets(t, traverse.Neighbors(g, pos(0, 0), traverse.Ascent))
	assert.Equal(t, []heightmap.Position{pos(1, 0), pos(0, 1)}, got)

	// c at (2,1): N b, E r (too high), S c, W b.
	got = targets(t, traverse.Neighbors(g, pos(2, 1), traverse.Ascent))
	assert.Equal(t, []heightmap.Position{pos(2, 0), pos(2, 2), pos(1, 1)}, got)

	// z at (4,2) may step onto E (z) to the east.
	got = targets(t, traverse.Neighbors(g, pos(4, 2), traverse.Ascent))
	assert.Contains(t, got, pos(5, 2))
}

// TestNeighbors_Descent walks the same cells with the reversed rule.
func TestNeighbors_Descent(t *testing.T) {
	g, err := heightmap.Parse("Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n")
	require.NoError(t, err)

	// E (z) at (5,2): only neighbors at elevation ≥ y are legal, and the
	// surrounding x and v cells are too low.
	got := targets(t, traverse.Neighbors(g, pos(5, 2), traverse.Descent))
	assert.Equal(t, []heightmap.Position{pos(4, 2)}, got)

	// c at (2,1): r (E) and b/c are all ≥ b.
	got = targets(t, traverse.Neighbors(g, pos(2, 1), traverse.Descent))
	assert.Equal(t, []heightmap.Position{pos(2, 0), pos(3, 1), pos(2, 2), pos(1, 1)}, got)
}

// TestNeighbors_Invalid returns nil for off-grid positions and bad modes.
func TestNeighbors_Invalid(t *testing.T) {
	g, err := heightmap.Parse("ab\ncd")
	require.NoError(t, err)

	assert.Nil(t, traverse.Neighbors(g, pos(-1, 0), traverse.Ascent))
	assert.Nil(t, traverse.Neighbors(g, pos(0, 0), traverse.Mode(9)))
}

// TestParseMode accepts the documented aliases.
func TestParseMode(t *testing.T) {
	for in, want := range map[string]traverse.Mode{
		"ascent": traverse.Ascent, "UP": traverse.Ascent,
		"descent": traverse.Descent, " down ": traverse.Descent,
	} {
		got, err := traverse.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := traverse.ParseMode("sideways")
	assert.ErrorIs(t, err, traverse.ErrUnknownMode)
}

// TestMode_String and Reverse.
func TestMode_String(t *testing.T) {
	assert.Equal(t, "ascent", traverse.Ascent.String())
	assert.Equal(t, "descent", traverse.Descent.String())
	assert.Equal(t, "Mode(4)", traverse.Mode(4).String())
	assert.Equal(t, traverse.Descent, traverse.Ascent.Reverse())
	assert.Equal(t, traverse.Ascent, traverse.Descent.Reverse())
}

func TestOffsets(t *testing.T) {
	want := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	assert.Equal(t, want, traverse.Offsets())
	for _, d := range traverse.Offsets() {
		assert.Equal(t, traverse.StepCost, abs(d[0])+abs(d[1]), "offset %v", d)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
