package grid_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/librarium/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New and FromValues reject bad shapes.
func TestNew_Errors(t *testing.T) {
	_, err := grid.New[int](-1, 3)
	assert.ErrorIs(t, err, grid.ErrInvalidArgument)
	_, err = grid.New[int](3, -1)
	assert.ErrorIs(t, err, grid.ErrInvalidArgument)

	_, err = grid.FromValues([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	assert.ErrorIs(t, err, grid.ErrInvalidArgument)
}

// TestNew_Empty covers zero-sized grids.
func TestNew_Empty(t *testing.T) {
	g, err := grid.FromValues[int](nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, "", g.String())
	assert.False(t, g.Valid(grid.Position{}))

	g, err = grid.New[int](2, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}

// TestNew_FillAndFactory checks WithFill copies and WithFactory calls once per cell.
func TestNew_FillAndFactory(t *testing.T) {
	g, err := grid.New(2, 3, grid.WithFill('.'))
	require.NoError(t, err)
	for v := range g.Values() {
		assert.Equal(t, '.', v)
	}

	calls := 0
	type counter struct{ n int }
	pg, err := grid.New(2, 2, grid.WithFactory(func() *counter {
		calls++
		return &counter{}
	}))
	require.NoError(t, err)
	assert.Equal(t, 4, calls)

	a, err := pg.Get(grid.Position{Row: 0, Col: 0})
	require.NoError(t, err)
	a.n++
	b, err := pg.Get(grid.Position{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, b.n, "factory values must not be shared")
}

//----------------------------------------------------------------------------//
// Indexing
//----------------------------------------------------------------------------//

// TestIndexRoundTrip checks Index and PositionAt are inverse on a 3×4 grid.
func TestIndexRoundTrip(t *testing.T) {
	g, err := grid.New[int](3, 4)
	require.NoError(t, err)

	for pos := range g.Positions() {
		idx, err := g.Index(pos)
		require.NoError(t, err)
		assert.Equal(t, pos.Row*4+pos.Col, idx)
		back, err := g.PositionAt(idx)
		require.NoError(t, err)
		assert.Equal(t, pos, back)
	}

	for _, p := range []grid.Position{{Row: -1, Col: 0}, {Row: 3, Col: 0}, {Row: 0, Col: 4}, {Row: 1, Col: -1}} {
		_, err := g.Index(p)
		assert.ErrorIs(t, err, grid.ErrIndexOutOfRange, "Index(%s)", p)
		assert.False(t, g.Valid(p))
	}
	_, err = g.PositionAt(12)
	assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)
	_, err = g.PositionAt(-1)
	assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)
}

// TestGetSet covers in-bounds and out-of-bounds access.
func TestGetSet(t *testing.T) {
	g, err := grid.FromValues([][]string{{"a", "b"}, {"c", "d"}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())

	p := grid.Position{Row: 1, Col: 0}
	v, err := g.Get(p)
	require.NoError(t, err)
	assert.Equal(t, "c", v)

	require.NoError(t, g.Set(p, "z"))
	v, _ = g.Get(p)
	assert.Equal(t, "z", v)

	assert.ErrorIs(t, g.Set(grid.Position{Row: 2, Col: 0}, "x"), grid.ErrIndexOutOfRange)
	_, err = g.Get(grid.Position{Row: 0, Col: 2})
	assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)
}

// TestFromValues_Copies ensures later changes to the input do not leak in.
func TestFromValues_Copies(t *testing.T) {
	in := [][]int{{1, 2}}
	g, err := grid.FromValues(in)
	require.NoError(t, err)
	in[0][0] = 9
	v, _ := g.Get(grid.Position{})
	assert.Equal(t, 1, v)
}

//----------------------------------------------------------------------------//
// Neighbors and iteration
//----------------------------------------------------------------------------//

// TestNeighbors_DirectionSets checks order and bounds for each direction set.
func TestNeighbors_DirectionSets(t *testing.T) {
	g, err := grid.New[int](3, 3)
	require.NoError(t, err)
	corner := grid.Position{Row: 0, Col: 0}
	center := grid.Position{Row: 1, Col: 1}

	cases := []struct {
		name string
		pos  grid.Position
		dirs []grid.PosDelta
		want []grid.Position
	}{
		{"CornerDefault", corner, nil, []grid.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}}},
		{"CornerFull", corner, grid.Full, []grid.Position{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0}}},
		{"CornerDiagonal", corner, grid.Diagonal, []grid.Position{{Row: 1, Col: 1}}},
		{"CenterCardinal", center, grid.Cardinal, []grid.Position{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 1, Col: 0}}},
		{"CenterFull", center, grid.Full, []grid.Position{
			{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
			{Row: 2, Col: 1}, {Row: 2, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 0},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(g.Neighbors(tc.pos, tc.dirs...))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Neighbors(%s) mismatch (-want +got):\n%s", tc.pos, diff)
			}
			for _, n := range got {
				assert.True(t, g.Valid(n))
			}
		})
	}
}

// TestNeighbors_FilteredAndValues checks the predicate variants.
func TestNeighbors_FilteredAndValues(t *testing.T) {
	g, err := grid.FromValues([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)
	center := grid.Position{Row: 1, Col: 1}
	even := func(v int) bool { return v%2 == 0 }

	assert.Equal(t, []int{2, 6, 8, 4}, slices.Collect(g.NeighborValues(center)))
	assert.Equal(t, []int{2, 3, 6, 9, 8, 7, 4, 1}, slices.Collect(g.NeighborValues(center, grid.Full...)))
	assert.Equal(t, []int{3, 9, 7, 1}, slices.Collect(g.NeighborValuesFunc(center, func(v int) bool { return v%2 == 1 }, grid.Full...)))

	got := slices.Collect(g.NeighborsFunc(center, even))
	assert.Equal(t, []grid.Position{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 1, Col: 0}}, got)

	var cells []grid.Cell[int]
	for p, v := range g.NeighborCellsFunc(grid.Position{Row: 0, Col: 0}, even, grid.Full...) {
		cells = append(cells, grid.Cell[int]{Pos: p, Value: v})
	}
	assert.Equal(t, []grid.Cell[int]{{Pos: grid.Position{Row: 0, Col: 1}, Value: 2}, {Pos: grid.Position{Row: 1, Col: 0}, Value: 4}}, cells)

	n := 0
	for range g.NeighborCells(center) {
		n++
	}
	assert.Equal(t, 4, n)
}

// TestIterators_Restartable verifies sequences can be re-run and stopped early.
func TestIterators_Restartable(t *testing.T) {
	g, err := grid.FromValues([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	seq := g.Neighbors(grid.Position{Row: 0, Col: 0})
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	for range seq {
		break
	}
	for range g.All() {
		break
	}
	for range g.Filter(func(int) bool { return true }) {
		break
	}
	for range g.Positions() {
		break
	}
	for range g.Values() {
		break
	}
	for range g.NeighborValues(grid.Position{}) {
		break
	}
}

// TestAllFilter checks row-major order of full-grid sequences.
func TestAllFilter(t *testing.T) {
	g, err := grid.FromValues([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, slices.Collect(g.Values()))
	assert.Equal(t, []grid.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
	}, slices.Collect(g.Positions()))

	var odd []grid.Position
	for p, v := range g.Filter(func(v int) bool { return v%2 == 1 }) {
		odd = append(odd, p)
		assert.Equal(t, 1, v%2)
	}
	assert.Equal(t, []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 1}}, odd)

	i := 0
	for p, v := range g.All() {
		assert.Equal(t, i+1, v)
		assert.Equal(t, grid.Position{Row: i / 3, Col: i % 3}, p)
		i++
	}
}

//----------------------------------------------------------------------------//
// Rendering
//----------------------------------------------------------------------------//

// TestRender covers marks and custom formatters.
func TestRender(t *testing.T) {
	g, err := grid.FromValues([][]int{{1, 0, 1}, {1, 1, 0}})
	require.NoError(t, err)

	assert.Equal(t, "101\n110\n", g.String())
	assert.Equal(t, "1X1\n110\n", g.Render(grid.WithMark(grid.Position{Row: 0, Col: 1}, "X")))

	hash := func(v int) string {
		if v == 1 {
			return "#"
		}
		return "."
	}
	assert.Equal(t, "#.#\n##.\n", g.RenderFunc(hash))
	assert.Equal(t, "#.#\n#@.\n", g.RenderFunc(hash, grid.WithMark(grid.Position{Row: 1, Col: 1}, "@")))
}

// TestPosition_Helpers covers Add and String.
func TestPosition_Helpers(t *testing.T) {
	p := grid.Position{Row: 2, Col: 3}
	assert.Equal(t, grid.Position{Row: 1, Col: 4}, p.Add(grid.UpRight))
	assert.Equal(t, grid.Position{Row: 3, Col: 2}, p.Add(grid.DownLeft))
	assert.Equal(t, "(2,3)", p.String())
	assert.Len(t, grid.Full, 8)
	assert.Len(t, grid.Cardinal, 4)
	assert.Len(t, grid.Diagonal, 4)
}
