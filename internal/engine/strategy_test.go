package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, width, height uint64, counts ...uint64) *Game {
	t.Helper()

	g := NewDefault()
	g.Create(RoleSlave)
	g.SetWidth(width)
	g.SetHeight(height)
	for i, c := range counts {
		require.True(t, g.SetCount(i+1, c), "quota for size %d", i+1)
	}
	return g
}

func TestOrderedShotSequence(t *testing.T) {
	g := newBoard(t, 3, 3)
	g.SetStrategy(StrategyOrdered)

	var got []Coordinate
	for i := 0; i < 16; i++ {
		got = append(got, g.SetShot())
	}

	assert.Equal(t, []Coordinate{C(1, 0), C(2, 0), C(3, 0), C(0, 1)}, got[:4])
	assert.Equal(t, C(3, 3), got[14])
	assert.Equal(t, C(0, 0), got[15], "cursor wraps after visiting the boundary row")
}

func TestCustomShotSequence(t *testing.T) {
	g := newBoard(t, 3, 3)
	g.SetStrategy(StrategyCustom)

	got := []Coordinate{g.SetShot(), g.SetShot(), g.SetShot(), g.SetShot()}

	assert.Equal(t, []Coordinate{C(0, 1), C(0, 2), C(0, 3), C(1, 0)}, got)
}

func TestSetStrategyRestartsSequence(t *testing.T) {
	g := newBoard(t, 3, 3)
	g.SetStrategy(StrategyOrdered)
	g.SetShot()
	g.SetShot()

	g.SetStrategy(StrategyOrdered)

	assert.Equal(t, C(1, 0), g.SetShot())
}

func TestNewStrategyFallsBackToOrdered(t *testing.T) {
	assert.Equal(t, StrategyOrdered, NewStrategy("zigzag", 0).Kind())
	assert.Equal(t, StrategyCustom, NewStrategy(StrategyCustom, 0).Kind())
}

func TestStrategiesListing(t *testing.T) {
	list := Strategies()

	require.Len(t, list, 2)
	assert.Equal(t, StrategyCustom, list[0].Kind)
	assert.Equal(t, StrategyOrdered, list[1].Kind)
}

func TestValidateCell(t *testing.T) {
	g := newBoard(t, 5, 5)
	g.Player().AddShip(NewShip(C(2, 2), 1, Horizontal))
	p := &placer{}

	assert.False(t, p.ValidateCell(C(-1, 0), g), "negative x")
	assert.False(t, p.ValidateCell(C(5, 0), g), "x == width")
	assert.False(t, p.ValidateCell(C(0, 5), g), "y == height")
	assert.False(t, p.ValidateCell(C(1, 1), g), "diagonal neighbour")
	assert.False(t, p.ValidateCell(C(3, 2), g), "side neighbour")
	assert.True(t, p.ValidateCell(C(0, 0), g))
	assert.True(t, p.ValidateCell(C(4, 4), g))
}

func TestTryPlaceShipIsAllOrNothing(t *testing.T) {
	g := newBoard(t, 5, 5)
	p := &placer{}

	ok := p.TryPlaceShip(NewShip(C(3, 0), 3, Horizontal), g)

	assert.False(t, ok)
	assert.Empty(t, g.Player().Ships())
	assert.False(t, g.Player().CheckCoord(C(3, 0)))
}

func TestPlaceShipsLargestFirst(t *testing.T) {
	g := NewDefault()
	g.Create(RoleMaster)

	require.NoError(t, g.Start())

	ships := g.Player().Ships()
	require.Len(t, ships, 4)
	assert.Equal(t, NewShip(C(0, 0), 4, Horizontal), ships[0])
	assert.Equal(t, NewShip(C(0, 2), 3, Horizontal), ships[1])
	assert.Equal(t, NewShip(C(0, 4), 2, Horizontal), ships[2])
	assert.Equal(t, NewShip(C(0, 6), 1, Horizontal), ships[3])
}

func TestPlacementStopsWithoutProgress(t *testing.T) {
	// 4x2 passes the heuristic for four single-deck ships but only two fit.
	g := newBoard(t, 4, 2, 4)

	err := g.Start()

	require.ErrorIs(t, err, ErrFleetDoesNotFit)
	assert.Len(t, g.Player().Ships(), 2)
	assert.Equal(t, int64(2), g.Field().OwnAlive)
}

func TestPlacementDoesNotReuseIsolatedCells(t *testing.T) {
	// Only one single-deck ship fits on 2x2; its cell has no registered
	// neighbours, so a second sweep must not place onto it again.
	g := newBoard(t, 2, 2, 2)

	err := g.Start()

	require.ErrorIs(t, err, ErrFleetDoesNotFit)
	require.Len(t, g.Player().Ships(), 1)
	assert.Len(t, g.Player().fleet, 1)
	assert.Equal(t, int64(1), g.Field().OwnAlive)

	assert.Equal(t, ShotKill, g.CheckShot(C(0, 0)))
	assert.True(t, g.IsLose())
}

func TestPlacementNeverOverwritesCells(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint64
		counts        []uint64
	}{
		{"default quotas", 10, 10, []uint64{1, 1, 1, 1}},
		{"full classic fleet", 10, 10, []uint64{4, 3, 2, 1}},
		{"crowded singles", 4, 2, []uint64{4}},
		{"single cell board", 2, 2, []uint64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newBoard(t, tt.width, tt.height, tt.counts...)
			_ = g.Start()

			p := g.Player()
			assert.Equal(t, len(p.fleet), len(p.Ships()))

			cells := 0
			for _, s := range p.Ships() {
				cells += s.Size()
			}
			assert.Len(t, p.cells, cells)
			assert.Equal(t, int64(len(p.Ships())), g.Field().OwnAlive)
		})
	}
}

func TestPlacementSweepCap(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxSweeps = 1
	g := New(opts)
	g.Create(RoleSlave)
	g.SetWidth(4)
	g.SetHeight(2)
	require.True(t, g.SetCount(1, 4))

	err := g.Start()

	require.ErrorIs(t, err, ErrFleetDoesNotFit)
	assert.Contains(t, err.Error(), "after 1 sweep")
}
