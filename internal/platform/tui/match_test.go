package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/seabattle/internal/engine"
)

// smallMatch sets up a 4x4 match with one single-deck ship per side.
// With the ordered strategy both ships end up at (0,0).
func smallMatch(t *testing.T, cfg MatchConfig) *Match {
	t.Helper()
	cfg.Options = engine.Options{
		Width:  4,
		Height: 4,
		Counts: [engine.ShipKinds]uint64{1, 0, 0, 0},
	}
	if cfg.Strategy == "" {
		cfg.Strategy = engine.StrategyOrdered
	}
	m, err := NewMatch(cfg)
	require.NoError(t, err)
	return m
}

func writeFleet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fleet.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewMatchPlacesBothFleets(t *testing.T) {
	m := smallMatch(t, MatchConfig{})

	for _, g := range []*engine.Game{m.You(), m.Enemy()} {
		ships := g.Player().Ships()
		require.Len(t, ships, 1)
		assert.Equal(t, engine.C(0, 0), ships[0].Head)
		assert.Equal(t, int64(1), g.Field().OwnAlive)
	}
	assert.False(t, m.Over())
}

func TestNewMatchFleetFileErrors(t *testing.T) {
	_, err := NewMatch(MatchConfig{
		Options:   engine.DefaultOptions(),
		Strategy:  engine.StrategyCustom,
		FleetPath: filepath.Join(t.TempDir(), "missing.txt"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "your fleet")
}

func TestNewMatchFleetDoesNotFit(t *testing.T) {
	_, err := NewMatch(MatchConfig{
		Options: engine.Options{
			Width:  4,
			Height: 2,
			Counts: [engine.ShipKinds]uint64{4, 0, 0, 0},
		},
		Strategy: engine.StrategyOrdered,
	})
	assert.ErrorIs(t, err, engine.ErrFleetDoesNotFit)
}

func TestFireMissThenKill(t *testing.T) {
	m := smallMatch(t, MatchConfig{})

	res, err := m.Fire(engine.C(2, 2))
	require.NoError(t, err)
	assert.Equal(t, engine.ShotMiss, res)

	got, ok := m.Fired(engine.C(2, 2))
	assert.True(t, ok)
	assert.Equal(t, engine.ShotMiss, got)

	res, err = m.Fire(engine.C(0, 0))
	require.NoError(t, err)
	assert.Equal(t, engine.ShotKill, res)
	assert.True(t, m.Over())
	assert.True(t, m.PlayerWon())
	assert.True(t, m.You().IsWin())
}

func TestFireRejections(t *testing.T) {
	m := smallMatch(t, MatchConfig{})

	_, err := m.Fire(engine.C(4, 0))
	assert.ErrorIs(t, err, ErrOffBoard)
	_, err = m.Fire(engine.C(-1, 0))
	assert.ErrorIs(t, err, ErrOffBoard)

	_, err = m.Fire(engine.C(1, 1))
	require.NoError(t, err)
	_, err = m.Fire(engine.C(1, 1))
	assert.ErrorIs(t, err, ErrAlreadyFired)

	_, err = m.Fire(engine.C(0, 0))
	require.NoError(t, err)
	_, err = m.Fire(engine.C(2, 2))
	assert.ErrorIs(t, err, ErrMatchOver)
	_, _, err = m.Reply()
	assert.ErrorIs(t, err, ErrMatchOver)
}

func TestReplySkipsOffBoardTargets(t *testing.T) {
	m := smallMatch(t, MatchConfig{})

	// The ordered sequence starts at (1,0) and steps past the right edge
	// after (3,0).
	want := []engine.Coordinate{
		engine.C(1, 0), engine.C(2, 0), engine.C(3, 0), engine.C(0, 1),
	}
	for _, w := range want {
		c, res, err := m.Reply()
		require.NoError(t, err)
		assert.Equal(t, w, c)
		assert.Equal(t, engine.ShotMiss, res)
	}

	last, ok := m.LastIncoming()
	assert.True(t, ok)
	assert.Equal(t, engine.C(0, 1), last)

	got, ok := m.Incoming(engine.C(2, 0))
	assert.True(t, ok)
	assert.Equal(t, engine.ShotMiss, got)
}

func TestReplySinksLoadedFleet(t *testing.T) {
	m := smallMatch(t, MatchConfig{FleetPath: writeFleet(t, "4 4\n1 h 1 0\n")})

	c, res, err := m.Reply()
	require.NoError(t, err)
	assert.Equal(t, engine.C(1, 0), c)
	assert.Equal(t, engine.ShotKill, res)

	assert.True(t, m.Over())
	assert.False(t, m.PlayerWon())
	assert.True(t, m.You().IsLose())
	assert.True(t, m.Enemy().IsWin())
}

func TestMatchStats(t *testing.T) {
	m := smallMatch(t, MatchConfig{})

	_, err := m.Fire(engine.C(1, 1))
	require.NoError(t, err)
	_, _, err = m.Reply()
	require.NoError(t, err)

	assert.Equal(t, Stats{Afloat: 1, Shots: 1}, m.PlayerStats())
	assert.Equal(t, Stats{Afloat: 1, Shots: 1}, m.EnemyStats())

	_, err = m.Fire(engine.C(0, 0))
	require.NoError(t, err)
	assert.Equal(t, Stats{Afloat: 1, Shots: 2, Hits: 1, Kills: 1}, m.PlayerStats())
	assert.Equal(t, int64(0), m.EnemyStats().Afloat)
}
