package tui

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/seabattle/internal/engine"
)

var (
	ErrAlreadyFired = errors.New("cell already fired at")
	ErrOffBoard     = errors.New("cell is off the board")
	ErrMatchOver    = errors.New("match is over")
)

// MatchConfig describes how both fleets are set up.
type MatchConfig struct {
	Options engine.Options
	// Strategy drives the computer's fleet placement and return fire.
	Strategy engine.StrategyKind
	// FleetPath and EnemyFleetPath load fleets from dumps instead of
	// placing them automatically.
	FleetPath      string
	EnemyFleetPath string
}

// Match pits the player's fleet against the computer's. Each side is a
// full engine.Game: incoming fire goes through CheckShot, outgoing
// verdicts through SetShotResult.
type Match struct {
	you   *engine.Game
	enemy *engine.Game

	fired    map[engine.Coordinate]engine.ShotResult
	incoming map[engine.Coordinate]engine.ShotResult
	lastShot *engine.Coordinate
}

// NewMatch sets up both fleets.
func NewMatch(cfg MatchConfig) (*Match, error) {
	you, err := newSide(cfg.Options, cfg.Strategy, cfg.FleetPath)
	if err != nil {
		return nil, fmt.Errorf("your fleet: %w", err)
	}
	enemy, err := newSide(cfg.Options, cfg.Strategy, cfg.EnemyFleetPath)
	if err != nil {
		return nil, fmt.Errorf("enemy fleet: %w", err)
	}

	return &Match{
		you:      you,
		enemy:    enemy,
		fired:    make(map[engine.Coordinate]engine.ShotResult),
		incoming: make(map[engine.Coordinate]engine.ShotResult),
	}, nil
}

func newSide(opts engine.Options, kind engine.StrategyKind, fleetPath string) (*engine.Game, error) {
	g := engine.New(opts)
	g.Create(engine.RoleMaster)
	g.SetStrategy(kind)

	if fleetPath != "" {
		if err := g.Load(fleetPath); err != nil {
			return nil, err
		}
		return g, nil
	}
	if err := g.Start(); err != nil {
		return nil, err
	}
	return g, nil
}

// You returns the player's side.
func (m *Match) You() *engine.Game {
	return m.you
}

// Enemy returns the computer's side.
func (m *Match) Enemy() *engine.Game {
	return m.enemy
}

// Fired returns the player's result at c, if any.
func (m *Match) Fired(c engine.Coordinate) (engine.ShotResult, bool) {
	r, ok := m.fired[c]
	return r, ok
}

// Incoming returns the computer's result at c, if any.
func (m *Match) Incoming(c engine.Coordinate) (engine.ShotResult, bool) {
	r, ok := m.incoming[c]
	return r, ok
}

// LastIncoming returns the computer's most recent target.
func (m *Match) LastIncoming() (engine.Coordinate, bool) {
	if m.lastShot == nil {
		return engine.Coordinate{}, false
	}
	return *m.lastShot, true
}

// Over reports whether either fleet is gone.
func (m *Match) Over() bool {
	return m.enemy.IsLose() || m.you.IsLose()
}

// PlayerWon reports whether the player sank the computer's fleet.
func (m *Match) PlayerWon() bool {
	return m.enemy.IsLose()
}

// Fire shoots at the computer's fleet.
func (m *Match) Fire(c engine.Coordinate) (engine.ShotResult, error) {
	if m.Over() {
		return engine.ShotUndefined, ErrMatchOver
	}
	if !m.onBoard(m.enemy, c) {
		return engine.ShotUndefined, ErrOffBoard
	}
	if _, ok := m.fired[c]; ok {
		return engine.ShotUndefined, ErrAlreadyFired
	}

	res := m.enemy.CheckShot(c)
	m.you.SetShotResult(res.String())
	m.fired[c] = res
	return res, nil
}

// Reply lets the computer fire back. Targets the strategy produces
// outside the board are skipped.
func (m *Match) Reply() (engine.Coordinate, engine.ShotResult, error) {
	if m.Over() {
		return engine.Coordinate{}, engine.ShotUndefined, ErrMatchOver
	}

	w, h := m.you.GetWidth(), m.you.GetHeight()
	limit := (w + 1) * (h + 1)
	c := m.enemy.SetShot()
	for i := uint64(0); i < limit && !m.onBoard(m.you, c); i++ {
		c = m.enemy.SetShot()
	}

	res := m.you.CheckShot(c)
	m.enemy.SetShotResult(res.String())
	if prev, ok := m.incoming[c]; !ok || prev == engine.ShotMiss {
		m.incoming[c] = res
	}
	m.lastShot = &c
	return c, res, nil
}

func (m *Match) onBoard(g *engine.Game, c engine.Coordinate) bool {
	return c.X >= 0 && c.Y >= 0 &&
		uint64(c.X) < g.GetWidth() && uint64(c.Y) < g.GetHeight()
}
