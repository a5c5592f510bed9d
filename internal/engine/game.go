// Package engine implements the sea battle game engine: board and quota
// configuration, automatic fleet placement, shot resolution and the
// win/lose state machine.
//
// The engine is pure logic. It does no logging and no terminal I/O; the
// protocol and platform packages drive it one call at a time.
package engine

import (
	"fmt"
	"math"
)

// GameStatus is the outcome of the match.
type GameStatus int

const (
	StatusUndefined GameStatus = iota
	StatusWin
	StatusLose
)

// Process tracks whether the match was stopped.
type Process int

const (
	ProcessUndefined Process = iota
	ProcessFinished
)

// Options configures a Game. The board fields are the defaults applied
// when a master player is created.
type Options struct {
	Width  uint64
	Height uint64
	Counts [ShipKinds]uint64

	// Strategy is used when Start or SetShot runs without SetStrategy.
	Strategy StrategyKind
	// MaxSweeps caps placement sweeps per ship size, 0 for no cap.
	MaxSweeps int
}

// DefaultOptions returns a 10x10 board with one ship of each size.
func DefaultOptions() Options {
	return Options{
		Width:    10,
		Height:   10,
		Counts:   [ShipKinds]uint64{1, 1, 1, 1},
		Strategy: StrategyCustom,
	}
}

// Game owns the field, the current player and the current strategy.
type Game struct {
	opts     Options
	field    Field
	player   *Player
	strategy Strategy
	status   GameStatus
	process  Process
}

// New creates a game with no player and no strategy.
func New(opts Options) *Game {
	if _, ok := ParseStrategyKind(string(opts.Strategy)); !ok {
		opts.Strategy = StrategyCustom
	}
	return &Game{opts: opts}
}

// NewDefault creates a game using DefaultOptions.
func NewDefault() *Game {
	return New(DefaultOptions())
}

// Create replaces the player. A master player also resets the board to
// the configured defaults.
func (g *Game) Create(role Role) {
	g.player = NewPlayer()
	if role == RoleMaster {
		g.player.SetMaster()
		g.setDefaultParameters()
	}
}

func (g *Game) setDefaultParameters() {
	g.SetWidth(g.opts.Width)
	g.SetHeight(g.opts.Height)
	for n := 1; n <= ShipKinds; n++ {
		g.SetCount(n, g.opts.Counts[n-1])
	}
}

// Player returns the current player, or nil before Create.
func (g *Game) Player() *Player {
	return g.player
}

// Field returns a copy of the board configuration and counters.
func (g *Game) Field() Field {
	return g.field
}

// SetWidth always succeeds.
func (g *Game) SetWidth(width uint64) bool {
	g.field.Width = width
	return true
}

// SetHeight always succeeds.
func (g *Game) SetHeight(height uint64) bool {
	g.field.Height = height
	return true
}

// GetWidth returns the board width.
func (g *Game) GetWidth() uint64 {
	return g.field.Width
}

// GetHeight returns the board height.
func (g *Game) GetHeight() uint64 {
	return g.field.Height
}

// SetCount stores the quota for ships of size n (1..4) if the capacity
// heuristic admits it for the current board. On failure the previous
// quota is kept.
func (g *Game) SetCount(n int, value uint64) bool {
	if n < 1 || n > ShipKinds {
		return false
	}
	if value > math.MaxInt64 {
		return false
	}
	if !CheckCapacity(int64(n), int64(value), toInt64(g.field.Height), toInt64(g.field.Width)) {
		return false
	}

	g.field.Counts[n-1] = value
	return true
}

// GetCount returns the quota for ships of size n. Out-of-range sizes
// read the size-1 slot.
func (g *Game) GetCount(n int) uint64 {
	if n < 1 || n > ShipKinds {
		return g.field.Counts[0]
	}
	return g.field.Counts[n-1]
}

// SetStrategy replaces the strategy. Anything but custom is ordered.
func (g *Game) SetStrategy(kind StrategyKind) {
	g.strategy = NewStrategy(kind, g.opts.MaxSweeps)
}

// Strategy returns the current strategy, or nil before one is chosen.
func (g *Game) Strategy() Strategy {
	return g.strategy
}

func (g *Game) ensureStrategy() Strategy {
	if g.strategy == nil {
		g.SetStrategy(g.opts.Strategy)
	}
	return g.strategy
}

// Start places the fleet with the current strategy and arms both alive
// counters with the total quota. Without a player it does nothing.
// If the quotas cannot be placed the counters hold the ships actually
// placed and the error wraps ErrFleetDoesNotFit.
func (g *Game) Start() error {
	if g.player == nil {
		return ErrNoPlayer
	}

	before := len(g.player.Ships())
	if err := g.ensureStrategy().PlaceShips(g); err != nil {
		placed := int64(len(g.player.Ships()) - before)
		g.field.OwnAlive = placed
		g.field.EnemyAlive = placed
		return fmt.Errorf("start: %w", err)
	}

	total := toInt64(g.field.TotalShips())
	g.field.OwnAlive = total
	g.field.EnemyAlive = total
	return nil
}

// Stop marks the match as finished.
func (g *Game) Stop() {
	g.process = ProcessFinished
}

// setStatus records the first outcome only.
func (g *Game) setStatus(s GameStatus) {
	if g.status == StatusUndefined {
		g.status = s
	}
}

// CheckShot resolves incoming fire against our own fleet.
func (g *Game) CheckShot(c Coordinate) ShotResult {
	if g.player == nil {
		return ShotMiss
	}
	ship := g.player.GetShip(c)
	if ship == nil {
		return ShotMiss
	}
	if !ship.removeCell(c) {
		return ShotMiss
	}
	g.player.DeleteCoord(c)

	if !ship.Sunk() {
		return ShotHit
	}

	g.field.OwnAlive--
	if g.field.OwnAlive <= 0 {
		g.setStatus(StatusLose)
	}
	return ShotKill
}

// SetShot returns the next outgoing target from the strategy.
func (g *Game) SetShot() Coordinate {
	return g.ensureStrategy().ShotUtil(g)
}

// SetShotResult takes the opponent's verdict on our last shot. A kill
// decrements the opponent's alive counter and may win the match.
func (g *Game) SetShotResult(result string) ShotResult {
	r := ParseShotResult(result)
	if g.player != nil {
		g.player.SetShotResult(r)
	}

	if r == ShotKill {
		g.field.EnemyAlive--
		if g.field.EnemyAlive <= 0 {
			g.setStatus(StatusWin)
		}
	}
	return r
}

// Status returns the match outcome so far.
func (g *Game) Status() GameStatus {
	return g.status
}

func (g *Game) IsWin() bool {
	return g.status == StatusWin
}

func (g *Game) IsLose() bool {
	return g.status == StatusLose
}

func (g *Game) IsFinished() bool {
	return g.process == ProcessFinished
}
