package engine

import (
	"fmt"
	"io"
)

// Role distinguishes the side that sets up the board parameters.
// It only affects default initialization, not the rules.
type Role int

const (
	RoleSlave Role = iota
	RoleMaster
)

// ParseRole maps "master" and "slave".
func ParseRole(s string) (Role, bool) {
	switch s {
	case "master":
		return RoleMaster, true
	case "slave":
		return RoleSlave, true
	default:
		return RoleSlave, false
	}
}

// String returns the protocol name of the role.
func (r Role) String() string {
	if r == RoleMaster {
		return "master"
	}
	return "slave"
}

// CellState describes what the player's registry knows about a coordinate.
type CellState int

const (
	CellEmpty    CellState = iota // never touched by placement
	CellOccupied                  // a ship cell that is still afloat
	CellCleared                   // was a ship cell, has been hit
)

// Cell is a registry entry. Ship indexes Player.fleet and is only
// meaningful while State is CellOccupied.
type Cell struct {
	State CellState
	Ship  int
}

// Player owns a fleet and the coordinate registry pointing into it.
// Every CellOccupied entry refers to a ship whose Cells contain that
// coordinate; hit cells stay in the registry as CellCleared.
type Player struct {
	role       Role
	fleet      []*Ship
	cells      map[Coordinate]Cell
	lastResult ShotResult
}

// NewPlayer creates an empty slave player.
func NewPlayer() *Player {
	return &Player{
		role:       RoleSlave,
		cells:      make(map[Coordinate]Cell),
		lastResult: ShotUndefined,
	}
}

// SetMaster marks the player as the master side.
func (p *Player) SetMaster() {
	p.role = RoleMaster
}

// CheckMaster reports whether the player is the master side.
func (p *Player) CheckMaster() bool {
	return p.role == RoleMaster
}

// Role returns the player's role.
func (p *Player) Role() Role {
	return p.role
}

// AddShip registers the ship and points each of its cells at it.
// Existing entries are overwritten; callers validate placement first.
func (p *Player) AddShip(s *Ship) {
	idx := len(p.fleet)
	p.fleet = append(p.fleet, s)
	for _, c := range s.Cells {
		p.cells[c] = Cell{State: CellOccupied, Ship: idx}
	}
}

// CheckCoord reports whether the coordinate has ever held a ship cell,
// including cells that were hit since.
func (p *Player) CheckCoord(c Coordinate) bool {
	_, ok := p.cells[c]
	return ok
}

// Cell returns the registry entry for c. Unknown coordinates are CellEmpty.
func (p *Player) Cell(c Coordinate) Cell {
	return p.cells[c]
}

// GetShip returns the afloat ship covering c, or nil.
func (p *Player) GetShip(c Coordinate) *Ship {
	cell, ok := p.cells[c]
	if !ok || cell.State != CellOccupied {
		return nil
	}
	return p.fleet[cell.Ship]
}

// DeleteCoord clears the entry for c but keeps the key, so the cell
// still counts for adjacency checks.
func (p *Player) DeleteCoord(c Coordinate) {
	if _, ok := p.cells[c]; ok {
		p.cells[c] = Cell{State: CellCleared}
	}
}

// SetShotResult records the last result reported for our own shot.
func (p *Player) SetShotResult(r ShotResult) {
	p.lastResult = r
}

// GetShotResult returns the last recorded result.
func (p *Player) GetShotResult() ShotResult {
	return p.lastResult
}

// Ships returns the distinct ships still referenced by the registry,
// in placement order.
func (p *Player) Ships() []*Ship {
	referenced := make([]bool, len(p.fleet))
	for _, cell := range p.cells {
		if cell.State == CellOccupied {
			referenced[cell.Ship] = true
		}
	}

	ships := make([]*Ship, 0, len(p.fleet))
	for i, s := range p.fleet {
		if referenced[i] {
			ships = append(ships, s)
		}
	}
	return ships
}

// DumpShips writes one "size orientation headX headY" line per ship.
func (p *Player) DumpShips(w io.Writer) error {
	for _, s := range p.Ships() {
		if _, err := fmt.Fprintf(w, "%d %s %d %d\n", s.Size(), s.Orientation, s.Head.X, s.Head.Y); err != nil {
			return err
		}
	}
	return nil
}
