package engine

import (
	"errors"
	"fmt"
	"sort"
)

// StrategyKind names a targeting strategy.
type StrategyKind string

const (
	StrategyOrdered StrategyKind = "ordered"
	StrategyCustom  StrategyKind = "custom"
)

// ParseStrategyKind accepts "ordered" and "custom".
func ParseStrategyKind(s string) (StrategyKind, bool) {
	switch StrategyKind(s) {
	case StrategyOrdered, StrategyCustom:
		return StrategyKind(s), true
	default:
		return "", false
	}
}

// Strategy places the fleet and generates outgoing shots.
type Strategy interface {
	// Kind identifies the strategy.
	Kind() StrategyKind

	// PlaceShips fills the game's player registry according to the quotas.
	PlaceShips(g *Game) error

	// ShotUtil advances and returns the next target. The sequence never
	// terminates; build a new strategy to restart it.
	ShotUtil(g *Game) Coordinate
}

// StrategyInfo describes a registered strategy.
type StrategyInfo struct {
	Kind        StrategyKind
	Description string
}

type strategyFactory func(maxSweeps int) Strategy

var strategies = map[StrategyKind]struct {
	factory     strategyFactory
	description string
}{
	StrategyOrdered: {
		factory:     func(maxSweeps int) Strategy { return &OrderedStrategy{placer{maxSweeps: maxSweeps}} },
		description: "fires row by row, x advances first",
	},
	StrategyCustom: {
		factory:     func(maxSweeps int) Strategy { return &CustomStrategy{placer{maxSweeps: maxSweeps}} },
		description: "fires column by column, y advances first",
	},
}

// NewStrategy builds the strategy for kind. Anything other than custom
// yields the ordered strategy.
func NewStrategy(kind StrategyKind, maxSweeps int) Strategy {
	if kind == StrategyCustom {
		return strategies[StrategyCustom].factory(maxSweeps)
	}
	return strategies[StrategyOrdered].factory(maxSweeps)
}

// Strategies lists the available strategies sorted by kind.
func Strategies() []StrategyInfo {
	out := make([]StrategyInfo, 0, len(strategies))
	for kind, s := range strategies {
		out = append(out, StrategyInfo{Kind: kind, Description: s.description})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Kind < out[j].Kind
	})
	return out
}

// placer is the placement algorithm shared by both strategies, plus the
// cursor for shot generation.
type placer struct {
	next Coordinate
	// maxSweeps bounds the board sweeps per ship size. Zero means no cap
	// beyond stopping when a sweep places nothing.
	maxSweeps int
}

// ValidateCell reports whether c lies on the board and none of its eight
// neighbours has ever held a ship cell. The cell itself is not checked.
func (p *placer) ValidateCell(c Coordinate, g *Game) bool {
	if g.player == nil {
		return false
	}
	if c.X < 0 || c.Y < 0 {
		return false
	}
	if c.X >= toInt64(g.field.Width) || c.Y >= toInt64(g.field.Height) {
		return false
	}

	for _, n := range c.Neighbors() {
		if g.player.CheckCoord(n) {
			return false
		}
	}
	return true
}

// TryPlaceShip registers s only if every cell validates and none of its
// cells is registered already. Without the second check an isolated
// single-cell ship would validate again on a later sweep and be written
// over.
func (p *placer) TryPlaceShip(s *Ship, g *Game) bool {
	for _, c := range s.Cells {
		if g.player.CheckCoord(c) || !p.ValidateCell(c, g) {
			return false
		}
	}
	g.player.AddShip(s)
	return true
}

// PlaceOneSizeShips places count ships of size sizeIndex+1, scanning
// origins x-major and trying horizontal before vertical at each one.
// Occupancy only grows, so a sweep that places nothing means no later
// sweep can either; that case reports ErrFleetDoesNotFit.
func (p *placer) PlaceOneSizeShips(sizeIndex int, count int64, g *Game) error {
	width := toInt64(g.field.Width)
	height := toInt64(g.field.Height)
	size := sizeIndex + 1

	for sweep := 1; count > 0; sweep++ {
		placed := 0
		for x := int64(0); x < width; x++ {
			for y := int64(0); y < height; y++ {
				origin := C(x, y)
				if !p.ValidateCell(origin, g) {
					continue
				}
				if p.TryPlaceShip(NewShip(origin, size, Horizontal), g) ||
					p.TryPlaceShip(NewShip(origin, size, Vertical), g) {
					count--
					placed++
				}
				if count <= 0 {
					return nil
				}
			}
		}

		if placed == 0 || (p.maxSweeps > 0 && sweep >= p.maxSweeps) {
			return fmt.Errorf("%w: %d ship(s) of size %d left after %d sweep(s)",
				ErrFleetDoesNotFit, count, size, sweep)
		}
	}
	return nil
}

// PlaceShips places the quotas largest first.
func (p *placer) PlaceShips(g *Game) error {
	if g.player == nil {
		return ErrNoPlayer
	}

	var errs []error
	for sizeIndex := ShipKinds - 1; sizeIndex >= 0; sizeIndex-- {
		count := toInt64(g.field.Counts[sizeIndex])
		if err := p.PlaceOneSizeShips(sizeIndex, count, g); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OrderedStrategy fires along rows. The wrap checks compare with <= so
// the cursor visits x == width and y == height before wrapping.
type OrderedStrategy struct {
	placer
}

func (s *OrderedStrategy) Kind() StrategyKind { return StrategyOrdered }

func (s *OrderedStrategy) ShotUtil(g *Game) Coordinate {
	width := toInt64(g.field.Width)
	height := toInt64(g.field.Height)

	if s.next.X+1 <= width {
		s.next.X++
	} else {
		s.next.Y++
		s.next.X = 0
	}
	if s.next.Y > height {
		s.next.Y = 0
	}
	return s.next
}

// CustomStrategy fires along columns, mirroring OrderedStrategy.
type CustomStrategy struct {
	placer
}

func (s *CustomStrategy) Kind() StrategyKind { return StrategyCustom }

func (s *CustomStrategy) ShotUtil(g *Game) Coordinate {
	width := toInt64(g.field.Width)
	height := toInt64(g.field.Height)

	if s.next.Y+1 <= height {
		s.next.Y++
	} else {
		s.next.X++
		s.next.Y = 0
	}
	if s.next.X > width {
		s.next.X = 0
	}
	return s.next
}
