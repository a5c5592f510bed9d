package engine

// Orientation of a ship on the board.
type Orientation byte

const (
	Vertical   Orientation = 'v'
	Horizontal Orientation = 'h'
)

// ParseOrientation maps the dump characters 'h' and 'v'.
func ParseOrientation(r byte) (Orientation, bool) {
	switch Orientation(r) {
	case Horizontal:
		return Horizontal, true
	case Vertical:
		return Vertical, true
	default:
		return 0, false
	}
}

// String returns the single-character dump form.
func (o Orientation) String() string {
	return string(rune(o))
}

// Ship is a straight run of cells. Cells holds only the cells that are
// still afloat; hits remove them.
type Ship struct {
	Cells       []Coordinate
	Orientation Orientation
	Head        Coordinate
}

// NewShip lays out a ship of the given size starting at head.
// Sizes below 1 still produce the head cell.
func NewShip(head Coordinate, size int, o Orientation) *Ship {
	if size < 1 {
		size = 1
	}
	s := &Ship{
		Cells:       make([]Coordinate, 0, size),
		Orientation: o,
		Head:        head,
	}
	for i := 0; i < size; i++ {
		if o == Horizontal {
			s.Cells = append(s.Cells, head.Add(int64(i), 0))
		} else {
			s.Cells = append(s.Cells, head.Add(0, int64(i)))
		}
	}
	return s
}

// Size returns the number of cells still afloat.
func (s *Ship) Size() int {
	return len(s.Cells)
}

// IsHorizontal reports whether the ship extends along X.
func (s *Ship) IsHorizontal() bool {
	return s.Orientation == Horizontal
}

// Sunk reports whether every cell has been hit.
func (s *Ship) Sunk() bool {
	return len(s.Cells) == 0
}

// removeCell drops c from the afloat cells by swapping it with the last
// cell. Order among remaining cells is not preserved.
func (s *Ship) removeCell(c Coordinate) bool {
	for i := range s.Cells {
		if s.Cells[i] == c {
			last := len(s.Cells) - 1
			s.Cells[i], s.Cells[last] = s.Cells[last], s.Cells[i]
			s.Cells = s.Cells[:last]
			return true
		}
	}
	return false
}
