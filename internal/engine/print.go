package engine

import (
	"bufio"
	"io"
)

// PrintField writes the own board row by row: "0" for untouched cells,
// "1" for afloat ship cells and "*" for hit cells, each followed by a
// space, with a blank line after the last row.
func (g *Game) PrintField(w io.Writer) error {
	bw := bufio.NewWriter(w)
	height := toInt64(g.field.Height)
	width := toInt64(g.field.Width)

	for y := int64(0); y < height; y++ {
		for x := int64(0); x < width; x++ {
			bw.WriteByte(g.cellGlyph(C(x, y)))
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

func (g *Game) cellGlyph(c Coordinate) byte {
	if g.player == nil {
		return '0'
	}
	switch g.player.Cell(c).State {
	case CellOccupied:
		return '1'
	case CellCleared:
		return '*'
	default:
		return '0'
	}
}
