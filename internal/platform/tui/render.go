package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seabattle/internal/engine"
)

// Glyph styles for board cells.
var (
	waterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	shipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	hitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	killStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	boardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

const (
	glyphWater = "~"
	glyphShip  = "■"
	glyphHit   = "✕"
	glyphMiss  = "·"
)

// RenderField draws a game's own board in colour: water, afloat ship
// cells and hit cells. It is the styled counterpart of PrintField.
func RenderField(g *engine.Game) string {
	return renderGrid(g.GetWidth(), g.GetHeight(), func(c engine.Coordinate) string {
		return ownGlyph(g, c)
	})
}

func ownGlyph(g *engine.Game, c engine.Coordinate) string {
	p := g.Player()
	if p == nil {
		return waterStyle.Render(glyphWater)
	}
	switch p.Cell(c).State {
	case engine.CellOccupied:
		return shipStyle.Render(glyphShip)
	case engine.CellCleared:
		return killStyle.Render(glyphHit)
	default:
		return waterStyle.Render(glyphWater)
	}
}

// renderGrid lays out cells row by row with a space between columns.
func renderGrid(width, height uint64, cell func(engine.Coordinate) string) string {
	var sb strings.Builder
	for y := uint64(0); y < height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := uint64(0); x < width; x++ {
			if x > 0 {
				sb.WriteRune(' ')
			}
			sb.WriteString(cell(engine.C(int64(x), int64(y))))
		}
	}
	return sb.String()
}

// renderOwnBoard shows the player's fleet with the computer's shots.
func renderOwnBoard(m *Match) string {
	g := m.You()
	last, hasLast := m.LastIncoming()

	grid := renderGrid(g.GetWidth(), g.GetHeight(), func(c engine.Coordinate) string {
		var glyph string
		if res, ok := m.Incoming(c); ok && res == engine.ShotMiss && g.Player().Cell(c).State == engine.CellEmpty {
			glyph = missStyle.Render(glyphMiss)
		} else {
			glyph = ownGlyph(g, c)
		}
		if hasLast && c == last {
			return cursorStyle.Render(glyph)
		}
		return glyph
	})
	return boardStyle.Render(titleStyle.Render("Your fleet") + "\n" + grid)
}

// renderEnemyBoard shows the player's shots and the targeting cursor.
func renderEnemyBoard(m *Match, cursor engine.Coordinate) string {
	g := m.Enemy()

	grid := renderGrid(g.GetWidth(), g.GetHeight(), func(c engine.Coordinate) string {
		glyph := waterStyle.Render(glyphWater)
		if res, ok := m.Fired(c); ok {
			switch res {
			case engine.ShotKill:
				glyph = killStyle.Render(glyphHit)
			case engine.ShotHit:
				glyph = hitStyle.Render(glyphHit)
			default:
				glyph = missStyle.Render(glyphMiss)
			}
		}
		if c == cursor {
			return cursorStyle.Render(glyph)
		}
		return glyph
	})
	return boardStyle.Render(titleStyle.Render("Enemy waters") + "\n" + grid)
}
