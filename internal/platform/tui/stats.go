package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seabattle/internal/engine"
)

// Stats summarizes one side of the match.
type Stats struct {
	Afloat int64
	Shots  int
	Hits   int
	Kills  int
}

// PlayerStats returns the player's fleet and firing record.
func (m *Match) PlayerStats() Stats {
	return sideStats(m.you, m.fired)
}

// EnemyStats returns the computer's fleet and firing record.
func (m *Match) EnemyStats() Stats {
	return sideStats(m.enemy, m.incoming)
}

func sideStats(g *engine.Game, shots map[engine.Coordinate]engine.ShotResult) Stats {
	s := Stats{Afloat: g.Field().OwnAlive, Shots: len(shots)}
	for _, r := range shots {
		switch r {
		case engine.ShotKill:
			s.Kills++
			s.Hits++
		case engine.ShotHit:
			s.Hits++
		}
	}
	return s
}

// statsTable lays out both sides' stats as a read-only table.
func statsTable(m *Match) table.Model {
	you, enemy := m.PlayerStats(), m.EnemyStats()

	columns := []table.Column{
		{Title: "", Width: 8},
		{Title: "You", Width: 6},
		{Title: "Enemy", Width: 6},
	}
	rows := []table.Row{
		{"Afloat", strconv.FormatInt(you.Afloat, 10), strconv.FormatInt(enemy.Afloat, 10)},
		{"Shots", strconv.Itoa(you.Shots), strconv.Itoa(enemy.Shots)},
		{"Hits", strconv.Itoa(you.Hits), strconv.Itoa(enemy.Hits)},
		{"Kills", strconv.Itoa(you.Kills), strconv.Itoa(enemy.Kills)},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}
