package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seabattle/internal/engine"
)

// DefaultReplyDelay is the pause before the computer fires back.
const DefaultReplyDelay = 400 * time.Millisecond

var statusStyle = lipgloss.NewStyle().MarginTop(1)

// Model is the Bubble Tea model for an interactive match.
type Model struct {
	match      *Match
	cursor     engine.Coordinate
	keys       KeyMap
	help       help.Model
	replyDelay time.Duration
	waiting    bool // computer's turn is pending
	message    string
	quitting   bool
}

// NewModel creates a model for the given match.
func NewModel(match *Match, replyDelay time.Duration) Model {
	return Model{
		match:      match,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		replyDelay: replyDelay,
		message:    "Pick a target and fire.",
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case ReplyMsg:
		return m.handleReply()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.waiting || m.match.Over() {
		return m, nil
	}

	width := int64(m.match.Enemy().GetWidth())
	height := int64(m.match.Enemy().GetHeight())

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor.Y > 0 {
			m.cursor.Y--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor.Y < height-1 {
			m.cursor.Y++
		}
	case key.Matches(msg, m.keys.Left):
		if m.cursor.X > 0 {
			m.cursor.X--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor.X < width-1 {
			m.cursor.X++
		}
	case key.Matches(msg, m.keys.Fire):
		return m.fire()
	}

	return m, nil
}

// fire shoots at the cursor and schedules the computer's reply.
func (m Model) fire() (tea.Model, tea.Cmd) {
	res, err := m.match.Fire(m.cursor)
	if err != nil {
		if errors.Is(err, ErrAlreadyFired) {
			m.message = fmt.Sprintf("Already fired at %s.", m.cursor)
		} else {
			m.message = err.Error()
		}
		return m, nil
	}

	m.message = fmt.Sprintf("You fire at %s: %s.", m.cursor, res)
	if m.match.Over() {
		m.message += " " + m.outcome()
		return m, nil
	}

	m.waiting = true
	return m, replyCmd(m.replyDelay)
}

// handleReply runs the computer's turn.
func (m Model) handleReply() (tea.Model, tea.Cmd) {
	m.waiting = false
	c, res, err := m.match.Reply()
	if err != nil {
		return m, nil
	}

	m.message = fmt.Sprintf("Enemy fires at %s: %s.", c, res)
	if m.match.Over() {
		m.message += " " + m.outcome()
	}
	return m, nil
}

func (m Model) outcome() string {
	if m.match.PlayerWon() {
		return "You win!"
	}
	return "You lose."
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	boards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderOwnBoard(m.match),
		"  ",
		renderEnemyBoard(m.match, m.cursor),
		"  ",
		statsTable(m.match).View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		boards,
		statusStyle.Render(m.message),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program for the given match.
func Run(match *Match) error {
	p := tea.NewProgram(
		NewModel(match, DefaultReplyDelay),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
