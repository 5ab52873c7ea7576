package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/snaketerm/snaketerm/internal/config"
	"github.com/snaketerm/snaketerm/internal/core"
	"github.com/snaketerm/snaketerm/internal/game"
	"github.com/snaketerm/snaketerm/internal/highscore"
)

const hudHeight = 2

type sessionState int

const (
	stateMenu sessionState = iota // Difficulty selection before the first game
	statePlaying
)

// Model is the Bubble Tea model driving one game session. It is the game's
// renderer, input source, and scheduler: keys are translated to game
// mutators between ticks, and TickMsg advances the simulation at the
// current difficulty's interval.
type Model struct {
	game   *game.Game
	cfg    config.Config
	keys   KeyMap
	help   help.Model
	screen *core.Screen
	store  highscore.Store // nil when persistence is unavailable

	state      sessionState
	best       int  // Displayed best; tracks the live score once exceeded
	storedBest int  // Last value known to be persisted
	saved      bool // Best persisted for the current game over
	tooSmall   bool
	quitting   bool
}

// NewModel creates the model. When skipMenu is set (difficulty chosen on
// the command line) the game starts immediately.
func NewModel(g *game.Game, store highscore.Store, cfg config.Config, width, height int, skipMenu bool) Model {
	m := Model{
		game:   g,
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: core.NewScreen(width, core.Max(height-1, 1)), // Bottom row is the help footer
		store:  store,
		state:  stateMenu,
	}
	if skipMenu {
		m.state = statePlaying
	}

	if store != nil {
		if best, err := store.Load(); err == nil {
			m.best = best
			m.storedBest = best
		}
	}

	m.checkSize(width, height)
	return m
}

// Init starts the tick loop when the menu is skipped.
func (m Model) Init() tea.Cmd {
	if m.state == statePlaying {
		return tickCmd(m.tps())
	}
	return nil
}

// tps returns the scheduler rate for the game's current difficulty.
func (m Model) tps() int {
	return m.cfg.Difficulty.TicksPerSecond(m.game.Difficulty())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.checkSize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey applies input between ticks. The game buffers direction
// changes itself, so mutators are called directly.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.ActionFor(msg)

	if action == core.ActionQuit {
		m.persistBest()
		m.quitting = true
		return m, tea.Quit
	}

	if m.state == stateMenu {
		if level, ok := levelFor(action); ok {
			m.game.SetDifficulty(level)
			m.state = statePlaying
			return m, tickCmd(m.tps())
		}
		if action == core.ActionConfirm {
			// Enter keeps the configured default difficulty
			m.state = statePlaying
			return m, tickCmd(m.tps())
		}
		return m, nil
	}

	switch action {
	case core.ActionUp:
		m.game.SetDirection(game.DirUp)
	case core.ActionDown:
		m.game.SetDirection(game.DirDown)
	case core.ActionLeft:
		m.game.SetDirection(game.DirLeft)
	case core.ActionRight:
		m.game.SetDirection(game.DirRight)
	case core.ActionPause:
		m.game.TogglePause()
	case core.ActionRestart:
		if m.game.Phase() == game.PhaseGameOver {
			m.game.Restart()
			m.saved = false
		}
	default:
		if level, ok := levelFor(action); ok {
			// Legal at any phase; the new rate applies from the next tick
			m.game.SetDifficulty(level)
		}
	}

	return m, nil
}

// levelFor maps difficulty-select actions to levels.
func levelFor(a core.Action) (int, bool) {
	switch a {
	case core.ActionLevel1:
		return 1, true
	case core.ActionLevel2:
		return 2, true
	case core.ActionLevel3:
		return 3, true
	}
	return 0, false
}

// handleTick advances the simulation. The game ignores ticks while paused
// or over, so the loop keeps running unconditionally.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state != statePlaying {
		return m, nil
	}

	if !m.tooSmall {
		m.game.Tick()
	}

	if s := m.game.Score(); s > m.best {
		m.best = s
	}

	if m.game.Phase() == game.PhaseGameOver && !m.saved {
		m.persistBest()
		m.saved = true
	}

	return m, tickCmd(m.tps())
}

// persistBest writes the best score when it exceeds the stored value.
func (m *Model) persistBest() {
	if m.store == nil || m.best <= m.storedBest {
		return
	}
	//nolint:errcheck // Best-effort save, the game continues regardless
	m.store.Save(m.best)
	m.storedBest = m.best
}

// checkSize records whether the terminal can fit the board.
func (m *Model) checkSize(width, height int) {
	requiredW := m.cfg.Grid.Width + 2
	requiredH := m.cfg.Grid.Height + 2 + hudHeight + 1
	m.tooSmall = width < requiredW || height < requiredH
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if m.state == stateMenu {
		m.renderMenu()
	} else {
		m.renderGame()
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// renderMenu draws the difficulty selection screen.
func (m Model) renderMenu() {
	y := m.screen.Height()/2 - 4
	m.screen.DrawTextCentered(y, "S N A K E")
	m.screen.DrawTextCentered(y+2, "Select Difficulty:")
	m.screen.DrawTextCentered(y+4, "1 - Easy")
	m.screen.DrawTextCentered(y+5, "2 - Medium")
	m.screen.DrawTextCentered(y+6, "3 - Hard")
	m.screen.DrawTextCentered(y+8,
		fmt.Sprintf("Enter - start (%s)", config.LevelName(m.game.Difficulty())))
	if m.best > 0 {
		m.screen.DrawTextCentered(y+10, fmt.Sprintf("Best: %d", m.best))
	}
}

// renderGame draws the HUD, board, snake, food, and any overlay.
func (m Model) renderGame() {
	m.renderHUD()

	if m.tooSmall {
		m.renderOverlay("Window too small", "Resize to continue")
		return
	}

	grid := m.cfg.Grid
	boardW := grid.Width + 2
	boardH := grid.Height + 2
	offsetX := core.Max(0, (m.screen.Width()-boardW)/2)
	offsetY := hudHeight + core.Max(0, (m.screen.Height()-hudHeight-boardH)/2)

	border := core.NewRect(offsetX, offsetY, boardW, boardH)
	m.screen.DrawBox(border)

	cellX := func(x int) int { return offsetX + 1 + x }
	cellY := func(y int) int { return offsetY + 1 + y }

	food := m.game.Food()
	if food.X >= 0 && food.Y >= 0 {
		m.screen.SetColored(cellX(food.X), cellY(food.Y), '*', core.ColorRed)
	}

	for i, seg := range m.game.Body() {
		if i == 0 {
			m.screen.SetColored(cellX(seg.X), cellY(seg.Y), 'O', core.ColorBrightGreen)
		} else {
			m.screen.SetColored(cellX(seg.X), cellY(seg.Y), 'o', core.ColorGreen)
		}
	}

	switch {
	case m.game.Phase() == game.PhaseGameOver && m.game.Won():
		m.renderOverlay("You Win!", fmt.Sprintf("Final Score: %d", m.game.Score()))
	case m.game.Phase() == game.PhaseGameOver:
		m.renderOverlay("Game Over", "Press r to restart")
	case m.game.Phase() == game.PhasePaused:
		m.renderOverlay("Paused", "Press p to continue")
	}
}

// renderHUD draws the top status bar.
func (m Model) renderHUD() {
	hud := fmt.Sprintf(" Score: %d   Best: %d   Difficulty: %s",
		m.game.Score(), m.best, config.LevelName(m.game.Difficulty()))
	m.screen.DrawTextColored(0, 0, hud, core.ColorWhite)
	m.screen.DrawHLine(0, 1, m.screen.Width(), '─')
}

// renderOverlay draws a centered boxed message over the board.
func (m Model) renderOverlay(line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 6
	boxH := 5
	box := core.NewRect(
		(m.screen.Width()-boxW)/2,
		hudHeight+(m.screen.Height()-hudHeight-boxH)/2,
		boxW, boxH,
	)

	m.screen.DrawRect(box, ' ')
	m.screen.DrawBox(box)
	m.screen.DrawTextCentered(box.Y+1, line1)
	m.screen.DrawTextCentered(box.Y+3, line2)
}

// Run starts the Bubble Tea program for one session.
func Run(g *game.Game, store highscore.Store, cfg config.Config, width, height int, skipMenu bool) error {
	model := NewModel(g, store, cfg, width, height, skipMenu)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
