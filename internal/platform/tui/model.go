package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/astrelin/tui-dodge/internal/core"
	"github.com/astrelin/tui-dodge/internal/dodge"
	"github.com/astrelin/tui-dodge/internal/storage"
)

// Outcome is how a session ended. The caller consumes it in a plain outer
// loop: Restart means construct a fresh game and run again, Exit means stop,
// Error means the terminal program itself failed.
type Outcome int

const (
	OutcomeExit Outcome = iota
	OutcomeRestart
	OutcomeError
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeExit:
		return "Exit"
	case OutcomeRestart:
		return "Restart"
	case OutcomeError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Model is the Bubble Tea model driving one game session.
type Model struct {
	game   *dodge.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   *KeyMapper

	// restartInPlace makes restart reset the game inside the running
	// program instead of quitting with OutcomeRestart. Used for SSH
	// sessions, which have no outer process loop.
	restartInPlace bool

	gameState  core.GameState
	outcome    Outcome
	quitting   bool
	scoreSaved bool
}

// NewModel creates a session model for the given game.
func NewModel(game *dodge.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultRuntimeConfig().TickRate
	}

	game.Reset(cfg)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Directional keys overwrite the pending
// intent immediately, so only the most recent one before a tick is honored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)

	if isQuit {
		m.outcome = OutcomeExit
		m.quitting = true
		return m, tea.Quit
	}

	// After death the overlay offers Restart (Enter/r) or Exit (Esc/q).
	if m.gameState.GameOver {
		if action == core.ActionConfirm || action == core.ActionRestart {
			return m.restart()
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.game.Apply(action)
	}

	return m, nil
}

// restart either resets the game in place (SSH) or quits with
// OutcomeRestart for the outer loop to construct a fresh session.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if m.restartInPlace {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		return m, nil
	}

	m.outcome = OutcomeRestart
	m.quitting = true
	return m, tea.Quit
}

// handleResize adjusts the viewport. The simulation field is a fixed
// coordinate space, so resizing only rescales the rendering.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.gameState = m.game.Step()

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Ticks > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, session continues regardless
			m.store.SaveScore(m.gameState.Points, m.gameState.Ticks)
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run drives one session to completion and reports how it ended.
func Run(game *dodge.Game, store *storage.Store, cfg core.RuntimeConfig) (Outcome, error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return OutcomeError, err
	}

	if m, ok := final.(Model); ok {
		return m.outcome, nil
	}
	return OutcomeError, nil
}
