package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/musou/internal/core"
	"github.com/vovakirdan/musou/internal/platform"
)

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	game      core.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	hold      *core.KeyHold
	pressed   core.InputFrame
	gameState core.GameState
	logger    *log.Logger
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		config:    cfg,
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      h,
		hold:      core.NewKeyHold(DefaultHoldTicks),
		pressed:   core.NewInputFrame(),
		logger:    logger,
	}
}

// playRows leaves the last terminal row for the help footer.
func playRows(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)

	// Start the tick loop
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.Apply(msg, m.hold, &m.pressed) {
		m.logger.Info("quit requested", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The arena is drawn scaled, so
// the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.pressed.Clone()
	m.hold.Apply(&frame)

	result := m.game.Step(frame)
	m.gameState = result.State
	platform.LogEvents(m.logger, result.Events)

	// Clear input for next frame
	m.pressed.Clear()

	if m.gameState.GameOver {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// GameState returns the state after the most recent tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model and blocks until
// the game ends or the player quits.
func Run(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		model.logger.Info("session ended", "score", m.GameState().Score, "game_over", m.GameState().GameOver)
	}
	return nil
}
