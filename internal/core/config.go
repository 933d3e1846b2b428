package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this for the render target size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 50)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended and the platform should exit
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventEnemySpawned EventKind = iota
	EventEnemyDestroyed
	EventBombDestroyed
	EventPowerUp
	EventPowerUpDenied
	EventPlayerHit
	EventGameOver
)

// String returns a short name for logging.
func (k EventKind) String() string {
	switch k {
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventBombDestroyed:
		return "bomb_destroyed"
	case EventPowerUp:
		return "powerup"
	case EventPowerUpDenied:
		return "powerup_denied"
	case EventPlayerHit:
		return "player_hit"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by Step for the platform to log or react to.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Detail string // e.g. power-up name
	Score  int    // Score after the event
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Game is the interface the platform drives. Implementations contain pure
// logic; the platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is cleared by Render itself.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
