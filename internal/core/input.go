package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input,
// whether the keys come from a terminal or a desktop window.
type Action int

const (
	ActionNone Action = iota

	// Held actions: true for every tick the key is considered down.
	ActionUp    // Up arrow - move up
	ActionDown  // Down arrow - move down
	ActionLeft  // Left arrow - move left
	ActionRight // Right arrow - move right
	ActionBoost // Shift - double speed while moving

	// Pressed actions: true only on the tick the key went down.
	ActionFire    // Space - single beam
	ActionSpread  // Shift+Space (window) / X (terminal) - beam spread
	ActionGravity // Enter - gravity field
	ActionShield  // S - shield wall
	ActionEMP     // E - electromagnetic pulse
	ActionHyper   // Right Shift (window) / H (terminal) - hyper mode
	ActionQuit    // Q, Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionBoost:
		return "Boost"
	case ActionFire:
		return "Fire"
	case ActionSpread:
		return "Spread"
	case ActionGravity:
		return "Gravity"
	case ActionShield:
		return "Shield"
	case ActionEMP:
		return "EMP"
	case ActionHyper:
		return "Hyper"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Held reports whether the action is a held (movement) action rather than a
// one-shot key press.
func (a Action) Held() bool {
	return a >= ActionUp && a <= ActionBoost
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// KeyHold emulates held keys for inputs that only deliver press events
// (terminals report presses and auto-repeats, never releases). A key counts as
// held for holdTicks ticks after its most recent press.
type KeyHold struct {
	holdTicks int
	lastSeen  map[Action]uint64
	tick      uint64
}

// NewKeyHold creates a tracker with the given hold window in ticks.
func NewKeyHold(holdTicks int) *KeyHold {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyHold{
		holdTicks: holdTicks,
		lastSeen:  make(map[Action]uint64),
	}
}

// Press records that the key for a was seen on the current tick.
func (k *KeyHold) Press(a Action) {
	k.lastSeen[a] = k.tick + 1
}

// Apply marks every still-held action in the frame, then advances the clock.
func (k *KeyHold) Apply(f *InputFrame) {
	k.tick++
	for a, seen := range k.lastSeen {
		if k.tick-seen < uint64(k.holdTicks) {
			f.Set(a)
			continue
		}
		delete(k.lastSeen, a)
	}
}
