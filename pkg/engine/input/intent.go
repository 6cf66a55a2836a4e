package input

import "sort"

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Gameplay
	ActionBomb

	// Meta / UI
	ActionPause
	ActionQuit

	// Debug
	ActionMapDump
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// bindings maps raw key codes to actions. Multiple codes may point to
// the same action.
var bindings = map[string]Action{
	// Movement (WASD and arrows)
	"w":           ActionMoveNorth,
	"arrow_up":    ActionMoveNorth,
	"s":           ActionMoveSouth,
	"arrow_down":  ActionMoveSouth,
	"a":           ActionMoveWest,
	"arrow_left":  ActionMoveWest,
	"d":           ActionMoveEast,
	"arrow_right": ActionMoveEast,

	// Bomb consumable
	"b": ActionBomb,

	// Pause
	"p": ActionPause,

	// Debug map dump
	"m": ActionMapDump,

	// Quit
	"q":    ActionQuit,
	"esc":  ActionQuit,
	"quit": ActionQuit,
}

// MapToIntent applies the current bindings to a key code and returns a
// high-level Intent.
func MapToIntent(code string) Intent {
	if act, ok := bindings[code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionBomb:
		return "Use Bomb"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionMapDump:
		return "Dump Map"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// MoveDelta returns the movement delta for a movement action, ok=false
// for non-movement actions.
func MoveDelta(a Action) (dx, dy int, ok bool) {
	switch a {
	case ActionMoveNorth:
		return 0, -1, true
	case ActionMoveSouth:
		return 0, 1, true
	case ActionMoveWest:
		return -1, 0, true
	case ActionMoveEast:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}
