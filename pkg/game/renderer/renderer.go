// Package renderer defines the presentation interface of the game
// core. The core exposes read-only views each tick; implementations
// never mutate game state outside the documented contracts.
package renderer

import (
	"time"

	"micemaze/pkg/engine/input"
	"micemaze/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleExit
	StyleCheese
	StyleHeal
	StylePlayer
	StyleEnemy
	StyleUrgent
	StyleSubtle
)

// Renderer defines the interface for game rendering backends.
// Implementations can include TUI (terminal), SDL, Ebiten, etc.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: the map with player
	// and enemy overlays, the HUD, and the message log. remaining is
	// the externally computed countdown.
	RenderFrame(g *state.Game, remaining time.Duration)

	// GetInput blocks for user input and returns a high-level Intent.
	GetInput() input.Intent

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a standalone message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// RenderFrame renders a complete game frame using the current renderer
func RenderFrame(g *state.Game, remaining time.Duration) {
	if Current != nil {
		Current.RenderFrame(g, remaining)
	}
}

// GetInput gets user input from the current renderer
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{}
}

// ShowMessage displays a message using the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
