// Package state holds the per-session game state shared by the
// simulation core and the renderer.
package state

import (
	"math/rand"

	"micemaze/pkg/engine/world"
	"micemaze/pkg/game/entities"
)

// Game represents one running level: the grid, the player, the
// enemies, and the tick bookkeeping. It is owned and mutated by a
// single simulation goroutine between ticks; the renderer only reads
// it.
type Game struct {
	Grid    *world.Grid
	Player  *Player
	Enemies []*entities.Enemy

	Config Config
	Rand   *rand.Rand

	// Start is the player spawn of the current level.
	Start world.Position

	// LevelID names the current level for score bookkeeping, e.g.
	// "LVL1" or "generated".
	LevelID string

	// TickCount counts simulation ticks since level start.
	TickCount int

	// InvulnTicks is the remaining invulnerability window after enemy
	// contact. No contact damage applies while it is positive.
	InvulnTicks int

	Over bool
	Won  bool

	Messages []string
}

// NewGame creates a game shell with the given configuration and random
// source. Level content is attached by StartLevel.
func NewGame(cfg Config, rng *rand.Rand) *Game {
	return &Game{
		Config:   cfg,
		Rand:     rng,
		Messages: make([]string, 0),
	}
}

// StartLevel installs a grid and start position and resets all
// per-level state. The player keeps name and coins but is repositioned
// and restored to full health.
func (g *Game) StartLevel(levelID string, grid *world.Grid, start world.Position) {
	g.LevelID = levelID
	g.Grid = grid
	g.Start = start
	g.Enemies = nil
	g.TickCount = 0
	g.InvulnTicks = 0
	g.Over = false
	g.Won = false
	g.ClearMessages()

	if g.Player != nil {
		g.Player.MoveTo(start.X, start.Y)
		g.Player.SetHP(g.Player.MaxHP())
	}
}

// PlayerPos returns the player's grid position.
func (g *Game) PlayerPos() world.Position {
	return world.Position{X: g.Player.X, Y: g.Player.Y}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
