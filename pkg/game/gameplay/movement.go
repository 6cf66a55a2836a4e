// Package gameplay provides the core game logic for player movement,
// interactions, and the per-tick simulation update.
package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"micemaze/pkg/engine/world"
	"micemaze/pkg/game/state"
)

// Outcome describes the result of a movement attempt.
type Outcome int

// Movement outcomes
const (
	OutcomeBlocked Outcome = iota // target outside the grid, no state change
	OutcomeWall                   // target is a wall, no state change
	OutcomeMoved                  // stepped onto plain floor
	OutcomeExit                   // stepped onto the exit; caller ends the level as a win
	OutcomeCoin                   // collected a cheese tile
	OutcomeHealed                 // consumed a heal tile
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeBlocked:
		return "blocked"
	case OutcomeWall:
		return "wall"
	case OutcomeMoved:
		return "moved"
	case OutcomeExit:
		return "exit"
	case OutcomeCoin:
		return "coin gained"
	case OutcomeHealed:
		return "healed"
	default:
		return "unknown"
	}
}

// TryMove attempts to move the player by one step and applies any
// tile-triggered effect. Pickups are consumed by resetting their tile
// to floor.
func TryMove(g *state.Game, dx, dy int) Outcome {
	nx, ny := g.Player.X+dx, g.Player.Y+dy

	if !g.Grid.InBounds(nx, ny) {
		return OutcomeBlocked
	}

	tile := g.Grid.At(nx, ny)

	switch tile.Kind {
	case world.KindWall:
		return OutcomeWall

	case world.KindExit:
		g.Player.MoveTo(nx, ny)
		return OutcomeExit

	case world.KindCheese:
		g.Player.MoveTo(nx, ny)
		g.Player.Coins += g.Config.CoinValue
		g.Grid.ClearToFloor(nx, ny)
		g.AddMessage(gotext.Get("Cheese! Coins: %d", g.Player.Coins))
		return OutcomeCoin

	case world.KindHeal:
		g.Player.MoveTo(nx, ny)
		g.Player.Heal(1)
		g.Grid.ClearToFloor(nx, ny)
		g.AddMessage(gotext.Get("Healed! HP: %d", g.Player.HP()))
		return OutcomeHealed

	default:
		if !tile.Walkable {
			return OutcomeWall
		}
		g.Player.MoveTo(nx, ny)
		return OutcomeMoved
	}
}
