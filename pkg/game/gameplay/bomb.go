package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"micemaze/pkg/engine/world"
	"micemaze/pkg/game/state"
)

// UseBomb consumes one bomb from the inventory and clears every wall
// tile in the 3x3 neighborhood centered on the player to floor.
// Structural exit tiles are not walls and survive. Returns false with
// no state change when the player holds no bomb.
func UseBomb(g *state.Game) bool {
	name := g.Config.BombItemName
	if g.Player.CountItem(name) == 0 {
		return false
	}

	for yy := g.Player.Y - 1; yy <= g.Player.Y+1; yy++ {
		for xx := g.Player.X - 1; xx <= g.Player.X+1; xx++ {
			if !g.Grid.InBounds(xx, yy) {
				continue
			}
			if g.Grid.At(xx, yy).Kind == world.KindWall {
				g.Grid.ClearToFloor(xx, yy)
			}
		}
	}

	g.Player.RemoveItem(name)
	g.AddMessage(gotext.Get("Boom! Bombs left: %d", g.Player.CountItem(name)))
	return true
}
