package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"micemaze/pkg/game/state"
)

// ApplyEnemyContact applies contact damage when the player and an
// enemy share a cell and no invulnerability window is active. Damage
// is applied at most once per window, even if the overlap persists.
// Returns true if the player was hit this tick.
func ApplyEnemyContact(g *state.Game) bool {
	if g.InvulnTicks > 0 {
		return false
	}

	pos := g.PlayerPos()
	for _, e := range g.Enemies {
		if e.Pos() != pos {
			continue
		}

		alive := g.Player.Damage(g.Config.EnemyDamage)
		g.InvulnTicks = g.Config.HitCooldownTicks
		g.AddMessage(gotext.Get("Hit! HP: %d", g.Player.HP()))

		if !alive {
			g.Over = true
			g.Won = false
			g.AddMessage(gotext.Get("Game over"))
		}
		return true
	}

	return false
}
