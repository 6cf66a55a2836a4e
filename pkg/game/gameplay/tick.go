package gameplay

import (
	"time"

	"micemaze/pkg/engine/world"
	"micemaze/pkg/game/entities"
	"micemaze/pkg/game/state"
)

// Tick advances the simulation by one step: enemy movement on its
// cadence, cheese migration on its slower cadence, invulnerability
// countdown, and enemy contact resolution. The driver calls this once
// per frame or per keypress; nothing in here blocks.
func Tick(g *state.Game) {
	if g.Over {
		return
	}

	g.TickCount++

	if g.InvulnTicks > 0 {
		g.InvulnTicks--
	}

	cfg := g.Config
	if cfg.EnemyStepEvery > 0 && g.TickCount%cfg.EnemyStepEvery == 0 {
		entities.StepEnemies(g.Rand, g.Grid, g.Enemies, cfg.TurnChance)
	}

	if cfg.MigrateEvery > 0 && g.TickCount%cfg.MigrateEvery == 0 {
		entities.MigratePickups(g.Rand, g.Grid, world.KindCheese, g.PlayerPos(), g.Enemies, cfg.MigrateChance)
	}

	ApplyEnemyContact(g)
}

// PopulateLevel spawns the level's enemies and pickups around the
// player start, respecting the configured counts.
func PopulateLevel(g *state.Game) {
	cfg := g.Config
	g.Enemies = entities.SpawnEnemies(g.Rand, g.Grid, cfg.EnemyCount, g.Start)
	entities.SpawnPickups(g.Rand, g.Grid, cfg.CheeseCount, g.Start, world.KindCheese)
	entities.SpawnPickups(g.Rand, g.Grid, cfg.HealCount, g.Start, world.KindHeal)
}

// WinScore converts the remaining countdown into coins earned for a
// level completion: ten per full minute plus one per five leftover
// seconds.
func WinScore(remaining time.Duration) int {
	if remaining < 0 {
		remaining = 0
	}
	total := int(remaining.Seconds())
	minutes := total / 60
	seconds := total % 60
	return minutes*10 + seconds/5
}
