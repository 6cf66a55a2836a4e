package entities

import (
	"math/rand"

	"micemaze/pkg/engine/world"
)

// SpawnPickups places count tiles of the given pickup kind on plain
// floor cells, excluding the start tile and the exit tile. Eligible
// cells are shuffled and a prefix taken, which guarantees no duplicate
// placement and no overwriting of structural tiles. Returns how many
// were actually placed, which may be fewer than requested on small
// maps.
func SpawnPickups(rng *rand.Rand, grid *world.Grid, count int, start world.Position, kind world.TileKind) int {
	empties := grid.EmptyCells()

	eligible := empties[:0]
	for _, pos := range empties {
		if pos == start {
			continue
		}
		eligible = append(eligible, pos)
	}

	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	if count > len(eligible) {
		count = len(eligible)
	}
	for _, pos := range eligible[:count] {
		grid.Set(pos.X, pos.Y, world.TileForKind(kind))
	}
	return count
}

// MigratePickups gives each tile of the given kind a migrateChance
// probability of wandering one step. Directions are tried in shuffled
// order and the first adjacent plain floor cell that is neither the
// player's cell nor occupied by an enemy wins; otherwise the pickup
// stays put. Callers invoke this on a slower cadence than the enemy
// tick so pickup motion stays slow relative to everything else.
func MigratePickups(rng *rand.Rand, grid *world.Grid, kind world.TileKind, player world.Position, enemies []*Enemy, migrateChance float64) {
	// Collect positions first so a pickup moved east is not stepped
	// twice within one pass.
	var pickups []world.Position
	grid.ForEachTile(func(x, y int, t world.Tile) {
		if t.Kind == kind {
			pickups = append(pickups, world.Position{X: x, Y: y})
		}
	})

	dirs := world.AllDirections()

	for _, pos := range pickups {
		if rng.Float64() >= migrateChance {
			continue
		}

		rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		for _, dir := range dirs {
			dx, dy := dir.Delta()
			next := world.Position{X: pos.X + dx, Y: pos.Y + dy}

			if !grid.InBounds(next.X, next.Y) {
				continue
			}
			if !grid.At(next.X, next.Y).IsFloor() {
				continue
			}
			if next == player || EnemyAt(enemies, next) {
				continue
			}

			grid.ClearToFloor(pos.X, pos.Y)
			grid.Set(next.X, next.Y, world.TileForKind(kind))
			break
		}
	}
}
