package entities

import (
	"math/rand"
	"testing"

	"micemaze/pkg/engine/world"
)

func countKind(g *world.Grid, kind world.TileKind) int {
	count := 0
	g.ForEachTile(func(x, y int, t world.Tile) {
		if t.Kind == kind {
			count++
		}
	})
	return count
}

func TestSpawnPickupsPlacesExactCount(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	grid := world.NewGrid(9, 9, world.FloorTile())
	grid.Set(8, 8, world.ExitTile())
	start := world.Position{X: 0, Y: 0}

	placed := SpawnPickups(rng, grid, 10, start, world.KindCheese)
	if placed != 10 {
		t.Fatalf("SpawnPickups placed %d, want 10", placed)
	}
	if got := countKind(grid, world.KindCheese); got != 10 {
		t.Errorf("grid holds %d cheese tiles, want 10", got)
	}

	if grid.At(start.X, start.Y).Kind == world.KindCheese {
		t.Error("pickup placed on the start cell")
	}
	if grid.At(8, 8).Kind != world.KindExit {
		t.Error("pickup overwrote the exit tile")
	}
}

func TestSpawnPickupsReturnsFewerWhenCrowded(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	grid := world.Parse("####\n#  #\n####")
	start := world.Position{X: 1, Y: 1}

	placed := SpawnPickups(rng, grid, 5, start, world.KindHeal)
	if placed != 1 {
		t.Errorf("SpawnPickups placed %d on a grid with one eligible cell, want 1", placed)
	}
}

func TestMigratePickupsStepsOntoAdjacentFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(33))
	grid := world.Parse("#####\n#C  #\n#####")
	player := world.Position{X: 4, Y: 4}

	MigratePickups(rng, grid, world.KindCheese, player, nil, 1.0)

	if got := countKind(grid, world.KindCheese); got != 1 {
		t.Fatalf("cheese count after migration = %d, want 1", got)
	}
	pos, _ := grid.FindSymbol(world.SymbolCheese)
	if pos != (world.Position{X: 2, Y: 1}) {
		t.Errorf("cheese at %v, want the single adjacent floor cell (2,1)", pos)
	}
}

func TestMigratePickupsNeverMovesAtZeroChance(t *testing.T) {
	rng := rand.New(rand.NewSource(34))
	grid := world.Parse("#####\n# C #\n#####")

	for i := 0; i < 20; i++ {
		MigratePickups(rng, grid, world.KindCheese, world.Position{}, nil, 0)
	}
	if pos, _ := grid.FindSymbol(world.SymbolCheese); pos != (world.Position{X: 2, Y: 1}) {
		t.Errorf("cheese moved to %v with zero migrate chance", pos)
	}
}

func TestMigratePickupsAvoidsPlayerAndEnemies(t *testing.T) {
	rng := rand.New(rand.NewSource(35))
	// Cheese in the middle of a corridor; both exits blocked, one by
	// the player and one by an enemy. It must stay put.
	grid := world.Parse("#####\n# C #\n#####")
	player := world.Position{X: 1, Y: 1}
	enemies := []*Enemy{{X: 3, Y: 1}}

	for i := 0; i < 20; i++ {
		MigratePickups(rng, grid, world.KindCheese, player, enemies, 1.0)
	}

	if pos, _ := grid.FindSymbol(world.SymbolCheese); pos != (world.Position{X: 2, Y: 1}) {
		t.Errorf("cheese migrated to %v despite blocked neighbors", pos)
	}
}

func TestMigratePickupsDoesNotStackPickups(t *testing.T) {
	rng := rand.New(rand.NewSource(36))
	grid := world.Parse("#####\n#CC #\n#####")

	for i := 0; i < 50; i++ {
		MigratePickups(rng, grid, world.KindCheese, world.Position{X: 4, Y: 4}, nil, 1.0)
		if got := countKind(grid, world.KindCheese); got != 2 {
			t.Fatalf("iteration %d: cheese count = %d, want 2 (no stacking, no loss)", i, got)
		}
	}
}
