package entities

import (
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"micemaze/pkg/engine/world"
)

func openGrid(t *testing.T, width, height int) *world.Grid {
	t.Helper()
	return world.NewGrid(width, height, world.FloorTile())
}

func TestSpawnEnemiesAvoidsStartArea(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	grid := openGrid(t, 15, 15)
	avoid := world.Position{X: 7, Y: 7}

	enemies := SpawnEnemies(rng, grid, 10, avoid)
	if len(enemies) != 10 {
		t.Fatalf("spawned %d enemies on an open 15x15 grid, want 10", len(enemies))
	}

	for _, e := range enemies {
		if e.Pos().ManhattanDistance(avoid) <= 2 {
			t.Errorf("enemy at %v is within distance 2 of the start %v", e.Pos(), avoid)
		}
	}
}

func TestSpawnEnemiesNoDuplicatePositions(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	grid := openGrid(t, 9, 9)

	enemies := SpawnEnemies(rng, grid, 20, world.Position{X: 0, Y: 0})
	seen := mapset.New[world.Position]()
	for _, e := range enemies {
		if seen.Has(e.Pos()) {
			t.Errorf("two enemies spawned at %v", e.Pos())
		}
		seen.Put(e.Pos())
	}
}

func TestSpawnEnemiesGivesUpOnCrowdedMap(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	// Single floor cell inside the avoid radius: nothing can spawn.
	grid := world.Parse("###\n# #\n###")

	enemies := SpawnEnemies(rng, grid, 5, world.Position{X: 1, Y: 1})
	if len(enemies) != 0 {
		t.Errorf("spawned %d enemies with no eligible cells, want 0", len(enemies))
	}
}

func TestSpawnEnemiesHeadingAndSteps(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	grid := openGrid(t, 21, 21)

	for _, e := range SpawnEnemies(rng, grid, 15, world.Position{X: 10, Y: 10}) {
		axis := e.DX*e.DX + e.DY*e.DY
		if axis != 1 {
			t.Errorf("enemy heading (%d,%d) is not a unit axis step", e.DX, e.DY)
		}
		if e.MaxSteps != 2 && e.MaxSteps != 3 {
			t.Errorf("MaxSteps = %d, want 2 or 3", e.MaxSteps)
		}
		if e.StepsLeft != e.MaxSteps {
			t.Errorf("StepsLeft = %d, want MaxSteps %d at spawn", e.StepsLeft, e.MaxSteps)
		}
	}
}

func TestStepEnemiesCollisionFreedom(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	grid := world.Parse(
		"#########\n" +
			"#       #\n" +
			"# ### # #\n" +
			"#   # # #\n" +
			"### #   #\n" +
			"#       #\n" +
			"#########")

	enemies := SpawnEnemies(rng, grid, 8, world.Position{X: 20, Y: 20})
	if len(enemies) < 2 {
		t.Fatalf("need at least 2 enemies for collision testing, got %d", len(enemies))
	}

	for tick := 0; tick < 200; tick++ {
		StepEnemies(rng, grid, enemies, 0.22)

		seen := mapset.New[world.Position]()
		for _, e := range enemies {
			if seen.Has(e.Pos()) {
				t.Fatalf("tick %d: two enemies share cell %v", tick, e.Pos())
			}
			seen.Put(e.Pos())

			if grid.At(e.X, e.Y).Kind == world.KindWall {
				t.Fatalf("tick %d: enemy inside wall at %v", tick, e.Pos())
			}
		}
	}
}

func TestStepEnemiesWallReversal(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	// Single-cell cage: every forward cell is a wall.
	grid := world.Parse("###\n# #\n###")

	e := &Enemy{X: 1, Y: 1, DX: 1, DY: 0, StepsLeft: 1, MaxSteps: 3}
	StepEnemies(rng, grid, []*Enemy{e}, 0) // turnChance 0: no spontaneous turns

	if e.X != 1 || e.Y != 1 {
		t.Errorf("blocked enemy moved to (%d,%d), want to stay at (1,1)", e.X, e.Y)
	}
	if e.DX != -1 || e.DY != 0 {
		t.Errorf("blocked enemy heading (%d,%d), want reversed (-1,0)", e.DX, e.DY)
	}
	if e.StepsLeft != e.MaxSteps {
		t.Errorf("StepsLeft = %d, want reset to MaxSteps %d", e.StepsLeft, e.MaxSteps)
	}
}

func TestStepEnemiesGridBoundaryBounces(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	// No wall tiles at all: the grid edge itself must block.
	grid := openGrid(t, 3, 1)

	e := &Enemy{X: 2, Y: 0, DX: 1, DY: 0, StepsLeft: 2, MaxSteps: 2}
	StepEnemies(rng, grid, []*Enemy{e}, 0)

	if e.X != 2 || e.Y != 0 {
		t.Errorf("edge-blocked enemy moved to (%d,%d), want (2,0)", e.X, e.Y)
	}
	if e.DX != -1 {
		t.Errorf("edge-blocked enemy DX = %d, want -1", e.DX)
	}
}

func TestStepEnemiesPeriodicReversal(t *testing.T) {
	rng := rand.New(rand.NewSource(24))
	grid := openGrid(t, 9, 1)

	e := &Enemy{X: 4, Y: 0, DX: 1, DY: 0, StepsLeft: 1, MaxSteps: 2}
	StepEnemies(rng, grid, []*Enemy{e}, 0)

	// The move consumed the last step: heading reverses even in the open.
	if e.X != 5 {
		t.Errorf("enemy X = %d, want 5 (moved before reversing)", e.X)
	}
	if e.DX != -1 {
		t.Errorf("enemy DX = %d, want -1 after exhausting StepsLeft", e.DX)
	}
	if e.StepsLeft != e.MaxSteps {
		t.Errorf("StepsLeft = %d, want reset to %d", e.StepsLeft, e.MaxSteps)
	}
}

func TestStepEnemiesNoSwapThroughReservedCell(t *testing.T) {
	rng := rand.New(rand.NewSource(25))
	// Two enemies head-on in a 1-wide corridor: neither may pass
	// through the other, whatever the processing order.
	grid := world.Parse("####\n#  #\n####")

	a := &Enemy{X: 1, Y: 1, DX: 1, DY: 0, StepsLeft: 3, MaxSteps: 3}
	b := &Enemy{X: 2, Y: 1, DX: -1, DY: 0, StepsLeft: 3, MaxSteps: 3}

	for tick := 0; tick < 50; tick++ {
		StepEnemies(rng, grid, []*Enemy{a, b}, 0)
		if a.Pos() == b.Pos() {
			t.Fatalf("tick %d: enemies merged at %v", tick, a.Pos())
		}
	}
}
