// Package entities holds the moving and spawnable things that live on
// the grid: enemies and pickups.
package entities

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"micemaze/pkg/engine/world"
)

// Spawn attempt cap. Maps too small or too crowded to fit the
// requested count return fewer enemies instead of looping forever.
const maxSpawnTries = 5000

// Enemy is a roaming hazard. It walks along its heading, bounces off
// walls and other enemies, and periodically re-randomizes direction.
type Enemy struct {
	X, Y int

	// Heading, one of (+-1,0) or (0,+-1).
	DX, DY int

	// StepsLeft counts down each move; at zero the heading reverses.
	// MaxSteps is the reset value, chosen at spawn.
	StepsLeft int
	MaxSteps  int
}

// Pos returns the enemy's grid position.
func (e *Enemy) Pos() world.Position {
	return world.Position{X: e.X, Y: e.Y}
}

// SpawnEnemies places up to count enemies on random empty cells,
// rejecting cells within Manhattan distance 2 of avoid (keeps the area
// around the player start clear) and cells already taken in this call.
// Gives up after a bounded number of attempts and returns what was
// placed.
func SpawnEnemies(rng *rand.Rand, grid *world.Grid, count int, avoid world.Position) []*Enemy {
	enemies := make([]*Enemy, 0, count)
	taken := mapset.New[world.Position]()

	for tries := 0; len(enemies) < count && tries < maxSpawnTries; tries++ {
		pos, ok := grid.RandomEmptyCell(rng)
		if !ok {
			break
		}

		if pos.ManhattanDistance(avoid) <= 2 {
			continue
		}
		if taken.Has(pos) {
			continue
		}

		taken.Put(pos)
		enemies = append(enemies, NewEnemyAt(rng, pos))
	}

	return enemies
}

// NewEnemyAt creates an enemy at pos with a random axis-aligned
// heading (50/50 horizontal vs vertical, then random sign) and a
// random step budget of 2 or 3.
func NewEnemyAt(rng *rand.Rand, pos world.Position) *Enemy {
	e := &Enemy{X: pos.X, Y: pos.Y}

	sign := 2*rng.Intn(2) - 1
	if rng.Intn(2) == 0 {
		e.DX, e.DY = sign, 0
	} else {
		e.DX, e.DY = 0, sign
	}

	e.MaxSteps = 2 + rng.Intn(2)
	e.StepsLeft = e.MaxSteps
	return e
}

// StepEnemies advances every enemy by one simulation tick, mutating
// them in place. Processing order is shuffled so no enemy has
// positional priority when resolving collisions. turnChance is the
// probability of spontaneously switching to a perpendicular heading.
func StepEnemies(rng *rand.Rand, grid *world.Grid, enemies []*Enemy, turnChance float64) {
	// occupied holds current enemy positions; reserved holds cells an
	// enemy has committed to hold or vacate this tick, so two enemies
	// cannot swap into the same cell and a later enemy cannot re-enter
	// a cell just vacated.
	occupied := mapset.New[world.Position]()
	for _, e := range enemies {
		occupied.Put(e.Pos())
	}
	reserved := mapset.New[world.Position]()

	order := make([]*Enemy, len(enemies))
	copy(order, enemies)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	for _, e := range order {
		if rng.Float64() < turnChance {
			e.turnPerpendicular(rng)
		}

		next := world.Position{X: e.X + e.DX, Y: e.Y + e.DY}

		blocked := !grid.InBounds(next.X, next.Y) ||
			grid.At(next.X, next.Y).Kind == world.KindWall ||
			occupied.Has(next) || reserved.Has(next)

		if blocked {
			e.reverse()
			reserved.Put(e.Pos())
			continue
		}

		occupied.Remove(e.Pos())
		e.X, e.Y = next.X, next.Y
		occupied.Put(next)
		reserved.Put(next)

		e.StepsLeft--
		if e.StepsLeft <= 0 {
			// Periodic reversal even in open areas, so an enemy never
			// runs in a straight line forever.
			e.reverse()
		}
	}
}

func (e *Enemy) turnPerpendicular(rng *rand.Rand) {
	sign := 2*rng.Intn(2) - 1
	if e.DX != 0 {
		e.DX, e.DY = 0, sign
	} else {
		e.DX, e.DY = sign, 0
	}
	e.StepsLeft = e.MaxSteps
}

func (e *Enemy) reverse() {
	e.DX, e.DY = -e.DX, -e.DY
	e.StepsLeft = e.MaxSteps
}

// EnemyAt reports whether any enemy occupies pos.
func EnemyAt(enemies []*Enemy, pos world.Position) bool {
	for _, e := range enemies {
		if e.X == pos.X && e.Y == pos.Y {
			return true
		}
	}
	return false
}
