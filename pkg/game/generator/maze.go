package generator

import (
	"math/rand"

	"micemaze/pkg/engine/world"
)

// BacktrackerGenerator carves a perfect maze with randomized
// depth-first backtracking and places the exit at the BFS-farthest
// floor cell from the start.
type BacktrackerGenerator struct{}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Recursive Backtracker"
}

// Generate creates a new maze grid. Even dimensions are promoted to the
// next odd value: the carve alternates floor cells and walls on a
// regular lattice, which only works out when both dimensions are odd.
// The returned position is the carve start, used as the player spawn.
func (g *BacktrackerGenerator) Generate(rng *rand.Rand, width, height int) (*world.Grid, world.Position) {
	if width%2 == 0 {
		width++
	}
	if height%2 == 0 {
		height++
	}

	grid := world.NewGrid(width, height, world.WallTile())

	start := randomOddPosition(rng, width, height)
	grid.Set(start.X, start.Y, world.FloorTile())

	carve(rng, grid, start)

	exit, _ := FarthestFrom(grid, start)
	grid.Set(exit.X, exit.Y, world.ExitTile())

	return grid, start
}

// randomOddPosition picks a cell with both coordinates odd. Degenerate
// grids without an interior odd lattice fall back to the origin so a
// 1x1 maze still terminates with its single cell as the start.
func randomOddPosition(rng *rand.Rand, width, height int) world.Position {
	if width < 3 || height < 3 {
		return world.Position{}
	}
	x := 1 + 2*rng.Intn(width/2)
	y := 1 + 2*rng.Intn(height/2)
	return world.Position{X: x, Y: y}
}

// carve runs the randomized depth-first search. At each step it
// shuffles the four 2-step directions; when the 2-step neighbor is
// still wall and inside the interior bounds, the connecting wall and
// the neighbor are carved to floor and the neighbor becomes current.
// When no direction is carvable the stack pops (backtrack). On
// termination every floor cell is connected to every other by exactly
// one path: a spanning tree, no cycles.
func carve(rng *rand.Rand, grid *world.Grid, start world.Position) {
	width, height := grid.Width(), grid.Height()
	stack := []world.Position{start}
	dirs := []world.Direction{world.North, world.East, world.South, world.West}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		carved := false
		for _, dir := range dirs {
			dx, dy := dir.Delta()
			nx, ny := current.X+2*dx, current.Y+2*dy

			if nx < 1 || nx >= width-1 || ny < 1 || ny >= height-1 {
				continue
			}
			if grid.At(nx, ny).Kind != world.KindWall {
				continue
			}

			grid.Set(current.X+dx, current.Y+dy, world.FloorTile())
			grid.Set(nx, ny, world.FloorTile())
			stack = append(stack, world.Position{X: nx, Y: ny})
			carved = true
			break
		}

		if !carved {
			stack = stack[:len(stack)-1]
		}
	}
}

// FarthestFrom runs a breadth-first search over walkable tiles from
// start and returns the position with the strictly greatest distance,
// ties broken by discovery order, together with that distance. A start
// with no walkable neighbors is its own farthest cell at distance 0.
func FarthestFrom(grid *world.Grid, start world.Position) (world.Position, int) {
	width, height := grid.Width(), grid.Height()

	dist := make([][]int, height)
	for y := range dist {
		dist[y] = make([]int, width)
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}
	dist[start.Y][start.X] = 0

	farthest := start
	queue := []world.Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range world.AllDirections() {
			dx, dy := dir.Delta()
			nx, ny := current.X+dx, current.Y+dy

			if !grid.InBounds(nx, ny) {
				continue
			}
			if !grid.At(nx, ny).Walkable || dist[ny][nx] != -1 {
				continue
			}

			dist[ny][nx] = dist[current.Y][current.X] + 1
			queue = append(queue, world.Position{X: nx, Y: ny})

			if dist[ny][nx] > dist[farthest.Y][farthest.X] {
				farthest = world.Position{X: nx, Y: ny}
			}
		}
	}

	return farthest, dist[farthest.Y][farthest.X]
}
