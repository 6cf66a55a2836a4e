package generator

import (
	"math/rand"

	"micemaze/pkg/engine/world"
)

// GridGenerator is an interface for maze generation algorithms.
// Generate returns the finished grid and the player start position.
// Randomness comes from the caller-supplied source so generation is
// reproducible under a fixed seed.
type GridGenerator interface {
	Generate(rng *rand.Rand, width, height int) (*world.Grid, world.Position)
	Name() string
}

// Available generators
var (
	Backtracker = &BacktrackerGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = Backtracker
