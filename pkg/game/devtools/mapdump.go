// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"

	"micemaze/pkg/engine/world"
	"micemaze/pkg/game/entities"
	"micemaze/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// DumpMapToFile writes a full debug dump of the current level to map.txt:
// metadata, legend, the grid with player/enemy overlays, and per-enemy
// heading details. Format is human- and LLM-readable (sections, key: value).
// Returns the path written.
func DumpMapToFile(g *state.Game) (string, error) {
	f, err := os.Create(mapDumpFilename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fmt.Fprintf(f, "level: %s\n", g.LevelID)
	fmt.Fprintf(f, "size: %dx%d\n", g.Grid.Width(), g.Grid.Height())
	fmt.Fprintf(f, "tick: %d\n", g.TickCount)
	fmt.Fprintf(f, "player: (%d,%d) hp: %d/%d coins: %d\n",
		g.Player.X, g.Player.Y, g.Player.HP(), g.Player.MaxHP(), g.Player.Coins)
	fmt.Fprintf(f, "enemies: %d\n\n", len(g.Enemies))

	fmt.Fprintln(f, "legend: @ player, E enemy, # wall, X exit, C cheese, H heal")
	fmt.Fprintln(f)

	for y := 0; y < g.Grid.Height(); y++ {
		for x := 0; x < g.Grid.Width(); x++ {
			pos := world.Position{X: x, Y: y}
			switch {
			case g.PlayerPos() == pos:
				fmt.Fprint(f, "@")
			case entities.EnemyAt(g.Enemies, pos):
				fmt.Fprintf(f, "%c", world.SymbolEnemy)
			default:
				fmt.Fprintf(f, "%c", g.Grid.At(x, y).Symbol)
			}
		}
		fmt.Fprintln(f)
	}

	fmt.Fprintln(f)
	for i, e := range g.Enemies {
		fmt.Fprintf(f, "enemy %d: (%d,%d) heading: (%d,%d) steps: %d/%d\n",
			i, e.X, e.Y, e.DX, e.DY, e.StepsLeft, e.MaxSteps)
	}
	return mapDumpFilename, nil
}
